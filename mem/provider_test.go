package mem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeap_Alignment(t *testing.T) {
	for _, size := range []int{1, 8, 64, 100, 4096, 1 << 20} {
		buf, err := Heap{}.Allocate(size)
		require.NoError(t, err)
		require.Len(t, buf, size)

		addr := uintptr(unsafe.Pointer(&buf[0]))
		assert.Zero(t, addr&(Alignment-1), "size %d: buffer not %d-byte aligned", size, Alignment)
	}
}

func TestHeap_ZeroSize(t *testing.T) {
	buf, err := Heap{}.Allocate(0)
	require.NoError(t, err)
	assert.Nil(t, buf)

	assert.NoError(t, Heap{}.Release(buf))
}

func TestLimit_Budget(t *testing.T) {
	l := NewLimit(Heap{}, 128)

	first, err := l.Allocate(64)
	require.NoError(t, err)
	require.Len(t, first, 64)

	second, err := l.Allocate(64)
	require.NoError(t, err)

	// Budget exhausted.
	_, err = l.Allocate(1)
	require.ErrorIs(t, err, ErrBudgetExceeded)

	// Releasing returns bytes to the budget.
	require.NoError(t, l.Release(second))

	third, err := l.Allocate(64)
	require.NoError(t, err)
	require.Len(t, third, 64)

	require.NoError(t, l.Release(first))
	require.NoError(t, l.Release(third))
}

func TestLimit_OversizedRequest(t *testing.T) {
	l := NewLimit(Heap{}, 16)

	_, err := l.Allocate(17)
	require.ErrorIs(t, err, ErrBudgetExceeded)

	// The failed request must not leak budget.
	buf, err := l.Allocate(16)
	require.NoError(t, err)
	require.NoError(t, l.Release(buf))
}

type failingProvider struct{}

func (failingProvider) Allocate(int) ([]byte, error) { return nil, ErrNotSupported }
func (failingProvider) Release([]byte) error         { return nil }

func TestLimit_InnerFailureReturnsBudget(t *testing.T) {
	l := NewLimit(failingProvider{}, 64)

	_, err := l.Allocate(64)
	require.ErrorIs(t, err, ErrNotSupported)

	// The whole budget must still be available through a working path.
	assert.True(t, l.budget.TryAcquire(64))
	l.budget.Release(64)
}
