package bitmap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromString_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"0",
		"1",
		"010011",
		strings.Repeat("0", 64),
		strings.Repeat("1", 64),
		strings.Repeat("10", 50),
		strings.Repeat("1", 63) + "0" + strings.Repeat("01", 40),
	}
	for _, s := range inputs {
		b, err := FromString(s)
		require.NoError(t, err, "input %q", s)

		assert.Equal(t, s, b.String())
		assert.Equal(t, uint64(len(s)), b.BitCount())
		assert.Equal(t, uint64(strings.Count(s, "1")), b.InUseCount())

		require.NoError(t, b.Close())
	}
}

func TestFromString_InvalidCharacter(t *testing.T) {
	for _, s := range []string{"2", "01x01", "01 01", "０1"} {
		_, err := FromString(s)
		require.ErrorIs(t, err, ErrInvalidBitstring, "input %q", s)
	}
}

func TestStringN(t *testing.T) {
	b, err := FromString("110010")
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, "", b.StringN(0))
	assert.Equal(t, "110", b.StringN(3))
	assert.Equal(t, "110010", b.StringN(6))
	assert.Equal(t, "110010", b.StringN(-1))

	mustPanicWith(t, ErrOutOfRange, func() { b.StringN(7) })
	mustPanicWith(t, ErrOutOfRange, func() { b.StringN(-2) })
}

func TestString_TracksMutation(t *testing.T) {
	b, err := New(8)
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, "00000000", b.String())

	b.TryToSet(0)
	b.TryToSet(5)
	assert.Equal(t, "10000100", b.String())

	b.Unset(0)
	assert.Equal(t, "00000100", b.String())
}
