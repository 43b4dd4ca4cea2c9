package mem

import (
	"fmt"

	"golang.org/x/sync/semaphore"
)

// Limit wraps another Provider with a hard byte budget. Allocations that
// would exceed the budget fail with ErrBudgetExceeded; releasing a buffer
// returns its bytes to the budget.
//
// Acquisition is non-blocking: a Bitmap never waits for memory, it propagates
// the failure to its caller.
type Limit struct {
	inner  Provider
	budget *semaphore.Weighted
}

// NewLimit creates a budget-limited view of inner allowing at most
// budgetBytes of outstanding allocations.
func NewLimit(inner Provider, budgetBytes int64) *Limit {
	return &Limit{
		inner:  inner,
		budget: semaphore.NewWeighted(budgetBytes),
	}
}

// Allocate reserves size bytes of budget, then delegates to the inner
// provider. The budget is returned on inner failure.
func (l *Limit) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, nil
	}

	if !l.budget.TryAcquire(int64(size)) {
		return nil, fmt.Errorf("%w: %d bytes requested", ErrBudgetExceeded, size)
	}

	buf, err := l.inner.Allocate(size)
	if err != nil {
		l.budget.Release(int64(size))
		return nil, err
	}
	return buf, nil
}

// Release reclaims the buffer through the inner provider and returns its
// bytes to the budget.
func (l *Limit) Release(buf []byte) error {
	if buf == nil {
		return nil
	}
	err := l.inner.Release(buf)
	l.budget.Release(int64(len(buf)))
	return err
}
