package result

import "fmt"

// Result holds either a value or an error, never both. The zero value is a
// success carrying the zero value of T.
type Result[T any] struct {
	value T
	err   error
}

// Success creates a successful result carrying v.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Failure creates a failed result carrying err. err must be non-nil; a nil
// err degenerates to a zero-valued success.
func Failure[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// IsSuccess reports whether the result carries a value.
func (r Result[T]) IsSuccess() bool { return r.err == nil }

// Value returns the carried value. It is the zero value on failure.
func (r Result[T]) Value() T { return r.value }

// Err returns the carried error, nil on success.
func (r Result[T]) Err() error { return r.err }

// Get unpacks the result into Go's conventional (value, error) pair.
func (r Result[T]) Get() (T, error) { return r.value, r.err }

// String renders the result for logs and test failures.
func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("failure(%v)", r.err)
	}
	return fmt.Sprintf("success(%v)", r.value)
}
