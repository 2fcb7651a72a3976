package signal

import "errors"

var (
	// ErrEmptyResult reports that a Try operation returned neither a value
	// nor an explicit error.
	ErrEmptyResult = errors.New("signal: operation produced neither a value nor an error")

	// ErrExpectedSingleValue reports that First reached completion without
	// observing a single value.
	ErrExpectedSingleValue = errors.New("signal: expected a single value, producer completed without one")
)
