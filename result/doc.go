// Package result provides the two-case value of a computation: a success
// carrying a value or a failure carrying an error. It is consumed by
// signal.FromResult and produced by signal.First.
package result
