// Package testutil contains helper observers used across tests to reduce
// boilerplate when recording delivered events and asserting on stream
// behavior. These helpers are intentionally minimal and are not intended
// for production usage.
package testutil
