// Package focus evaluates whether the user is currently in focus mode.
//
// The context is reduced to a single explicit boolean supplied by the caller.
// Absence of the flag defaults to "not focused". Everything here is pure and
// safe for concurrent use.
package focus
