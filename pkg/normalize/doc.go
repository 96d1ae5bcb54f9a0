// Package normalize converts loosely shaped wire values into canonical
// booleans and tri-state labels, and maps labels back to the integer codes
// used in storage.
//
// Inputs arrive as a Value, a tagged variant with exactly four kinds:
// Absent, Bool, Int and Label. Every function in this package is total and
// pure: it never panics, never returns an error and holds no state, so it is
// safe for concurrent use. Rejecting malformed input is the caller's job and
// happens before normalization (see pkg/validation).
package normalize
