// Package sanitizer normalizes free-form input before validation and storage.
//
// All functions are idempotent and never fail: input that cannot be
// normalized comes back as an empty string, which callers treat as invalid.
package sanitizer
