// Package error provides the coded error type used across mdwtime.
//
// Package: error
// Title: mdwtime Error Handling
// Description: Structured errors carrying a machine readable code, a severity,
//              the failing operation and a set of key/value details. Validation
//              failures of time-of-day values travel through this type so callers
//              can recover the offending field values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-16 v0.2.0: Reduced to the codes used by mdwtime, errors.As based helpers
//
// Usage:
//
//	err := mdwerror.New("invalid time").
//		WithCode(mdwerror.CodeInvalidTime).
//		WithOperation("timex.Set").
//		WithDetail("hour", 25)
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidTime) {
//		// handle
//	}
package error
