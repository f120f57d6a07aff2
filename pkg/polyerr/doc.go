//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package polyerr provides structured error handling for the polyhasher
// password vault.
//
// This package defines Error, a structured error type with error codes for
// programmatic handling, and provides predefined sentinel errors for every
// failure mode the vault and shamir engine can produce: locked-state
// violations, malformed shares, share-space exhaustion, and so on.
//
// All predefined errors (e.g. ErrUnknownUser, ErrLocked) are pointer types
// (*Error) pointing to shared global instances. Compare them with
// errors.Is(), never with ==, since a clone may carry a different Msg or
// Wrapped value while still representing the same failure:
//
//	if errors.Is(err, polyerr.ErrLocked) {
//	    // vault is locked; partial verification may still apply
//	}
//
// Because sentinel errors are shared pointers, callers that want to
// customize Msg must Clone() first rather than mutate the sentinel in
// place.
package polyerr
