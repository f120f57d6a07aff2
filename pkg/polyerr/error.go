//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package polyerr

import (
	"errors"
	"fmt"
)

// Error is a structured vault/shamir error. It carries a Code for
// programmatic handling, a human-readable Msg, and an optional wrapped
// cause so error chains survive errors.Is/errors.As.
type Error struct {
	Code    Code
	Msg     string
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Msg, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Msg)
}

// Unwrap returns the wrapped error, enabling errors.Is/errors.As chain
// traversal.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is enables error comparison by Code. Two *Error values are considered
// equal if they share a Code, regardless of Msg or Wrapped.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Wrap returns a new *Error with the same Code and Msg, wrapping err.
func (e *Error) Wrap(err error) *Error {
	return &Error{Code: e.Code, Msg: e.Msg, Wrapped: err}
}

// Clone returns a shallow copy, safe to mutate without touching the
// shared sentinel.
func (e *Error) Clone() *Error {
	return &Error{Code: e.Code, Msg: e.Msg, Wrapped: e.Wrapped}
}
