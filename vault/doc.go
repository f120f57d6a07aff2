//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package vault implements the PolyPasswordHasher state machine: an
// account map whose per-account verifiers are cryptographically inert
// until a threshold of correct passwords reassembles the vault's
// master key through internal/shamir.
//
// A Vault is a single-owner value with no internal concurrency control.
// Every exported method reads and mutates account state; a caller that
// shares one Vault across goroutines must serialize access itself
// (an exclusive mutex around the call sites is sufficient). No method
// blocks or accepts a context, and no method leaves partial state on
// error: validation runs to completion before any field is mutated.
package vault
