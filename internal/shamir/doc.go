//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package shamir implements Shamir secret sharing over GF(256), byte by
// byte, for a secret of arbitrary length. An Engine holds a random
// degree-(t-1) polynomial per secret byte; evaluating that polynomial
// at a nonzero x-coordinate yields one share of the secret, and any t
// distinct shares reconstruct it via Lagrange interpolation.
//
// This engine has no notion of passwords or accounts; it is a pure
// cryptographic primitive consumed by the vault package.
package shamir
