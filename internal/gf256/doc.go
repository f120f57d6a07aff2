//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package gf256 implements byte-wise arithmetic over GF(256), the
// finite field Shamir secret sharing in this module is built on.
//
// Addition and subtraction are XOR. Multiplication and inversion use
// the Rijndael reduction polynomial x^8 + x^4 + x^3 + x + 1 (0x11B),
// the same field AES itself uses. Multiplication and inversion are
// backed by log/antilog tables generated once at package init from the
// generator 0x03, rather than a carry-less-multiply-then-reduce loop on
// every call, since this is the hottest path in both share computation
// and Lagrange interpolation.
package gf256
