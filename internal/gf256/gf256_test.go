//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package gf256

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_IsXor(t *testing.T) {
	assert.Equal(t, byte(0x00), Add(0x53, 0x53))
	assert.Equal(t, byte(0xFF), Add(0x0F, 0xF0))
}

func TestMul_IdentityAndZero(t *testing.T) {
	for a := 0; a < 256; a++ {
		v := byte(a)
		assert.Equal(t, v, Mul(v, 1), "1 is the multiplicative identity")
		assert.Equal(t, byte(0), Mul(v, 0), "0 annihilates")
	}
}

func TestMul_KnownAESVector(t *testing.T) {
	// 0x53 * 0xCA = 0x01 in AES's GF(256), a widely cited worked example.
	assert.Equal(t, byte(0x01), Mul(0x53, 0xCA))
}

func TestInverse_RoundTrips(t *testing.T) {
	for a := 1; a < 256; a++ {
		v := byte(a)
		inv := Inverse(v)
		assert.Equal(t, byte(1), Mul(v, inv), "a * a^-1 must equal 1 for a=%d", a)
	}
}

func TestInverse_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { Inverse(0) })
}

func TestDiv_IsInverseOfMul(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 1; b < 256; b++ {
			got := Div(byte(a), byte(b))
			require.Equal(t, byte(a), Mul(got, byte(b)))
		}
	}
}

func TestDiv_PanicsOnZeroDivisor(t *testing.T) {
	assert.Panics(t, func() { Div(1, 0) })
}

func TestPow_MatchesRepeatedMultiplication(t *testing.T) {
	a := byte(0x57)
	want := byte(1)
	for n := 0; n <= 8; n++ {
		assert.Equal(t, want, Pow(a, n), "Pow(0x57, %d)", n)
		want = Mul(want, a)
	}
}

func TestMul_IsCommutative(t *testing.T) {
	for a := 0; a < 256; a += 17 {
		for b := 0; b < 256; b += 23 {
			assert.Equal(t, Mul(byte(a), byte(b)), Mul(byte(b), byte(a)))
		}
	}
}
