//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package shamir

import "github.com/polyhasher/polyhasher/internal/gf256"

// evalPoly evaluates the polynomial with ascending-degree coefficients
// coeffs at x using Horner's method.
func evalPoly(coeffs []byte, x byte) byte {
	var result byte
	for i := len(coeffs) - 1; i >= 0; i-- {
		result = gf256.Add(gf256.Mul(result, x), coeffs[i])
	}
	return result
}

// mulByLinear multiplies the polynomial poly (ascending-degree
// coefficients) by the linear factor (X + root), returning a new
// polynomial one degree higher.
func mulByLinear(poly []byte, root byte) []byte {
	result := make([]byte, len(poly)+1)
	for i, c := range poly {
		result[i] = gf256.Add(result[i], gf256.Mul(c, root))
		result[i+1] = gf256.Add(result[i+1], c)
	}
	return result
}

// basisPolynomial computes the coefficient vector (ascending degree) of
// the Lagrange basis polynomial L_j for the x-coordinates in xs:
//
//	L_j(X) = product_{m != j} (X - x_m) / (x_j - x_m)
//
// The returned slice has len(xs) coefficients. L_j(0) is
// basisPolynomial(xs, j)[0].
func basisPolynomial(xs []byte, j int) []byte {
	poly := []byte{1}
	denom := byte(1)

	xj := xs[j]
	for m, xm := range xs {
		if m == j {
			continue
		}
		poly = mulByLinear(poly, xm)
		denom = gf256.Mul(denom, gf256.Sub(xj, xm))
	}

	for i := range poly {
		poly[i] = gf256.Div(poly[i], denom)
	}
	return poly
}
