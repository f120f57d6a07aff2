//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package shamir

import (
	"crypto/rand"
	"io"
	"sort"

	"github.com/polyhasher/polyhasher/internal/gf256"
	"github.com/polyhasher/polyhasher/pkg/polyerr"
)

// reader supplies randomness for coefficient generation. It is a
// package-level seam in the style of spike-sdk-go/crypto's reader,
// which a test inside this package can swap to make polynomial fill
// deterministic; no current test does.
var reader = rand.Reader

// Engine is a GF(256) Shamir secret-sharing instance for a secret of
// fixed byte length. Once constructed from a secret (or populated by a
// successful RecoverSecretData), its coefficient matrix is immutable
// for the engine's lifetime.
type Engine struct {
	threshold int
	length    int
	coeff     [][]byte // coeff[i][k]: byte i, coefficient of X^k
	hasSecret bool
}

// New creates a ShamirEngine for the given threshold. If secret is
// non-empty, the engine is initialized in "has secret" mode: column 0
// of the coefficient matrix is the secret, and the remaining t-1
// columns per byte are filled with cryptographically random bytes. If
// secret is empty, the engine starts in "empty" mode, ready to receive
// a reconstructed secret via RecoverSecretData.
//
// threshold must be at least 2; a threshold of 1 would let a single
// share reveal the secret outright.
func New(threshold int, secret []byte) (*Engine, error) {
	if threshold < 2 || threshold > 255 {
		return nil, polyerr.ErrInvalidArgument.Clone()
	}

	e := &Engine{threshold: threshold}

	if len(secret) == 0 {
		return e, nil
	}

	e.length = len(secret)
	e.coeff = make([][]byte, e.length)
	for i := range secret {
		row := make([]byte, threshold)
		row[0] = secret[i]
		if _, err := io.ReadFull(reader, row[1:]); err != nil {
			failErr := polyerr.ErrInvalidArgument.Clone()
			failErr.Msg = "failed to generate random polynomial coefficients"
			return nil, failErr.Wrap(err)
		}
		e.coeff[i] = row
	}
	e.hasSecret = true
	return e, nil
}

// HasSecret reports whether the engine currently holds a secret (either
// generated at construction or reconstructed via RecoverSecretData).
func (e *Engine) HasSecret() bool {
	return e.hasSecret
}

// Threshold returns the minimum number of shares required to recover
// the secret.
func (e *Engine) Threshold() int {
	return e.threshold
}

// ComputeShare evaluates the engine's per-byte polynomials at x,
// producing one share of the secret. x must be in [1, 255]; the field
// element 0 is never a valid share x-coordinate.
func (e *Engine) ComputeShare(x byte) (Share, error) {
	if !e.hasSecret {
		return Share{}, polyerr.ErrNotReady.Clone()
	}
	if x == 0 {
		failErr := polyerr.ErrInvalidArgument.Clone()
		failErr.Msg = "share x-coordinate must be in [1, 255]"
		return Share{}, failErr
	}

	data := make([]byte, e.length)
	for i, row := range e.coeff {
		data[i] = evalPoly(row, x)
	}
	return Share{X: x, Data: data}, nil
}

// IsValidShare reports whether s matches the share the engine would
// compute for s.X.
func (e *Engine) IsValidShare(s Share) (bool, error) {
	recomputed, err := e.ComputeShare(s.X)
	if err != nil {
		return false, err
	}
	return recomputed.Equal(s), nil
}

// RecoverSecretData reconstructs the secret from shares. It requires
// the engine to currently hold no secret, and at least Threshold()
// shares to be supplied. All share data must be the same length, and
// all x-coordinates must be distinct and nonzero.
//
// The first Threshold() shares (in the order supplied) are used to
// interpolate the secret and repopulate the engine's full coefficient
// matrix; any additional shares are verified against the
// reconstruction and RecoverSecretData fails with ErrInvalidShare if
// any of them disagree.
func (e *Engine) RecoverSecretData(shares []Share) ([]byte, error) {
	if e.hasSecret {
		return nil, polyerr.ErrAlreadyInitialized.Clone()
	}
	if len(shares) < e.threshold {
		return nil, polyerr.ErrInsufficientShares.Clone()
	}

	length := len(shares[0].Data)
	seenX := make(map[byte]bool, len(shares))
	for _, s := range shares {
		if len(s.Data) != length {
			failErr := polyerr.ErrMalformedShare.Clone()
			failErr.Msg = "all shares must carry equal-length data"
			return nil, failErr
		}
		if s.X == 0 {
			failErr := polyerr.ErrMalformedShare.Clone()
			failErr.Msg = "share x-coordinate must not be zero"
			return nil, failErr
		}
		if seenX[s.X] {
			failErr := polyerr.ErrMalformedShare.Clone()
			failErr.Msg = "duplicate share x-coordinate"
			return nil, failErr
		}
		seenX[s.X] = true
	}

	chosen := shares[:e.threshold]
	extra := shares[e.threshold:]

	xs := make([]byte, e.threshold)
	for j, s := range chosen {
		xs[j] = s.X
	}

	basisPolys := make([][]byte, e.threshold)
	for j := range xs {
		basisPolys[j] = basisPolynomial(xs, j)
	}

	coeff := make([][]byte, length)
	secret := make([]byte, length)
	for i := 0; i < length; i++ {
		row := make([]byte, e.threshold)
		for j, bp := range basisPolys {
			scalar := chosen[j].Data[i]
			for k, c := range bp {
				row[k] = gf256.Add(row[k], gf256.Mul(scalar, c))
			}
		}
		coeff[i] = row
		secret[i] = row[0]
	}

	e.length = length
	e.coeff = coeff
	e.hasSecret = true

	for _, s := range extra {
		ok, err := e.IsValidShare(s)
		if err != nil {
			e.reset()
			return nil, err
		}
		if !ok {
			e.reset()
			return nil, polyerr.ErrInvalidShare.Clone()
		}
	}

	return secret, nil
}

// reset clears the engine back to "empty" mode. Used when recovery
// verification fails partway through, so a failed RecoverSecretData
// call leaves no observable state change.
func (e *Engine) reset() {
	e.length = 0
	e.coeff = nil
	e.hasSecret = false
}

// SortSharesByX returns a copy of shares ordered by ascending
// x-coordinate. RecoverSecretData does not require sorted input, but
// callers that want the "first t shares" selection to depend only on
// the x-coordinates can pre-sort with this helper. The vault does not
// use it: it passes shares in credential and entry order.
func SortSharesByX(shares []Share) []Share {
	out := make([]Share, len(shares))
	copy(out, shares)
	sort.Slice(out, func(i, j int) bool { return out[i].X < out[j].X })
	return out
}
