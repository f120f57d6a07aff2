//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package polyerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIs_MatchesByCode(t *testing.T) {
	wrapped := ErrLocked.Wrap(errors.New("boom"))
	assert.True(t, errors.Is(wrapped, ErrLocked))
	assert.False(t, errors.Is(wrapped, ErrUnknownUser))
}

func TestClone_DoesNotAliasSentinel(t *testing.T) {
	clone := ErrDuplicate.Clone()
	clone.Msg = "username 'alice' exists already"

	assert.Equal(t, "username already exists", ErrDuplicate.Msg)
	assert.Equal(t, "username 'alice' exists already", clone.Msg)
	assert.True(t, errors.Is(clone, ErrDuplicate))
}

func TestFromCode_UnknownFallsBackToGeneralFailure(t *testing.T) {
	got := FromCode(Code("does-not-exist"))
	assert.Same(t, ErrGeneralFailure, got)
}

func TestFromCode_KnownCodeRoundTrips(t *testing.T) {
	got := FromCode(ErrInsufficientShares.Code)
	require.NotNil(t, got)
	assert.Equal(t, ErrInsufficientShares, got)
}

func TestError_IncludesWrappedCause(t *testing.T) {
	err := ErrSerialization.Wrap(errors.New("unexpected EOF"))
	assert.Contains(t, err.Error(), "unexpected EOF")
	assert.Contains(t, err.Error(), string(ErrSerialization.Code))
}
