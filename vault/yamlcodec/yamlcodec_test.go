//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package yamlcodec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyhasher/polyhasher/vault"
)

func TestCodec_RoundTrips(t *testing.T) {
	accounts := map[string][]vault.Entry{
		"alice": {
			{ShareNumber: 1, Salt: []byte("0123456789abcdef"), PassHash: []byte("some-masked-digest-bytes")},
		},
		"dennis": {
			{ShareNumber: 0, Salt: []byte("fedcba9876543210"), PassHash: []byte("ciphertext-block")},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, (Codec{}).Encode(&buf, accounts))

	got, err := (Codec{}).Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, accounts, got)
}

func TestCodec_DecodeEmptyStreamYieldsEmptyMap(t *testing.T) {
	got, err := (Codec{}).Decode(bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Empty(t, got)
}
