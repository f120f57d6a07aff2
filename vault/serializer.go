//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package vault

import (
	"encoding/gob"
	"io"
)

// Serializer is the external codec a Vault delegates persistence to.
// It round-trips the account map and nothing else: threshold, share
// counters, and any secret material never reach a Serializer.
type Serializer interface {
	Encode(w io.Writer, accounts map[string][]Entry) error
	Decode(r io.Reader) (map[string][]Entry, error)
}

// gobSerializer is the default Serializer: Go's own binary encoding,
// applied directly to the account map. It is opaque and
// implementation-specific by design; callers that need a portable or
// human-readable format should use vault/yamlcodec or
// vault/sqlitecodec instead.
type gobSerializer struct{}

func (gobSerializer) Encode(w io.Writer, accounts map[string][]Entry) error {
	return gob.NewEncoder(w).Encode(accounts)
}

func (gobSerializer) Decode(r io.Reader) (map[string][]Entry, error) {
	accounts := make(map[string][]Entry)
	if err := gob.NewDecoder(r).Decode(&accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}
