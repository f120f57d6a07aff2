//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package yamlcodec is a human-readable vault.Serializer. It trades
// the default gob codec's compactness for an account map that can be
// inspected and diffed with a text editor, at the cost of writing
// every binary field as a YAML sequence of byte values.
package yamlcodec

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/polyhasher/polyhasher/vault"
)

// record mirrors vault.Entry with lowercase yaml tags, since vault.Entry
// itself carries none and would otherwise marshal with Go field names.
type record struct {
	ShareNumber uint8  `yaml:"sharenumber"`
	Salt        []byte `yaml:"salt"`
	PassHash    []byte `yaml:"passhash"`
}

// document is the top-level shape written to the YAML stream: a plain
// map from username to its ordered entry list.
type document map[string][]record

// Codec is a vault.Serializer backed by gopkg.in/yaml.v3.
type Codec struct{}

func (Codec) Encode(w io.Writer, accounts map[string][]vault.Entry) error {
	doc := make(document, len(accounts))
	for user, entries := range accounts {
		recs := make([]record, len(entries))
		for i, e := range entries {
			recs[i] = record{ShareNumber: e.ShareNumber, Salt: e.Salt, PassHash: e.PassHash}
		}
		doc[user] = recs
	}
	return yaml.NewEncoder(w).Encode(doc)
}

func (Codec) Decode(r io.Reader) (map[string][]vault.Entry, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return map[string][]vault.Entry{}, nil
		}
		return nil, err
	}

	accounts := make(map[string][]vault.Entry, len(doc))
	for user, recs := range doc {
		entries := make([]vault.Entry, len(recs))
		for i, rec := range recs {
			entries[i] = vault.Entry{ShareNumber: rec.ShareNumber, Salt: rec.Salt, PassHash: rec.PassHash}
		}
		accounts[user] = entries
	}
	return accounts, nil
}
