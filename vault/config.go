//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package vault

import (
	"crypto/rand"
	"io"
)

// Config holds the tunables and swappable collaborators for a Vault.
// Construction takes an explicit value instead of reaching for
// package-level globals, so more than one Vault with different
// collaborators can coexist in a process.
type Config struct {
	// Threshold is the minimum number of positive shares required to
	// recover the vault's master key. Must be in [2, 255].
	Threshold uint8

	// PartialBytes is the number of trailing digest bytes stored
	// unmasked per entry to allow probabilistic login checks while
	// locked. Must be in [0, 32]. Zero disables partial verification.
	PartialBytes uint8

	// SaltSize is the number of random bytes generated per entry's
	// salt. Defaults to 16 when zero.
	SaltSize uint16

	// Hasher digests salt||password into a verifier. Defaults to
	// SHA-256.
	Hasher Hasher

	// Cipher encrypts thresholdless verifiers. Defaults to AES-256
	// applied to a single block.
	Cipher Cipher

	// Serializer encodes and decodes the account map for persistence.
	// Defaults to a gob-based binary codec.
	Serializer Serializer

	// RandReader supplies randomness for the fresh master key and
	// per-entry salts. Defaults to crypto/rand.Reader. Polynomial
	// coefficients are not drawn from it: internal/shamir reads its own
	// package-level reader.
	RandReader io.Reader
}

func (c Config) withDefaults() Config {
	if c.SaltSize == 0 {
		c.SaltSize = 16
	}
	if c.Hasher == nil {
		c.Hasher = defaultHasher
	}
	if c.Cipher == nil {
		c.Cipher = aesECBCipher{}
	}
	if c.Serializer == nil {
		c.Serializer = gobSerializer{}
	}
	if c.RandReader == nil {
		c.RandReader = rand.Reader
	}
	return c
}

// Source selects how a Vault's account map is populated at
// construction: freshly generated with a new master key, or
// deserialized from a previously persisted byte stream.
type Source interface {
	apply(cfg Config) (*Vault, error)
}

type freshSource struct{}

// Fresh constructs a Vault with an empty account map and a freshly
// generated 32-byte master key. The returned Vault starts in the
// Fresh/Unlocked state.
func Fresh() Source {
	return freshSource{}
}

type loadedSource struct {
	r io.Reader
}

// Loaded constructs a Vault by deserializing a previously persisted
// account map from r, via cfg.Serializer. The returned Vault starts
// in the Loaded/Locked state: it holds no master key until
// UnlockPasswordData succeeds.
func Loaded(r io.Reader) Source {
	return loadedSource{r: r}
}

// Credential is one (username, password) pair supplied to
// UnlockPasswordData.
type Credential struct {
	Username []byte
	Password []byte
}
