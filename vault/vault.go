//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package vault

import (
	"io"

	"github.com/google/uuid"

	"github.com/polyhasher/polyhasher/internal/log"
	"github.com/polyhasher/polyhasher/internal/shamir"
	"github.com/polyhasher/polyhasher/pkg/polyerr"
)

// Vault is the PolyPasswordHasher state machine. See the package doc
// for its concurrency contract.
type Vault struct {
	threshold    uint8
	saltSize     uint16
	partialBytes uint8

	accounts map[string][]Entry

	engine             *shamir.Engine
	thresholdlessKey   []byte // digestSize bytes; nil unless knownSecret
	knownSecret        bool
	nextAvailableShare uint16

	hasher     Hasher
	cipher     Cipher
	serializer Serializer
	randReader io.Reader
}

// New constructs a Vault per cfg and source. See Fresh and Loaded.
func New(cfg Config, source Source) (*Vault, error) {
	if cfg.Threshold < 2 || cfg.Threshold > 255 {
		err := polyerr.ErrInvalidArgument.Clone()
		err.Msg = "threshold must be in [2, 255]"
		return nil, err
	}
	if cfg.PartialBytes > digestSize {
		err := polyerr.ErrInvalidArgument.Clone()
		err.Msg = "partialbytes must be in [0, 32]"
		return nil, err
	}

	cfg = cfg.withDefaults()
	return source.apply(cfg)
}

func (freshSource) apply(cfg Config) (*Vault, error) {
	secret := make([]byte, digestSize)
	if _, err := io.ReadFull(cfg.RandReader, secret); err != nil {
		failErr := polyerr.ErrInvalidArgument.Clone()
		failErr.Msg = "failed to generate master key"
		return nil, failErr.Wrap(err)
	}

	engine, err := shamir.New(int(cfg.Threshold), secret)
	if err != nil {
		return nil, err
	}

	return &Vault{
		threshold:          cfg.Threshold,
		saltSize:           cfg.SaltSize,
		partialBytes:       cfg.PartialBytes,
		accounts:           make(map[string][]Entry),
		engine:             engine,
		thresholdlessKey:   secret,
		knownSecret:        true,
		nextAvailableShare: 1,
		hasher:             cfg.Hasher,
		cipher:             cfg.Cipher,
		serializer:         cfg.Serializer,
		randReader:         cfg.RandReader,
	}, nil
}

func (s loadedSource) apply(cfg Config) (*Vault, error) {
	accounts, err := cfg.Serializer.Decode(s.r)
	if err != nil {
		failErr := polyerr.ErrSerialization.Clone()
		return nil, failErr.Wrap(err)
	}
	if accounts == nil {
		accounts = make(map[string][]Entry)
	}

	engine, err := shamir.New(int(cfg.Threshold), nil)
	if err != nil {
		return nil, err
	}

	next := uint16(1)
	for _, entries := range accounts {
		for _, e := range entries {
			if e.ShareNumber > 0 && uint16(e.ShareNumber)+1 > next {
				next = uint16(e.ShareNumber) + 1
			}
		}
	}

	return &Vault{
		threshold:          cfg.Threshold,
		saltSize:           cfg.SaltSize,
		partialBytes:       cfg.PartialBytes,
		accounts:           accounts,
		engine:             engine,
		knownSecret:        false,
		nextAvailableShare: next,
		hasher:             cfg.Hasher,
		cipher:             cfg.Cipher,
		serializer:         cfg.Serializer,
		randReader:         cfg.RandReader,
	}, nil
}

// Threshold returns the vault's configured recovery threshold.
func (v *Vault) Threshold() uint8 {
	return v.threshold
}

// PartialBytes returns the vault's configured partial-verification
// tail length.
func (v *Vault) PartialBytes() uint8 {
	return v.partialBytes
}

// IsUnlocked reports whether the vault currently holds a recovered or
// generated master key.
func (v *Vault) IsUnlocked() bool {
	return v.knownSecret
}

func newSessionID() string {
	return uuid.NewString()
}

func auditErr(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func auditState(err error) log.AuditState {
	if err != nil {
		return log.AuditErrored
	}
	return log.AuditSuccess
}
