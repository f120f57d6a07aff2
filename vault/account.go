//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package vault

import (
	"bytes"
	"io"
	"time"

	"github.com/polyhasher/polyhasher/internal/log"
	"github.com/polyhasher/polyhasher/internal/shamir"
	"github.com/polyhasher/polyhasher/pkg/polyerr"
)

func xorBytes(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// CreateAccount adds a new account to the vault, consuming `shares`
// fresh Shamir shares (0 for a thresholdless account). It returns the
// created entries in increasing sharenumber order, letting a caller
// display the assigned share numbers without a second lookup.
func (v *Vault) CreateAccount(username, password []byte, shares uint16) ([]Entry, error) {
	start := time.Now()
	sessionID := newSessionID()

	entries, err := v.createAccount(username, password, shares)

	log.Audit(log.AuditEntry{
		Timestamp: start,
		UserId:    string(username),
		Action:    log.AuditCreate,
		SessionID: sessionID,
		State:     auditState(err),
		Err:       auditErr(err),
		Duration:  time.Since(start),
	})
	return entries, err
}

func (v *Vault) createAccount(username, password []byte, shares uint16) ([]Entry, error) {
	if !v.knownSecret {
		return nil, polyerr.ErrLocked.Clone()
	}

	key := string(username)
	if _, exists := v.accounts[key]; exists {
		return nil, polyerr.ErrDuplicate.Clone()
	}

	if shares > 255 {
		failErr := polyerr.ErrInvalidArgument.Clone()
		failErr.Msg = "shares must be in [0, 255]"
		return nil, failErr
	}

	if shares > 0 && uint32(shares)+uint32(v.nextAvailableShare) > 256 {
		return nil, polyerr.ErrShareSpaceExhausted.Clone()
	}

	var entries []Entry

	if shares == 0 {
		entry, err := v.thresholdlessEntry(password)
		if err != nil {
			return nil, err
		}
		entries = []Entry{entry}
	} else {
		entries = make([]Entry, 0, shares)
		for k := v.nextAvailableShare; k < v.nextAvailableShare+shares; k++ {
			entry, err := v.shareBackedEntry(password, byte(k))
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		}
		v.nextAvailableShare += shares
	}

	v.accounts[key] = entries
	return entries, nil
}

func (v *Vault) freshSalt() ([]byte, error) {
	salt := make([]byte, v.saltSize)
	if _, err := io.ReadFull(v.randReader, salt); err != nil {
		failErr := polyerr.ErrInvalidArgument.Clone()
		failErr.Msg = "failed to generate salt"
		return nil, failErr.Wrap(err)
	}
	return salt, nil
}

func (v *Vault) thresholdlessEntry(password []byte) (Entry, error) {
	salt, err := v.freshSalt()
	if err != nil {
		return Entry{}, err
	}

	h := saltedHash(v.hasher, salt, password)

	var key [digestSize]byte
	copy(key[:], v.thresholdlessKey)
	var block [ecbBlockSize]byte
	copy(block[:], h[:ecbBlockSize])
	ct := v.cipher.EncryptBlock(key, block)

	passhash := make([]byte, 0, ecbBlockSize+int(v.partialBytes))
	passhash = append(passhash, ct[:]...)
	passhash = append(passhash, h[digestSize-int(v.partialBytes):]...)

	return Entry{ShareNumber: 0, Salt: salt, PassHash: passhash}, nil
}

func (v *Vault) shareBackedEntry(password []byte, shareNumber byte) (Entry, error) {
	salt, err := v.freshSalt()
	if err != nil {
		return Entry{}, err
	}

	h := saltedHash(v.hasher, salt, password)

	share, err := v.engine.ComputeShare(shareNumber)
	if err != nil {
		return Entry{}, err
	}

	masked := xorBytes(h[:], share.Data)

	passhash := make([]byte, 0, digestSize+int(v.partialBytes))
	passhash = append(passhash, masked...)
	passhash = append(passhash, h[digestSize-int(v.partialBytes):]...)

	return Entry{ShareNumber: shareNumber, Salt: salt, PassHash: passhash}, nil
}

// IsValidLogin reports whether password is correct for username. It
// never returns false as a stand-in for "cannot tell": an unknown
// user or a locked vault with no partial verification configured
// surfaces as an error instead.
func (v *Vault) IsValidLogin(username, password []byte) (bool, error) {
	start := time.Now()
	sessionID := newSessionID()

	ok, err := v.isValidLogin(username, password)

	log.Audit(log.AuditEntry{
		Timestamp: start,
		UserId:    string(username),
		Action:    log.AuditLogin,
		SessionID: sessionID,
		State:     auditState(err),
		Err:       auditErr(err),
		Duration:  time.Since(start),
	})
	return ok, err
}

func (v *Vault) isValidLogin(username, password []byte) (bool, error) {
	entries, ok := v.accounts[string(username)]
	if !ok {
		return false, polyerr.ErrUnknownUser.Clone()
	}

	if !v.knownSecret && v.partialBytes == 0 {
		return false, polyerr.ErrLocked.Clone()
	}

	// Authoritative-first-entry semantics: only the first entry ever
	// decides the outcome. Trailing entries exist for share recovery,
	// not for login.
	entry := entries[0]
	h := saltedHash(v.hasher, entry.Salt, password)

	if !v.knownSecret {
		return bytes.Equal(h[digestSize-int(v.partialBytes):], entry.tail(v.partialBytes)), nil
	}

	body := entry.body(v.partialBytes)

	if entry.ShareNumber == 0 {
		var key [digestSize]byte
		copy(key[:], v.thresholdlessKey)
		var block [ecbBlockSize]byte
		copy(block[:], h[:ecbBlockSize])
		ct := v.cipher.EncryptBlock(key, block)
		return bytes.Equal(ct[:], body), nil
	}

	candidate := shamir.Share{X: entry.ShareNumber, Data: xorBytes(h[:], body)}
	return v.engine.IsValidShare(candidate)
}

// UnlockPasswordData attempts to recover the vault's master key from
// the positive shares implied by credentials. On success the vault
// moves from Loaded/Locked to Loaded/Unlocked.
func (v *Vault) UnlockPasswordData(credentials []Credential) error {
	start := time.Now()
	sessionID := newSessionID()

	err := v.unlockPasswordData(credentials)

	log.Audit(log.AuditEntry{
		Timestamp: start,
		Action:    log.AuditUnlock,
		SessionID: sessionID,
		State:     auditState(err),
		Err:       auditErr(err),
		Duration:  time.Since(start),
	})
	return err
}

func (v *Vault) unlockPasswordData(credentials []Credential) error {
	if v.knownSecret {
		return polyerr.ErrAlreadyUnlocked.Clone()
	}

	var shares []shamir.Share
	for _, cred := range credentials {
		entries, ok := v.accounts[string(cred.Username)]
		if !ok {
			return polyerr.ErrUnknownUser.Clone()
		}
		for _, entry := range entries {
			if entry.ShareNumber == 0 {
				continue
			}
			h := saltedHash(v.hasher, entry.Salt, cred.Password)
			body := entry.body(v.partialBytes)
			shares = append(shares, shamir.Share{X: entry.ShareNumber, Data: xorBytes(h[:], body)})
		}
	}

	secret, err := v.engine.RecoverSecretData(shares)
	if err != nil {
		return err
	}

	v.thresholdlessKey = secret
	v.knownSecret = true
	return nil
}

// WritePasswordData persists the account map to sink via the
// configured Serializer. It refuses to write a file that could never
// be unlocked again: if fewer than threshold positive shares have
// ever been issued, no credential set could recover the master key.
func (v *Vault) WritePasswordData(sink io.Writer) error {
	start := time.Now()
	sessionID := newSessionID()

	err := v.writePasswordData(sink)

	log.Audit(log.AuditEntry{
		Timestamp: start,
		Action:    log.AuditWrite,
		SessionID: sessionID,
		State:     auditState(err),
		Err:       auditErr(err),
		Duration:  time.Since(start),
	})
	return err
}

func (v *Vault) writePasswordData(sink io.Writer) error {
	if uint16(v.threshold) >= v.nextAvailableShare {
		return polyerr.ErrUndecodable.Clone()
	}
	if err := v.serializer.Encode(sink, v.accounts); err != nil {
		failErr := polyerr.ErrSerialization.Clone()
		return failErr.Wrap(err)
	}
	return nil
}
