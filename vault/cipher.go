//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package vault

import "crypto/aes"

// Cipher encrypts a single 16-byte block under a 32-byte key. It
// exists only to back the thresholdless verifier format: the design
// calls for ECB semantics applied to exactly one block, never a
// streaming mode, so the interface is deliberately narrower than
// cipher.Block.
type Cipher interface {
	EncryptBlock(key [digestSize]byte, block [ecbBlockSize]byte) [ecbBlockSize]byte
}

// aesECBCipher is the default Cipher: AES-256 keyed by the full
// 32-byte thresholdless key, applied to a single block. This
// reproduces the documented wart where only the first 16 bytes of a
// 32-byte digest are ever encrypted; the remaining 16 digest bytes
// are never fed to the cipher at all (see the tail/partial-bytes
// handling in account.go).
type aesECBCipher struct{}

func (aesECBCipher) EncryptBlock(key [digestSize]byte, block [ecbBlockSize]byte) [ecbBlockSize]byte {
	c, err := aes.NewCipher(key[:])
	if err != nil {
		// key is always exactly 32 bytes, a valid AES-256 key size;
		// aes.NewCipher only fails on bad key length.
		panic(err)
	}
	var out [ecbBlockSize]byte
	c.Encrypt(out[:], block[:])
	return out
}
