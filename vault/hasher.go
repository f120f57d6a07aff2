//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package vault

import "crypto/sha256"

// Hasher digests salt-concatenated password material into the
// digestSize-byte buffer every entry's verifier is built from. The
// default is SHA-256; a caller-supplied Hasher must still return
// exactly digestSize bytes or account creation and login will panic
// on a slice-length mismatch rather than silently truncate.
type Hasher func(data []byte) [digestSize]byte

// defaultHasher is SHA-256 over the supplied bytes.
func defaultHasher(data []byte) [digestSize]byte {
	return sha256.Sum256(data)
}

// saltedHash concatenates salt and password and runs them through h.
func saltedHash(h Hasher, salt, password []byte) [digestSize]byte {
	buf := make([]byte, 0, len(salt)+len(password))
	buf = append(buf, salt...)
	buf = append(buf, password...)
	return h(buf)
}
