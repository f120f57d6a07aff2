//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package polyerr

// General.
var ErrGeneralFailure = register("gen_general_failure", "general failure")

// Vault lifecycle.
var ErrLocked = register("vault_locked", "password file is locked")
var ErrAlreadyUnlocked = register("vault_already_unlocked", "password file is already unlocked")
var ErrDuplicate = register("vault_duplicate_account", "username already exists")
var ErrUnknownUser = register("vault_unknown_user", "unknown user")
var ErrShareSpaceExhausted = register("vault_share_space_exhausted", "would exceed the maximum number of shares")
var ErrUndecodable = register("vault_undecodable", "would persist an undecodable password file")

// Shamir engine.
var ErrInvalidArgument = register("shamir_invalid_argument", "invalid argument")
var ErrNotReady = register("shamir_not_ready", "engine holds no secret")
var ErrAlreadyInitialized = register("shamir_already_initialized", "engine already holds a secret")
var ErrInsufficientShares = register("shamir_insufficient_shares", "not enough shares to recover the secret")
var ErrMalformedShare = register("shamir_malformed_share", "malformed share")
var ErrInvalidShare = register("shamir_invalid_share", "share does not match the reconstructed secret")

// Persistence.
var ErrSerialization = register("vault_serialization_failure", "failed to serialize or deserialize account data")
