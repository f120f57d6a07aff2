//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package command wires cobra subcommands over the vault package for
// the polyhasher demo binary.
package command

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/polyhasher/polyhasher/internal/env"
	pvault "github.com/polyhasher/polyhasher/vault"
)

// NewRootCommand assembles the polyhasher CLI.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "polyhasher",
		Short: "Demo driver for the PolyPasswordHasher vault",
		Long: `polyhasher exercises the vault package's account creation, login,
and unlock operations against a file at POLYHASHER_STORE_PATH.`,
	}

	root.PersistentFlags().Uint8("threshold", env.DefaultThreshold(), "Shamir recovery threshold for a freshly created store")
	root.PersistentFlags().Uint8("partial-bytes", env.DefaultPartialBytes(), "partial-verification tail length for a freshly created store")

	root.AddCommand(newCreateAccountCommand())
	root.AddCommand(newLoginCommand())
	root.AddCommand(newUnlockCommand())
	root.AddCommand(newWriteCommand())
	root.AddCommand(newReadCommand())

	return root
}

// openStore loads the vault from env.StorePath() if the file exists,
// or constructs a fresh one otherwise. threshold and partialBytes are
// only consulted for the fresh-store case: the persisted format never
// stores the threshold, so the operator must supply a consistent one
// on every invocation against an existing store.
func openStore(threshold, partialBytes uint8) (*pvault.Vault, error) {
	path := env.StorePath()

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return pvault.New(pvault.Config{Threshold: threshold, PartialBytes: partialBytes}, pvault.Fresh())
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return pvault.New(pvault.Config{Threshold: threshold, PartialBytes: partialBytes}, pvault.Loaded(f))
}

// saveStore persists v to env.StorePath(), truncating any prior
// contents.
func saveStore(v *pvault.Vault) error {
	f, err := os.Create(env.StorePath())
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return v.WritePasswordData(f)
}
