//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/polyhasher/polyhasher/vault"
)

func newUnlockCommand() *cobra.Command {
	var credentialPairs []string

	cmd := &cobra.Command{
		Use:   "unlock",
		Short: "Recover the vault's master key from a set of username=password pairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			threshold, _ := cmd.Flags().GetUint8("threshold")
			partialBytes, _ := cmd.Flags().GetUint8("partial-bytes")

			v, err := openStore(threshold, partialBytes)
			if err != nil {
				return err
			}

			credentials := make([]vault.Credential, 0, len(credentialPairs))
			for _, pair := range credentialPairs {
				user, pass, ok := strings.Cut(pair, "=")
				if !ok {
					return fmt.Errorf("malformed credential %q, expected username=password", pair)
				}
				credentials = append(credentials, vault.Credential{Username: []byte(user), Password: []byte(pass)})
			}

			if err := v.UnlockPasswordData(credentials); err != nil {
				return err
			}

			if err := saveStore(v); err != nil {
				return err
			}

			fmt.Println("unlocked")
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&credentialPairs, "credential", nil, "username=password pair; repeatable")
	return cmd
}
