//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCreateAccountCommand() *cobra.Command {
	var shares uint16

	cmd := &cobra.Command{
		Use:   "create-account <username> <password>",
		Short: "Create an account, optionally consuming fresh Shamir shares",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			threshold, _ := cmd.Flags().GetUint8("threshold")
			partialBytes, _ := cmd.Flags().GetUint8("partial-bytes")

			v, err := openStore(threshold, partialBytes)
			if err != nil {
				return err
			}

			entries, err := v.CreateAccount([]byte(args[0]), []byte(args[1]), shares)
			if err != nil {
				return err
			}

			if err := saveStore(v); err != nil {
				return err
			}

			for _, e := range entries {
				fmt.Printf("created entry: sharenumber=%d\n", e.ShareNumber)
			}
			return nil
		},
	}

	cmd.Flags().Uint16Var(&shares, "shares", 0, "number of fresh Shamir shares to assign (0 for a thresholdless account)")
	return cmd
}
