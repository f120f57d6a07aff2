//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Check whether a username/password pair authenticates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			threshold, _ := cmd.Flags().GetUint8("threshold")
			partialBytes, _ := cmd.Flags().GetUint8("partial-bytes")

			v, err := openStore(threshold, partialBytes)
			if err != nil {
				return err
			}

			ok, err := v.IsValidLogin([]byte(args[0]), []byte(args[1]))
			if err != nil {
				return err
			}

			fmt.Println(ok)
			return nil
		},
	}
}
