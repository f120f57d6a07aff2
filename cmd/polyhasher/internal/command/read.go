//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "read",
		Short: "Load the persisted account map and summarize it",
		RunE: func(cmd *cobra.Command, args []string) error {
			threshold, _ := cmd.Flags().GetUint8("threshold")
			partialBytes, _ := cmd.Flags().GetUint8("partial-bytes")

			v, err := openStore(threshold, partialBytes)
			if err != nil {
				return err
			}

			fmt.Println("unlocked:", v.IsUnlocked())
			fmt.Println("threshold:", v.Threshold())
			fmt.Println("partial bytes:", v.PartialBytes())
			return nil
		},
	}
}
