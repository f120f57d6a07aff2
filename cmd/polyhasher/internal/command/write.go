//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polyhasher/polyhasher/internal/env"
)

func newWriteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "write",
		Short: "Force-persist the current account map to disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			threshold, _ := cmd.Flags().GetUint8("threshold")
			partialBytes, _ := cmd.Flags().GetUint8("partial-bytes")

			v, err := openStore(threshold, partialBytes)
			if err != nil {
				return err
			}
			if err := saveStore(v); err != nil {
				return err
			}

			fmt.Println("wrote", env.StorePath())
			return nil
		},
	}
}
