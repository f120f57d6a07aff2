//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Command polyhasher is a thin demo driver over the vault package,
// exercising the library rather than embedding any vault logic of its
// own.
package main

import (
	"os"

	"github.com/polyhasher/polyhasher/cmd/polyhasher/internal/command"
	"github.com/polyhasher/polyhasher/internal/log"
)

func main() {
	if err := command.NewRootCommand().Execute(); err != nil {
		log.Log().Error("main", "msg", "command failed", "err", err.Error())
		os.Exit(1)
	}
}
