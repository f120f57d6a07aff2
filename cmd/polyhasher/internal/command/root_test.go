//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRootCommand_RegistersAllSubcommands(t *testing.T) {
	root := NewRootCommand()

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"create-account", "login", "unlock", "write", "read"} {
		assert.True(t, names[want], "expected subcommand %q", want)
	}
}

func TestNewRootCommand_ThresholdFlagDefaultsFromEnv(t *testing.T) {
	root := NewRootCommand()
	flag := root.PersistentFlags().Lookup("threshold")
	assert.NotNil(t, flag)
	assert.Equal(t, "2", flag.DefValue)
}
