// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/matt-FFFFFF/mantel/cmd/caps"
	"github.com/matt-FFFFFF/mantel/cmd/demo"
	"github.com/matt-FFFFFF/mantel/cmd/schema"
	"github.com/matt-FFFFFF/mantel/cmd/validate"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		demo.DemoCmd,
		caps.CapsCmd,
		validate.ValidateCmd,
		schema.SchemaCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "mantel",
	Description: `Mantel is a terminal output coordinator for command-line tools.
It arbitrates between live progress indicators, severity-filtered log lines and
interactive prompts on a single terminal, degrading cleanly from animated ANSI
output to plain line-oriented output when the terminal cannot support it.`,
	Usage:     "mantel demo -f scenario.yaml",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}
