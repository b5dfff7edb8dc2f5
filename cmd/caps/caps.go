// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package caps implements the command that reports detected terminal capabilities.
package caps

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/mantel/internal/color"
	"github.com/matt-FFFFFF/mantel/internal/termcap"
	"github.com/urfave/cli/v3"
)

// CapsCmd is the command that reports the capabilities detected for the standard streams.
var CapsCmd = &cli.Command{
	Name:        "caps",
	Description: "Report the terminal capabilities detected for stdout and stderr.",
	Action: func(_ context.Context, cmd *cli.Command) error {
		writeCaps(cmd, "stdout", termcap.Detect(os.Stdout))
		writeCaps(cmd, "stderr", termcap.Detect(os.Stderr))
		fmt.Fprintf(cmd.Writer, "color: enabled=%t\n", color.Enabled())

		return nil
	},
}

func writeCaps(cmd *cli.Command, name string, c termcap.Capabilities) {
	fmt.Fprintf(
		cmd.Writer,
		"%s: interactive=%t ansi=%t width=%d height=%d strategy=%s\n",
		name, c.Interactive, c.ANSI, c.Width, c.Height, c.Strategy(),
	)
}
