// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package validate

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/mantel/internal/scenario"
	"github.com/urfave/cli/v3"
)

const (
	fileArg = "file"
)

// ValidateCmd is the command that checks a scenario file without running it.
var ValidateCmd = &cli.Command{
	Name:        "validate",
	Description: "Load a scenario file and report every problem found.",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      fileArg,
			UsageText: "FILE",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	fileName := cmd.StringArg(fileArg)
	if fileName == "" {
		return cli.Exit("Please provide a scenario file to validate", 1)
	}

	s, err := scenario.Load(ctx, fileName)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to load scenario %s: %s", fileName, err.Error()), 1)
	}

	if err := s.Validate(); err != nil {
		return cli.Exit(fmt.Sprintf("invalid scenario %s: %s", fileName, err.Error()), 1)
	}

	fmt.Fprintf(cmd.Writer, "%s: %d groups, %d steps, ok\n", fileName, len(s.Groups), countSteps(s))

	return nil
}

func countSteps(s *scenario.Scenario) int {
	n := 0
	for _, g := range s.Groups {
		n += len(g.Steps)
	}

	return n
}
