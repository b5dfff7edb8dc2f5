// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package demo implements the command that plays a scenario file through the
// output coordinator.
package demo

import (
	"context"
	"errors"
	"fmt"

	"github.com/matt-FFFFFF/mantel/internal/color"
	"github.com/matt-FFFFFF/mantel/internal/ctxlog"
	"github.com/matt-FFFFFF/mantel/internal/output"
	"github.com/matt-FFFFFF/mantel/internal/prompt"
	"github.com/matt-FFFFFF/mantel/internal/scenario"
	"github.com/matt-FFFFFF/mantel/internal/severity"
	"github.com/urfave/cli/v3"
)

const (
	fileFlag     = "file"
	verboseFlag  = "verbose"
	quietFlag    = "quiet"
	colorFlag    = "color"
	yesFlag      = "yes"
	noInputFlag  = "no-input"
	intervalFlag = "interval"
)

// DemoCmd is the command that loads a scenario file and plays it through the
// coordinator, exercising progress, logging and prompting on the real terminal.
var DemoCmd = &cli.Command{
	Name:        "demo",
	Description: "Play a scenario file through the output coordinator.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:      fileFlag,
			Aliases:   []string{"f"},
			Usage:     "Scenario file to play, a local path or a go-getter URL",
			TakesFile: true,
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
		&cli.BoolFlag{
			Name:    verboseFlag,
			Aliases: []string{"v"},
			Usage:   "Increase verbosity, repeat for trace output",
		},
		&cli.BoolFlag{
			Name:    quietFlag,
			Aliases: []string{"q"},
			Usage:   "Decrease verbosity, repeat for errors only",
		},
		&cli.StringFlag{
			Name:        colorFlag,
			Usage:       "Color output: auto, always or never",
			Value:       "auto",
			DefaultText: "auto",
		},
		&cli.BoolFlag{
			Name:    yesFlag,
			Aliases: []string{"y"},
			Usage:   "Answer yes to every prompt without asking",
		},
		&cli.BoolFlag{
			Name:  noInputFlag,
			Usage: "Refuse every prompt instead of asking",
		},
		&cli.DurationFlag{
			Name:        intervalFlag,
			Usage:       "Minimum delay between live progress renders",
			Value:       output.DefaultMinInterval,
			DefaultText: output.DefaultMinInterval.String(),
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	fileName := cmd.String(fileFlag)
	if fileName == "" {
		return cli.Exit("Please provide a scenario file to play", 1)
	}

	mode, err := color.ParseMode(cmd.String(colorFlag))
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to parse color mode %q: %s", cmd.String(colorFlag), err.Error()), 1)
	}

	color.Apply(mode)

	s, err := scenario.Load(ctx, fileName)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to load scenario %s: %s", fileName, err.Error()), 1)
	}

	if err := s.Validate(); err != nil {
		return cli.Exit(fmt.Sprintf("invalid scenario %s: %s", fileName, err.Error()), 1)
	}

	verb := verbosity(cmd.Count(verboseFlag), cmd.Count(quietFlag))

	co := output.New(
		output.WithVerbosity(verb),
		output.WithMinInterval(cmd.Duration(intervalFlag)),
		output.WithAnimation(cmd.Duration(intervalFlag)),
		output.WithPromptMode(promptMode(cmd)),
	)

	// Structured records route through the coordinator so they never tear the
	// live region. The slog level does the filtering, so the coordinator side
	// always passes.
	ctxlog.LevelVar.Set(verb.ToSlogLevel())
	ctx = ctxlog.New(ctx, ctxlog.NewLogger(co.Writer(severity.Error)))

	runErr := scenario.NewRunner(co).Run(ctx, s)
	if err := errors.Join(runErr, co.Close()); err != nil {
		return cli.Exit("scenario failed: "+err.Error(), 1)
	}

	return nil
}

// verbosity maps counted verbose and quiet flags onto a severity floor.
// Quiet wins over verbose when both are given.
func verbosity(v, q int) severity.Severity {
	switch {
	case q >= 2:
		return severity.Error
	case q == 1:
		return severity.Warn
	case v >= 2:
		return severity.Trace
	case v == 1:
		return severity.Debug
	default:
		return severity.Default
	}
}

func promptMode(cmd *cli.Command) prompt.Mode {
	switch {
	case cmd.Bool(yesFlag):
		return prompt.ModeAssumeYes
	case cmd.Bool(noInputFlag):
		return prompt.ModeRefuse
	default:
		return prompt.DefaultMode()
	}
}
