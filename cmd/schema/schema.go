// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package schema provides the schema command for displaying scenario file help.
package schema

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
)

const (
	formatFlag = "format"
)

// SchemaCmd is the command that displays the scenario file format.
var SchemaCmd = &cli.Command{
	Name:        "schema",
	Description: "Display the scenario file format for the demo command",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        formatFlag,
			Aliases:     []string{"f"},
			Usage:       "Output format: yaml, hcl or markdown",
			DefaultText: "yaml",
			Value:       "yaml",
		},
	},
	Action: actionFunc,
}

func actionFunc(_ context.Context, cmd *cli.Command) error {
	switch strings.ToLower(cmd.String(formatFlag)) {
	case "yaml":
		writeYAMLExample(cmd)
	case "hcl":
		writeHCLExample(cmd)
	case "markdown", "md":
		writeMarkdown(cmd)
	default:
		return cli.Exit(fmt.Sprintf("Invalid format: %s. Valid formats: yaml, hcl, markdown", cmd.String(formatFlag)), 1)
	}

	return nil
}

func writeYAMLExample(cmd *cli.Command) {
	fmt.Fprintln(cmd.Writer, "# Scenario file structure, YAML form.")
	fmt.Fprintln(cmd.Writer, "# Groups run one after another, the steps inside a group run in parallel.")
	fmt.Fprintln(cmd.Writer)
	fmt.Fprintln(cmd.Writer, "name: \"build pipeline\"          # optional, printed before the run")
	fmt.Fprintln(cmd.Writer, "description: \"what this shows\"  # optional")
	fmt.Fprintln(cmd.Writer, "groups:")
	fmt.Fprintln(cmd.Writer, "  - name: prepare")
	fmt.Fprintln(cmd.Writer, "    steps:")
	fmt.Fprintln(cmd.Writer, "      - type: task            # a progress bar")
	fmt.Fprintln(cmd.Writer, "        label: fetch sources  # required for tasks")
	fmt.Fprintln(cmd.Writer, "        total: 4              # units of work, 0 or absent = indeterminate")
	fmt.Fprintln(cmd.Writer, "        duration: 400ms       # how long the task takes, required")
	fmt.Fprintln(cmd.Writer, "      - type: log             # one log line")
	fmt.Fprintln(cmd.Writer, "        severity: info        # trace, debug, info, warn or error")
	fmt.Fprintln(cmd.Writer, "        message: sources ready")
	fmt.Fprintln(cmd.Writer, "  - name: ship")
	fmt.Fprintln(cmd.Writer, "    steps:")
	fmt.Fprintln(cmd.Writer, "      - type: prompt          # a yes/no question")
	fmt.Fprintln(cmd.Writer, "        label: publish artifacts?")
	fmt.Fprintln(cmd.Writer, "        default: true         # answer used for empty or unavailable input")
}

func writeHCLExample(cmd *cli.Command) {
	fmt.Fprintln(cmd.Writer, "# Scenario file structure, HCL form. Same fields as the YAML form,")
	fmt.Fprintln(cmd.Writer, "# with the step type as the block label.")
	fmt.Fprintln(cmd.Writer)
	fmt.Fprintln(cmd.Writer, "name        = \"build pipeline\"")
	fmt.Fprintln(cmd.Writer, "description = \"what this shows\"")
	fmt.Fprintln(cmd.Writer)
	fmt.Fprintln(cmd.Writer, "group \"prepare\" {")
	fmt.Fprintln(cmd.Writer, "  step \"task\" {")
	fmt.Fprintln(cmd.Writer, "    label    = \"fetch sources\"")
	fmt.Fprintln(cmd.Writer, "    total    = 4")
	fmt.Fprintln(cmd.Writer, "    duration = \"400ms\"")
	fmt.Fprintln(cmd.Writer, "  }")
	fmt.Fprintln(cmd.Writer, "  step \"log\" {")
	fmt.Fprintln(cmd.Writer, "    severity = \"info\"")
	fmt.Fprintln(cmd.Writer, "    message  = \"sources ready\"")
	fmt.Fprintln(cmd.Writer, "  }")
	fmt.Fprintln(cmd.Writer, "}")
	fmt.Fprintln(cmd.Writer)
	fmt.Fprintln(cmd.Writer, "group \"ship\" {")
	fmt.Fprintln(cmd.Writer, "  step \"prompt\" {")
	fmt.Fprintln(cmd.Writer, "    label   = \"publish artifacts?\"")
	fmt.Fprintln(cmd.Writer, "    default = true")
	fmt.Fprintln(cmd.Writer, "  }")
	fmt.Fprintln(cmd.Writer, "}")
}

func writeMarkdown(cmd *cli.Command) {
	fmt.Fprintln(cmd.Writer, "# Scenario File Schema")
	fmt.Fprintln(cmd.Writer)
	fmt.Fprintln(cmd.Writer, "Scenario files drive the demo command. YAML and HCL are both accepted,")
	fmt.Fprintln(cmd.Writer, "selected by file extension.")
	fmt.Fprintln(cmd.Writer)
	fmt.Fprintln(cmd.Writer, "## Root")
	fmt.Fprintln(cmd.Writer)
	fmt.Fprintln(cmd.Writer, "| Field | Type | Required | Description |")
	fmt.Fprintln(cmd.Writer, "|-------|------|----------|-------------|")
	fmt.Fprintln(cmd.Writer, "| `name` | string | No | Printed before the run starts |")
	fmt.Fprintln(cmd.Writer, "| `description` | string | No | Free text, not printed |")
	fmt.Fprintln(cmd.Writer, "| `groups` | array | Yes | Run serially, in file order |")
	fmt.Fprintln(cmd.Writer)
	fmt.Fprintln(cmd.Writer, "## Steps")
	fmt.Fprintln(cmd.Writer)
	fmt.Fprintln(cmd.Writer, "Steps inside one group run in parallel. A step is one of:")
	fmt.Fprintln(cmd.Writer)
	fmt.Fprintln(cmd.Writer, "- **task**: a progress bar. Needs `label` and `duration`; `total` of zero")
	fmt.Fprintln(cmd.Writer, "  makes it an indeterminate counter.")
	fmt.Fprintln(cmd.Writer, "- **log**: a single line at `severity` with `message`.")
	fmt.Fprintln(cmd.Writer, "- **prompt**: a yes/no question with `label`; `default` answers it when")
	fmt.Fprintln(cmd.Writer, "  input is closed or prompting is disabled.")
	fmt.Fprintln(cmd.Writer)
	fmt.Fprintln(cmd.Writer, "Use 'mantel schema --format yaml' or 'mantel schema --format hcl' for a")
	fmt.Fprintln(cmd.Writer, "worked example.")
}
