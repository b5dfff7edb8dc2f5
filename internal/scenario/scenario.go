// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package scenario

import (
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/mantel/internal/severity"
)

// Step types.
const (
	StepTask   = "task"
	StepLog    = "log"
	StepPrompt = "prompt"
)

var (
	// ErrNoGroups is returned when a scenario declares no groups.
	ErrNoGroups = errors.New("scenario has no groups")
	// ErrUnnamedGroup is returned when a group has no name.
	ErrUnnamedGroup = errors.New("group has no name")
	// ErrNoSteps is returned when a group declares no steps.
	ErrNoSteps = errors.New("group has no steps")
	// ErrMissingLabel is returned when a task or prompt step has no label.
	ErrMissingLabel = errors.New("step requires a label")
	// ErrMissingMessage is returned when a log step has no message.
	ErrMissingMessage = errors.New("log step requires a message")
	// ErrBadDuration is returned when a step duration cannot be parsed.
	ErrBadDuration = errors.New("invalid duration")
	// ErrUnknownStepType is returned for a step type other than task, log, or prompt.
	ErrUnknownStepType = errors.New("unknown step type")
)

// Scenario is the root of a demo workload definition.
type Scenario struct {
	Name        string  `yaml:"name"        hcl:"name,optional"`
	Description string  `yaml:"description" hcl:"description,optional"`
	Groups      []Group `yaml:"groups"      hcl:"group,block"`
}

// Group is a named set of steps. Groups run in declaration order; the steps
// within a group run concurrently.
type Group struct {
	Name  string `yaml:"name"  hcl:"name,label"`
	Steps []Step `yaml:"steps" hcl:"step,block"`
}

// Step is one unit of scenario work. Type selects which fields apply:
// task uses Label, Total, and Duration; log uses Severity and Message;
// prompt uses Label and Default.
type Step struct {
	Type     string `yaml:"type"               hcl:"type,label"`
	Label    string `yaml:"label,omitempty"    hcl:"label,optional"`
	Total    uint64 `yaml:"total,omitempty"    hcl:"total,optional"`
	Duration string `yaml:"duration,omitempty" hcl:"duration,optional"`
	Severity string `yaml:"severity,omitempty" hcl:"severity,optional"`
	Message  string `yaml:"message,omitempty"  hcl:"message,optional"`
	Default  bool   `yaml:"default,omitempty"  hcl:"default,optional"`
}

// Validate checks the scenario structure and reports every problem found,
// aggregated into a single error.
func (s *Scenario) Validate() error {
	var merr *multierror.Error

	if len(s.Groups) == 0 {
		merr = multierror.Append(merr, ErrNoGroups)
	}

	for i, g := range s.Groups {
		if g.Name == "" {
			merr = multierror.Append(merr, fmt.Errorf("group %d: %w", i, ErrUnnamedGroup))
		}

		if len(g.Steps) == 0 {
			merr = multierror.Append(merr, fmt.Errorf("group %q: %w", g.Name, ErrNoSteps))
		}

		for j, st := range g.Steps {
			if err := st.validate(); err != nil {
				merr = multierror.Append(merr, fmt.Errorf("group %q step %d: %w", g.Name, j, err))
			}
		}
	}

	return merr.ErrorOrNil()
}

func (st Step) validate() error {
	switch st.Type {
	case StepTask:
		if st.Label == "" {
			return ErrMissingLabel
		}

		if st.Duration != "" {
			if _, err := time.ParseDuration(st.Duration); err != nil {
				return fmt.Errorf("%w: %v", ErrBadDuration, err)
			}
		}
	case StepLog:
		if st.Message == "" {
			return ErrMissingMessage
		}

		if st.Severity != "" {
			if _, err := severity.Parse(st.Severity); err != nil {
				return err
			}
		}
	case StepPrompt:
		if st.Label == "" {
			return ErrMissingLabel
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStepType, st.Type)
	}

	return nil
}

// ParsedDuration returns the step duration, zero when unset. Validate reports
// malformed durations; this returns zero for them.
func (st Step) ParsedDuration() time.Duration {
	if st.Duration == "" {
		return 0
	}

	d, err := time.ParseDuration(st.Duration)
	if err != nil {
		return 0
	}

	return d
}

// ParsedSeverity returns the severity of a log step, Info when unset.
func (st Step) ParsedSeverity() severity.Severity {
	sev, _ := severity.Parse(st.Severity)

	return sev
}
