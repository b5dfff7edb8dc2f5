// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package scenario

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"
)

// ErrInvalidScenario is returned when a scenario document cannot be decoded.
var ErrInvalidScenario = errors.New("invalid scenario")

// Load reads a scenario from a local path or a go-getter URL and decodes it
// by file extension. Local paths are read through FsFactory; anything else is
// fetched with go-getter.
func Load(ctx context.Context, src string) (*Scenario, error) {
	fs := FsFactory()

	if ok, _ := afero.Exists(fs, src); ok {
		data, err := afero.ReadFile(fs, src)
		if err != nil {
			return nil, errors.Join(ErrFetchScenario, err)
		}

		return Decode(filepath.Base(src), data)
	}

	data, fileName, err := Fetch(ctx, src)
	if err != nil {
		return nil, err
	}

	return Decode(fileName, data)
}

// Decode selects a decoder from the file extension: .yaml/.yml or .hcl.
func Decode(fileName string, data []byte) (*Scenario, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	case ".hcl":
		return DecodeHCL(fileName, data)
	default:
		return nil, fmt.Errorf("%w: unsupported file extension %q", ErrInvalidScenario, filepath.Ext(fileName))
	}
}

// DecodeYAML parses a YAML scenario document.
func DecodeYAML(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	return &s, nil
}

// DecodeHCL parses an HCL scenario document. The file name appears in
// diagnostics and must carry the .hcl extension.
func DecodeHCL(fileName string, data []byte) (*Scenario, error) {
	var s Scenario
	if err := hclsimple.Decode(fileName, data, nil, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	return &s, nil
}
