// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package scenario

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		src      string
		wantErr  error
		wantName string
	}{
		{
			name:    "empty src returns error",
			src:     "",
			wantErr: ErrFetchScenario,
		},
		{
			name:    "missing local file",
			src:     "./testdata/absent.yaml",
			wantErr: ErrFetchScenario,
		},
		{
			name:     "local file succeeds",
			src:      "./testdata/demo.yaml",
			wantErr:  nil,
			wantName: "demo.yaml",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()

			data, fileName, err := Fetch(ctx, tc.src)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, data)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantName, fileName)

			s, err := Decode(fileName, data)
			require.NoError(t, err)
			assert.Equal(t, "demo", s.Name)
		})
	}
}

func TestSplitFileNameFromGetterURL(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		url          string
		wantURL      string
		wantFileName string
	}{
		{
			name:         "url with file",
			url:          "git::https://example.com/repo//dir/demo.yaml",
			wantURL:      "git::https://example.com/repo//dir",
			wantFileName: "demo.yaml",
		},
		{
			name:         "url with file at subpath root",
			url:          "git::https://example.com/repo//demo.yaml",
			wantURL:      "git::https://example.com/repo",
			wantFileName: "demo.yaml",
		},
		{
			name:         "url with ref query",
			url:          "git::https://example.com/repo//dir/demo.yaml?ref=v1.0.0",
			wantURL:      "git::https://example.com/repo//dir?ref=v1.0.0",
			wantFileName: "demo.yaml",
		},
		{
			name:         "too few parts",
			url:          "https://example.com/demo.yaml",
			wantURL:      "",
			wantFileName: "",
		},
		{
			name:         "no file component",
			url:          "git::https://example.com/repo//.",
			wantURL:      "",
			wantFileName: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gotURL, gotFileName := splitFileNameFromGetterURL(tc.url)
			assert.Equal(t, tc.wantURL, gotURL)
			assert.Equal(t, tc.wantFileName, gotFileName)
		})
	}
}
