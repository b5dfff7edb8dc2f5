// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package prompt

import (
	"testing"

	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParseYesNo(t *testing.T) {
	testCases := []struct {
		name   string
		answer string
		def    bool
		want   bool
		wantOK bool
	}{
		{
			name:   "empty takes default true",
			answer: "",
			def:    true,
			want:   true,
			wantOK: true,
		},
		{
			name:   "empty takes default false",
			answer: "",
			def:    false,
			want:   false,
			wantOK: true,
		},
		{
			name:   "y is yes",
			answer: "y",
			want:   true,
			wantOK: true,
		},
		{
			name:   "yes with noise",
			answer: "  YES ",
			want:   true,
			wantOK: true,
		},
		{
			name:   "n is no",
			answer: "n",
			def:    true,
			want:   false,
			wantOK: true,
		},
		{
			name:   "no mixed case",
			answer: "No",
			def:    true,
			want:   false,
			wantOK: true,
		},
		{
			name:   "unrecognized answer",
			answer: "maybe",
			def:    true,
			wantOK: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseYesNo(tc.answer, tc.def)

			assert.Equal(t, tc.wantOK, ok)

			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "interactive", ModeInteractive.String())
	assert.Equal(t, "assume-yes", ModeAssumeYes.String())
	assert.Equal(t, "refuse", ModeRefuse.String())
	assert.Equal(t, "unknown", Mode(99).String())
}

func TestDefaultMode(t *testing.T) {
	t.Run("plain environment is interactive", func(t *testing.T) {
		stub := gostub.Stub(&getenv, func(string) string {
			return ""
		})
		defer stub.Reset()

		assert.Equal(t, ModeInteractive, DefaultMode())
	})

	t.Run("ci refuses prompts", func(t *testing.T) {
		stub := gostub.Stub(&getenv, func(key string) string {
			if key == "CI" {
				return "true"
			}

			return ""
		})
		defer stub.Reset()

		assert.Equal(t, ModeRefuse, DefaultMode())
	})
}
