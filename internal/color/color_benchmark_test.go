// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"math/rand"
	"testing"
)

func BenchmarkColorize(b *testing.B) {
	s := randStringRunes(10)

	b.ResetTimer()

	for b.Loop() {
		Colorize(s, FgRed)
	}
}

func BenchmarkStrip(b *testing.B) {
	s := "\033[33m" + randStringRunes(24) + "\033[0m"

	b.ResetTimer()

	for b.Loop() {
		Strip(s)
	}
}

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

func randStringRunes(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rand.Intn(len(letterRunes))]
	}

	return string(b)
}
