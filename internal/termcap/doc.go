// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package termcap answers, once per process, the question of what the
// output stream can do: whether it is an interactive terminal, whether it
// honors ANSI escape sequences, and how big it is. The answer selects one
// of a small closed set of render strategies so the hot render path never
// re-queries the terminal.
package termcap
