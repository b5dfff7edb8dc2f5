// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package linewriter adapts byte-oriented writers to line-oriented sinks.
// It is the glue between foreign output streams, such as a slog handler's
// destination, and a sink that must receive whole lines.
package linewriter
