// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package prompt reads single-line answers from the user. It provides a
// line-editing reader for interactive terminals, a plain reader for piped
// input, and the sentinel errors that distinguish a closed input stream
// from an explicit abort. Serialization against other terminal output is
// the coordinator's job, not this package's.
package prompt
