// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package progress tracks long-running indicators and renders them as
// frames of terminal lines. The registry keeps indicators in creation
// order, clamps positions to their totals, and rate-limits rendering; it
// performs no locking or I/O of its own, leaving both to the output
// coordinator that owns it.
package progress
