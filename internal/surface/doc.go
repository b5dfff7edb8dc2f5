// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package surface provides the primitive terminal operations the output
// coordinator serializes: append a line, erase the last n lines, flush.
// A surface is single-owner state; concurrency control lives one layer up.
package surface
