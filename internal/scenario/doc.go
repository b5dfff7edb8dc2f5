// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package scenario defines demo workloads for the output coordinator: a
// declarative description of task groups, log events, and prompts that the
// runner executes concurrently to drive a live terminal display.
//
// Scenario files are written in YAML or HCL, selected by file extension, and
// may be fetched from any source supported by Hashicorp's go-getter.
package scenario
