// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package severity defines the ordered severity scale used by the output
// coordinator and the rule that decides whether a record is emitted at a
// given verbosity. It also provides the mapping to and from slog levels so
// structured logging and coordinator output share one scale.
package severity
