// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dates - the shared date/time axis
//
// All date values in the chart pipeline live on one numeric timeline:
// signed milliseconds relative to 1970-01-01T00:00:00 UTC, spanning
// the years -9999 to 9999.  This package converts between that
// timeline and the textual forms users supply and read:
//
//	Parse            text / number / time.Time -> milliseconds
//	FormatTick       milliseconds -> axis tick or hover label
//	ToDateTime       milliseconds -> canonical yyyy-mm-dd hh:mm:ss.ffff
//	Clean            permissive input -> canonical string for storage
//
// Dates in world calendars (persian, islamic, ...) share the same
// timeline: their year/month/day forms are translated through Julian
// day numbers by the calendar package.  Time of day is always a plain
// wall clock reading; timezone suffixes are accepted by the grammar
// and discarded.
//
// Initialise is optional: it injects the calendar registry and the
// two digit year anchor (for deterministic tests) and opens the log
// channel used for Clean diagnostics.  Without it the package falls
// back to a default registry and a wall clock anchor.
package dates
