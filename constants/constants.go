// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package constants

// milliseconds per unit of time on the shared timeline
const (
	MillisecondsPerSecond = 1000.0
	MillisecondsPerMinute = 60 * MillisecondsPerSecond
	MillisecondsPerHour   = 60 * MillisecondsPerMinute
	MillisecondsPerDay    = 24 * MillisecondsPerHour
)

// display range thresholds for suppressing time-of-day detail
const (
	NinetyDays  = 90 * MillisecondsPerDay
	ThreeHours  = 3 * MillisecondsPerHour
	FiveMinutes = 5 * MillisecondsPerMinute
)

// the Julian day number of the Unix epoch: 1970-01-01T00:00:00Z
const (
	EpochJulianDay = 2440587.5
)
