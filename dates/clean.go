// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dates

import (
	"time"

	"github.com/selfiesticky/chartdate/calendar"
	"github.com/selfiesticky/chartdate/constants"
)

// Clean - coerce a stored attribute value to a canonical date string
//
// valid date strings pass through untouched; native times and numeric
// milliseconds are rendered through the local timezone; anything else
// falls back to defaultValue with a diagnostic on the dates log
// channel.  Never fails: invalid input is a data problem, not a
// program error.
func Clean(value interface{}, defaultValue string, calendarName string) string {
	switch v := value.(type) {

	case string:
		if IsValidDate(v, calendarName) {
			return v
		}
		diagnostic("unrecognized date: %q", v)
		return defaultValue

	case time.Time:
		return cleanMilliseconds(
			float64(v.Unix())*constants.MillisecondsPerSecond+float64(v.Nanosecond())/1e6,
			defaultValue, calendarName)

	case *time.Time:
		if nil == v {
			diagnostic("unrecognized date: %v", value)
			return defaultValue
		}
		return cleanMilliseconds(
			float64(v.Unix())*constants.MillisecondsPerSecond+float64(v.Nanosecond())/1e6,
			defaultValue, calendarName)

	case int:
		return cleanMilliseconds(float64(v), defaultValue, calendarName)
	case int32:
		return cleanMilliseconds(float64(v), defaultValue, calendarName)
	case int64:
		return cleanMilliseconds(float64(v), defaultValue, calendarName)
	case float32:
		return cleanMilliseconds(float64(v), defaultValue, calendarName)
	case float64:
		return cleanMilliseconds(v, defaultValue, calendarName)

	default:
		diagnostic("unrecognized date: %v", value)
		return defaultValue
	}
}

// millisecond readings have no year/month/day structure of their own,
// so they only make sense on the Gregorian timeline
func cleanMilliseconds(ms float64, defaultValue string, calendarName string) string {
	if !calendar.IsGregorian(calendarName) {
		diagnostic("time values and milliseconds are incompatible with world calendars: %v", ms)
		return defaultValue
	}
	s, err := ToDateTimeLocal(ms)
	if nil != err {
		diagnostic("milliseconds out of range: %v", ms)
		return defaultValue
	}
	return s
}
