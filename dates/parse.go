// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dates

import (
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/selfiesticky/chartdate/calendar"
	"github.com/selfiesticky/chartdate/constants"
	"github.com/selfiesticky/chartdate/fault"
)

// bounds of the representable timeline; equal to
// Parse("-9999") and Parse("9999-12-31 23:59:59.9999")
const (
	MinMilliseconds = -377705116800000.0
	MaxMilliseconds = 253402300799999.9
)

// internal sentinel returned alongside every error; it never escapes
// as a legitimate timestamp because NaN compares unequal to any range
var notADate = math.NaN()

// the date grammar
//
// year:   4 digits with optional sign, or exactly 2 digits
// month:  1-2 digits,  day: 1-2 digits
// hour:   0-23,  minute/second: 2 digits, any fraction length
// the timezone suffix is checked and then ignored
var dateGrammar = regexp.MustCompile(
	`^\s*(-?\d\d\d\d|\d\d)` +
		`(-(\d?\d)` +
		`(-(\d?\d)` +
		`([ Tt]([01]?\d|2[0-3])` +
		`(:([0-5]\d)` +
		`(:([0-5]\d(\.\d+)?))?` +
		`(Z|z|[+\-]\d\d(:?\d\d)?)?)?)?)?)?\s*$`)

// IsTimeValue - true when the value is a native time
func IsTimeValue(value interface{}) bool {
	switch value.(type) {
	case time.Time, *time.Time:
		return true
	}
	return false
}

// Parse - convert a date value to its timeline position
//
// accepts a date string, a numeric year (any numeric type), or a
// native time.Time whose wall clock reading is reinterpreted as UTC.
// Native times are inherently Gregorian and are rejected when a world
// calendar is named.  Every failure is one of the fault date errors,
// never a panic.
func Parse(value interface{}, calendarName string) (float64, error) {
	switch v := value.(type) {
	case time.Time:
		if !calendar.IsGregorian(calendarName) {
			return notADate, fault.ErrWorldCalendarWithNativeDate
		}
		return parseNative(v)
	case *time.Time:
		if nil == v {
			return notADate, fault.ErrDateType
		}
		if !calendar.IsGregorian(calendarName) {
			return notADate, fault.ErrWorldCalendarWithNativeDate
		}
		return parseNative(*v)
	case string:
		return parseString(v, calendarName)
	case int:
		return parseString(strconv.Itoa(v), calendarName)
	case int32:
		return parseString(strconv.FormatInt(int64(v), 10), calendarName)
	case int64:
		return parseString(strconv.FormatInt(v, 10), calendarName)
	case float32:
		return parseString(strconv.FormatFloat(float64(v), 'f', -1, 32), calendarName)
	case float64:
		return parseString(strconv.FormatFloat(v, 'f', -1, 64), calendarName)
	default:
		return notADate, fault.ErrDateType
	}
}

// IsValidDate - true when a date string parses in the calendar
func IsValidDate(value string, calendarName string) bool {
	_, err := Parse(value, calendarName)
	return nil == err
}

// keep the wall clock digits, drop the zone: a reading of 09:30 in
// any zone lands at 09:30 UTC on the timeline
func parseNative(t time.Time) (float64, error) {
	_, offset := t.Zone()
	ms := float64(t.Unix()+int64(offset))*constants.MillisecondsPerSecond +
		float64(t.Nanosecond())/1e6
	if ms < MinMilliseconds || ms > MaxMilliseconds {
		return notADate, fault.ErrDateOutOfRange
	}
	return ms, nil
}

func parseString(value string, calendarName string) (float64, error) {
	m := dateGrammar.FindStringSubmatch(value)
	if nil == m {
		return notADate, fault.ErrDateGrammar
	}

	year, _ := strconv.Atoi(m[1])
	twoDigitYear := 2 == len(m[1])

	month := 1
	day := 1
	hour := 0
	minute := 0
	if "" != m[3] {
		month, _ = strconv.Atoi(m[3])
	}
	if "" != m[5] {
		day, _ = strconv.Atoi(m[5])
	}
	if "" != m[7] {
		hour, _ = strconv.Atoi(m[7])
	}
	if "" != m[9] {
		minute, _ = strconv.Atoi(m[9])
	}

	seconds := 0.0
	if "" != m[11] {
		sec := m[11]
		if frac := m[12]; len(frac) > 5 {
			// keep "." plus at most 4 fractional digits
			sec = sec[:len(sec)-len(frac)] + frac[:5]
		}
		seconds, _ = strconv.ParseFloat(sec, 64)
	}

	if !calendar.IsGregorian(calendarName) {
		if twoDigitYear {
			return notADate, fault.ErrWorldCalendarTwoDigitYear
		}
		sys, err := registry().Get(calendarName)
		if nil != err {
			return notADate, err
		}
		date, err := sys.NewDate(year, month, day)
		if nil != err {
			return notADate, err
		}
		ms := (sys.ToJD(date)-constants.EpochJulianDay)*constants.MillisecondsPerDay +
			float64(hour)*constants.MillisecondsPerHour +
			float64(minute)*constants.MillisecondsPerMinute +
			seconds*constants.MillisecondsPerSecond
		if ms < MinMilliseconds || ms > MaxMilliseconds {
			return notADate, fault.ErrDateOutOfRange
		}
		return ms, nil
	}

	if twoDigitYear {
		first := yearWindowStart()
		year = (year+2000-first)%100 + first
	}

	// the time package normalises an overflowing day or month, so a
	// changed field readback exposes e.g. February 30
	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	if int(t.Month()) != month || t.Day() != day {
		return notADate, fault.ErrCalendarRejectedDate
	}

	ms := float64(t.Unix())*constants.MillisecondsPerSecond +
		seconds*constants.MillisecondsPerSecond
	if ms < MinMilliseconds || ms > MaxMilliseconds {
		return notADate, fault.ErrDateOutOfRange
	}
	return ms, nil
}
