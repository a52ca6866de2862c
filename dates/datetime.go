// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dates

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/selfiesticky/chartdate/calendar"
	"github.com/selfiesticky/chartdate/constants"
	"github.com/selfiesticky/chartdate/fault"
)

// ToDateTime - render a timeline position in canonical form
//
// yyyy-mm-dd, extended with hh:mm, :ss, and a fraction of up to 4
// digits only when the value has those components; r is the data
// resolution in milliseconds and suppresses components finer than the
// spacing of the surrounding points (zero keeps everything).
func ToDateTime(ms float64, r float64, calendarName string) (string, error) {
	if ms < MinMilliseconds || ms > MaxMilliseconds {
		return "", fault.ErrDateOutOfRange
	}

	// split off the tenth of millisecond digit before rounding so a
	// reading like x.9999 does not bump the displayed millisecond
	msecTenths := int(math.Floor(fmod(ms+0.05, 1) * 10))
	msRounded := int64(math.Round(ms - float64(msecTenths)/10))

	if !calendar.IsGregorian(calendarName) {
		sys, err := registry().Get(calendarName)
		if nil != err {
			return "", err
		}
		jd := math.Floor(float64(msRounded)/constants.MillisecondsPerDay) + constants.EpochJulianDay
		dateStr := padWorldDate(sys.Format(sys.FromJD(jd), "yyyy-mm-dd"))

		timeMs := fmod(float64(msRounded), constants.MillisecondsPerDay)
		hour := 0
		minute := 0
		second := 0
		msec10 := 0
		if r < constants.NinetyDays {
			hour = int(timeMs / constants.MillisecondsPerHour)
			minute = int(fmod(timeMs, constants.MillisecondsPerHour) / constants.MillisecondsPerMinute)
		}
		if r < constants.ThreeHours {
			second = int(fmod(timeMs, constants.MillisecondsPerMinute) / constants.MillisecondsPerSecond)
		}
		if r < constants.FiveMinutes {
			msec10 = int(fmod(timeMs, constants.MillisecondsPerSecond))*10 + msecTenths
		}
		return dateStr + includeTime(hour, minute, second, msec10), nil
	}

	d := time.UnixMilli(msRounded).UTC()
	hour := 0
	minute := 0
	second := 0
	msec10 := 0
	if r < constants.NinetyDays {
		hour = d.Hour()
		minute = d.Minute()
	}
	if r < constants.ThreeHours {
		second = d.Second()
	}
	if r < constants.FiveMinutes {
		msec10 = d.Nanosecond()/1e6*10 + msecTenths
	}
	return formatGregorianDate(d) + includeTime(hour, minute, second, msec10), nil
}

// ToDateTimeLocal - canonical form of a timeline position read back
// through the local timezone, used when echoing stored values
//
// a day is shaved off each end of the range so the zone shift cannot
// push the reading outside the representable years
func ToDateTimeLocal(ms float64) (string, error) {
	if ms < MinMilliseconds+constants.MillisecondsPerDay ||
		ms > MaxMilliseconds-constants.MillisecondsPerDay {
		return "", fault.ErrDateOutOfRange
	}

	msecTenths := int(math.Floor(fmod(ms+0.05, 1) * 10))
	msRounded := int64(math.Round(ms - float64(msecTenths)/10))

	d := time.UnixMilli(msRounded)
	msec10 := d.Nanosecond()/1e6*10 + msecTenths
	return formatGregorianDate(d) + includeTime(d.Hour(), d.Minute(), d.Second(), msec10), nil
}

// yyyy-mm-dd with a sign and unclamped digits for far years; the time
// package formats year 50 as "0050" already but not year -50
func formatGregorianDate(d time.Time) string {
	year, month, day := d.Date()
	sign := ""
	if year < 0 {
		sign = "-"
		year = -year
	}
	y := strconv.Itoa(year)
	if len(y) < 4 {
		y = strings.Repeat("0", 4-len(y)) + y
	}
	return sign + y + "-" + twoDigits(int(month)) + "-" + twoDigits(day)
}

// world calendar year digits come out unpadded beyond the template
// width, so normalise back to the 4 digit canonical form
func padWorldDate(s string) string {
	if strings.HasPrefix(s, "-") {
		for len(s) < 11 {
			s = "-0" + s[1:]
		}
		return s
	}
	for len(s) < 10 {
		s = "0" + s
	}
	return s
}

// assemble the optional time suffix, omitting all trailing zero
// components; msec10 counts tenths of milliseconds
func includeTime(hour int, minute int, second int, msec10 int) string {
	if 0 == hour && 0 == minute && 0 == second && 0 == msec10 {
		return ""
	}
	out := " " + twoDigits(hour) + ":" + twoDigits(minute)
	if 0 == second && 0 == msec10 {
		return out
	}
	out += ":" + twoDigits(second)
	if 0 == msec10 {
		return out
	}
	digits := 4
	for 0 == msec10%10 {
		msec10 /= 10
		digits -= 1
	}
	frac := strconv.Itoa(msec10)
	if len(frac) < digits {
		frac = strings.Repeat("0", digits-len(frac)) + frac
	}
	return out + "." + frac
}
