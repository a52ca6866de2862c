// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dates

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	timefmt "github.com/itchyny/timefmt-go"

	"github.com/selfiesticky/chartdate/calendar"
	"github.com/selfiesticky/chartdate/constants"
	"github.com/selfiesticky/chartdate/fault"
)

// Round - the tick rounding level for FormatTick
//
// zero and positive values round to seconds with that many fractional
// digits shown (at most 4); negative values select coarser units
type Round int

const (
	RoundSecond Round = 0
	RoundMinute Round = -1
	RoundDay    Round = -2
	RoundMonth  Round = -3
	RoundYear   Round = -4
)

// substituted for directives a world calendar cannot supply
const unsupportedDirective = "##"

// %f and %Nf: fractional seconds, not part of standard strftime
var fracDirective = regexp.MustCompile(`%(\d?)f`)

// one strftime directive and its world calendar template expansion
type worldDirective struct {
	padded   string
	unpadded string
}

// strftime directives that describe the date, not the time of day;
// these are expanded from the world calendar before the remaining
// time directives are handed to the strftime renderer
var worldDirectives = map[byte]worldDirective{
	'd': {padded: "dd", unpadded: "d"},
	'e': {padded: "d", unpadded: "d"},
	'a': {padded: "D", unpadded: "D"},
	'A': {padded: "DD", unpadded: "DD"},
	'j': {padded: "oo", unpadded: "o"},
	'W': {padded: "ww", unpadded: "w"},
	'm': {padded: "mm", unpadded: "m"},
	'b': {padded: "M", unpadded: "M"},
	'B': {padded: "MM", unpadded: "MM"},
	'y': {padded: "yy", unpadded: "yy"},
	'Y': {padded: "yyyy", unpadded: "yyyy"},
	'c': {padded: "D M d %X yyyy", unpadded: "D M d %X yyyy"},
	'x': {padded: "mm/dd/yyyy", unpadded: "mm/dd/yyyy"},
}

// week-of-Gregorian-year and weekday numbers have no meaning in other
// calendars
var worldUnsupported = map[byte]struct{}{
	'U': {},
	'w': {},
}

func init() {
	for c := range worldUnsupported {
		if _, ok := worldDirectives[c]; ok {
			fault.Panicf("strftime directive %%%c is both translated and unsupported", c)
		}
	}
}

// FormatTick - render a timeline position as an axis tick label
//
// an empty format selects a default layout from the rounding level: a
// bare year, month and year, a two line date, or a two line time over
// date.  Explicit formats pass through the strftime renderer, with
// date directives translated through the world calendar when one is
// named.
func FormatTick(ms float64, format string, round Round, calendarName string) (string, error) {
	if ms < MinMilliseconds || ms > MaxMilliseconds {
		return "", fault.ErrDateOutOfRange
	}
	if "" == format {
		switch {
		case round <= RoundYear:
			format = "%Y"
		case round <= RoundMonth:
			format = "%b %Y"
		case round <= RoundDay:
			if calendar.IsGregorian(calendarName) {
				format = "%b %-d\n%Y"
			} else {
				format = "%b %d\n%Y"
			}
		default:
			dateLine := "%b %d, %Y"
			if calendar.IsGregorian(calendarName) {
				dateLine = "%b %-d, %Y"
			}
			rendered, err := renderTemplate(ms, dateLine, calendarName)
			if nil != err {
				return "", err
			}
			return formatTime(ms, round) + "\n" + rendered, nil
		}
	}
	return renderTemplate(ms, format, calendarName)
}

// seconds never reach 60: the clamp keeps a rounded-up reading inside
// the displayed minute
var maxSeconds = [5]float64{59, 59.9, 59.99, 59.999, 59.9999}

// time of day as HH:MM with optional seconds, independent of calendar
func formatTime(ms float64, round Round) string {
	timePart := fmod(ms+0.05, constants.MillisecondsPerDay)
	hour := int(timePart / constants.MillisecondsPerHour)
	minute := int(fmod(timePart, constants.MillisecondsPerHour) / constants.MillisecondsPerMinute)
	label := twoDigits(hour) + ":" + twoDigits(minute)
	if round < RoundSecond {
		return label
	}

	digits := int(round)
	if digits > 4 {
		digits = 4
	}
	sec := fmod(ms, constants.MillisecondsPerMinute) / constants.MillisecondsPerSecond
	scale := math.Pow(10, float64(digits))
	sec = math.Floor(sec*scale+0.5) / scale
	if sec > maxSeconds[digits] {
		sec = maxSeconds[digits]
	}
	// 100+sec then drop the "1": a zero cost left pad to 2 digits
	return label + ":" + strconv.FormatFloat(100+sec, 'f', digits, 64)[1:]
}

func twoDigits(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// run a strftime template over a timeline position
func renderTemplate(ms float64, format string, calendarName string) (string, error) {
	if fracDirective.MatchString(format) {
		format = fracDirective.ReplaceAllStringFunc(format, func(m string) string {
			digits := 6
			if len(m) > 2 {
				digits, _ = strconv.Atoi(m[1:2])
			}
			return fracSeconds(ms, digits)
		})
	}
	if !calendar.IsGregorian(calendarName) {
		sys, err := registry().Get(calendarName)
		if nil != err {
			return "", err
		}
		format = translateWorld(ms, format, sys)
	}
	return timefmt.Format(msToTime(ms), format), nil
}

// fractional seconds for %f: trailing zeros dropped, never empty
func fracSeconds(ms float64, digits int) string {
	if digits < 1 || digits > 6 {
		digits = 6
	}
	frac := fmod(ms, constants.MillisecondsPerSecond) / constants.MillisecondsPerSecond
	s := strconv.FormatFloat(frac, 'f', digits, 64)[2:]
	s = strings.TrimRight(s, "0")
	if "" == s {
		s = "0"
	}
	return s
}

// expand the date directives from the world calendar, leaving the
// time of day directives for the strftime renderer
//
// replacement text is skipped over, not rescanned, so a %X produced
// by the 'c' expansion still reaches the renderer
func translateWorld(ms float64, format string, sys calendar.System) string {
	jd := math.Floor((ms+0.05)/constants.MillisecondsPerDay) + constants.EpochJulianDay
	date := sys.FromJD(jd)

	for i := 0; i+1 < len(format); {
		if '%' != format[i] {
			i += 1
			continue
		}
		c := format[i+1]
		length := 2
		pad := true
		if ('-' == c || '_' == c || '0' == c) && i+2 < len(format) {
			pad = '0' == c
			c = format[i+2]
			length = 3
		}
		if _, ok := worldUnsupported[c]; ok {
			format = format[:i] + unsupportedDirective + format[i+length:]
			i += len(unsupportedDirective)
			continue
		}
		directive, ok := worldDirectives[c]
		if !ok {
			i += length
			continue
		}
		template := directive.padded
		if !pad {
			template = directive.unpadded
		}
		expanded := sys.Format(date, template)
		format = format[:i] + expanded + format[i+length:]
		i += len(expanded)
	}
	return format
}

// timeline position as a UTC time for the strftime renderer; the
// +0.05 absorbs accumulated float error just below a boundary
func msToTime(ms float64) time.Time {
	return time.UnixMilli(int64(math.Floor(ms + 0.05))).UTC()
}

func fmod(a float64, b float64) float64 {
	m := math.Mod(a, b)
	if m < 0 {
		m += b
	}
	return m
}
