// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// display name tables for one system
//
// weekday tables start at Sunday; all built-in systems share the
// seven day week
type names struct {
	monthShort []string
	monthLong  []string
	dayShort   []string
	dayLong    []string
}

var englishNames = names{
	monthShort: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	monthLong: []string{"January", "February", "March", "April", "May",
		"June", "July", "August", "September", "October", "November",
		"December"},
	dayShort: []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	dayLong: []string{"Sunday", "Monday", "Tuesday", "Wednesday",
		"Thursday", "Friday", "Saturday"},
}

// weekday of a date: 0 = Sunday
func dayOfWeek(sys System, date Date) int {
	return floorMod(int(math.Floor(sys.ToJD(date)+1.5)), 7)
}

// one-based ordinal of the date within its year
func dayOfYear(sys System, date Date) int {
	return int(sys.ToJD(date)-sys.ToJD(Date{Year: date.Year, Month: 1, Day: 1})) + 1
}

// one-based week ordinal; weeks are counted in blocks of seven days
// from the start of the year
func weekOfYear(sys System, date Date) int {
	return (dayOfYear(sys, date)-1)/7 + 1
}

// template tokens in matching order: longer tokens first so that
// e.g. "dd" is never read as two "d"
var formatTokens = []string{
	"yyyy", "yy", "oo", "ww", "dd", "mm", "DD", "MM",
	"o", "w", "d", "m", "D", "M",
}

// render the template vocabulary described in the package
// documentation; characters outside the vocabulary pass through
// unchanged
func render(sys System, n names, date Date, template string) string {
	var b strings.Builder

scan:
	for i := 0; i < len(template); {
		for _, token := range formatTokens {
			if strings.HasPrefix(template[i:], token) {
				b.WriteString(expandToken(sys, n, date, token))
				i += len(token)
				continue scan
			}
		}
		b.WriteByte(template[i])
		i += 1
	}
	return b.String()
}

func expandToken(sys System, n names, date Date, token string) string {
	switch token {
	case "d":
		return strconv.Itoa(date.Day)
	case "dd":
		return fmt.Sprintf("%02d", date.Day)
	case "o":
		return strconv.Itoa(dayOfYear(sys, date))
	case "oo":
		return fmt.Sprintf("%03d", dayOfYear(sys, date))
	case "w":
		return strconv.Itoa(weekOfYear(sys, date))
	case "ww":
		return fmt.Sprintf("%02d", weekOfYear(sys, date))
	case "m":
		return strconv.Itoa(date.Month)
	case "mm":
		return fmt.Sprintf("%02d", date.Month)
	case "D":
		return n.dayShort[dayOfWeek(sys, date)]
	case "DD":
		return n.dayLong[dayOfWeek(sys, date)]
	case "M":
		return n.monthShort[date.Month-1]
	case "MM":
		return n.monthLong[date.Month-1]
	case "yy":
		return fmt.Sprintf("%02d", floorMod(date.Year, 100))
	case "yyyy":
		return strconv.Itoa(date.Year)
	}
	return token
}
