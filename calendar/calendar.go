// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package calendar

import (
	"math"

	"github.com/selfiesticky/chartdate/fault"
)

// Date - a calendar date; month and day are 1 based
//
// the year is signed and has no zero for any of the built-in world
// systems: 1 is preceded by -1
type Date struct {
	Year  int
	Month int
	Day   int
}

// System - a calendar system plug-in
type System interface {

	// canonical lower case name
	Name() string

	// construct a date, rejecting any year/month/day combination
	// that does not exist in this calendar
	NewDate(year int, month int, day int) (Date, error)

	// Julian day number of the start of the day, always ending in .5
	ToJD(date Date) float64

	// the date containing a Julian day number
	FromJD(jd float64) Date

	// render a date using the template vocabulary from the package
	// documentation
	Format(date Date, template string) string
}

// IsGregorian - true for the built-in calendar, which is not handled
// by this package
func IsGregorian(name string) bool {
	return "" == name || "gregorian" == name
}

// integer division rounded towards negative infinity
func floorDiv(a int, b int) int {
	q := a / b
	if 0 != a%b && (a < 0) != (b < 0) {
		q -= 1
	}
	return q
}

// remainder of floorDiv, always in [0, b)
func floorMod(a int, b int) int {
	return a - floorDiv(a, b)*b
}

// floating point remainder, always in [0, m)
func fmod(v float64, m float64) float64 {
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	return r
}

// shared validation for NewDate implementations
//
// the month range must be proven before daysInMonth is consulted
func makeDate(year int, month int, day int, monthsInYear int, daysInMonth func(int, int) int) (Date, error) {
	if 0 == year || month < 1 || month > monthsInYear {
		return Date{}, fault.ErrCalendarRejectedDate
	}
	if day < 1 || day > daysInMonth(year, month) {
		return Date{}, fault.ErrCalendarRejectedDate
	}
	return Date{Year: year, Month: month, Day: day}, nil
}
