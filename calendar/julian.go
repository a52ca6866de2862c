// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package calendar

import (
	"math"
)

// the Julian calendar: leap year every fourth year, no century rule
type julianSystem struct{}

func newJulian() System { return julianSystem{} }

func (julianSystem) Name() string { return "julian" }

func (julianSystem) leapYear(year int) bool {
	if year < 0 {
		year += 1 // no year zero
	}
	return 0 == floorMod(year, 4)
}

func (s julianSystem) daysInMonth(year int, month int) int {
	if 2 == month && s.leapYear(year) {
		return 29
	}
	return monthLengths[month-1]
}

func (s julianSystem) NewDate(year int, month int, day int) (Date, error) {
	return makeDate(year, month, day, 12, s.daysInMonth)
}

// Meeus, "Astronomical Algorithms", chapter 7
func (julianSystem) ToJD(date Date) float64 {
	y := date.Year
	if y < 0 {
		y += 1
	}
	m := date.Month
	if m <= 2 {
		y -= 1
		m += 12
	}
	return math.Floor(365.25*float64(y+4716)) + math.Floor(30.6001*float64(m+1)) + float64(date.Day) - 1524.5
}

func (julianSystem) FromJD(jd float64) Date {
	a := math.Floor(jd + 0.5)
	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)
	month := int(e) - 1
	if month > 12 {
		month -= 12
	}
	year := int(c) - 4715
	if month > 2 {
		year -= 1
	}
	day := int(b - d - math.Floor(30.6001*e))
	if year <= 0 {
		year -= 1 // no year zero
	}
	return Date{Year: year, Month: month, Day: day}
}

func (s julianSystem) Format(date Date, template string) string {
	return render(s, englishNames, date, template)
}
