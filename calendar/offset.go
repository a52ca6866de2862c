// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package calendar

// calendars that relabel Gregorian years: the Thai solar calendar
// (Buddhist era, 543 ahead) and the Taiwanese calendar (Minguo era,
// 1911 behind); months and days follow the Gregorian structure
type offsetSystem struct {
	name string
	// gregorian year = local year + offset, before the zero skip
	offset int
}

func newThai() System   { return offsetSystem{name: "thai", offset: -543} }
func newTaiwan() System { return offsetSystem{name: "taiwan", offset: 1911} }

func (s offsetSystem) Name() string { return s.name }

// local years have no zero, astronomical Gregorian years do, so one
// year is skipped when the count crosses the local epoch
func (s offsetSystem) toGregorianYear(year int) int {
	g := year + s.offset
	if s.offset > 0 {
		if year >= -s.offset && year <= -1 {
			g += 1
		}
	} else {
		if year >= 1 && year <= -s.offset {
			g -= 1
		}
	}
	return g
}

func (s offsetSystem) fromGregorianYear(year int) int {
	l := year - s.offset
	if s.offset > 0 {
		if year >= 1 && year <= s.offset {
			l -= 1
		}
	} else {
		if year >= s.offset && year <= -1 {
			l += 1
		}
	}
	return l
}

func (s offsetSystem) daysInMonth(year int, month int) int {
	if 2 == month && GregorianLeapYear(s.toGregorianYear(year)) {
		return 29
	}
	return monthLengths[month-1]
}

func (s offsetSystem) NewDate(year int, month int, day int) (Date, error) {
	return makeDate(year, month, day, 12, s.daysInMonth)
}

func (s offsetSystem) ToJD(date Date) float64 {
	return GregorianToJD(s.toGregorianYear(date.Year), date.Month, date.Day)
}

func (s offsetSystem) FromJD(jd float64) Date {
	year, month, day := JDToGregorian(jd)
	return Date{Year: s.fromGregorianYear(year), Month: month, Day: day}
}

func (s offsetSystem) Format(date Date, template string) string {
	return render(s, englishNames, date, template)
}
