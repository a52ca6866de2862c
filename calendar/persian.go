// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package calendar

import (
	"math"
)

// the Persian (Jalali) calendar using the arithmetic 2820 year cycle
type persianSystem struct{}

func newPersian() System { return persianSystem{} }

const persianEpoch = 1948320.5

var persianNames = names{
	monthShort: []string{"Far", "Ord", "Kho", "Tir", "Mor", "Sha",
		"Meh", "Aba", "Aza", "Day", "Bah", "Esf"},
	monthLong: []string{"Farvardin", "Ordibehesht", "Khordad", "Tir",
		"Mordad", "Shahrivar", "Mehr", "Aban", "Azar", "Day",
		"Bahman", "Esfand"},
	dayShort: []string{"Yek", "Do", "Se", "Cha", "Panj", "Jom", "Sha"},
	dayLong: []string{"Yekshambe", "Doshambe", "Seshambe",
		"Chaharshambe", "Panjshambe", "Jomeh", "Shambe"},
}

func (persianSystem) Name() string { return "persian" }

// years relative to the start of the current 2820 year cycle
func persianEpochBase(year int) int {
	if year >= 0 {
		return year - 474
	}
	return year - 473
}

func (persianSystem) leapYear(year int) bool {
	return floorMod((floorMod(persianEpochBase(year), 2820)+474+38)*682, 2816) < 682
}

func (s persianSystem) daysInMonth(year int, month int) int {
	switch {
	case month <= 6:
		return 31
	case month <= 11:
		return 30
	case s.leapYear(year):
		return 30
	default:
		return 29
	}
}

func (s persianSystem) NewDate(year int, month int, day int) (Date, error) {
	return makeDate(year, month, day, 12, s.daysInMonth)
}

func (persianSystem) ToJD(date Date) float64 {
	epbase := persianEpochBase(date.Year)
	epyear := 474 + floorMod(epbase, 2820)
	monthDays := (date.Month - 1) * 31
	if date.Month > 7 {
		monthDays = (date.Month-1)*30 + 6
	}
	return float64(date.Day+monthDays+
		floorDiv(epyear*682-110, 2816)+
		(epyear-1)*365+
		floorDiv(epbase, 2820)*1029983) + persianEpoch - 1
}

func (s persianSystem) FromJD(jd float64) Date {
	jd = math.Floor(jd) + 0.5
	depoch := jd - s.ToJD(Date{Year: 475, Month: 1, Day: 1})
	cycle := math.Floor(depoch / 1029983)
	cyear := fmod(depoch, 1029983)
	ycycle := 2820.0
	if 1029982 != cyear {
		aux1 := math.Floor(cyear / 366)
		aux2 := math.Mod(cyear, 366)
		ycycle = math.Floor((2134*aux1+2816*aux2+2815)/1028522) + aux1 + 1
	}
	year := int(ycycle) + 2820*int(cycle) + 474
	if year <= 0 {
		year -= 1 // no year zero
	}
	yday := jd - s.ToJD(Date{Year: year, Month: 1, Day: 1}) + 1
	month := int(math.Ceil(yday / 31))
	if yday > 186 {
		month = int(math.Ceil((yday - 6) / 30))
	}
	day := int(jd - s.ToJD(Date{Year: year, Month: month, Day: 1}) + 1)
	return Date{Year: year, Month: month, Day: day}
}

func (s persianSystem) Format(date Date, template string) string {
	return render(s, persianNames, date, template)
}
