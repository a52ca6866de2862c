// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package calendar

import (
	"math"
)

// the tabular Islamic (civil) calendar: eleven leap years in each
// thirty year cycle
type islamicSystem struct{}

func newIslamic() System { return islamicSystem{} }

const islamicEpoch = 1948439.5

var islamicNames = names{
	monthShort: []string{"Muh", "Saf", "Rab1", "Rab2", "Jum1", "Jum2",
		"Raj", "Sha'", "Ram", "Shaw", "DhuQ", "DhuH"},
	monthLong: []string{"Muharram", "Safar", "Rabi' al-awwal",
		"Rabi' al-thani", "Jumada al-awwal", "Jumada al-thani",
		"Rajab", "Sha'aban", "Ramadan", "Shawwal", "Dhu al-Qi'dah",
		"Dhu al-Hijjah"},
	dayShort: []string{"Aha", "Ith", "Thu", "Arb", "Kha", "Jum", "Sab"},
	dayLong: []string{"Yawm al-ahad", "Yawm al-ithnayn",
		"Yawm ath-thulaathaa'", "Yawm al-arbi'aa'", "Yawm al-khamis",
		"Yawm al-jum'a", "Yawm as-sabt"},
}

func (islamicSystem) Name() string { return "islamic" }

func (islamicSystem) leapYear(year int) bool {
	if year <= 0 {
		year += 1 // no year zero
	}
	return floorMod(year*11+14, 30) < 11
}

func (s islamicSystem) daysInMonth(year int, month int) int {
	days := 29
	if 1 == month%2 {
		days = 30
	}
	if 12 == month && s.leapYear(year) {
		days = 30
	}
	return days
}

func (s islamicSystem) NewDate(year int, month int, day int) (Date, error) {
	return makeDate(year, month, day, 12, s.daysInMonth)
}

func (islamicSystem) ToJD(date Date) float64 {
	y := date.Year
	if y <= 0 {
		y += 1
	}
	return float64(date.Day) + math.Ceil(29.5*float64(date.Month-1)) +
		float64((y-1)*354+floorDiv(3+11*y, 30)) + islamicEpoch - 1
}

func (s islamicSystem) FromJD(jd float64) Date {
	jd = math.Floor(jd) + 0.5
	days := int(jd - islamicEpoch)
	year := floorDiv(30*days+10646, 10631)
	if year <= 0 {
		year -= 1 // no year zero
	}
	month := int(math.Ceil((jd-29-s.ToJD(Date{Year: year, Month: 1, Day: 1}))/29.5)) + 1
	if month > 12 {
		month = 12
	}
	day := int(jd - s.ToJD(Date{Year: year, Month: month, Day: 1}) + 1)
	return Date{Year: year, Month: month, Day: day}
}

func (s islamicSystem) Format(date Date, template string) string {
	return render(s, islamicNames, date, template)
}
