// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package calendar

import (
	"math"
)

// the Coptic and Ethiopian calendars share one structure: twelve
// thirty day months followed by a short epagomenal month of five
// days, six in the year before a leap year boundary
type epagomenalSystem struct {
	name  string
	epoch float64
	n     names
}

func newCoptic() System {
	return epagomenalSystem{
		name:  "coptic",
		epoch: 1825029.5,
		n: names{
			monthShort: []string{"Tho", "Pao", "Hath", "Koi", "Tob",
				"Mesh", "Pat", "Pad", "Pash", "Pao", "Epi", "Meso",
				"PiK"},
			monthLong: []string{"Thout", "Paopi", "Hathor", "Koiak",
				"Tobi", "Meshir", "Paremhat", "Paremoude", "Pashons",
				"Paoni", "Epip", "Mesori", "Pi Kogi Enavot"},
			dayShort: []string{"Tky", "Pes", "Psh", "Pef", "Pti",
				"Pso", "Psa"},
			dayLong: []string{"Tkyriaka", "Pesnau", "Pshoment",
				"Peftoou", "Ptiou", "Psoou", "Psabbaton"},
		},
	}
}

func newEthiopian() System {
	return epagomenalSystem{
		name:  "ethiopian",
		epoch: 1724220.5,
		n: names{
			monthShort: []string{"Mes", "Tik", "Hid", "Tah", "Tir",
				"Yek", "Meg", "Mia", "Gen", "Sen", "Ham", "Neh",
				"Pag"},
			monthLong: []string{"Meskerem", "Tikemet", "Hidar",
				"Tahesas", "Tir", "Yekatit", "Megabit", "Miazia",
				"Genbot", "Sene", "Hamle", "Nehase", "Pagume"},
			dayShort: []string{"Ehu", "Seg", "Mak", "Iro", "Ham",
				"Arb", "Kid"},
			dayLong: []string{"Ehud", "Segno", "Maksegno", "Irob",
				"Hamus", "Arb", "Kidame"},
		},
	}
}

func (s epagomenalSystem) Name() string { return s.name }

func (epagomenalSystem) leapYear(year int) bool {
	if year < 0 {
		year += 1 // no year zero
	}
	return 3 == floorMod(year, 4)
}

func (s epagomenalSystem) daysInMonth(year int, month int) int {
	if month < 13 {
		return 30
	}
	if s.leapYear(year) {
		return 6
	}
	return 5
}

func (s epagomenalSystem) NewDate(year int, month int, day int) (Date, error) {
	return makeDate(year, month, day, 13, s.daysInMonth)
}

func (s epagomenalSystem) ToJD(date Date) float64 {
	y := date.Year
	if y < 0 {
		y += 1
	}
	return float64(date.Day+(date.Month-1)*30+(y-1)*365+floorDiv(y, 4)) + s.epoch - 1
}

func (s epagomenalSystem) FromJD(jd float64) Date {
	c := math.Floor(jd) + 0.5 - s.epoch
	year := int(math.Floor((c-math.Floor((c+366)/1461))/365)) + 1
	if year <= 0 {
		year -= 1 // no year zero
	}
	c = math.Floor(jd) + 0.5 - s.ToJD(Date{Year: year, Month: 1, Day: 1})
	month := int(c)/30 + 1
	day := int(c) - (month-1)*30 + 1
	return Date{Year: year, Month: month, Day: day}
}

func (s epagomenalSystem) Format(date Date, template string) string {
	return render(s, s.n, date, template)
}
