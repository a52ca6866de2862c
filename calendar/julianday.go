// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package calendar

import (
	"math"
)

// proleptic Gregorian conversions used by the year-offset systems and
// by callers that need to cross between the native timeline and
// Julian day numbers
//
// years are astronomical: zero exists and negative years are valid

// GregorianToJD - Julian day number of the start of a Gregorian day
func GregorianToJD(year int, month int, day int) float64 {
	a := floorDiv(14-month, 12)
	y := year + 4800 - a
	m := month + 12*a - 3
	jdn := day + floorDiv(153*m+2, 5) + 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045
	return float64(jdn) - 0.5
}

// JDToGregorian - the Gregorian date containing a Julian day number
func JDToGregorian(jd float64) (year int, month int, day int) {
	j := int(math.Floor(jd + 0.5))
	a := j + 32044
	b := floorDiv(4*a+3, 146097)
	c := a - floorDiv(146097*b, 4)
	d := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d, 4)
	m := floorDiv(5*e+2, 153)
	day = e - floorDiv(153*m+2, 5) + 1
	month = m + 3 - 12*floorDiv(m, 10)
	year = 100*b + d - 4800 + floorDiv(m, 10)
	return year, month, day
}

// GregorianLeapYear - leap year in the proleptic Gregorian calendar
func GregorianLeapYear(year int) bool {
	return 0 == floorMod(year, 4) && (0 != floorMod(year, 100) || 0 == floorMod(year, 400))
}

// days in each Gregorian/Julian month, before leap adjustment
var monthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
