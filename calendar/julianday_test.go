// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package calendar_test

import (
	"testing"

	"github.com/selfiesticky/chartdate/calendar"
)

// well known anchor days
var julianDayItems = []struct {
	year  int
	month int
	day   int
	jd    float64
}{
	{1970, 1, 1, 2440587.5},
	{2000, 1, 1, 2451544.5},
	{1582, 10, 15, 2299160.5},
	{2024, 9, 11, 2460564.5},
	{1, 1, 1, 1721425.5},
	{0, 1, 1, 1721059.5},
	{-4713, 11, 24, -0.5},
}

func TestGregorianToJD(t *testing.T) {
	for i, item := range julianDayItems {
		jd := calendar.GregorianToJD(item.year, item.month, item.day)
		if jd != item.jd {
			t.Errorf("%d: GregorianToJD(%d,%d,%d) = %f  expected: %f",
				i, item.year, item.month, item.day, jd, item.jd)
		}
	}
}

func TestJDToGregorian(t *testing.T) {
	for i, item := range julianDayItems {
		year, month, day := calendar.JDToGregorian(item.jd)
		if year != item.year || month != item.month || day != item.day {
			t.Errorf("%d: JDToGregorian(%f) = %d-%d-%d  expected: %d-%d-%d",
				i, item.jd, year, month, day, item.year, item.month, item.day)
		}
	}
}

func TestJDRoundTrip(t *testing.T) {
	// every day over several leap cycles, crossing the century rule
	for jd := 2378496.5; jd < 2488069.5; jd += 1 { // 1800 to 2100
		year, month, day := calendar.JDToGregorian(jd)
		back := calendar.GregorianToJD(year, month, day)
		if back != jd {
			t.Fatalf("round trip %f -> %d-%d-%d -> %f", jd, year, month, day, back)
		}
	}
}

func TestGregorianLeapYear(t *testing.T) {
	items := []struct {
		year int
		leap bool
	}{
		{2000, true},
		{1900, false},
		{2024, true},
		{2023, false},
		{1600, true},
		{0, true},
		{-1, false},
		{-4, true},
	}
	for i, item := range items {
		if calendar.GregorianLeapYear(item.year) != item.leap {
			t.Errorf("%d: GregorianLeapYear(%d) != %v", i, item.year, item.leap)
		}
	}
}
