// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package calendar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/selfiesticky/chartdate/calendar"
)

func TestFormatTemplates(t *testing.T) {
	items := []struct {
		calendar string
		year     int
		month    int
		day      int
		template string
		expected string
	}{
		// 2021-03-21 was a Sunday
		{"persian", 1400, 1, 1, "yyyy-mm-dd", "1400-01-01"},
		{"persian", 1400, 1, 1, "d M yyyy", "1 Far 1400"},
		{"persian", 1400, 1, 1, "DD, d MM yyyy", "Yekshambe, 1 Farvardin 1400"},
		{"persian", 1400, 1, 1, "D", "Yek"},
		{"persian", 1400, 2, 3, "m/d/yy", "2/3/00"},
		{"persian", 1400, 2, 3, "o oo", "34 034"},
		{"persian", 1400, 2, 3, "w ww", "5 05"},
		// 2023-07-19 was a Wednesday
		{"islamic", 1445, 1, 1, "d MM yyyy", "1 Muharram 1445"},
		{"islamic", 1445, 1, 1, "DD", "Yawm al-arbi'aa'"},
		{"coptic", 1741, 1, 1, "d MM yyyy", "1 Thout 1741"},
		{"ethiopian", 2017, 1, 1, "MM", "Meskerem"},
		{"thai", 2513, 1, 1, "dd MM yyyy", "01 January 2513"},
		{"taiwan", 59, 1, 1, "M d, yyyy", "Jan 1, 59"},
		// unmatched characters pass through
		{"julian", 2000, 1, 1, "year yyyy!", "year 2000!"},
	}
	registry := calendar.NewRegistry()
	for i, item := range items {
		sys, err := registry.Get(item.calendar)
		assert.Nil(t, err, "%d: Get(%q)", i, item.calendar)
		date, err := sys.NewDate(item.year, item.month, item.day)
		assert.Nil(t, err, "%d: NewDate", i)
		assert.Equal(t, item.expected, sys.Format(date, item.template),
			"%d: %s Format(%q)", i, item.calendar, item.template)
	}
}

func TestIsGregorian(t *testing.T) {
	assert.True(t, calendar.IsGregorian(""))
	assert.True(t, calendar.IsGregorian("gregorian"))
	assert.False(t, calendar.IsGregorian("persian"))
	assert.False(t, calendar.IsGregorian("Gregorian"))
}
