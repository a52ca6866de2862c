// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/selfiesticky/chartdate/dates"
	"github.com/selfiesticky/chartdate/fault"
)

func TestParseStrings(t *testing.T) {
	items := []struct {
		date     string
		expected float64
	}{
		{"1970-01-01", 0},
		{"1970", 0},
		{"1970-1", 0},
		{"1970-1-1", 0},
		{"  1970-01-01  ", 0},
		{"2000-01-01", 946684800000},
		{"1999", 915148800000},
		{"1970-01-02 03:04:05", 97445000},
		{"1970-01-02T03:04:05", 97445000},
		{"1970-01-02t03:04:05", 97445000},
		{"1970-01-02 03:04:05.678", 97445678},
		{"1970-01-01 00:00:00.1234", 123.4},
		{"1970-01-01 00:00:00.12345678", 123.4}, // fraction truncated
		{"2000-01-01 12:30:45Z", 946729845000},  // zone checked, dropped
		{"2000-01-01 12:30:45+08:00", 946729845000},
		{"2000-01-01 12:30:45-0500", 946729845000},
		{"2000-01-01 12:30:45+08", 946729845000},
		{"-0100-02-03", -65320041600000},
		{"-9999", dates.MinMilliseconds},
	}
	for i, item := range items {
		ms, err := dates.Parse(item.date, "")
		assert.Nil(t, err, "%d: Parse(%q)", i, item.date)
		assert.InDelta(t, item.expected, ms, 1e-6, "%d: Parse(%q)", i, item.date)
	}
}

func TestParseRangeEnds(t *testing.T) {
	ms, err := dates.Parse("9999-12-31 23:59:59.9999", "")
	assert.Nil(t, err)
	assert.InDelta(t, dates.MaxMilliseconds, ms, 0.1)

	ms, err = dates.Parse("-9999", "")
	assert.Nil(t, err)
	assert.Equal(t, dates.MinMilliseconds, ms)
}

func TestParseTwoDigitYears(t *testing.T) {
	// anchored at testYearWindowStart so [1950, 2049]
	items := []struct {
		date     string
		expanded string
	}{
		{"00", "2000"},
		{"49", "2049"},
		{"50", "1950"},
		{"99", "1999"},
		{"70-06-15", "1970-06-15"},
	}
	for i, item := range items {
		short, err := dates.Parse(item.date, "")
		assert.Nil(t, err, "%d: Parse(%q)", i, item.date)
		long, err := dates.Parse(item.expanded, "")
		assert.Nil(t, err, "%d: Parse(%q)", i, item.expanded)
		assert.Equal(t, long, short, "%d: %q vs %q", i, item.date, item.expanded)
	}
}

func TestParseRejects(t *testing.T) {
	items := []struct {
		date     string
		expected error
	}{
		{"", fault.ErrDateGrammar},
		{"hello", fault.ErrDateGrammar},
		{"0", fault.ErrDateGrammar},
		{"123", fault.ErrDateGrammar},
		{"2000-01-01x", fault.ErrDateGrammar},
		{"2000-01-01 24:00", fault.ErrDateGrammar},
		{"2000-01-01 12:60", fault.ErrDateGrammar},
		{"2000-01-01 12:30:60", fault.ErrDateGrammar},
		{"2000-01-01 12:30:45+8", fault.ErrDateGrammar},
		{"2000/01/01", fault.ErrDateGrammar},
		{"2001-02-29", fault.ErrCalendarRejectedDate},
		{"2000-13-01", fault.ErrCalendarRejectedDate},
		{"2000-00-01", fault.ErrCalendarRejectedDate},
		{"2000-01-00", fault.ErrCalendarRejectedDate},
		{"2000-04-31", fault.ErrCalendarRejectedDate},
	}
	for i, item := range items {
		_, err := dates.Parse(item.date, "")
		assert.Equal(t, item.expected, err, "%d: Parse(%q)", i, item.date)
	}
}

func TestParseNumbers(t *testing.T) {
	ms, err := dates.Parse(2000, "")
	assert.Nil(t, err)
	assert.Equal(t, 946684800000.0, ms)

	ms, err = dates.Parse(int64(1999), "")
	assert.Nil(t, err)
	assert.Equal(t, 915148800000.0, ms)

	ms, err = dates.Parse(2000.0, "")
	assert.Nil(t, err)
	assert.Equal(t, 946684800000.0, ms)

	_, err = dates.Parse(123, "")
	assert.Equal(t, fault.ErrDateGrammar, err)
}

func TestParseNativeTime(t *testing.T) {
	// the wall clock reading carries over, the zone is dropped
	utc := time.Date(2000, 1, 1, 12, 30, 45, 0, time.UTC)
	east := time.Date(2000, 1, 1, 12, 30, 45, 0, time.FixedZone("east", 8*3600))

	msUTC, err := dates.Parse(utc, "")
	assert.Nil(t, err)
	assert.Equal(t, 946729845000.0, msUTC)

	msEast, err := dates.Parse(east, "")
	assert.Nil(t, err)
	assert.Equal(t, msUTC, msEast)

	msPtr, err := dates.Parse(&east, "")
	assert.Nil(t, err)
	assert.Equal(t, msUTC, msPtr)

	// native times carry no calendar information
	_, err = dates.Parse(utc, "persian")
	assert.Equal(t, fault.ErrWorldCalendarWithNativeDate, err)
}

func TestParseWorldCalendars(t *testing.T) {
	items := []struct {
		date     string
		calendar string
		expected float64
	}{
		{"1400-01-01", "persian", 1616284800000}, // 2021-03-21
		{"1445-01-01", "islamic", 1689724800000}, // 2023-07-19
		{"1741-01-01", "coptic", 1726012800000},  // 2024-09-11
		{"2017-01-01", "ethiopian", 1726012800000},
		{"2513-01-01", "thai", 0}, // 1970-01-01
		{"0059-01-01", "taiwan", 0},
		{"1400-01-01 12:30:45.5", "persian", 1616329845500},
	}
	for i, item := range items {
		ms, err := dates.Parse(item.date, item.calendar)
		assert.Nil(t, err, "%d: Parse(%q, %q)", i, item.date, item.calendar)
		assert.InDelta(t, item.expected, ms, 1e-6,
			"%d: Parse(%q, %q)", i, item.date, item.calendar)
	}
}

func TestParseWorldRejects(t *testing.T) {
	_, err := dates.Parse("99", "persian")
	assert.Equal(t, fault.ErrWorldCalendarTwoDigitYear, err)

	_, err = dates.Parse("1400-13-01", "persian")
	assert.Equal(t, fault.ErrCalendarRejectedDate, err)

	_, err = dates.Parse("1400-12-30", "persian")
	assert.Equal(t, fault.ErrCalendarRejectedDate, err)

	_, err = dates.Parse("2000-01-01", "lunar")
	assert.Equal(t, fault.ErrUnknownCalendar, err)
}

func TestParseBadTypes(t *testing.T) {
	_, err := dates.Parse(nil, "")
	assert.Equal(t, fault.ErrDateType, err)

	_, err = dates.Parse(struct{}{}, "")
	assert.Equal(t, fault.ErrDateType, err)

	_, err = dates.Parse([]string{"2000"}, "")
	assert.Equal(t, fault.ErrDateType, err)
}

func TestIsTimeValue(t *testing.T) {
	now := time.Now()
	assert.True(t, dates.IsTimeValue(now))
	assert.True(t, dates.IsTimeValue(&now))
	assert.False(t, dates.IsTimeValue("2000-01-01"))
	assert.False(t, dates.IsTimeValue(946684800000.0))
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, dates.IsValidDate("2000-01-01", ""))
	assert.True(t, dates.IsValidDate("1400-01-01", "persian"))
	assert.False(t, dates.IsValidDate("2001-02-29", ""))
	assert.False(t, dates.IsValidDate("bogus", ""))
}
