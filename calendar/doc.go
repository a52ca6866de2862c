// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package calendar - pluggable calendar systems
//
// A calendar system converts between its own year/month/day
// representation and Julian day numbers, the interchange format
// shared with the millisecond timeline.  Systems are obtained from a
// Registry which constructs each one on first use and caches it for
// the life of the process.
//
//  ***** Template Vocabulary *****
//
//  Format renders a date with these tokens, anything else is literal:
//
//  d  dd    day of month, plain / zero padded
//  o  oo    day of year, plain / zero padded
//  w  ww    week of year, plain / zero padded
//  m  mm    month number, plain / zero padded
//  D  DD    weekday name, abbreviated / full
//  M  MM    month name, abbreviated / full
//  yy yyyy  year, final two digits / all digits
//
// The built-in systems are: julian, persian, islamic, coptic,
// ethiopian, thai and taiwan.  The proleptic Gregorian calendar is
// not a system here: callers handle it natively and only delegate to
// this package for everything else.
package calendar
