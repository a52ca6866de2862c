// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised          = ProcessError("already initialised")
	ErrCalendarAlreadyRegistered   = ExistsError("calendar is already registered")
	ErrCalendarRejectedDate        = InvalidError("date is not valid in this calendar")
	ErrConfigurationIsNotATable    = InvalidError("configuration file must return a table")
	ErrDateGrammar                 = InvalidError("date string does not match the date grammar")
	ErrDateOutOfRange              = InvalidError("date is outside the representable range")
	ErrDateType                    = InvalidError("date value must be a string, number or time value")
	ErrInvalidLoggerChannel        = InvalidError("invalid logger channel")
	ErrInvalidStructPointer        = InvalidError("invalid struct pointer")
	ErrMismatchedCoordinates       = InvalidError("longitude and latitude arrays differ in length")
	ErrNotInitialised              = ProcessError("not initialised")
	ErrUnknownCalendar             = NotFoundError("calendar name is not recognised")
	ErrWorldCalendarTwoDigitYear   = InvalidError("two digit years are not allowed with world calendars")
	ErrWorldCalendarWithNativeDate = InvalidError("native time values are incompatible with world calendars")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
