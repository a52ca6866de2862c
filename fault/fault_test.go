// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/selfiesticky/chartdate/fault"
)

var (
	errExistsOne   = fault.ExistsError("exists one")
	errInvalidOne  = fault.InvalidError("invalid one")
	errNotFoundOne = fault.NotFoundError("not found one")
	errProcessOne  = fault.ProcessError("process one")
)

// test that the error classes stay distinguishable
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		notFound bool
		process  bool
	}{
		{errExistsOne, true, false, false, false},
		{fault.ErrCalendarAlreadyRegistered, true, false, false, false},
		{errInvalidOne, false, true, false, false},
		{fault.ErrDateGrammar, false, true, false, false},
		{fault.ErrDateOutOfRange, false, true, false, false},
		{fault.ErrCalendarRejectedDate, false, true, false, false},
		{fault.ErrWorldCalendarTwoDigitYear, false, true, false, false},
		{errNotFoundOne, false, false, true, false},
		{fault.ErrUnknownCalendar, false, false, true, false},
		{errProcessOne, false, false, false, true},
		{fault.ErrAlreadyInitialised, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}
