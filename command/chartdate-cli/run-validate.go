// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/selfiesticky/chartdate/dates"
	"github.com/selfiesticky/chartdate/fault"
)

func runValidate(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.ShowSubcommandHelp(c)
	}

	calendarName, err := setup(c)
	if nil != err {
		return err
	}

	failures := 0
	for _, date := range c.Args() {
		_, err := dates.Parse(date, calendarName)
		if nil == err {
			fmt.Fprintf(c.App.Writer, "valid:   %s\n", date)
			continue
		}
		failures += 1
		fmt.Fprintf(c.App.Writer, "invalid: %s  (%s)\n", date, err)
	}
	if failures > 0 {
		return fault.ErrCalendarRejectedDate
	}
	return nil
}
