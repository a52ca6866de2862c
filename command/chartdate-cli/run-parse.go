// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/selfiesticky/chartdate/dates"
)

func runParse(c *cli.Context) error {
	if 1 != c.NArg() {
		return cli.ShowSubcommandHelp(c)
	}

	calendarName, err := setup(c)
	if nil != err {
		return err
	}

	ms, err := dates.Parse(c.Args().Get(0), calendarName)
	if nil != err {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s\n", strconv.FormatFloat(ms, 'f', -1, 64))
	return nil
}
