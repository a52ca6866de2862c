// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/selfiesticky/chartdate/dates"
)

func runConvert(c *cli.Context) error {
	if 1 != c.NArg() {
		return cli.ShowSubcommandHelp(c)
	}

	if _, err := setup(c); nil != err {
		return err
	}

	ms, err := dates.Parse(c.Args().Get(0), c.String("from"))
	if nil != err {
		return err
	}

	s, err := dates.ToDateTime(ms, 0, c.String("to"))
	if nil != err {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s\n", s)
	return nil
}
