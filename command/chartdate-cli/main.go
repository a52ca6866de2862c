// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/selfiesticky/chartdate/configuration"
	"github.com/selfiesticky/chartdate/dates"
	"github.com/selfiesticky/chartdate/fault"
	"github.com/selfiesticky/chartdate/version"
)

func main() {
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "chartdate-cli"
	app.Usage = "convert chart dates between text, milliseconds and calendars"
	app.Version = version.Version

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "calendar, k",
			Value: "",
			Usage: " calendar `NAME` [gregorian]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "parse",
			Usage:     "parse a date to milliseconds from the epoch",
			ArgsUsage: "DATE",
			Action:    runParse,
		},
		{
			Name:      "format",
			Usage:     "format epoch milliseconds as a label",
			ArgsUsage: "MILLISECONDS",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "template, t",
					Value: "",
					Usage: " strftime `TEMPLATE` instead of the default layout",
				},
				cli.IntFlag{
					Name:  "round, r",
					Value: 0,
					Usage: " tick rounding `LEVEL`: -4 year .. 0 second .. 4 fraction digits",
				},
			},
			Action: runFormat,
		},
		{
			Name:      "convert",
			Usage:     "convert a date from one calendar to another",
			ArgsUsage: "DATE",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: " source calendar `NAME` [gregorian]",
				},
				cli.StringFlag{
					Name:  "to, o",
					Value: "",
					Usage: " target calendar `NAME` [gregorian]",
				},
			},
			Action: runConvert,
		},
		{
			Name:      "validate",
			Usage:     "check date strings against the grammar and calendar",
			ArgsUsage: "DATE...",
			Action:    runValidate,
		},
	}

	if err := app.Run(os.Args); nil != err {
		exitwithstatus.Message("%s: error: %s", app.Name, err)
	}
}

// apply the optional configuration file and return the calendar name
// selected by flag or configuration
func setup(c *cli.Context) (string, error) {
	calendarName := c.GlobalString("calendar")

	fileName := c.GlobalString("config")
	if "" == fileName {
		return calendarName, nil
	}

	options, err := configuration.GetConfiguration(fileName)
	if nil != err {
		return "", err
	}
	if err := logger.Initialise(options.Logging); nil != err {
		return "", err
	}
	if err := fault.Initialise(); nil != err {
		return "", err
	}
	err = dates.Initialise(dates.Settings{
		YearWindowStart: options.YearWindowStart,
	})
	if nil != err {
		return "", err
	}
	if "" == calendarName {
		calendarName = options.Calendar
	}
	return calendarName, nil
}
