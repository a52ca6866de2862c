// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
)

// log rotation defaults
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "chartdate.log"
	defaultLogCount     = 10
	defaultLogSize      = 1024 * 1024
)

// Configuration - settings for the command line tool
//
// directories and files are relative to the directory holding the
// configuration file
type Configuration struct {
	Calendar        string               `gluamapper:"calendar" json:"calendar"`
	YearWindowStart int                  `gluamapper:"year_window_start" json:"year_window_start"`
	Logging         logger.Configuration `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - read, decode and normalise a configuration file
func GetConfiguration(fileName string) (*Configuration, error) {

	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}
	baseDir := filepath.Dir(fileName)

	options := &Configuration{
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}
	if err := ParseConfigurationFile(fileName, options); nil != err {
		return nil, err
	}

	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(baseDir, options.Logging.Directory)
	}
	if nil == options.Logging.Levels {
		options.Logging.Levels = map[string]string{
			logger.DefaultTag: "critical",
		}
	}

	return options, nil
}
