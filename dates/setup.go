// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dates

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/selfiesticky/chartdate/calendar"
	"github.com/selfiesticky/chartdate/fault"
)

// Settings - composition points for Initialise
type Settings struct {

	// supplies world calendar systems; nil selects a fresh registry
	// with the built-in systems
	Registry *calendar.Registry

	// first year of the 100 year window used to resolve 2 digit
	// years; zero selects 70 years before the current year
	YearWindowStart int
}

// global state, lazily defaulted when Initialise was never called
var globalData struct {
	sync.RWMutex
	log             *logger.L
	registry        *calendar.Registry
	yearWindowStart int
	initialised     bool
}

// Initialise - inject the registry and year window and open the log
// channel for Clean diagnostics
//
// requires the logger to be initialised first
func Initialise(settings Settings) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("dates")
	globalData.log.Info("starting…")

	globalData.registry = settings.Registry
	if nil == globalData.registry {
		globalData.registry = calendar.NewRegistry()
	}
	globalData.yearWindowStart = settings.YearWindowStart
	if 0 == globalData.yearWindowStart {
		globalData.yearWindowStart = time.Now().Year() - 70
	}

	globalData.initialised = true
	return nil
}

// Finalise - drop the injected state
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}
	globalData.log.Flush()
	globalData.log = nil
	globalData.registry = nil
	globalData.yearWindowStart = 0
	globalData.initialised = false
	return nil
}

// the registry in use, created on demand
func registry() *calendar.Registry {
	globalData.Lock()
	defer globalData.Unlock()
	if nil == globalData.registry {
		globalData.registry = calendar.NewRegistry()
	}
	return globalData.registry
}

// the anchor year, captured from the wall clock at most once so that
// 2 digit years resolve consistently for the life of the process
func yearWindowStart() int {
	globalData.Lock()
	defer globalData.Unlock()
	if 0 == globalData.yearWindowStart {
		globalData.yearWindowStart = time.Now().Year() - 70
	}
	return globalData.yearWindowStart
}

// non-fatal validation diagnostics from Clean; dropped when no log
// channel is open
func diagnostic(format string, arguments ...interface{}) {
	globalData.RLock()
	log := globalData.log
	globalData.RUnlock()
	if nil != log {
		log.Errorf(format, arguments...)
	}
}
