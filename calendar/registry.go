// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package calendar

import (
	"sort"
	"sync"

	gocache "github.com/patrickmn/go-cache"

	"github.com/selfiesticky/chartdate/fault"
)

// Factory - constructs one calendar system
type Factory func() System

// Registry - lazily constructed, permanently cached calendar systems
//
// systems are immutable once constructed so a race between two
// callers constructing the same name costs a duplicate construction
// at worst; the cache publishes a single winner
type Registry struct {
	sync.RWMutex
	factories map[string]Factory
	cache     *gocache.Cache
}

// NewRegistry - a registry with all built-in systems available
func NewRegistry() *Registry {
	return &Registry{
		factories: map[string]Factory{
			"julian":    newJulian,
			"persian":   newPersian,
			"islamic":   newIslamic,
			"coptic":    newCoptic,
			"ethiopian": newEthiopian,
			"thai":      newThai,
			"taiwan":    newTaiwan,
		},
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Register - add a factory for a custom calendar system
func (r *Registry) Register(name string, factory Factory) error {
	if IsGregorian(name) {
		return fault.ErrCalendarAlreadyRegistered
	}
	r.Lock()
	defer r.Unlock()
	if _, ok := r.factories[name]; ok {
		return fault.ErrCalendarAlreadyRegistered
	}
	r.factories[name] = factory
	return nil
}

// Get - the system for a name, constructing it on first use
//
// the Gregorian calendar is never stored here, asking for it is a
// caller bug reported as an unknown calendar
func (r *Registry) Get(name string) (System, error) {
	if cached, ok := r.cache.Get(name); ok {
		return cached.(System), nil
	}
	r.RLock()
	factory, ok := r.factories[name]
	r.RUnlock()
	if !ok {
		return nil, fault.ErrUnknownCalendar
	}
	sys := factory()
	r.cache.Set(name, sys, gocache.NoExpiration)
	return sys, nil
}

// Names - sorted names of all registered systems
func (r *Registry) Names() []string {
	r.RLock()
	defer r.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
