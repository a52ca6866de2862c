// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package geoscatter - calc-data for geographic scatter traces
//
// Turns raw longitude/latitude arrays into the point list consumed by
// the rendering layer, and computes the extent the layout step needs.
// Drawing, projection and topology lookup happen elsewhere.
package geoscatter

import (
	"math"

	"github.com/selfiesticky/chartdate/fault"
)

// Point - one calc-data entry; coordinates in degrees
//
// an entry whose source coordinates were missing or non-finite keeps
// its place in the trace with NaN coordinates so line segments break
// instead of bridging the gap
type Point struct {
	Lon float64
	Lat float64
}

// Valid - true when the point can be projected
func (p Point) Valid() bool {
	return !math.IsNaN(p.Lon) && !math.IsNaN(p.Lat) &&
		!math.IsInf(p.Lon, 0) && !math.IsInf(p.Lat, 0)
}

// Box - extent of the valid points of a trace
type Box struct {
	LonMin float64
	LonMax float64
	LatMin float64
	LatMax float64
}

// Calc - build the calc-data points from parallel coordinate slices
//
// the slices must have the same length; entries that are not finite
// numbers become invalid points
func Calc(lon []float64, lat []float64) ([]Point, error) {
	if len(lon) != len(lat) {
		return nil, fault.ErrMismatchedCoordinates
	}
	points := make([]Point, len(lon))
	for i := range lon {
		p := Point{Lon: lon[i], Lat: lat[i]}
		if !p.Valid() {
			p = Point{Lon: math.NaN(), Lat: math.NaN()}
		}
		points[i] = p
	}
	return points, nil
}

// BoundingBox - the extent of the valid points
//
// ok is false when the trace has no valid point at all
func BoundingBox(points []Point) (box Box, ok bool) {
	box = Box{
		LonMin: math.Inf(1),
		LonMax: math.Inf(-1),
		LatMin: math.Inf(1),
		LatMax: math.Inf(-1),
	}
	for _, p := range points {
		if !p.Valid() {
			continue
		}
		ok = true
		box.LonMin = math.Min(box.LonMin, p.Lon)
		box.LonMax = math.Max(box.LonMax, p.Lon)
		box.LatMin = math.Min(box.LatMin, p.Lat)
		box.LatMax = math.Max(box.LatMax, p.Lat)
	}
	if !ok {
		return Box{}, false
	}
	return box, true
}

// CountValid - number of projectable points in a trace
func CountValid(points []Point) int {
	n := 0
	for _, p := range points {
		if p.Valid() {
			n += 1
		}
	}
	return n
}
