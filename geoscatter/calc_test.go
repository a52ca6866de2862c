// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package geoscatter_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/selfiesticky/chartdate/fault"
	"github.com/selfiesticky/chartdate/geoscatter"
)

func TestCalc(t *testing.T) {
	nan := math.NaN()
	lon := []float64{121.5, nan, -73.9, 151.2}
	lat := []float64{25.0, 10.0, 40.7, math.Inf(1)}

	points, err := geoscatter.Calc(lon, lat)
	assert.Nil(t, err)
	assert.Equal(t, 4, len(points))

	assert.True(t, points[0].Valid())
	assert.False(t, points[1].Valid())
	assert.True(t, points[2].Valid())
	assert.False(t, points[3].Valid())

	// invalid entries lose both coordinates
	assert.True(t, math.IsNaN(points[1].Lon))
	assert.True(t, math.IsNaN(points[1].Lat))
	assert.True(t, math.IsNaN(points[3].Lon))

	assert.Equal(t, 2, geoscatter.CountValid(points))
}

func TestCalcMismatched(t *testing.T) {
	_, err := geoscatter.Calc([]float64{1, 2}, []float64{1})
	assert.Equal(t, fault.ErrMismatchedCoordinates, err)
}

func TestBoundingBox(t *testing.T) {
	points, err := geoscatter.Calc(
		[]float64{121.5, math.NaN(), -73.9},
		[]float64{25.0, 99.0, 40.7},
	)
	assert.Nil(t, err)

	box, ok := geoscatter.BoundingBox(points)
	assert.True(t, ok)
	assert.Equal(t, geoscatter.Box{
		LonMin: -73.9,
		LonMax: 121.5,
		LatMin: 25.0,
		LatMax: 40.7,
	}, box)
}

func TestBoundingBoxEmpty(t *testing.T) {
	_, ok := geoscatter.BoundingBox(nil)
	assert.False(t, ok)

	points, err := geoscatter.Calc([]float64{math.NaN()}, []float64{1})
	assert.Nil(t, err)
	_, ok = geoscatter.BoundingBox(points)
	assert.False(t, ok)
}
