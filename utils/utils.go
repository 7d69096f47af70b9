// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides helpers for generating planar point sets for
// triangulation tests, benchmarks and examples.

package utils

import (
	"math/rand"
)

// GenerateRandomPoints generates cnt points uniformly distributed over the
// unit square. The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64) (x, y []float64) {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	x = make([]float64, cnt)
	y = make([]float64, cnt)

	for i := 0; i < cnt; i++ {
		x[i] = random.Float64()
		y[i] = random.Float64()
	}

	return x, y
}

// GenerateGridPoints generates the cols×rows integer lattice points
// (0,0)…(cols-1,rows-1) in row-major order. Integer-valued coordinates keep
// centroid arithmetic exact, which makes grids convenient for reproducible
// comparisons.
func GenerateGridPoints(cols, rows int) (x, y []float64) {
	x = make([]float64, 0, cols*rows)
	y = make([]float64, 0, cols*rows)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x = append(x, float64(c))
			y = append(y, float64(r))
		}
	}

	return x, y
}
