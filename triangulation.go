// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package planartri computes planar Delaunay triangulations, exposing for
// each triangle the indices of its three vertices and of its up to three
// neighboring triangles. It is the connectivity layer contouring and
// interpolation code builds on: the convex hull of the points lifted onto a
// paraboloid is computed by the lifthull engine, and this package translates
// the engine's facet graph into dense triangle and neighbor index matrices.
package planartri

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/2dChan/planartri/lifthull"
)

const defaultEps = lifthull.DefaultEps

// Triangulation is the Delaunay triangulation of a planar point set.
//
// Row i of Triangles holds triangle i's vertex indices in counter-clockwise
// order. Row i of Neighbors is column-aligned with it: Neighbors[i][c] is
// the triangle across the edge opposite vertex Triangles[i][c], or -1 when
// that edge lies on the boundary of the triangulated region.
type Triangulation struct {
	Triangles [][3]int32
	Neighbors [][3]int32
}

// NumTriangles returns the number of triangles.
func (t *Triangulation) NumTriangles() int {
	return len(t.Triangles)
}

// TriangleVertices returns the vertex indices of triangle i.
func (t *Triangulation) TriangleVertices(i int) (int32, int32, int32) {
	if i < 0 || i >= len(t.Triangles) {
		panic("TriangleVertices: index out of range")
	}
	tri := t.Triangles[i]
	return tri[0], tri[1], tri[2]
}

// NeighborIndices returns the neighbor row of triangle i.
func (t *Triangulation) NeighborIndices(i int) [3]int32 {
	if i < 0 || i >= len(t.Neighbors) {
		panic("NeighborIndices: index out of range")
	}
	return t.Neighbors[i]
}

// TriangulationOptions holds the configuration for NewTriangulation.
type TriangulationOptions struct {
	Eps                 float64
	SuppressDiagnostics bool
}

// TriangulationOption configures a NewTriangulation call.
type TriangulationOption func(*TriangulationOptions) error

// WithEps sets the distance epsilon passed to the hull engine.
// It returns an error if eps is not positive.
func WithEps(eps float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if eps <= 0 {
			return fmt.Errorf("WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// WithDiagnostics lets the hull engine's own diagnostic text reach stderr.
// By default it is discarded; only the extra text is affected, never the
// error classification returned to the caller.
func WithDiagnostics() TriangulationOption {
	return func(o *TriangulationOptions) error {
		o.SuppressDiagnostics = false
		return nil
	}
}

// NewTriangulation computes the Delaunay triangulation of the points
// (x[i], y[i]). The input must contain at least 3 unique points.
//
// Input errors are reported as wrapped ErrMismatchedLengths, ErrTooFewPoints
// or ErrNotEnoughUniquePoints before any engine work; hull engine failures
// are reported as *EngineError. On error no partial result is returned.
func NewTriangulation(x, y []float64, setters ...TriangulationOption) (*Triangulation, error) {
	opts := TriangulationOptions{
		Eps:                 defaultEps,
		SuppressDiagnostics: true,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	if len(x) != len(y) {
		return nil, fmt.Errorf("planartri: %w (got %d and %d)", ErrMismatchedLengths, len(x), len(y))
	}
	if len(x) < 3 {
		return nil, fmt.Errorf("planartri: %w (got %d)", ErrTooFewPoints, len(x))
	}
	if !atLeast3UniquePoints(x, y) {
		return nil, fmt.Errorf("planartri: %w", ErrNotEnoughUniquePoints)
	}

	cx, cy := centerPoints(x, y)

	diag := io.Writer(io.Discard)
	if !opts.SuppressDiagnostics {
		diag = os.Stderr
	}
	hull, err := lifthull.Build(cx, cy, lifthull.WithEps(opts.Eps), lifthull.WithDiagnostics(diag))
	if err != nil {
		var engineErr *lifthull.Error
		if errors.As(err, &engineErr) {
			return nil, &EngineError{
				Code:                  engineErr.Code,
				ExitCode:              int(engineErr.Code),
				DiagnosticsSuppressed: opts.SuppressDiagnostics,
				cause:                 engineErr,
			}
		}
		return nil, err
	}

	return facetsToTriangles(hull)
}

// atLeast3UniquePoints reports whether the input contains at least 3
// pairwise distinct points, by exact coordinate comparison. A single scan
// suffices since only existence is needed: track the first point as unique1,
// the first later point differing from it as unique2, and succeed on any
// point differing from both.
func atLeast3UniquePoints(x, y []float64) bool {
	const unique1 = 0
	unique2 := 0

	for i := 1; i < len(x); i++ {
		if unique2 == 0 {
			if x[i] != x[unique1] || y[i] != y[unique1] {
				unique2 = i
			}
		} else if (x[i] != x[unique1] || y[i] != y[unique1]) &&
			(x[i] != x[unique2] || y[i] != y[unique2]) {
			return true
		}
	}

	return false
}

// centerPoints translates the point set by the negative of its centroid.
// The engine lifts coordinates onto z = x²+y², where large magnitudes lose
// precision to cancellation; translation leaves the set's co-circularity,
// and therefore the triangulation, unchanged.
func centerPoints(x, y []float64) ([]float64, []float64) {
	var xMean, yMean float64
	for i := range x {
		xMean += x[i]
		yMean += y[i]
	}
	xMean /= float64(len(x))
	yMean /= float64(len(y))

	cx := make([]float64, len(x))
	cy := make([]float64, len(y))
	for i := range x {
		cx[i] = x[i] - xMean
		cy[i] = y[i] - yMean
	}
	return cx, cy
}

// facetsToTriangles translates the engine's facet arena into the dense
// triangle and neighbor matrices. Upper-Delaunay facets are artifacts of the
// lifting transform and are excluded; the remaining facets get contiguous
// triangle indices in enumeration order.
func facetsToTriangles(hull *lifthull.Hull) (*Triangulation, error) {
	facets := hull.Facets()

	// First pass: count triangles and map sparse facet IDs to dense rows.
	ntri := 0
	triIndices := make([]int32, hull.MaxFacetID()+1)
	for _, f := range facets {
		if f.UpperDelaunay {
			triIndices[f.ID] = -1
			continue
		}
		triIndices[f.ID] = int32(ntri)
		ntri++
	}

	// Second pass: vertex emission.
	triangles := make([][3]int32, ntri)
	row := 0
	for _, f := range facets {
		if f.UpperDelaunay {
			continue
		}
		triangles[row] = reorderVertices(f.Vertices, f.TopOrient)
		row++
	}

	// Third pass: neighbor emission. An upper-Delaunay neighbor is a
	// boundary edge and maps to -1 regardless of the index map.
	neighbors := make([][3]int32, ntri)
	row = 0
	for _, f := range facets {
		if f.UpperDelaunay {
			continue
		}
		var mapped [3]int32
		for c, pos := range f.Neighbors {
			nf := facets[pos]
			if nf.UpperDelaunay {
				mapped[c] = -1
				continue
			}
			ti := triIndices[nf.ID]
			if ti < 0 || int(ti) >= ntri {
				return nil, fmt.Errorf("planartri: %w: facet %d has no triangle row", ErrInternal, nf.ID)
			}
			mapped[c] = ti
		}
		neighbors[row] = reorderNeighbors(mapped, f.TopOrient)
		row++
	}
	if row != ntri {
		return nil, fmt.Errorf("planartri: %w: emitted %d neighbor rows, want %d", ErrInternal, row, ntri)
	}

	return &Triangulation{Triangles: triangles, Neighbors: neighbors}, nil
}

// reorderVertices picks the output column order for a facet's vertex triple.
// Reversing when toporient is unset gives every emitted triangle the same
// counter-clockwise winding, whatever the engine's per-facet orientation.
func reorderVertices(v [3]int32, toporient bool) [3]int32 {
	if toporient {
		return [3]int32{v[0], v[1], v[2]}
	}
	return [3]int32{v[2], v[1], v[0]}
}

// reorderNeighbors is the companion of reorderVertices for the neighbor
// triple. The engine's native neighbor order is offset by one slot from its
// vertex order, so columns 0 and 2 swap relative to the vertex reordering;
// that lands the neighbor across the edge opposite vertex column c in
// neighbor column c.
func reorderNeighbors(n [3]int32, toporient bool) [3]int32 {
	if toporient {
		return [3]int32{n[2], n[0], n[1]}
	}
	return [3]int32{n[0], n[2], n[1]}
}
