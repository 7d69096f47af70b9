// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package lifthull computes the lower convex hull of a 2-D point set lifted
// onto the paraboloid z = x²+y², which is the Delaunay triangulation of the
// original points. It wraps a general-purpose convex hull engine and exposes
// the result as a flat arena of facet records with adjacency, so callers
// never touch the engine's own data structures.
package lifthull

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
)

// DefaultEps is the default distance epsilon handed to the hull engine.
const DefaultEps = 1e-12

// Facet is one face of the lifted hull.
//
// Vertices holds input point indices in the engine's native order.
// Neighbors holds positions into Facets() for the three facets sharing an
// edge with this one, also in the engine's native order: when TopOrient is
// set, Neighbors[k] lies across the edge opposite Vertices[(k+1)%3];
// otherwise it lies across the edge opposite Vertices[(k+2)%3]. Callers
// normalizing facet orientation must account for this offset.
type Facet struct {
	ID            int
	UpperDelaunay bool
	TopOrient     bool
	Vertices      [3]int32
	Neighbors     [3]int32
}

// Hull is the facet arena produced by one Build call. It is immutable and
// holds no engine state.
type Hull struct {
	facets []Facet
	maxID  int
}

// Facets returns all facets, upper-Delaunay ones included, in the order the
// engine produced them.
func (h *Hull) Facets() []Facet {
	return h.facets
}

// NumFacets returns the total facet count, upper-Delaunay ones included.
func (h *Hull) NumFacets() int {
	return len(h.facets)
}

// MaxFacetID returns the largest facet ID in the hull. Facet IDs are stable
// within a build but not contiguous across the facets a caller retains, so
// ID-indexed tables must be sized MaxFacetID()+1.
func (h *Hull) MaxFacetID() int {
	return h.maxID
}

// BuildOptions holds the configuration for Build.
type BuildOptions struct {
	Eps  float64
	Diag io.Writer
}

// BuildOption configures a Build call.
type BuildOption func(*BuildOptions) error

// WithEps sets the distance epsilon used by the hull engine.
// It returns an error if eps is not positive.
func WithEps(eps float64) BuildOption {
	return func(o *BuildOptions) error {
		if eps <= 0 {
			return fmt.Errorf("WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// WithDiagnostics routes the engine's diagnostic text to w for the duration
// of the build. The default is os.Stderr; pass io.Discard to suppress.
func WithDiagnostics(w io.Writer) BuildOption {
	return func(o *BuildOptions) error {
		if w == nil {
			return fmt.Errorf("WithDiagnostics: writer must be non-nil")
		}
		o.Diag = w
		return nil
	}
}

// The engine call redirects the process-global log output, so builds must
// not overlap.
var engineMu sync.Mutex

// redirectDiagnostics points the standard logger at w and takes exclusive
// ownership of the engine for the current build. The returned restore func
// must run on every exit path.
func redirectDiagnostics(w io.Writer) func() {
	engineMu.Lock()
	prev := log.Writer()
	log.SetOutput(w)
	return func() {
		log.SetOutput(prev)
		engineMu.Unlock()
	}
}

var liftedPool = sync.Pool{
	New: func() any { return new([]r3.Vector) },
}

// Build lifts the points (x[i], y[i]) onto the paraboloid, runs the convex
// hull engine on the lifted cloud, and returns the facet arena. Lower-hull
// facets are the Delaunay triangles; the rest are marked UpperDelaunay.
//
// Coordinates should be centered around the origin before calling Build:
// the lifting squares them, so large magnitudes cost precision.
func Build(x, y []float64, setters ...BuildOption) (*Hull, error) {
	opts := BuildOptions{
		Eps:  DefaultEps,
		Diag: os.Stderr,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	n := len(x)
	if n != len(y) {
		return nil, &Error{
			Code:   CodeInputInconsistency,
			Detail: fmt.Sprintf("coordinate slices have lengths %d and %d", n, len(y)),
		}
	}
	if n < 3 {
		return nil, &Error{
			Code:   CodeInputInconsistency,
			Detail: fmt.Sprintf("need at least 3 points, got %d", n),
		}
	}

	restore := redirectDiagnostics(opts.Diag)
	defer restore()

	// Collinear input lifts into a vertical plane that also contains the
	// closing apex, leaving the engine nothing two-sided to hull.
	if collinear(x, y) {
		return nil, &Error{
			Code:   CodeSingularInput,
			Detail: "all points are collinear",
		}
	}

	bufp := liftedPool.Get().(*[]r3.Vector)
	defer liftedPool.Put(bufp)

	lifted := (*bufp)[:0]
	zMax := 0.0
	for i := 0; i < n; i++ {
		z := x[i]*x[i] + y[i]*y[i]
		if z > zMax {
			zMax = z
		}
		lifted = append(lifted, r3.Vector{X: x[i], Y: y[i], Z: z})
	}
	// A closing apex strictly above the lifted cloud. It keeps the hull
	// closed (every edge borders exactly two facets) and keeps co-circular
	// inputs, whose lifted points are coplanar, full-rank. Facets touching
	// the apex replace the upper hull.
	apex := int32(n)
	lifted = append(lifted, r3.Vector{Z: 2*zMax + 1})
	*bufp = lifted

	indices, err := runEngine(lifted, opts.Eps, opts.Diag)
	if err != nil {
		return nil, err
	}
	if len(indices)%3 != 0 {
		return nil, &Error{
			Code:   CodeInternal,
			Detail: fmt.Sprintf("engine returned %d indices, not a multiple of 3", len(indices)),
		}
	}

	numFacets := len(indices) / 3
	facets := make([]Facet, numFacets)

	type edgeUse struct {
		facet int32
		slot  int32 // vertex slot opposite this edge
	}
	edges := make(map[[2]int32][]edgeUse, numFacets*3/2)
	addEdge := func(u, v, facet, slot int32) {
		if u > v {
			u, v = v, u
		}
		key := [2]int32{u, v}
		edges[key] = append(edges[key], edgeUse{facet: facet, slot: slot})
	}

	for f := 0; f < numFacets; f++ {
		a := int32(indices[3*f])
		b := int32(indices[3*f+1])
		c := int32(indices[3*f+2])
		if a >= apex+1 || b >= apex+1 || c >= apex+1 || a < 0 || b < 0 || c < 0 {
			return nil, &Error{
				Code:   CodeInternal,
				Detail: fmt.Sprintf("engine facet %d references point out of range", f),
			}
		}

		// Twice the signed area of the facet's x-y projection in native
		// vertex order. Lower-hull facets come back from the engine with a
		// CCW projection, so their area is positive.
		pa, pb, pc := lifted[a], lifted[b], lifted[c]
		nz := (pb.X-pa.X)*(pc.Y-pa.Y) - (pb.Y-pa.Y)*(pc.X-pa.X)

		facets[f] = Facet{
			ID:            f,
			UpperDelaunay: a == apex || b == apex || c == apex || nz <= 0,
			TopOrient:     nz > 0,
			Vertices:      [3]int32{a, b, c},
		}

		fi := int32(f)
		addEdge(b, c, fi, 0)
		addEdge(c, a, fi, 1)
		addEdge(a, b, fi, 2)
	}

	// Resolve adjacency: opp[f][k] is the facet across the edge opposite
	// vertex slot k of facet f.
	opp := make([][3]int32, numFacets)
	for key, uses := range edges {
		if len(uses) != 2 {
			return nil, &Error{
				Code:   CodeInternal,
				Detail: fmt.Sprintf("hull edge (%d %d) borders %d facets, want 2", key[0], key[1], len(uses)),
			}
		}
		opp[uses[0].facet][uses[0].slot] = uses[1].facet
		opp[uses[1].facet][uses[1].slot] = uses[0].facet
	}

	ntri := 0
	for f := range facets {
		o := opp[f]
		// Store neighbors in the engine's native order; see the Facet doc
		// for the slot offset relative to Vertices.
		if facets[f].TopOrient {
			facets[f].Neighbors = [3]int32{o[1], o[2], o[0]}
		} else {
			facets[f].Neighbors = [3]int32{o[2], o[0], o[1]}
		}
		if !facets[f].UpperDelaunay {
			ntri++
		}
	}
	if ntri == 0 {
		return nil, &Error{
			Code:   CodeSingularInput,
			Detail: "lifted hull has no lower facets",
		}
	}

	return &Hull{facets: facets, maxID: numFacets - 1}, nil
}

// runEngine invokes the hull engine on the lifted cloud. The engine panics
// rather than returning errors when its precision assumptions break, so the
// panic is caught here and reported as an engine precision failure.
func runEngine(lifted []r3.Vector, eps float64, diag io.Writer) (indices []int, err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(diag, "lifthull: engine panic: %v\n", r)
			indices = nil
			err = &Error{
				Code:   CodePrecision,
				Detail: fmt.Sprintf("engine panic: %v", r),
			}
		}
	}()

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(lifted, true, true, eps)
	return ch.Indices, nil
}

// collinear reports whether every point lies on one line. Exact test: the
// engine's epsilon handling owns near-degenerate cases.
func collinear(x, y []float64) bool {
	j := -1
	for i := 1; i < len(x); i++ {
		if x[i] != x[0] || y[i] != y[0] {
			j = i
			break
		}
	}
	if j < 0 {
		return true
	}
	ux, uy := x[j]-x[0], y[j]-y[0]
	for i := 1; i < len(x); i++ {
		if ux*(y[i]-y[0])-uy*(x[i]-x[0]) != 0 {
			return false
		}
	}
	return true
}
