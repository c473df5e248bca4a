// Package gjk implements the Gilbert-Johnson-Keerthi (GJK) distance algorithm for convex polygons.
//
// GJK works on the Minkowski difference B - A: the shapes overlap exactly when it contains
// the origin, and otherwise their distance is the distance from the origin to it. The
// algorithm never builds the difference; it walks a simplex of at most three support points
// toward the origin, reducing it to the closest feature at every step.
//
// Termination relies on support indices rather than on a tolerance: a support pair already
// present in the simplex means no further progress is possible.
//
// References:
//   - Gilbert, Johnson, Keerthi: "A Fast Procedure for Computing the Distance Between
//     Complex Objects in Three-Dimensional Space" (1988)
//   - Catto: "Computing Distance using GJK" (GDC 2010)
package gjk

import (
	"fmt"

	"github.com/akmonengine/feather2d/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// MaxIterations bounds the GJK loop. Polygons converge in a handful of iterations;
// reaching the bound only happens with degenerate input and is not reported as an error.
const MaxIterations = 20

// Observer receives the reduced simplex of every GJK iteration.
// Implementations must copy what they keep: the simplex is passed by value.
type Observer interface {
	ObserveSimplex(iteration int, simplex Simplex)
}

// ObserverFunc adapts a function to the Observer interface
type ObserverFunc func(iteration int, simplex Simplex)

func (f ObserverFunc) ObserveSimplex(iteration int, simplex Simplex) {
	f(iteration, simplex)
}

// History records every simplex of a run, for step-by-step inspection.
// The last entry is the authoritative result.
type History []Simplex

func (h *History) ObserveSimplex(_ int, simplex Simplex) {
	*h = append(*h, simplex)
}

// Last returns the final simplex, or false if nothing was recorded
func (h History) Last() (Simplex, bool) {
	if len(h) == 0 {
		return Simplex{}, false
	}
	return h[len(h)-1], true
}

// Support computes a support vertex of the Minkowski difference B - A along direction.
//
// Returns:
//
//	furthestPoint(B, direction) - furthestPoint(A, -direction), with both source indices
func Support(a, b *actor.Body, direction mgl64.Vec2) SimplexVertex {
	indexA, pointA := a.SupportWorld(direction.Mul(-1))
	indexB, pointB := b.SupportWorld(direction)

	return SimplexVertex{
		PointA: pointA,
		PointB: pointB,
		Point:  pointB.Sub(pointA),
		U:      1,
		IndexA: indexA,
		IndexB: indexB,
	}
}

// Distance runs GJK between two bodies.
//
// Algorithm overview:
//  1. Seed the simplex with the support pair of A along -X and B along +X
//  2. Reduce the simplex to the feature closest to the origin
//  3. If three points remain, the origin is enclosed → overlap
//  4. Otherwise search toward the origin from that feature
//  5. Stop when the direction vanishes or the new support pair was already in the simplex
//
// observer may be nil. The returned simplex is the last reduced one: Count 1 or 2 for
// separated shapes (see WitnessPoints), Count 3 when they overlap.
func Distance(a, b *actor.Body, observer Observer) (Simplex, error) {
	if err := a.Shape.Validate(); err != nil {
		return Simplex{}, fmt.Errorf("shape A: %w", err)
	}
	if err := b.Shape.Validate(); err != nil {
		return Simplex{}, fmt.Errorf("shape B: %w", err)
	}

	var simplex Simplex
	simplex.Vertices[0] = Support(a, b, mgl64.Vec2{1, 0})
	simplex.Count = 1
	simplex.Divisor = 1

	// Support pairs of the simplex before reduction, to detect cycling
	var saveA, saveB [3]int
	var saveCount int
	var result Simplex

	for iteration := 0; iteration < MaxIterations; iteration++ {
		saveCount = simplex.Count
		for i := 0; i < saveCount; i++ {
			saveA[i] = simplex.Vertices[i].IndexA
			saveB[i] = simplex.Vertices[i].IndexB
		}

		switch simplex.Count {
		case 2:
			simplex.Solve2(mgl64.Vec2{0, 0})
		case 3:
			simplex.Solve3(mgl64.Vec2{0, 0})
		}

		result = simplex
		if observer != nil {
			observer.ObserveSimplex(iteration, simplex)
		}

		// The origin lies in the triangle
		if simplex.Count == 3 {
			break
		}

		direction := simplex.SearchDirection()
		if direction.LenSqr() == 0 {
			break
		}

		vertex := Support(a, b, direction)

		// A duplicate support point is the main termination criterion
		duplicate := false
		for i := 0; i < saveCount; i++ {
			if vertex.IndexA == saveA[i] && vertex.IndexB == saveB[i] {
				duplicate = true
				break
			}
		}
		if duplicate {
			break
		}

		simplex.Vertices[simplex.Count] = vertex
		simplex.Count++
	}

	return result, nil
}
