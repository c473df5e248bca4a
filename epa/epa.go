// Package epa implements the Expanding Polytope Algorithm for computing penetration depth,
// and the contact manifold builder that turns a penetration normal into contact points.
//
// EPA is run after GJK detects an overlap to determine:
//   - Penetration depth (how far shapes overlap)
//   - Penetration direction (where to push B to separate the shapes)
//
// The algorithm starts from GJK's enclosing triangle and repeatedly splits the polytope
// edge closest to the origin through a new support point of the Minkowski difference
// B - A, until the closest edge lies on the boundary of the difference. That edge gives
// the Minimum Translation Vector (MTV).
//
// References:
//   - Van den Bergen: "Proximity Queries and Penetration Depth Computation on 3D Game Objects" (2001)
package epa

import (
	"errors"
	"fmt"
	"math"

	"github.com/akmonengine/feather2d/actor"
	"github.com/akmonengine/feather2d/gjk"
	"github.com/go-gl/mathgl/mgl64"
)

// MaxIterations limits polytope expansion.
// If this limit is reached, EPA returns the best estimate found so far.
const MaxIterations = 20

// ErrInvalidSimplex is returned when EPA is given a simplex that does not enclose the origin
var ErrInvalidSimplex = errors.New("simplex does not enclose the origin")

// EdgeObserver receives the closest edge chosen at every EPA iteration
type EdgeObserver interface {
	ObserveEdge(iteration int, edge Edge)
}

// EdgeObserverFunc adapts a function to the EdgeObserver interface
type EdgeObserverFunc func(iteration int, edge Edge)

func (f EdgeObserverFunc) ObserveEdge(iteration int, edge Edge) {
	f(iteration, edge)
}

// EdgeHistory records the closest edge of every iteration
type EdgeHistory []Edge

func (h *EdgeHistory) ObserveEdge(_ int, edge Edge) {
	*h = append(*h, edge)
}

// Last returns the final closest edge, or false if nothing was recorded
func (h EdgeHistory) Last() (Edge, bool) {
	if len(h) == 0 {
		return Edge{}, false
	}
	return h[len(h)-1], true
}

// Penetration is the result of EPA.
//
// Direction is a unit vector in Minkowski difference space pointing from the origin to the
// closest boundary edge, and Depth the distance to that edge.
type Penetration struct {
	Polytope  *Polytope
	Edge      Edge
	Direction mgl64.Vec2
	Depth     float64
}

// Normal returns the contact normal, pointing from shape A toward shape B
func (p Penetration) Normal() mgl64.Vec2 {
	return p.Direction.Mul(-1)
}

// Translation returns the translation of B that makes both shapes touch
func (p Penetration) Translation() mgl64.Vec2 {
	return p.Direction.Mul(-p.Depth)
}

// EPA computes the penetration of two overlapping bodies.
//
// Algorithm overview:
//  1. Build a counter-clockwise polytope from GJK's enclosing triangle
//  2. Find the edge closest to the origin
//  3. Get the support point along that edge's outward direction
//  4. If the support point is already an endpoint of the edge → converged
//  5. Otherwise split the edge through the new point
//  6. Stop after the split if the support pair was already in the polytope
//
// simplex must be the terminal GJK simplex with Count == 3; anything else means the
// shapes do not overlap and returns ErrInvalidSimplex. observer may be nil.
func EPA(a, b *actor.Body, simplex gjk.Simplex, observer EdgeObserver) (Penetration, error) {
	if simplex.Count != 3 {
		return Penetration{}, fmt.Errorf("%w: count %d", ErrInvalidSimplex, simplex.Count)
	}
	if err := a.Shape.Validate(); err != nil {
		return Penetration{}, fmt.Errorf("shape A: %w", err)
	}
	if err := b.Shape.Validate(); err != nil {
		return Penetration{}, fmt.Errorf("shape B: %w", err)
	}

	polytope := NewPolytope(simplex)

	// Support pairs of the polytope at the start of each iteration
	saveA := make([]int, 0, 3+MaxIterations)
	saveB := make([]int, 0, 3+MaxIterations)

	var closest Edge
	for iteration := 0; iteration < MaxIterations; iteration++ {
		saveA = saveA[:0]
		saveB = saveB[:0]
		for _, v := range polytope.Vertices {
			saveA = append(saveA, v.IndexA)
			saveB = append(saveB, v.IndexB)
		}

		id := polytope.ClosestEdge()
		closest = polytope.Edge(id)
		if observer != nil {
			observer.ObserveEdge(iteration, closest)
		}

		direction := closest.Direction
		if direction.LenSqr() == 0 {
			break
		}

		vertex := gjk.Support(a, b, direction)

		// The edge already lies on the boundary of the Minkowski difference
		v1 := polytope.Vertices[closest.Index1]
		v2 := polytope.Vertices[closest.Index2]
		if v1.SameSupport(vertex.IndexA, vertex.IndexB) || v2.SameSupport(vertex.IndexA, vertex.IndexB) {
			break
		}

		index := polytope.AddVertex(vertex)

		prev := polytope.Prev(id)
		next := polytope.Next(id)
		polytope.DeleteEdge(id)

		first := polytope.InsertEdge(prev, polytope.Edge(prev).Index2, index)
		polytope.InsertEdge(first, index, polytope.Edge(next).Index1)

		duplicate := false
		for i := range saveA {
			if vertex.IndexA == saveA[i] && vertex.IndexB == saveB[i] {
				duplicate = true
				break
			}
		}
		if duplicate {
			break
		}
	}

	return Penetration{
		Polytope:  polytope,
		Edge:      closest,
		Direction: actor.Normalize(closest.Direction),
		Depth:     math.Sqrt(closest.DistSq),
	}, nil
}
