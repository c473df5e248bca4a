package gjk

import (
	"math"

	"github.com/akmonengine/feather2d/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// SimplexVertex is one support point of the Minkowski difference B - A.
//
// It remembers which vertex of each polygon produced it: the (IndexA, IndexB) pair is the
// identity used by the cycle guards of GJK and EPA.
type SimplexVertex struct {
	PointA mgl64.Vec2 // world support point on A
	PointB mgl64.Vec2 // world support point on B
	Point  mgl64.Vec2 // PointB - PointA
	U      float64    // unnormalized barycentric coordinate of the closest point
	IndexA int
	IndexB int
}

// SameSupport reports whether both vertices come from the same pair of polygon vertices
func (v SimplexVertex) SameSupport(indexA, indexB int) bool {
	return v.IndexA == indexA && v.IndexB == indexB
}

// Simplex represents 1 to 3 points of the Minkowski difference.
//
// After a Solve call only the vertices carrying a non-zero weight are kept:
// Count 1 is a vertex, 2 an edge, 3 a triangle enclosing the query point.
// The closest point is sum(U_i * Point_i) / Divisor.
type Simplex struct {
	Vertices [3]SimplexVertex
	Count    int
	Divisor  float64
}

// Overlap reports whether the simplex encloses the origin
func (s *Simplex) Overlap() bool {
	return s.Count == 3
}

// Solve2 reduces an edge simplex AB to the feature closest to q.
// Voronoi regions: A, B, AB
func (s *Simplex) Solve2(q mgl64.Vec2) {
	a := s.Vertices[0].Point
	b := s.Vertices[1].Point
	ab := b.Sub(a)

	// Region A
	v := q.Sub(a).Dot(ab)
	if v <= 0 {
		s.Count = 1
		s.Vertices[0].U = 1
		s.Divisor = 1
		return
	}

	// Region B
	u := -q.Sub(b).Dot(ab)
	if u <= 0 {
		s.Count = 1
		s.Vertices[0] = s.Vertices[1]
		s.Vertices[0].U = 1
		s.Divisor = 1
		return
	}

	// Region AB
	s.Count = 2
	s.Vertices[0].U = u
	s.Vertices[1].U = v
	s.Divisor = ab.LenSqr()
}

// Solve3 reduces a triangle simplex ABC to the feature closest to q.
// Voronoi regions: A, B, C, AB, BC, CA, ABC
func (s *Simplex) Solve3(q mgl64.Vec2) {
	a := s.Vertices[0].Point
	b := s.Vertices[1].Point
	c := s.Vertices[2].Point

	ab := b.Sub(a)
	bc := c.Sub(b)
	ca := a.Sub(c)

	// Region A
	aq := q.Sub(a)
	vab := aq.Dot(ab)
	uca := -aq.Dot(ca)
	if vab <= 0 && uca <= 0 {
		s.Count = 1
		s.Vertices[0].U = 1
		s.Divisor = 1
		return
	}

	// Region B
	bq := q.Sub(b)
	vbc := bq.Dot(bc)
	uab := -bq.Dot(ab)
	if vbc <= 0 && uab <= 0 {
		s.Count = 1
		s.Vertices[0] = s.Vertices[1]
		s.Vertices[0].U = 1
		s.Divisor = 1
		return
	}

	// Region C
	cq := q.Sub(c)
	vca := cq.Dot(ca)
	ubc := -cq.Dot(bc)
	if vca <= 0 && ubc <= 0 {
		s.Count = 1
		s.Vertices[0] = s.Vertices[2]
		s.Vertices[0].U = 1
		s.Divisor = 1
		return
	}

	// Twice the signed triangle area
	area := -actor.Cross(ab, ca)

	// Region AB. A zero area only happens for collinear points; the edge then owns q.
	wabc := actor.Cross(aq, bq)
	if uab > 0 && vab > 0 && (wabc*area < 0 || area == 0) {
		s.Count = 2
		s.Vertices[0].U = uab
		s.Vertices[1].U = vab
		s.Divisor = ab.LenSqr()
		return
	}

	// Region BC
	uabc := actor.Cross(bq, cq)
	if ubc > 0 && vbc > 0 && uabc*area < 0 {
		s.Count = 2
		s.Vertices[0] = s.Vertices[1]
		s.Vertices[1] = s.Vertices[2]
		s.Vertices[0].U = ubc
		s.Vertices[1].U = vbc
		s.Divisor = bc.LenSqr()
		return
	}

	// Region CA. Slot 1 is written before slot 0 is overwritten by C.
	vabc := actor.Cross(cq, aq)
	if uca > 0 && vca > 0 && vabc*area < 0 {
		s.Count = 2
		s.Vertices[1] = s.Vertices[0]
		s.Vertices[0] = s.Vertices[2]
		s.Vertices[0].U = uca
		s.Vertices[1].U = vca
		s.Divisor = ca.LenSqr()
		return
	}

	// Region ABC
	s.Count = 3
	s.Vertices[0].U = uabc
	s.Vertices[1].U = vabc
	s.Vertices[2].U = wabc
	s.Divisor = area
}

// SearchDirection returns the direction from the current feature toward the origin.
// A zero vector means the origin lies on the feature.
func (s *Simplex) SearchDirection() mgl64.Vec2 {
	switch s.Count {
	case 1:
		return s.Vertices[0].Point.Mul(-1)
	case 2:
		ab := s.Vertices[1].Point.Sub(s.Vertices[0].Point)
		// Pick the perpendicular on the origin's side of AB
		if actor.Cross(s.Vertices[0].Point, ab) > 0 {
			return actor.Perp(ab)
		}
		return actor.RPerp(ab)
	}

	return mgl64.Vec2{0, 0}
}

// ClosestPoint returns the point of the simplex closest to the origin
func (s *Simplex) ClosestPoint() mgl64.Vec2 {
	switch s.Count {
	case 1:
		return s.Vertices[0].Point
	case 2:
		return actor.Lerp(s.Vertices[0].Point, s.Vertices[1].Point, s.Vertices[1].U/s.Divisor)
	case 3:
		return s.combine(func(v SimplexVertex) mgl64.Vec2 { return v.Point })
	}

	return mgl64.Vec2{0, 0}
}

// WitnessPoints returns the closest points on A and on B.
//
// For an enclosing triangle both points are the same: the shapes overlap and their
// separation is zero, so only the point on A is interpolated. Penetration comes from EPA.
func (s *Simplex) WitnessPoints() (mgl64.Vec2, mgl64.Vec2) {
	switch s.Count {
	case 1:
		return s.Vertices[0].PointA, s.Vertices[0].PointB
	case 2:
		t := s.Vertices[1].U / s.Divisor
		return actor.Lerp(s.Vertices[0].PointA, s.Vertices[1].PointA, t),
			actor.Lerp(s.Vertices[0].PointB, s.Vertices[1].PointB, t)
	case 3:
		p := s.combine(func(v SimplexVertex) mgl64.Vec2 { return v.PointA })
		return p, p
	}

	return mgl64.Vec2{0, 0}, mgl64.Vec2{0, 0}
}

// Distance returns the separation between the witness points
func (s *Simplex) Distance() float64 {
	a, b := s.WitnessPoints()
	return math.Sqrt(b.Sub(a).LenSqr())
}

func (s *Simplex) combine(point func(v SimplexVertex) mgl64.Vec2) mgl64.Vec2 {
	scale := 1 / s.Divisor
	p := point(s.Vertices[0]).Mul(s.Vertices[0].U * scale)
	p = p.Add(point(s.Vertices[1]).Mul(s.Vertices[1].U * scale))
	p = p.Add(point(s.Vertices[2]).Mul(s.Vertices[2].U * scale))

	return p
}
