package actor

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrEmptyPolygon is returned when a query is given a polygon without any vertex.
var ErrEmptyPolygon = errors.New("polygon has no vertices")

// ShapeType describes the feature a polygon degenerates to
type ShapeType int

const (
	ShapeTypePoint ShapeType = iota
	ShapeTypeSegment
	ShapeTypePolygon
)

func (s ShapeType) String() string {
	switch s {
	case ShapeTypePoint:
		return "point"
	case ShapeTypeSegment:
		return "segment"
	case ShapeTypePolygon:
		return "polygon"
	}
	return fmt.Sprintf("ShapeType(%d)", int(s))
}

// Polygon is a convex shape described by its local-space vertices.
//
// One vertex is a point, two vertices a segment, three or more a convex polygon.
// Convexity is the caller's responsibility and is never checked. Distance and penetration
// queries accept either winding; contact manifolds expect counter-clockwise vertices so
// that the left side of every edge is the interior.
type Polygon struct {
	Vertices []mgl64.Vec2
}

// NewPolygon creates a polygon from its vertices, copied so later edits of the slice
// do not leak into running queries.
func NewPolygon(vertices ...mgl64.Vec2) *Polygon {
	v := make([]mgl64.Vec2, len(vertices))
	copy(v, vertices)

	return &Polygon{Vertices: v}
}

// Point creates a single-vertex polygon
func Point(p mgl64.Vec2) *Polygon {
	return NewPolygon(p)
}

// Segment creates a two-vertex polygon
func Segment(a, b mgl64.Vec2) *Polygon {
	return NewPolygon(a, b)
}

// Box creates a counter-clockwise rectangle centered on the origin
func Box(halfWidth, halfHeight float64) *Polygon {
	return NewPolygon(
		mgl64.Vec2{-halfWidth, -halfHeight},
		mgl64.Vec2{halfWidth, -halfHeight},
		mgl64.Vec2{halfWidth, halfHeight},
		mgl64.Vec2{-halfWidth, halfHeight},
	)
}

// Regular creates a counter-clockwise regular polygon with n vertices on a circle of the given radius.
// The first vertex lies on the +X axis.
func Regular(n int, radius float64) *Polygon {
	vertices := make([]mgl64.Vec2, n)
	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		vertices[i] = mgl64.Vec2{radius * math.Cos(angle), radius * math.Sin(angle)}
	}

	return &Polygon{Vertices: vertices}
}

// Validate checks the only contract the algorithms rely on: at least one vertex
func (p *Polygon) Validate() error {
	if p == nil || len(p.Vertices) == 0 {
		return ErrEmptyPolygon
	}
	return nil
}

func (p *Polygon) Len() int {
	return len(p.Vertices)
}

func (p *Polygon) Vertex(i int) mgl64.Vec2 {
	return p.Vertices[i]
}

func (p *Polygon) Type() ShapeType {
	switch len(p.Vertices) {
	case 1:
		return ShapeTypePoint
	case 2:
		return ShapeTypeSegment
	}
	return ShapeTypePolygon
}

// Support returns the index of the vertex farthest along direction, in local space.
// Ties resolve to the lowest index: the GJK and EPA cycle guards compare indices, so the
// answer for a given direction must never depend on anything but the vertex order.
func (p *Polygon) Support(direction mgl64.Vec2) int {
	bestIndex := 0
	bestValue := p.Vertices[0].Dot(direction)

	for i := 1; i < len(p.Vertices); i++ {
		value := p.Vertices[i].Dot(direction)
		if value > bestValue {
			bestIndex = i
			bestValue = value
		}
	}

	return bestIndex
}

// SignedArea returns the shoelace area, positive for counter-clockwise vertices
func (p *Polygon) SignedArea() float64 {
	var area float64
	n := len(p.Vertices)
	for i := range n {
		area += Cross(p.Vertices[i], p.Vertices[(i+1)%n])
	}

	return area / 2
}

func (p *Polygon) IsCCW() bool {
	return p.SignedArea() > 0
}

// Centroid returns the average of the vertices
func (p *Polygon) Centroid() mgl64.Vec2 {
	if len(p.Vertices) == 0 {
		return mgl64.Vec2{0, 0}
	}

	sum := mgl64.Vec2{0, 0}
	for _, v := range p.Vertices {
		sum = sum.Add(v)
	}
	return sum.Mul(1.0 / float64(len(p.Vertices)))
}
