package epa

import (
	"github.com/akmonengine/feather2d/actor"
	"github.com/akmonengine/feather2d/gjk"
	"github.com/go-gl/mathgl/mgl64"
)

// MinEdgeDistSq is the squared distance under which an edge cannot replace the current
// closest edge. Such edges come from zero-length splits and only stay eligible as the head.
const MinEdgeDistSq = 1e-4

// nilEdge marks an empty polytope
const nilEdge = -1

// Edge is a directed polytope edge between two vertices of the polytope.
//
// The projection of the origin onto the edge is computed once when the edge is created.
// Direction is the outward search direction: the closest vertex itself when the origin
// projects onto an endpoint, otherwise the unnormalized right perpendicular of the edge.
type Edge struct {
	Index1       int
	Index2       int
	ClosestPoint mgl64.Vec2
	Direction    mgl64.Vec2
	DistSq       float64

	prev int
	next int
}

// Polytope is the counter-clockwise boundary expanded by EPA.
//
// Vertices are only appended. Edges live in an arena and link to each other by index;
// deleted edges stay in the arena but are unreachable from the head.
type Polytope struct {
	Vertices []gjk.SimplexVertex

	edges []Edge
	head  int
	tail  int
	count int
}

// NewPolytope builds the initial polytope from a terminal GJK simplex.
//
// A triangle is wound counter-clockwise so the origin stays on the left of every edge.
// A segment gives two antiparallel edges; nothing in this module produces that case but
// the structure supports it.
func NewPolytope(simplex gjk.Simplex) *Polytope {
	p := &Polytope{
		Vertices: make([]gjk.SimplexVertex, simplex.Count, simplex.Count+MaxIterations),
		edges:    make([]Edge, 0, 3+2*MaxIterations),
		head:     nilEdge,
		tail:     nilEdge,
	}
	copy(p.Vertices, simplex.Vertices[:simplex.Count])

	switch simplex.Count {
	case 2:
		p.InsertEdge(p.tail, 0, 1)
		p.InsertEdge(p.tail, 1, 0)
	case 3:
		a := p.Vertices[0].Point
		b := p.Vertices[1].Point
		c := p.Vertices[2].Point

		if actor.Cross(b.Sub(a), c.Sub(b)) > 0 {
			p.InsertEdge(p.tail, 0, 1)
			p.InsertEdge(p.tail, 1, 2)
			p.InsertEdge(p.tail, 2, 0)
		} else {
			p.InsertEdge(p.tail, 0, 2)
			p.InsertEdge(p.tail, 2, 1)
			p.InsertEdge(p.tail, 1, 0)
		}
	}

	return p
}

// AddVertex appends a vertex and returns its index
func (p *Polytope) AddVertex(v gjk.SimplexVertex) int {
	p.Vertices = append(p.Vertices, v)
	return len(p.Vertices) - 1
}

// InsertEdge creates the edge (index1, index2) right after the edge `after` and returns its id.
// The first edge of an empty polytope ignores `after` and links to itself.
func (p *Polytope) InsertEdge(after, index1, index2 int) int {
	edge := p.project(index1, index2)
	id := len(p.edges)

	if p.head == nilEdge {
		edge.prev = id
		edge.next = id
		p.edges = append(p.edges, edge)
		p.head = id
		p.tail = id
		p.count = 1
		return id
	}

	edge.prev = after
	edge.next = p.edges[after].next
	p.edges = append(p.edges, edge)
	p.edges[edge.next].prev = id
	p.edges[after].next = id
	if after == p.tail {
		p.tail = id
	}
	p.count++

	return id
}

// DeleteEdge unlinks an edge from the cycle in constant time
func (p *Polytope) DeleteEdge(id int) {
	edge := p.edges[id]

	if p.count == 1 {
		p.head = nilEdge
		p.tail = nilEdge
		p.count = 0
		return
	}

	if id == p.head {
		p.head = edge.next
	}
	if id == p.tail {
		p.tail = edge.prev
	}

	p.edges[edge.prev].next = edge.next
	p.edges[edge.next].prev = edge.prev
	p.count--
}

// Edge returns the edge with the given id
func (p *Polytope) Edge(id int) Edge {
	return p.edges[id]
}

// Next returns the id of the edge following id in the cycle
func (p *Polytope) Next(id int) int {
	return p.edges[id].next
}

// Prev returns the id of the edge preceding id in the cycle
func (p *Polytope) Prev(id int) int {
	return p.edges[id].prev
}

// Len returns the number of live edges
func (p *Polytope) Len() int {
	return p.count
}

// Edges returns the live edges in cycle order, starting from the head
func (p *Polytope) Edges() []Edge {
	if p.head == nilEdge {
		return nil
	}

	edges := make([]Edge, 0, p.count)
	id := p.head
	for {
		edges = append(edges, p.edges[id])
		id = p.edges[id].next
		if id == p.head {
			break
		}
	}

	return edges
}

// Points returns the Minkowski difference points of the edges in cycle order
func (p *Polytope) Points() []mgl64.Vec2 {
	edges := p.Edges()
	points := make([]mgl64.Vec2, len(edges))
	for i, e := range edges {
		points[i] = p.Vertices[e.Index1].Point
	}

	return points
}

// ClosestEdge returns the id of the edge closest to the origin, or -1 for an empty polytope.
//
// The head is the default choice. Any other edge must be strictly closer and farther than
// MinEdgeDistSq to replace it.
func (p *Polytope) ClosestEdge() int {
	if p.head == nilEdge {
		return nilEdge
	}

	closest := p.head
	for id := p.edges[p.head].next; id != p.head; id = p.edges[id].next {
		distSq := p.edges[id].DistSq
		if distSq > MinEdgeDistSq && distSq < p.edges[closest].DistSq {
			closest = id
		}
	}

	return closest
}

// project computes the closest point of the segment (index1, index2) to the origin
func (p *Polytope) project(index1, index2 int) Edge {
	a := p.Vertices[index1].Point
	b := p.Vertices[index2].Point
	ab := b.Sub(a)

	edge := Edge{Index1: index1, Index2: index2}

	v := -ab.Dot(a)
	if v <= 0 {
		edge.ClosestPoint = a
		edge.Direction = a
		edge.DistSq = a.LenSqr()
		return edge
	}

	u := ab.Dot(b)
	if u <= 0 {
		edge.ClosestPoint = b
		edge.Direction = b
		edge.DistSq = b.LenSqr()
		return edge
	}

	edge.ClosestPoint = actor.Lerp(a, b, v*(1/ab.LenSqr()))
	edge.Direction = actor.RPerp(ab)
	edge.DistSq = edge.ClosestPoint.LenSqr()

	return edge
}
