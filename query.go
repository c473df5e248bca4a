package feather2d

import (
	"github.com/akmonengine/feather2d/actor"
	"github.com/akmonengine/feather2d/contact"
	"github.com/akmonengine/feather2d/epa"
	"github.com/akmonengine/feather2d/gjk"
	"github.com/go-gl/mathgl/mgl64"
)

// DistanceQuery runs GJK and returns every reduced simplex.
// The last entry is the result: Count 3 means the shapes overlap.
func DistanceQuery(shapeA *actor.Polygon, xfA actor.Transform, shapeB *actor.Polygon, xfB actor.Transform) (gjk.History, error) {
	var history gjk.History
	if _, err := gjk.Distance(actor.NewBody(shapeA, xfA), actor.NewBody(shapeB, xfB), &history); err != nil {
		return nil, err
	}

	return history, nil
}

// PenetrationQuery runs EPA from the terminal simplex of DistanceQuery, which must enclose the origin.
func PenetrationQuery(shapeA *actor.Polygon, xfA actor.Transform, shapeB *actor.Polygon, xfB actor.Transform, terminal gjk.Simplex) (*epa.Polytope, epa.EdgeHistory, error) {
	var history epa.EdgeHistory
	penetration, err := epa.EPA(actor.NewBody(shapeA, xfA), actor.NewBody(shapeB, xfB), terminal, &history)
	if err != nil {
		return nil, nil, err
	}

	return penetration.Polytope, history, nil
}

// BuildManifold returns the contact points along normal, pointing from A toward B.
// It returns nil when no manifold can be built.
func BuildManifold(shapeA *actor.Polygon, xfA actor.Transform, shapeB *actor.Polygon, xfB actor.Transform, normal mgl64.Vec2) []contact.ContactPoint {
	manifold, ok := epa.BuildManifold(actor.NewBody(shapeA, xfA), actor.NewBody(shapeB, xfB), normal)
	if !ok {
		return nil
	}

	return manifold.Points
}
