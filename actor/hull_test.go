package actor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestConvexHull(t *testing.T) {
	tests := []struct {
		name     string
		points   []mgl64.Vec2
		expected []mgl64.Vec2
	}{
		{
			name:     "square with interior and edge points",
			points:   []mgl64.Vec2{{40, 0}, {40, 80}, {-40, 80}, {-40, 0}, {0, 40}, {40, 40}},
			expected: []mgl64.Vec2{{40, 0}, {40, 80}, {-40, 80}, {-40, 0}},
		},
		{
			name:     "collinear points keep the extremes",
			points:   []mgl64.Vec2{{0, 0}, {1, 0}, {2, 0}},
			expected: []mgl64.Vec2{{2, 0}, {0, 0}},
		},
		{
			name:     "two points",
			points:   []mgl64.Vec2{{1, 1}, {2, 2}},
			expected: []mgl64.Vec2{{1, 1}, {2, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hull := ConvexHull(tt.points)
			if len(hull) != len(tt.expected) {
				t.Fatalf("ConvexHull() = %v, want %v", hull, tt.expected)
			}
			for i := range hull {
				if !vec2Equal(hull[i], tt.expected[i], 1e-12) {
					t.Errorf("ConvexHull()[%d] = %v, want %v", i, hull[i], tt.expected[i])
				}
			}
		})
	}
}

func TestMinkowskiDifference(t *testing.T) {
	a := NewBody(Box(1, 1), IdentityTransform())
	b := NewBody(Box(1, 1), NewTransform(mgl64.Vec2{5, 0}, 0))

	hull := MinkowskiDifference(a, b)
	if len(hull) != 4 {
		t.Fatalf("MinkowskiDifference() has %d points, want 4: %v", len(hull), hull)
	}

	// B - A spans x in [3, 7] and y in [-2, 2]
	for _, p := range hull {
		if p.X() < 3-1e-9 || p.X() > 7+1e-9 || p.Y() < -2-1e-9 || p.Y() > 2+1e-9 {
			t.Errorf("hull point %v outside expected bounds", p)
		}
	}

	if !(&Polygon{Vertices: hull}).IsCCW() {
		t.Error("hull should be counter-clockwise")
	}
}
