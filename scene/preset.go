package scene

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownMode is returned by Preset for a name Presets does not list
var ErrUnknownMode = errors.New("unknown mode")

// Mode is a built-in scene made of one pair
type Mode struct {
	Name        string
	Description string

	a, b ShapeConfig
}

var (
	segment  = ShapeConfig{Vertices: [][]float64{{0, 100}, {0, 0}}}
	point    = ShapeConfig{Vertices: [][]float64{{0, 0}}}
	line     = ShapeConfig{Vertices: [][]float64{{50, 0}, {-50, 0}}}
	triangle = ShapeConfig{Vertices: [][]float64{{50, 0}, {0, 80}, {-50, 0}}}
	box      = ShapeConfig{Vertices: [][]float64{{40, 0}, {40, 80}, {-40, 80}, {-40, 0}}}
	hexagon  = ShapeConfig{Vertices: [][]float64{{30, 0}, {60, 50}, {30, 100}, {-30, 100}, {-60, 50}, {-30, 0}}}

	modes = []Mode{
		{Name: "segment-point", Description: "Line segment VS Point", a: segment, b: point},
		{Name: "triangle-point", Description: "Triangle VS Point", a: triangle, b: point},
		{Name: "segment-segment", Description: "Line segment VS Line segment", a: segment, b: line},
		{Name: "triangle-segment", Description: "Triangle VS Line segment", a: triangle, b: line},
		{Name: "triangle-triangle", Description: "Triangle VS Triangle", a: triangle, b: triangle},
		{Name: "box-box", Description: "Box VS Box", a: box, b: box},
		{Name: "box-hexagon", Description: "Box VS Hexagon", a: box, b: hexagon},
	}
)

// Presets lists the built-in modes
func Presets() []Mode {
	return slices.Clone(modes)
}

// Preset returns the scene of a mode: shape "a" against shape "b", both at the origin.
func Preset(name string) (*Config, error) {
	for _, m := range modes {
		if m.Name != name {
			continue
		}

		return &Config{
			Shapes: map[string]ShapeConfig{"a": m.a, "b": m.b},
			Pairs:  []PairConfig{{Name: m.Name, A: BodyConfig{Shape: "a"}, B: BodyConfig{Shape: "b"}}},
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}
