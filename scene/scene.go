// Package scene describes query scenes in YAML: named shapes, and pairs of posed shapes to check
// against each other.
package scene

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/akmonengine/feather2d"
	"github.com/akmonengine/feather2d/actor"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation error
var ErrInvalidConfig = errors.New("invalid scene")

// Config is a scene: shapes by name, and the pairs to query.
type Config struct {
	Shapes map[string]ShapeConfig `yaml:"shapes"`
	Pairs  []PairConfig           `yaml:"pairs"`
}

// ShapeConfig describes a polygon by exactly one of its explicit vertices, a box or a regular polygon.
type ShapeConfig struct {
	Vertices [][]float64    `yaml:"vertices,omitempty"`
	Box      *BoxConfig     `yaml:"box,omitempty"`
	Regular  *RegularConfig `yaml:"regular,omitempty"`
	// Hull replaces the vertices by their counter-clockwise convex hull
	Hull bool `yaml:"hull,omitempty"`
}

type BoxConfig struct {
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
}

type RegularConfig struct {
	Sides  int     `yaml:"sides"`
	Radius float64 `yaml:"radius"`
}

// BodyConfig places a shape; the angle is in degrees
type BodyConfig struct {
	Shape   string  `yaml:"shape"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Angle   float64 `yaml:"angle"`
	Trigger bool    `yaml:"trigger,omitempty"`
}

type PairConfig struct {
	Name string     `yaml:"name"`
	A    BodyConfig `yaml:"a"`
	B    BodyConfig `yaml:"b"`
}

// LoadYAML loads config from YAML reader.
func LoadYAML(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile loads config from a YAML file.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks every shape, and that every pair names known shapes.
func (c *Config) Validate() error {
	if len(c.Pairs) == 0 {
		return fmt.Errorf("%w: no pairs", ErrInvalidConfig)
	}

	for _, name := range slices.Sorted(maps.Keys(c.Shapes)) {
		if err := c.Shapes[name].Validate(); err != nil {
			return fmt.Errorf("shape %q: %w", name, err)
		}
	}

	for i, p := range c.Pairs {
		for _, b := range []BodyConfig{p.A, p.B} {
			if _, ok := c.Shapes[b.Shape]; !ok {
				return fmt.Errorf("%w: pair %d: unknown shape %q", ErrInvalidConfig, i, b.Shape)
			}
		}
	}

	return nil
}

// Validate checks that exactly one generator is set and that it yields at least one vertex
func (s ShapeConfig) Validate() error {
	set := 0
	if len(s.Vertices) > 0 {
		set++
	}
	if s.Box != nil {
		set++
	}
	if s.Regular != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("%w: want exactly one of vertices, box or regular, got %d", ErrInvalidConfig, set)
	}

	for i, v := range s.Vertices {
		if len(v) != 2 {
			return fmt.Errorf("%w: vertex %d has %d coordinates", ErrInvalidConfig, i, len(v))
		}
	}
	if s.Box != nil && (s.Box.HalfWidth <= 0 || s.Box.HalfHeight <= 0) {
		return fmt.Errorf("%w: box half extents must be positive", ErrInvalidConfig)
	}
	if s.Regular != nil && (s.Regular.Sides < 3 || s.Regular.Radius <= 0) {
		return fmt.Errorf("%w: regular polygon needs 3 sides and a positive radius", ErrInvalidConfig)
	}

	return nil
}

// Polygon builds the shape. It assumes Validate passed.
func (s ShapeConfig) Polygon() *actor.Polygon {
	var polygon *actor.Polygon
	switch {
	case s.Box != nil:
		polygon = actor.Box(s.Box.HalfWidth, s.Box.HalfHeight)
	case s.Regular != nil:
		polygon = actor.Regular(s.Regular.Sides, s.Regular.Radius)
	default:
		vertices := make([]mgl64.Vec2, len(s.Vertices))
		for i, v := range s.Vertices {
			vertices[i] = mgl64.Vec2{v[0], v[1]}
		}
		polygon = actor.NewPolygon(vertices...)
	}

	if s.Hull {
		polygon = actor.NewPolygon(actor.ConvexHull(polygon.Vertices)...)
	}

	return polygon
}

// Transform returns the pose of the body
func (b BodyConfig) Transform() actor.Transform {
	return actor.NewTransform(mgl64.Vec2{b.X, b.Y}, mgl64.DegToRad(b.Angle))
}

// Build validates the scene and creates its pairs, in order.
// Bodies using the same shape share one polygon.
func (c *Config) Build() ([]feather2d.Pair, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	polygons := make(map[string]*actor.Polygon, len(c.Shapes))
	for name, s := range c.Shapes {
		polygons[name] = s.Polygon()
	}

	body := func(b BodyConfig) *actor.Body {
		body := actor.NewBody(polygons[b.Shape], b.Transform())
		body.Id = b.Shape
		body.IsTrigger = b.Trigger
		return body
	}

	pairs := make([]feather2d.Pair, 0, len(c.Pairs))
	for _, p := range c.Pairs {
		pairs = append(pairs, feather2d.Pair{BodyA: body(p.A), BodyB: body(p.B)})
	}

	return pairs, nil
}
