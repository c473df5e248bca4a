package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akmonengine/feather2d"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sceneYAML = `
shapes:
  ground:
    box: {half_width: 100, half_height: 10}
  wheel:
    regular: {sides: 6, radius: 20}
  wedge:
    vertices: [[-50, 0], [0, 80], [50, 0]]
    hull: true
pairs:
  - name: resting
    a: {shape: ground}
    b: {shape: wheel, y: 25}
  - name: apart
    a: {shape: ground}
    b: {shape: wedge, x: 500, angle: 90, trigger: true}
`

func TestLoadYAML(t *testing.T) {
	c, err := LoadYAML(strings.NewReader(sceneYAML))
	require.NoError(t, err)

	require.Len(t, c.Shapes, 3)
	require.NotNil(t, c.Shapes["ground"].Box)
	assert.Equal(t, 100.0, c.Shapes["ground"].Box.HalfWidth)
	assert.Equal(t, 6, c.Shapes["wheel"].Regular.Sides)
	assert.True(t, c.Shapes["wedge"].Hull)

	require.Len(t, c.Pairs, 2)
	assert.Equal(t, "apart", c.Pairs[1].Name)
	assert.Equal(t, BodyConfig{Shape: "wedge", X: 500, Angle: 90, Trigger: true}, c.Pairs[1].B)
}

func TestLoadYAML_UnknownField(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("shapes: {}\nbodies: []\n"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sceneYAML), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, c.Pairs, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuild(t *testing.T) {
	c, err := LoadYAML(strings.NewReader(sceneYAML))
	require.NoError(t, err)

	pairs, err := c.Build()
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	// Both pairs use the same ground polygon
	assert.Same(t, pairs[0].BodyA.Shape, pairs[1].BodyA.Shape)
	assert.NotSame(t, pairs[0].BodyA, pairs[1].BodyA)
	assert.Equal(t, "ground", pairs[0].BodyA.Id)

	wedge := pairs[1].BodyB
	assert.True(t, wedge.IsTrigger)
	assert.True(t, wedge.Shape.IsCCW())
	assert.Equal(t, mgl64.Vec2{50, 0}, wedge.Shape.Vertices[0])
	assert.Equal(t, mgl64.Vec2{500, 0}, wedge.Transform.Position)
	rotated := wedge.Transform.Rotate(mgl64.Vec2{1, 0})
	assert.InDelta(t, 0, rotated.X(), 1e-12)
	assert.InDelta(t, 1, rotated.Y(), 1e-12)

	resting, err := feather2d.Collide(pairs[0].BodyA, pairs[0].BodyB)
	require.NoError(t, err)
	assert.True(t, resting.Overlap)

	apart, err := feather2d.Collide(pairs[1].BodyA, pairs[1].BodyB)
	require.NoError(t, err)
	assert.False(t, apart.Overlap)
	assert.Greater(t, apart.Distance, 300.0)
}

func TestValidate(t *testing.T) {
	box := ShapeConfig{Box: &BoxConfig{HalfWidth: 1, HalfHeight: 1}}
	pair := []PairConfig{{A: BodyConfig{Shape: "s"}, B: BodyConfig{Shape: "s"}}}

	tests := []struct {
		name   string
		config Config
	}{
		{"no pairs", Config{Shapes: map[string]ShapeConfig{"s": box}}},
		{"no generator", Config{Shapes: map[string]ShapeConfig{"s": {}}, Pairs: pair}},
		{"two generators", Config{
			Shapes: map[string]ShapeConfig{"s": {Box: box.Box, Vertices: [][]float64{{0, 0}}}},
			Pairs:  pair,
		}},
		{"vertex with three coordinates", Config{
			Shapes: map[string]ShapeConfig{"s": {Vertices: [][]float64{{0, 0, 0}}}},
			Pairs:  pair,
		}},
		{"flat box", Config{
			Shapes: map[string]ShapeConfig{"s": {Box: &BoxConfig{HalfWidth: 1}}},
			Pairs:  pair,
		}},
		{"two sided regular", Config{
			Shapes: map[string]ShapeConfig{"s": {Regular: &RegularConfig{Sides: 2, Radius: 1}}},
			Pairs:  pair,
		}},
		{"unknown shape", Config{
			Shapes: map[string]ShapeConfig{"s": box},
			Pairs:  []PairConfig{{A: BodyConfig{Shape: "s"}, B: BodyConfig{Shape: "t"}}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.config.Validate(), ErrInvalidConfig)

			pairs, err := tt.config.Build()
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Nil(t, pairs)
		})
	}

	valid := Config{Shapes: map[string]ShapeConfig{"s": box}, Pairs: pair}
	assert.NoError(t, valid.Validate())
}

func TestPresets(t *testing.T) {
	presets := Presets()
	require.Len(t, presets, 7)
	assert.Equal(t, "segment-point", presets[0].Name)
	assert.Equal(t, "Box VS Hexagon", presets[6].Description)

	for _, m := range presets {
		t.Run(m.Name, func(t *testing.T) {
			c, err := Preset(m.Name)
			require.NoError(t, err)

			pairs, err := c.Build()
			require.NoError(t, err)
			require.Len(t, pairs, 1)

			_, err = feather2d.Collide(pairs[0].BodyA, pairs[0].BodyB)
			require.NoError(t, err)
		})
	}
}

func TestPreset_Results(t *testing.T) {
	tests := []struct {
		mode    string
		overlap bool
	}{
		{"segment-point", false},
		{"triangle-triangle", true},
		{"box-box", true},
		{"box-hexagon", true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			c, err := Preset(tt.mode)
			require.NoError(t, err)
			pairs, err := c.Build()
			require.NoError(t, err)

			result, err := feather2d.Collide(pairs[0].BodyA, pairs[0].BodyB)
			require.NoError(t, err)
			assert.Equal(t, tt.overlap, result.Overlap)
			if !tt.overlap {
				assert.Zero(t, result.Distance)
			}
		})
	}
}

func TestPreset_Unknown(t *testing.T) {
	_, err := Preset("circle-circle")
	require.ErrorIs(t, err, ErrUnknownMode)
}

func TestPresets_Copy(t *testing.T) {
	presets := Presets()
	presets[0].Name = "changed"

	assert.Equal(t, "segment-point", Presets()[0].Name)
}
