package feather2d

import (
	"github.com/akmonengine/feather2d/epa"
	"github.com/akmonengine/feather2d/gjk"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// LogObserver logs every GJK and EPA iteration at debug level.
// It is safe for concurrent use and can be shared by a whole NarrowPhase.
type LogObserver struct {
	logger *zap.Logger
}

// NewLogObserver creates a LogObserver writing to logger; a nil logger discards everything
func NewLogObserver(logger *zap.Logger) *LogObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogObserver{logger: logger}
}

// Options returns the query options that attach the observer to both algorithms
func (o *LogObserver) Options() []Option {
	return []Option{WithObserver(o), WithEdgeObserver(o)}
}

func (o *LogObserver) ObserveSimplex(iteration int, simplex gjk.Simplex) {
	if ce := o.logger.Check(zap.DebugLevel, "gjk iteration"); ce != nil {
		ce.Write(
			zap.Int("iteration", iteration),
			zap.Int("count", simplex.Count),
			vec2Field("closest", simplex.ClosestPoint()),
			zap.Float64("distance", simplex.Distance()),
		)
	}
}

func (o *LogObserver) ObserveEdge(iteration int, edge epa.Edge) {
	if ce := o.logger.Check(zap.DebugLevel, "epa iteration"); ce != nil {
		ce.Write(
			zap.Int("iteration", iteration),
			zap.Ints("edge", []int{edge.Index1, edge.Index2}),
			vec2Field("direction", edge.Direction),
			zap.Float64("distsq", edge.DistSq),
		)
	}
}

func vec2Field(key string, v mgl64.Vec2) zap.Field {
	return zap.Float64s(key, v[:])
}
