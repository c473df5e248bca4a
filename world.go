package feather2d

import (
	"context"

	"github.com/akmonengine/feather2d/actor"
	"go.uber.org/zap"
)

const DEFAULT_WORKERS = 1

// World is a set of bodies checked against each other on every Detect call
type World struct {
	// List of all bodies in the world
	Bodies  []*actor.Body
	Workers int

	Events Events
	// Logger receives a summary of every detection at debug level. Nil disables logging.
	Logger *zap.Logger
}

// AddBody adds a body to the world
func (w *World) AddBody(body *actor.Body) {
	w.Bodies = append(w.Bodies, body)
}

// RemoveBody removes a body from the world
func (w *World) RemoveBody(body *actor.Body) {
	k := -1
	for i, b := range w.Bodies {
		if b == body {
			k = i
			break
		}
	}

	if k != -1 {
		w.Bodies = append(w.Bodies[:k], w.Bodies[k+1:]...)
	}

	w.Events.forget(body)
}

// Detect runs the narrow phase on every pair of bodies, then sends the collision and trigger
// events of this detection to the subscribed listeners.
//
// Results are ordered like the pairs of AllPairs. On error no event is sent.
func (w *World) Detect(ctx context.Context) ([]Result, error) {
	w.Workers = max(DEFAULT_WORKERS, w.Workers)
	logger := w.logger()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results, err := NarrowPhase(ctx, AllPairs(ctx, w.Bodies, w.Workers), w.Workers)
	if err != nil {
		logger.Error("narrow phase failed", zap.Int("bodies", len(w.Bodies)), zap.Error(err))
		return nil, err
	}

	overlaps := w.Events.recordResults(results)
	w.Events.flush()

	logger.Debug("narrow phase",
		zap.Int("bodies", len(w.Bodies)),
		zap.Int("pairs", len(results)),
		zap.Int("overlaps", overlaps),
		zap.Int("workers", w.Workers),
	)

	return results, nil
}

func (w *World) logger() *zap.Logger {
	if w.Logger == nil {
		return zap.NewNop()
	}
	return w.Logger
}
