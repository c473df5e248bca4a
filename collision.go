package feather2d

import (
	"context"
	"fmt"
	"sync"

	"github.com/akmonengine/feather2d/actor"
	"github.com/akmonengine/feather2d/contact"
	"github.com/akmonengine/feather2d/epa"
	"github.com/akmonengine/feather2d/gjk"
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/sync/errgroup"
)

// Pair represents two bodies to run a narrow-phase query on
type Pair struct {
	BodyA *actor.Body
	BodyB *actor.Body
}

// Result holds everything a narrow-phase query learned about a pair.
//
// Separated pairs only carry the distance and witness points. Overlapping pairs also carry the
// penetration found by EPA. The manifold is built along the penetration normal when the pair
// overlaps, and along the witness direction otherwise: a separated pair then exposes its
// reference and incident edges without any contact point.
type Result struct {
	Pair

	Overlap  bool
	Distance float64
	WitnessA mgl64.Vec2
	WitnessB mgl64.Vec2
	Simplex  gjk.Simplex

	Penetration *epa.Penetration
	Manifold    contact.Manifold
	HasManifold bool
}

type options struct {
	observer     gjk.Observer
	edgeObserver epa.EdgeObserver
}

// Option configures a query
type Option func(*options)

// WithObserver records every GJK iteration
func WithObserver(observer gjk.Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// WithEdgeObserver records every EPA iteration
func WithEdgeObserver(observer epa.EdgeObserver) Option {
	return func(o *options) {
		o.edgeObserver = observer
	}
}

// Collide runs the complete narrow phase between two bodies: GJK, then EPA and the contact
// manifold when they overlap.
func Collide(a, b *actor.Body, opts ...Option) (Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	simplex, err := gjk.Distance(a, b, o.observer)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Pair:     Pair{BodyA: a, BodyB: b},
		Overlap:  simplex.Overlap(),
		Distance: simplex.Distance(),
		Simplex:  simplex,
	}
	result.WitnessA, result.WitnessB = simplex.WitnessPoints()

	normal := actor.Normalize(result.WitnessB.Sub(result.WitnessA))
	if result.Overlap {
		penetration, err := epa.EPA(a, b, simplex, o.edgeObserver)
		if err != nil {
			return Result{}, err
		}
		result.Penetration = &penetration
		normal = penetration.Normal()
	}

	// Touching shapes have no direction to build a manifold along
	if normal.LenSqr() == 0 {
		return result, nil
	}
	result.Manifold, result.HasManifold = epa.BuildManifold(a, b, normal)

	return result, nil
}

// NarrowPhase runs Collide on every pair received, with at most workersCount queries at once.
//
// Each query owns its simplex and polytope, so pairs are independent; observers given as
// options are shared and must be safe for concurrent use. Results come back in the order the
// pairs were received. The first failing query, or the cancellation of ctx, aborts the phase.
func NarrowPhase(ctx context.Context, pairs <-chan Pair, workersCount int, opts ...Option) ([]Result, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(DEFAULT_WORKERS, workersCount))

	var mu sync.Mutex
	collected := make(map[int]Result)
	count := 0

dispatch:
	for {
		select {
		case <-gctx.Done():
			break dispatch
		case pair, ok := <-pairs:
			if !ok {
				break dispatch
			}

			index := count
			count++
			g.Go(func() error {
				result, err := Collide(pair.BodyA, pair.BodyB, opts...)
				if err != nil {
					return fmt.Errorf("pair %d: %w", index, err)
				}

				mu.Lock()
				collected[index] = result
				mu.Unlock()
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]Result, count)
	for i := range results {
		results[i] = collected[i]
	}

	return results, nil
}
