package feather2d

import (
	"context"

	"github.com/akmonengine/feather2d/actor"
)

// AllPairs sends every pair of distinct bodies, (i, j) with i < j, in index order.
// Nothing is pruned: every pair reaches the narrow phase.
// The channel is closed once all pairs are sent, or as soon as ctx is done.
func AllPairs(ctx context.Context, bodies []*actor.Body, workersCount int) <-chan Pair {
	pairs := make(chan Pair, max(DEFAULT_WORKERS, workersCount))

	go func() {
		defer close(pairs)

		for i := 0; i < len(bodies); i++ {
			for j := i + 1; j < len(bodies); j++ {
				select {
				case <-ctx.Done():
					return
				case pairs <- Pair{BodyA: bodies[i], BodyB: bodies[j]}:
				}
			}
		}
	}()

	return pairs
}

// PairCount returns the number of pairs AllPairs sends for n bodies
func PairCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// SendPairs sends the given pairs in order, for callers that already know which pairs to check.
// The channel is closed once all pairs are sent, or as soon as ctx is done.
func SendPairs(ctx context.Context, pairs []Pair) <-chan Pair {
	ch := make(chan Pair, len(pairs))

	go func() {
		defer close(ch)

		for _, pair := range pairs {
			select {
			case <-ctx.Done():
				return
			case ch <- pair:
			}
		}
	}()

	return ch
}
