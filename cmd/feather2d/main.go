// Package main is a batch CLI running distance, penetration and contact queries on preset or
// YAML scenes.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/akmonengine/feather2d"
	"github.com/akmonengine/feather2d/scene"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const (
	// Flags.
	queryFlagMode    = "mode"
	queryFlagScene   = "scene"
	queryFlagX       = "x"
	queryFlagY       = "y"
	queryFlagAngle   = "angle"
	queryFlagHistory = "history"
	queryFlagWorkers = "workers"
	flagVerbose      = "verbose"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	var logger *zap.Logger

	return &cli.App{
		Name:  "feather2d",
		Usage: "run 2D collision queries",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagVerbose,
				Aliases: []string{"v"},
				Usage:   "log every GJK and EPA iteration",
			},
		},
		Before: func(c *cli.Context) error {
			var err error
			if c.Bool(flagVerbose) {
				logger, err = zap.NewDevelopment()
			} else {
				logger, err = zap.NewProduction()
			}
			return err
		},
		After: func(c *cli.Context) error {
			if logger != nil {
				_ = logger.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "modes",
				Usage: "list the preset scenes",
				Action: func(c *cli.Context) error {
					for _, m := range scene.Presets() {
						fmt.Fprintf(c.App.Writer, "%-18s %s\n", m.Name, m.Description)
					}
					return nil
				},
			},
			{
				Name:  "query",
				Usage: "query every pair of a scene",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    queryFlagMode,
						Aliases: []string{"m"},
						Value:   "box-box",
						Usage:   "preset scene, see the modes command",
					},
					&cli.StringFlag{
						Name:  queryFlagScene,
						Usage: "load the scene from YAML `FILE` instead of a preset",
					},
					&cli.Float64Flag{Name: queryFlagX, Usage: "x position of every shape A"},
					&cli.Float64Flag{Name: queryFlagY, Usage: "y position of every shape A"},
					&cli.Float64Flag{Name: queryFlagAngle, Usage: "rotation of every shape A, in degrees"},
					&cli.BoolFlag{Name: queryFlagHistory, Usage: "print every GJK simplex and EPA edge"},
					&cli.IntFlag{
						Name:  queryFlagWorkers,
						Value: feather2d.DEFAULT_WORKERS,
						Usage: "number of pairs queried at once",
					},
				},
				Action: func(c *cli.Context) error {
					return query(c, logger)
				},
			},
		},
	}
}

func loadScene(c *cli.Context) (*scene.Config, error) {
	var config *scene.Config
	var err error
	if path := c.String(queryFlagScene); path != "" {
		config, err = scene.LoadFile(path)
	} else {
		config, err = scene.Preset(c.String(queryFlagMode))
	}
	if err != nil {
		return nil, err
	}

	for i := range config.Pairs {
		a := &config.Pairs[i].A
		if c.IsSet(queryFlagX) {
			a.X = c.Float64(queryFlagX)
		}
		if c.IsSet(queryFlagY) {
			a.Y = c.Float64(queryFlagY)
		}
		if c.IsSet(queryFlagAngle) {
			a.Angle = c.Float64(queryFlagAngle)
		}
	}

	return config, nil
}

func query(c *cli.Context, logger *zap.Logger) error {
	config, err := loadScene(c)
	if err != nil {
		return err
	}
	pairs, err := config.Build()
	if err != nil {
		return err
	}

	var opts []feather2d.Option
	if c.Bool(flagVerbose) {
		opts = feather2d.NewLogObserver(logger).Options()
	}

	workers := c.Int(queryFlagWorkers)
	results, err := feather2d.NarrowPhase(c.Context, feather2d.SendPairs(c.Context, pairs), workers, opts...)
	if err != nil {
		logger.Error("query failed", zap.Error(err))
		return err
	}
	logger.Debug("query", zap.Int("pairs", len(results)), zap.Int("workers", workers))

	for i, result := range results {
		name := config.Pairs[i].Name
		if name == "" {
			name = fmt.Sprintf("pair %d", i)
		}
		printResult(c.App.Writer, name, result)

		if c.Bool(queryFlagHistory) {
			if err := printHistory(c.App.Writer, result); err != nil {
				return err
			}
		}
	}

	return nil
}

func formatVec2(v mgl64.Vec2) string {
	return fmt.Sprintf("(%.4f, %.4f)", v.X(), v.Y())
}

func printResult(w io.Writer, name string, r feather2d.Result) {
	fmt.Fprintf(w, "%s\n", name)
	fmt.Fprintf(w, "  overlap: %t\n", r.Overlap)
	fmt.Fprintf(w, "  distance: %.4f\n", r.Distance)
	fmt.Fprintf(w, "  witness: A %s B %s\n", formatVec2(r.WitnessA), formatVec2(r.WitnessB))

	if r.Penetration != nil {
		fmt.Fprintf(w, "  penetration: depth %.4f normal %s\n", r.Penetration.Depth, formatVec2(r.Penetration.Normal()))
	}

	if !r.HasManifold {
		fmt.Fprintf(w, "  contacts: none\n")
		return
	}
	fmt.Fprintf(w, "  contacts: %d (flip %t)\n", r.Manifold.Len(), r.Manifold.Flip)
	for _, p := range r.Manifold.Points {
		fmt.Fprintf(w, "    %s depth %.4f\n", formatVec2(p.Position), p.Depth)
	}
}

func printHistory(w io.Writer, r feather2d.Result) error {
	a, b := r.BodyA, r.BodyB

	simplices, err := feather2d.DistanceQuery(a.Shape, a.Transform, b.Shape, b.Transform)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  gjk:\n")
	for i, s := range simplices {
		fmt.Fprintf(w, "    %d: count %d closest %s\n", i, s.Count, formatVec2(s.ClosestPoint()))
	}

	if !r.Overlap {
		return nil
	}

	polytope, edges, err := feather2d.PenetrationQuery(a.Shape, a.Transform, b.Shape, b.Transform, simplices[len(simplices)-1])
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  epa:\n")
	for i, e := range edges {
		fmt.Fprintf(w, "    %d: edge %d-%d distsq %.4f\n", i, e.Index1, e.Index2, e.DistSq)
	}
	fmt.Fprintf(w, "  polytope: %d vertices\n", len(polytope.Vertices))

	return nil
}
