package main

import (
	"context"
	"flag"
	"image"
	"os"
	"os/signal"

	"github.com/plan-systems/klog"

	"github.com/voidshard/sitegraph"
	"github.com/voidshard/sitegraph/internal/graph"
)

func main() {
	klog.InitFlags(flag.CommandLine)
	flag.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	cfg := sitegraph.DefaultConfig()
	p := sitegraph.DefaultParams()

	mode := flag.String("mode", string(sitegraph.ModeVoronoi), "one of: cursor naive bisectors ranges voronoi traversal")
	width := flag.Int("width", cfg.Area.Dx(), "area width")
	height := flag.Int("height", cfg.Area.Dy(), "area height")
	rule := flag.String("rule", cfg.Rule.String(), "proximity rule: bisector knearest delaunay")
	out := flag.String("out", "sitegraph.png", "output file (.png .svg .gif .json)")
	play := flag.Bool("play", false, "log traversal frames as they play")

	flag.IntVar(&cfg.Count, "points", cfg.Count, "number of sites")
	flag.Int64Var(&cfg.Seed, "seed", 0, "rng seed (0 for random)")
	flag.Float64Var(&cfg.MinDistance, "min-dist", 0, "minimum distance between sites")
	flag.Float64Var(&cfg.Margin, "margin", 0, "minimum distance from sites to the edge")
	flag.IntVar(&cfg.Attempts, "attempts", 0, "candidates tried per site with -min-dist or -margin")
	flag.IntVar(&cfg.K, "k", cfg.K, "neighbour count for the knearest rule")
	flag.BoolVar(&cfg.Tree, "tree", false, "use a k-d tree for nearest site queries")

	flag.Float64Var(&p.Cursor.X, "cursor-x", p.Cursor.X, "cursor x (cursor mode)")
	flag.Float64Var(&p.Cursor.Y, "cursor-y", p.Cursor.Y, "cursor y (cursor mode)")
	flag.Float64Var(&p.Step, "step", p.Step, "raster sample step (naive mode)")
	flag.Float64Var(&p.Radius, "radius", p.Radius, "bisector radius (ranges mode)")
	flag.IntVar(&p.Start, "start", p.Start, "start site (traversal mode)")
	flag.Float64Var(&p.Speed, "speed", p.Speed, "frames per second (traversal mode)")
	flag.IntVar(&p.MaxDepth, "max-depth", 0, "traversal depth limit, 0 for none")
	flag.IntVar(&p.Target, "target", p.Target, "draw the path from -start to this site (traversal mode), -1 for none")

	flag.Parse()

	err := run(cfg, p, *mode, *rule, *width, *height, *out, *play)
	if err != nil {
		klog.Errorf("sitegraph: %v", err)
		klog.Flush()
		os.Exit(1)
	}

	klog.Flush()
}

func run(cfg *sitegraph.Config, p *sitegraph.Params, modeName, ruleName string, w, h int, out string, play bool) error {
	mode, err := sitegraph.ParseMode(modeName)
	if err != nil {
		return err
	}
	cfg.Rule, err = graph.ParseRule(ruleName)
	if err != nil {
		return err
	}
	cfg.Area = image.Rect(0, 0, w, h)

	sg, err := sitegraph.New(cfg)
	if err != nil {
		return err
	}
	klog.Infof("sitegraph: %d sites, seed %d", sg.Len(), sg.Seed)

	sc, err := sg.Scene(mode, p)
	if err != nil {
		return err
	}

	if play && len(sc.Frames) > 0 {
		offsets, err := sc.Schedule()
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		err = sc.Play(ctx, func(f sitegraph.Frame) error {
			klog.Infof("%v step %d: visit %d depth %d parent %d frontier %v", offsets[f.Step], f.Step, f.Vertex, f.Depth, f.Parent, f.Frontier)
			return nil
		})
		if err != nil {
			return err
		}
	}

	err = sitegraph.Save(out, sc, sitegraph.DefaultStyle())
	if err != nil {
		return err
	}
	klog.Infof("sitegraph: wrote %s scene to %s", mode, out)
	return nil
}
