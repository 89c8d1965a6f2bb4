package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/grove"
	"github.com/phanxgames/grove/internal/scenes"
	"github.com/phanxgames/grove/live"
	"github.com/phanxgames/grove/resolve"
	"github.com/phanxgames/grove/vmath"
)

func newMaterializeCmd(cfg *Config) *cobra.Command {
	var (
		frames       int
		frameRate    float64
		assets       string
		debug        bool
		placeholders bool
		noStats      bool
	)
	cmd := &cobra.Command{
		Use:   "materialize [scene]",
		Short: "Materialize a scene and print its live object tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := cfg.Scene
			if len(args) == 1 {
				name = args[0]
			}
			flags := cmd.Flags()
			if flags.Changed("frames") {
				cfg.Frames = frames
			}
			if flags.Changed("frame-rate") {
				cfg.FrameRate = frameRate
			}
			if flags.Changed("assets") {
				cfg.Assets = assets
			}
			if flags.Changed("debug") {
				cfg.Debug = debug
			}
			if flags.Changed("placeholders") {
				cfg.Placeholders = placeholders
			}
			if cfg.Frames < 0 {
				return errors.New("frames must not be negative")
			}
			if cfg.FrameRate <= 0 {
				return errors.New("frame rate must be positive")
			}
			return runMaterialize(cmd.OutOrStdout(), cfg, name, !noStats)
		},
	}
	cmd.Flags().IntVar(&frames, "frames", 0, "Animation frames to advance before printing")
	cmd.Flags().Float64Var(&frameRate, "frame-rate", 60, "Frames per second used to advance animations")
	cmd.Flags().StringVar(&assets, "assets", ".", "Directory image references are resolved against")
	cmd.Flags().BoolVar(&debug, "debug", false, "Log materialization statistics")
	cmd.Flags().BoolVar(&placeholders, "placeholders", false, "Paint a checkerboard for missing images")
	cmd.Flags().BoolVar(&noStats, "no-stats", false, "Omit the statistics footer")
	return cmd
}

func runMaterialize(w io.Writer, cfg *Config, name string, stats bool) error {
	build, ok := scenes.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown scene %q (have %v)", name, scenes.Names())
	}

	c := live.NewCompositor()
	res, err := grove.Materialize(c, build(), &grove.Config{
		Resolver: newResolver(cfg),
		Debug:    cfg.Debug,
	})
	if err != nil {
		return err
	}

	dt := 1 / cfg.FrameRate
	for range cfg.Frames {
		c.Update(dt)
	}

	if err := live.Fprint(w, res.Root); err != nil {
		return err
	}
	if stats {
		fmt.Fprintf(w, "\nobjects=%d cache_hits=%d resolver_calls=%d unresolved=%d animations=%d\n",
			res.Stats.Total(), res.Stats.CacheHits, res.Stats.ResolverCalls,
			res.Stats.Unresolved, c.ActiveAnimations())
	}
	return nil
}

func newResolver(cfg *Config) grove.ResourceResolver {
	chain := resolve.Chain{resolve.NewCache(resolve.NewFS(os.DirFS(cfg.Assets)))}
	if cfg.Placeholders {
		checker := resolve.Checkerboard(64, 64, 8,
			vmath.Color{R: 1, G: 0, B: 1, A: 1}, vmath.Color{A: 1})
		chain = append(chain, resolve.Map{scenes.LogoRef: checker})
	}
	return chain
}

func newScenesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List the available scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range scenes.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
