package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Garsondee/Resonant/internal/config"
	"github.com/Garsondee/Resonant/internal/draw"
	"github.com/Garsondee/Resonant/internal/geom"
	"github.com/Garsondee/Resonant/internal/logging"
	"github.com/Garsondee/Resonant/internal/overlay"
	"github.com/Garsondee/Resonant/internal/regions"
)

type sweepOptions struct {
	grid         int
	extent       float64
	targetHitbox float64
	playerHitbox float64
}

// sweepStats is the result of walking the player across a grid around a
// target with one flank mode.
type sweepStats struct {
	mode    regions.FlankMode
	regions int
	melee   float64
	ability float64

	// rows[0] is the row furthest in front of the target.
	rows      [][]byte
	occupancy map[byte]int

	fills   int
	strokes int
	frames  int
}

func main() {
	var mode string
	var grid int
	var extent float64
	var targetHitbox float64
	var playerHitbox float64
	var frontSeparate bool
	var rearSeparate bool
	var ability bool
	var configPath string
	var logLevel string

	flag.StringVar(&mode, "mode", "all", "flank mode to sweep: all, full, rear-only or full-separated")
	flag.IntVar(&grid, "grid", 41, "grid cells per side")
	flag.Float64Var(&extent, "extent", 8, "half-width of the swept square in world units")
	flag.Float64Var(&targetHitbox, "target-hitbox", 1, "target hitbox radius")
	flag.Float64Var(&playerHitbox, "player-hitbox", 0.5, "player hitbox radius")
	flag.BoolVar(&frontSeparate, "front-separate", false, "split the front sector")
	flag.BoolVar(&rearSeparate, "rear-separate", false, "split the rear sector")
	flag.BoolVar(&ability, "ability", true, "include the ability range band")
	flag.StringVar(&configPath, "config", "", "take the active profile from this configuration file")
	flag.StringVar(&logLevel, "log-level", "warn", "log level")
	flag.Parse()

	logger, err := logging.New(logLevel, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	if grid <= 0 || grid > 201 {
		fmt.Fprintln(os.Stderr, "error: -grid must be in 1..201")
		os.Exit(2)
	}
	if extent <= 0 {
		fmt.Fprintln(os.Stderr, "error: -extent must be > 0")
		os.Exit(2)
	}
	modes, err := parseModes(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	profile := config.NewProfile("report")
	if configPath != "" {
		c, err := config.Load(configPath)
		if err != nil {
			logger.Fatal("load configuration", zap.Error(err))
		}
		profile = c.Active()
	}
	// Explicit flags override the profile.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "front-separate":
			profile.Positionals.FrontSeparate = frontSeparate
		case "rear-separate":
			profile.Positionals.RearSeparate = rearSeparate
		case "ability":
			profile.Positionals.MeleeAbilityRange = ability
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := sweepOptions{grid: grid, extent: extent, targetHitbox: targetHitbox, playerHitbox: playerHitbox}
	all, err := sweepAll(ctx, logger, profile, modes, opts)
	if err != nil {
		logger.Fatal("sweep", zap.Error(err))
	}
	printReport(os.Stdout, profile, opts, all)
}

func parseModes(s string) ([]regions.FlankMode, error) {
	if s == "all" {
		return append([]regions.FlankMode(nil), regions.FlankModes...), nil
	}
	var out []regions.FlankMode
	for _, name := range strings.Split(s, ",") {
		m, err := regions.ParseFlankMode(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// sweepAll runs one sweep per mode in parallel. Each sweep owns its
// profile copy, scene and recorder.
func sweepAll(ctx context.Context, logger *zap.Logger, base *config.Profile, modes []regions.FlankMode, opts sweepOptions) ([]sweepStats, error) {
	results := make([]sweepStats, len(modes))
	g, ctx := errgroup.WithContext(ctx)
	for i, m := range modes {
		g.Go(func() error {
			p := *base
			p.Positionals.FlankType = m
			st, err := sweep(ctx, &p, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", m, err)
			}
			logger.Debug("sweep done", zap.Stringer("mode", m), zap.Int("frames", st.frames))
			results[i] = st
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// sweep renders one frame per grid cell with the player standing at the
// cell centre and the target at the origin facing +Z.
func sweep(ctx context.Context, p *config.Profile, opts sweepOptions) (sweepStats, error) {
	st := sweepStats{
		mode:      p.Positionals.FlankType,
		occupancy: map[byte]int{},
	}
	cell := 2 * opts.extent / float64(opts.grid)
	scene := overlay.NewScene(
		overlay.WithPlayerHitbox(opts.playerHitbox),
		overlay.WithTarget(geom.Vec3{}, 0, opts.targetHitbox),
		overlay.WithProfile(p),
		overlay.WithProjector(draw.TopDown(geom.Vec2{X: 400, Y: 400}, 400/opts.extent, 800, 800)),
	)

	for j := 0; j < opts.grid; j++ {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		row := make([]byte, opts.grid)
		z := opts.extent - (float64(j)+0.5)*cell
		for i := 0; i < opts.grid; i++ {
			x := -opts.extent + (float64(i)+0.5)*cell
			scene.Frame.Player.Position = geom.Vec3{X: x, Z: z}

			res := scene.Render()
			st.regions, st.melee, st.ability = res.Regions, res.Melee, res.Ability
			st.fills += scene.Recorder.Count(draw.CallFill)
			st.strokes += scene.Recorder.Count(draw.CallStroke)
			st.frames++

			row[i] = cellSymbol(res)
			st.occupancy[row[i]]++
		}
		st.rows = append(st.rows, row)
	}
	return st, nil
}

// cellSymbol maps the highlighted region to F, L or R for front, flank or
// rear; lowercase marks the ability band and '.' means no region.
func cellSymbol(res overlay.Result) byte {
	if !res.HasHighlight {
		return '.'
	}
	var c byte
	switch res.Highlighted.Zone {
	case regions.ZoneFront:
		c = 'F'
	case regions.ZoneFlank:
		c = 'L'
	default:
		c = 'R'
	}
	if res.Highlighted.Ability {
		c += 'a' - 'A'
	}
	return c
}

func printReport(w io.Writer, p *config.Profile, opts sweepOptions, all []sweepStats) {
	pos := p.Positionals
	fmt.Fprintf(w, "=== Headless Positional Report ===\n")
	fmt.Fprintf(w, "grid=%d extent=%.1f target_hitbox=%.2f player_hitbox=%.2f front_separate=%t rear_separate=%t ability=%t\n\n",
		opts.grid, opts.extent, opts.targetHitbox, opts.playerHitbox, pos.FrontSeparate, pos.RearSeparate, pos.MeleeAbilityRange)

	for _, st := range all {
		fmt.Fprintf(w, "--- %s: %s ---\n", st.mode, st.mode.Description())
		fmt.Fprintf(w, "regions=%d melee=%.2f ability=%.2f\n", st.regions, st.melee, st.ability)
		fmt.Fprintf(w, "occupancy: front=%d flank=%d rear=%d front_ability=%d flank_ability=%d rear_ability=%d none=%d\n",
			st.occupancy['F'], st.occupancy['L'], st.occupancy['R'],
			st.occupancy['f'], st.occupancy['l'], st.occupancy['r'], st.occupancy['.'])
		fmt.Fprintf(w, "draw_calls: frames=%d fills=%d strokes=%d avg_fills=%.1f avg_strokes=%.1f\n",
			st.frames, st.fills, st.strokes, avg(st.fills, st.frames), avg(st.strokes, st.frames))
		for _, row := range st.rows {
			fmt.Fprintf(w, "  %s\n", row)
		}
		fmt.Fprintln(w)
	}
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
