package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Garsondee/Resonant/internal/config"
	"github.com/Garsondee/Resonant/internal/draw"
	"github.com/Garsondee/Resonant/internal/geom"
	"github.com/Garsondee/Resonant/internal/overlay"
)

const (
	viewWidth   = 1280
	viewHeight  = 760
	reloadEvery = 30 // frames between config file checks
	gridSpacing = 5.0
)

var (
	groundBrush = draw.NewBrush(color.NRGBA{R: 60, G: 66, B: 80, A: 255}, 1)
	npcBrush    = draw.WithFill(draw.NewBrush(color.NRGBA{R: 200, G: 200, B: 210, A: 255}, 2), color.NRGBA{R: 120, G: 120, B: 140, A: 90})
	otherBrush  = draw.NewBrush(color.NRGBA{R: 120, G: 160, B: 200, A: 255}, 2)
	facingBrush = draw.NewBrush(color.NRGBA{R: 255, G: 255, B: 255, A: 200}, 2)
)

// Options configures a Game.
type Options struct {
	ConfigPath string
	Logger     *zap.Logger
}

// Game is the interactive overlay demo: a small simulated scene viewed
// through a perspective camera with the overlay drawn on top.
type Game struct {
	width  int
	height int

	logger  *zap.Logger
	cfgPath string
	cfg     *config.Configuration
	watcher *config.Watcher
	jobs    *config.JobObserver

	world  *World
	camera *Camera
	events *EventLog
	last   overlay.Result
	tick   int

	showHUD  bool
	prevKeys map[ebiten.Key]bool
	copyText func(string) error
}

// New loads the configuration at opts.ConfigPath (a missing file yields
// the defaults) and builds the demo scene.
func New(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	watcher := config.NewWatcher(opts.ConfigPath, reloadEvery)
	cfg, err := watcher.Load()
	if err != nil {
		return nil, err
	}

	g := &Game{
		width:    viewWidth + logPanelWidth,
		height:   viewHeight,
		logger:   logger,
		cfgPath:  opts.ConfigPath,
		cfg:      cfg,
		watcher:  watcher,
		jobs:     config.NewJobObserver(config.UnknownJob),
		world:    NewWorld(),
		camera:   NewCamera(viewWidth, viewHeight),
		events:   NewEventLog(),
		showHUD:  true,
		prevKeys: make(map[ebiten.Key]bool),
		copyText: writeClipboard,
	}
	g.applyViewport()
	g.event("config", zapcore.InfoLevel, fmt.Sprintf("loaded %d profile(s), active %q", len(cfg.Profiles), cfg.Active().Name))
	return g, nil
}

// event records msg in the on-screen log and the process log.
func (g *Game) event(source string, level zapcore.Level, msg string) {
	g.events.Add(g.tick, source, level, msg)
	if ce := g.logger.Check(level, msg); ce != nil {
		ce.Write(zap.String("source", source), zap.Int("tick", g.tick))
	}
}

// applyViewport fits the camera to the configured window box.
func (g *Game) applyViewport() {
	box := g.cfg.ViewportWindowBox
	w, h := box.SizeWith(viewWidth, viewHeight)
	g.camera.SetViewport(box.TopLeft[0], box.TopLeft[1], w, h)
}

func (g *Game) Update() error {
	g.handleInput()
	g.tick++
	g.world.Step()
	g.camera.Focus = g.world.Player.Position

	g.pollConfig()
	g.observeJob()
	return nil
}

// pollConfig picks up edits to the configuration file.
func (g *Game) pollConfig() {
	cfg, changed, err := g.watcher.Poll()
	if err != nil {
		g.event("config", zapcore.WarnLevel, err.Error())
		return
	}
	if !changed {
		return
	}
	g.cfg = cfg
	if p := cfg.ProfileForJob(g.jobs.Current()); p != nil {
		cfg.SetActive(p)
	}
	g.applyViewport()
	g.event("config", zapcore.InfoLevel, fmt.Sprintf("reloaded, active %q", cfg.Active().Name))
}

// observeJob switches to the profile bound to the player's job when the
// job changes. Jobs without a bound profile keep the current one.
func (g *Game) observeJob() {
	job := config.UnknownJob
	if g.world.Player != nil {
		job = g.world.Player.Job
	}
	job, changed := g.jobs.Observe(job)
	if !changed {
		return
	}
	p := g.cfg.ProfileForJob(job)
	if p == nil {
		g.event("job", zapcore.DebugLevel, fmt.Sprintf("%s has no profile", job))
		return
	}
	g.cfg.SetActive(p)
	g.event("job", zapcore.InfoLevel, fmt.Sprintf("%s -> profile %q", job, p.Name))
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 16, G: 18, B: 24, A: 255})

	surface := draw.NewImageSurface(screen, true)
	canvas := draw.NewCanvas(g.camera, surface)
	g.drawGround(canvas)
	g.drawActors(canvas)
	g.last = overlay.NewRenderer(g.camera, surface).Draw(g.world.Frame(), g.cfg.Active())

	c := g.camera
	vector.StrokeRect(screen, float32(c.OffX), float32(c.OffY), float32(c.Width), float32(c.Height), 1.0, color.RGBA{R: 70, G: 70, B: 110, A: 200}, false)

	g.events.Draw(screen, viewWidth, g.height)
	if g.showHUD {
		g.drawHUD(screen)
	}
}

// drawGround draws a grid on the Y=0 plane around the player.
func (g *Game) drawGround(c *draw.Canvas) {
	for v := -worldHalfSize; v <= worldHalfSize; v += gridSpacing {
		c.Segment(geom.Vec3{X: v, Z: -worldHalfSize}, geom.Vec3{X: v, Z: worldHalfSize}, groundBrush)
		c.Segment(geom.Vec3{X: -worldHalfSize, Z: v}, geom.Vec3{X: worldHalfSize, Z: v}, groundBrush)
	}
}

// drawActors draws each NPC's hitbox footprint with a facing tick.
func (g *Game) drawActors(c *draw.Canvas) {
	for _, a := range g.world.NPCs {
		b := npcBrush
		if a.Kind != overlay.KindBattleNPC {
			b = otherBrush
		}
		c.Circle(a.Position, a.HitboxRadius, b)
		c.Segment(a.Position, geom.Radial(a.Position, a.HitboxRadius, a.Rotation), facingBrush)
	}
	p := g.world.Player
	c.Segment(p.Position, geom.Radial(p.Position, 1.5, p.Rotation), facingBrush)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
