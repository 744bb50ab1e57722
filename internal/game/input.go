package game

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap/zapcore"

	"github.com/Garsondee/Resonant/internal/config"
	"github.com/Garsondee/Resonant/internal/regions"
)

// handleInput processes movement (held) and toggles (edge-triggered).
func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	if ebiten.IsKeyPressed(ebiten.KeyW) {
		g.world.Move(1)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		g.world.Move(-1)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		g.world.Turn(-1)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		g.world.Turn(1)
	}

	const orbitStep = 0.03
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.camera.Orbit(-orbitStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.camera.Orbit(orbitStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.camera.Orbit(0, orbitStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.camera.Orbit(0, -orbitStep)
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.camera.Zoom(math.Pow(0.9, wy))
	}
	if pressed(ebiten.KeyEqual) {
		g.camera.Zoom(0.8)
	}
	if pressed(ebiten.KeyMinus) {
		g.camera.Zoom(1.25)
	}

	if pressed(ebiten.KeyF) {
		g.world.FaceTarget()
	}
	if pressed(ebiten.KeyTab) {
		t := g.world.CycleTarget()
		g.event("target", zapcore.InfoLevel, fmt.Sprintf("%s (%s)", t.Name, t.Kind))
	}
	if pressed(ebiten.KeyEscape) {
		g.world.ClearTarget()
		g.event("target", zapcore.InfoLevel, "cleared")
	}
	if pressed(ebiten.KeyJ) {
		g.world.CycleJob()
	}
	if pressed(ebiten.KeyR) {
		on := g.world.ToggleSpin()
		g.event("target", zapcore.DebugLevel, fmt.Sprintf("spin %t", on))
	}
	if pressed(ebiten.KeyT) {
		on := g.world.ToggleTrack()
		g.event("target", zapcore.DebugLevel, fmt.Sprintf("track %t", on))
	}

	flankKeys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}
	for i, k := range flankKeys {
		if pressed(k) && i < len(regions.FlankModes) {
			g.setFlankMode(regions.FlankModes[i])
		}
	}

	if pressed(ebiten.KeyC) {
		g.copyActiveProfile()
	}
	if pressed(ebiten.KeyF5) {
		g.saveConfig()
	}
	if pressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	g.prevKeys = currentKeys
}

func (g *Game) setFlankMode(m regions.FlankMode) {
	g.cfg.Active().Positionals.FlankType = m
	g.event("config", zapcore.InfoLevel, "flank: "+m.Description())
}

func (g *Game) saveConfig() {
	if g.cfgPath == "" {
		g.event("config", zapcore.WarnLevel, "no config path to save to")
		return
	}
	if err := config.Save(g.cfgPath, g.cfg); err != nil {
		g.event("config", zapcore.ErrorLevel, err.Error())
		return
	}
	// Pick up our own write as the new baseline.
	if _, err := g.watcher.Load(); err != nil {
		g.event("config", zapcore.WarnLevel, err.Error())
	}
	g.event("config", zapcore.InfoLevel, "saved "+g.cfgPath)
}
