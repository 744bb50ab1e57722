package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Resonant/internal/geom"
	"github.com/Garsondee/Resonant/internal/overlay"
)

const hudLineHeight = 14

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// hudLines builds the key legend and, in debug mode, the live range readout.
func (g *Game) hudLines() []string {
	p := g.cfg.Active()
	lines := []string{
		fmt.Sprintf("profile: %s  job: %s", p.Name, g.world.Player.Job),
		fmt.Sprintf("flank: %s", p.Positionals.FlankType.Description()),
		"W/S move  A/D turn  F face target",
		"arrows orbit  =/- zoom  Tab target  Esc clear",
		"1/2/3 flank mode  J job  R spin  T track  C copy  F5 save",
		"[H] toggle HUD",
	}
	if !g.cfg.Debug {
		return lines
	}

	player := g.world.Player
	lines = append(lines, "", fmt.Sprintf("player hitbox: %.2f", player.HitboxRadius))
	if t := g.world.Target(); t != nil {
		melee, ability := overlay.Ranges(player, t)
		lines = append(lines,
			fmt.Sprintf("target: %s (%s) hitbox %.2f", t.Name, t.Kind, t.HitboxRadius),
			fmt.Sprintf("distance: %.2f  melee %.2f  ability %.2f", geom.PlanarDistance(player.Position, t.Position), melee, ability),
		)
	}
	if g.last.HasHighlight {
		band := "melee"
		if g.last.Highlighted.Ability {
			band = "ability"
		}
		lines = append(lines, fmt.Sprintf("in: %s %s %s", g.last.Highlighted.Zone, band, g.last.Highlighted.Region.Positional))
	}
	return lines
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := g.hudLines()
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len(l))
	}
	const padX, padY = 6, 4
	boxW := float32(maxLen*7 + padX*2)
	boxH := float32(len(lines)*hudLineHeight + padY*2)
	bx := float32(g.camera.OffX + 8)
	by := float32(g.camera.OffY+g.camera.Height) - boxH - 8

	vector.FillRect(screen, bx, by, boxW, boxH, color.RGBA{R: 8, G: 8, B: 14, A: 210}, false)
	vector.StrokeRect(screen, bx, by, boxW, boxH, 1.0, color.RGBA{R: 70, G: 70, B: 110, A: 180}, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(bx)+padX, float64(by)+padY)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 220, G: 220, B: 235, A: 255})
	op.LineSpacing = hudLineHeight
	text.Draw(screen, strings.Join(lines, "\n"), hudFace, op)
}
