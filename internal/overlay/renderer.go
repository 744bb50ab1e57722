package overlay

import (
	"github.com/Garsondee/Resonant/internal/config"
	"github.com/Garsondee/Resonant/internal/draw"
	"github.com/Garsondee/Resonant/internal/geom"
	"github.com/Garsondee/Resonant/internal/regions"
)

// Hitbox marker radii and stroke widths.
const (
	hitboxOuterRadius    = 0.02
	hitboxInnerRadius    = 0.01
	hitboxOuterThickness = 5
	hitboxInnerThickness = 4
	hitboxDeltaThickness = 2
)

// Result summarises what one Draw call produced.
type Result struct {
	// Regions is the number of sector bands derived for the target.
	Regions int

	// Highlighted is the first region containing the player, valid when
	// HasHighlight is set.
	Highlighted  regions.Pair
	HasHighlight bool

	Melee   float64
	Ability float64
}

// Renderer draws one overlay frame onto a surface.
type Renderer struct {
	canvas *draw.Canvas
}

// NewRenderer binds the projection and destination for every frame.
func NewRenderer(proj draw.Projector, surface draw.Surface) *Renderer {
	return &Renderer{canvas: draw.NewCanvas(proj, surface)}
}

// Draw renders the player ring, facing cone, target ring, target
// positionals and hitbox marker in that order, each gated by the profile.
// Nothing is drawn without a player.
func (r *Renderer) Draw(f Frame, p *config.Profile) Result {
	var res Result
	if f.Player == nil || p == nil {
		return res
	}

	if p.PlayerRing.Enabled {
		r.canvas.Circle(f.Player.Position, p.PlayerRing.Radius, p.PlayerRing.Brush.Brush())
	}
	if p.Cone.Enabled {
		r.drawCone(f, p.Cone)
	}
	if p.TargetRing.Enabled && f.Target != nil {
		r.canvas.Circle(f.Target.Position, p.TargetRing.Radius, p.TargetRing.Brush.Brush())
	}
	if p.Positionals.Enabled {
		res = r.drawPositionals(f, p.Positionals)
	}
	if p.Hitbox.Enabled {
		r.drawHitbox(f, p.Hitbox)
	}
	return res
}

// drawCone points the cone at the target when there is one, otherwise
// along the player's facing.
func (r *Renderer) drawCone(f Frame, c config.ConeSettings) {
	direction := f.Player.Rotation
	if f.Target != nil {
		direction = geom.PlanarBearing(f.Player.Position, f.Target.Position)
	}
	r.canvas.ConeCentered(f.Player.Position, c.Radius, direction, geom.Radians(float64(c.Angle)), c.Brush.Brush())
}

func (r *Renderer) drawPositionals(f Frame, c config.PositionalsSettings) Result {
	var res Result
	if f.Target == nil || f.Target.Kind != KindBattleNPC {
		return res
	}

	res.Melee, res.Ability = Ranges(f.Player, f.Target)
	pairs := regions.FromSettings(c.Regions(), res.Melee, res.Ability)
	res.Regions = len(pairs)
	anchor := f.Target.Pose()

	if c.ArrowEnabled {
		r.canvas.ActorArrow(anchor, res.Melee, 0, c.ArrowScale, c.BrushFront())
	}

	for _, pair := range pairs {
		drawPair(r.canvas, anchor, pair, pair.Brush)
	}

	if !c.HighlightCurrentRegion {
		return res
	}
	res.Highlighted, res.HasHighlight = regions.Highlight(pairs, anchor, f.Player.Position)
	if res.HasHighlight {
		b := res.Highlighted.Brush
		fill := draw.WithFill(b, draw.ScaleAlpha(b.Color, c.HighlightTransparencyMultiplier))
		drawPair(r.canvas, anchor, res.Highlighted, fill)
	}
	return res
}

func drawPair(c *draw.Canvas, anchor geom.Pose, pair regions.Pair, b draw.Brush) {
	reg := pair.Region
	c.ActorDonutSlice(anchor, reg.Inner, reg.Outer, reg.Positional.Start, reg.Positional.End, b)
}

// drawHitbox marks the player's centre. With UseTargetY the marker sits at
// the target's height and can be joined to the player's real position.
func (r *Renderer) drawHitbox(f Frame, c config.HitboxSettings) {
	pos := f.Player.Position
	color := c.Color.NRGBA()

	if c.UseTargetY && f.Target != nil {
		pos = pos.WithY(f.Target.Position.Y)
		if c.ShowTargetDeltaY {
			r.canvas.Segment(pos, f.Player.Position, draw.NewBrush(color, hitboxDeltaThickness))
		}
	}

	if c.Outline {
		r.canvas.Circle(pos, hitboxOuterRadius, draw.NewBrush(c.OutlineColor.NRGBA(), hitboxOuterThickness))
	}
	r.canvas.Circle(pos, hitboxInnerRadius, draw.NewBrush(color, hitboxInnerThickness))
}
