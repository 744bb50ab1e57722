package overlay

import (
	"github.com/Garsondee/Resonant/internal/config"
	"github.com/Garsondee/Resonant/internal/draw"
	"github.com/Garsondee/Resonant/internal/geom"
)

// Scene is a headless frame harness. It renders into a draw.Recorder so
// tests and tooling can inspect the emitted fills and strokes without a
// window.
type Scene struct {
	Frame    Frame
	Profile  *config.Profile
	Recorder *draw.Recorder

	proj draw.Projector
}

// SceneOption configures a Scene during construction.
type SceneOption func(*Scene)

// WithPlayerAt places the player. It has no effect without a player.
func WithPlayerAt(pos geom.Vec3, rotation float64) SceneOption {
	return func(s *Scene) {
		if s.Frame.Player != nil {
			s.Frame.Player.Position = pos
			s.Frame.Player.Rotation = rotation
		}
	}
}

// WithPlayerHitbox sets the player's hitbox radius.
func WithPlayerHitbox(radius float64) SceneOption {
	return func(s *Scene) {
		if s.Frame.Player != nil {
			s.Frame.Player.HitboxRadius = radius
		}
	}
}

// WithoutPlayer renders a frame with no loaded character.
func WithoutPlayer() SceneOption {
	return func(s *Scene) { s.Frame.Player = nil }
}

// WithTarget adds a battle NPC target.
func WithTarget(pos geom.Vec3, rotation, hitbox float64) SceneOption {
	return func(s *Scene) {
		s.Frame.Target = &Actor{
			Name:         "target",
			Position:     pos,
			Rotation:     rotation,
			HitboxRadius: hitbox,
			Kind:         KindBattleNPC,
		}
	}
}

// WithTargetKind changes the kind of an already-added target.
func WithTargetKind(k ActorKind) SceneOption {
	return func(s *Scene) {
		if s.Frame.Target != nil {
			s.Frame.Target.Kind = k
		}
	}
}

// WithProfile replaces the default profile.
func WithProfile(p *config.Profile) SceneOption {
	return func(s *Scene) { s.Profile = p }
}

// WithProjector replaces the default top-down projection.
func WithProjector(p draw.Projector) SceneOption {
	return func(s *Scene) { s.proj = p }
}

// NewScene builds a scene with a player at the origin facing +Z, a default
// profile and a 1000x1000 top-down view at 20 pixels per unit. Options are
// applied in order.
func NewScene(opts ...SceneOption) *Scene {
	s := &Scene{
		Frame:    Frame{Player: &Actor{Name: "player", Kind: KindPlayer}},
		Profile:  config.NewProfile("scene"),
		Recorder: &draw.Recorder{},
		proj:     draw.TopDown(geom.Vec2{X: 500, Y: 500}, 20, 1000, 1000),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Render clears the recorder and draws one frame.
func (s *Scene) Render() Result {
	s.Recorder.Reset()
	return NewRenderer(s.proj, s.Recorder).Draw(s.Frame, s.Profile)
}
