package game

import (
	"math"

	"github.com/Garsondee/Resonant/internal/geom"
	"github.com/Garsondee/Resonant/internal/overlay"
)

const (
	playerSpeed   = 0.12 // world units per tick
	playerTurn    = 0.045
	targetSpin    = 0.01
	targetTrack   = 0.03 // max turn per tick while tracking the player
	playerHitbox  = 0.5
	worldHalfSize = 40.0
)

// demoJobs is the rotation the J key cycles through.
var demoJobs = []string{"DRG", "MNK", "NIN", "SAM", "RPR", "VPR", "WHM"}

// World is the simulated scene behind the demo: a player, a handful of
// NPCs and the player's current target. It has no Ebiten dependency.
type World struct {
	Player *overlay.Actor
	NPCs   []*overlay.Actor

	target int // index into NPCs, -1 for none
	job    int
	spin   bool
	track  bool
	tick   int
}

// NewWorld places the player south of a ring of NPCs, targeting the first.
func NewWorld() *World {
	w := &World{
		Player: &overlay.Actor{
			Name:         "You",
			Position:     geom.Vec3{Z: -8},
			HitboxRadius: playerHitbox,
			Kind:         overlay.KindPlayer,
			Job:          demoJobs[0],
		},
		NPCs: []*overlay.Actor{
			{Name: "Striking Dummy", HitboxRadius: 2, Kind: overlay.KindBattleNPC},
			{Name: "Ifrit", Position: geom.Vec3{X: 18, Y: 1.5, Z: 10}, Rotation: geom.Radians(200), HitboxRadius: 5, Kind: overlay.KindBattleNPC},
			{Name: "Coblyn", Position: geom.Vec3{X: -14, Y: -0.5, Z: 6}, Rotation: geom.Radians(90), HitboxRadius: 0.8, Kind: overlay.KindBattleNPC},
			{Name: "Merchant", Position: geom.Vec3{X: -6, Z: -16}, HitboxRadius: 0.5, Kind: overlay.KindOther},
		},
	}
	return w
}

// Frame returns the overlay input for the current state.
func (w *World) Frame() overlay.Frame {
	return overlay.Frame{Player: w.Player, Target: w.Target()}
}

// Target returns the current target or nil.
func (w *World) Target() *overlay.Actor {
	if w.target < 0 || w.target >= len(w.NPCs) {
		return nil
	}
	return w.NPCs[w.target]
}

// CycleTarget moves to the next NPC, wrapping back to the first.
func (w *World) CycleTarget() *overlay.Actor {
	w.target = (w.target + 1) % len(w.NPCs)
	return w.Target()
}

// ClearTarget drops the current target.
func (w *World) ClearTarget() { w.target = -1 }

// CycleJob switches the player to the next demo job and returns it.
func (w *World) CycleJob() string {
	w.job = (w.job + 1) % len(demoJobs)
	w.Player.Job = demoJobs[w.job]
	return w.Player.Job
}

// ToggleSpin makes the current target rotate in place each tick.
func (w *World) ToggleSpin() bool {
	w.spin = !w.spin
	return w.spin
}

// ToggleTrack makes the current target turn to face the player.
func (w *World) ToggleTrack() bool {
	w.track = !w.track
	return w.track
}

// Move walks the player along its facing; negative steps walk backwards.
func (w *World) Move(steps float64) {
	p := geom.Radial(w.Player.Position, steps*playerSpeed, w.Player.Rotation)
	p.X = clamp(p.X, -worldHalfSize, worldHalfSize)
	p.Z = clamp(p.Z, -worldHalfSize, worldHalfSize)
	w.Player.Position = p
}

// Turn rotates the player; positive turns clockwise seen from above.
func (w *World) Turn(steps float64) {
	w.Player.Rotation = geom.Normalize(w.Player.Rotation + steps*playerTurn)
}

// FaceTarget turns the player toward the current target.
func (w *World) FaceTarget() {
	if t := w.Target(); t != nil {
		w.Player.Rotation = geom.Normalize(geom.PlanarBearing(w.Player.Position, t.Position))
	}
}

// Step advances one simulation tick.
func (w *World) Step() {
	w.tick++
	t := w.Target()
	if t == nil {
		return
	}
	if w.spin {
		t.Rotation = geom.Normalize(t.Rotation + targetSpin)
	}
	if w.track {
		t.Rotation = turnToward(t.Rotation, geom.PlanarBearing(t.Position, w.Player.Position), targetTrack)
	}
}

// turnToward rotates heading toward goal by at most rate radians, taking
// the short way round.
func turnToward(heading, goal, rate float64) float64 {
	diff := math.Remainder(goal-heading, geom.Tau)
	switch {
	case math.Abs(diff) <= rate:
		return geom.Normalize(goal)
	case diff > 0:
		return geom.Normalize(heading + rate)
	default:
		return geom.Normalize(heading - rate)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
