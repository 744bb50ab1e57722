package overlay

import "github.com/Garsondee/Resonant/internal/geom"

// Range constants in world units, added on top of the combined hitboxes.
const (
	RangeAutoAttack   = 2.1
	RangeAbilityMelee = 3.0
)

// ActorKind classifies what an actor is. Only battle NPCs get positionals.
type ActorKind int

const (
	KindOther ActorKind = iota
	KindPlayer
	KindBattleNPC
)

func (k ActorKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBattleNPC:
		return "battle-npc"
	default:
		return "other"
	}
}

// Actor is an in-world entity the overlay anchors to.
type Actor struct {
	Name         string
	Position     geom.Vec3
	Rotation     float64
	HitboxRadius float64
	Kind         ActorKind
	Job          string
}

// Pose returns the actor's anchor for actor-relative drawing.
func (a *Actor) Pose() geom.Pose {
	return geom.Pose{Position: a.Position, Rotation: a.Rotation}
}

// Frame is the world state for one rendered frame. Player may be nil while
// no character is loaded; Target is nil when nothing is targeted.
type Frame struct {
	Player *Actor
	Target *Actor
}

// Ranges returns the melee and ability radii around target for player.
// Both include the two hitboxes, since a hit lands when the attack range
// reaches the target's hitbox from the edge of the player's.
func Ranges(player, target *Actor) (melee, ability float64) {
	hitboxes := player.HitboxRadius + target.HitboxRadius
	return hitboxes + RangeAutoAttack, hitboxes + RangeAbilityMelee
}
