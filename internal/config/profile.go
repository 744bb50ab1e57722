package config

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/Garsondee/Resonant/internal/draw"
	"github.com/Garsondee/Resonant/internal/regions"
)

// BrushSettings is the stored form of a draw.Brush.
type BrushSettings struct {
	Color     Color   `yaml:"color"`
	Thickness float32 `yaml:"thickness"`
	Fill      Color   `yaml:"fill,omitempty"`
}

// Brush converts to the drawing type.
func (b BrushSettings) Brush() draw.Brush {
	return draw.Brush{Thickness: b.Thickness, Color: b.Color.NRGBA(), Fill: b.Fill.NRGBA()}
}

type HitboxSettings struct {
	Enabled      bool  `yaml:"enabled"`
	Color        Color `yaml:"color"`
	Outline      bool  `yaml:"outline"`
	OutlineColor Color `yaml:"outline_color"`
	// UseTargetY draws the marker at the target's height, and
	// ShowTargetDeltaY joins it to the player's real position.
	UseTargetY       bool `yaml:"use_target_y"`
	ShowTargetDeltaY bool `yaml:"show_target_delta_y"`
}

type RingSettings struct {
	Enabled bool          `yaml:"enabled"`
	Radius  float64       `yaml:"radius"`
	Brush   BrushSettings `yaml:"brush"`
}

type ConeSettings struct {
	Enabled bool          `yaml:"enabled"`
	Radius  float64       `yaml:"radius"`
	Angle   int           `yaml:"angle"` // degrees
	Brush   BrushSettings `yaml:"brush"`
}

type PositionalsSettings struct {
	Enabled bool `yaml:"enabled"`

	MeleeAbilityRange     bool    `yaml:"melee_ability_range"`
	MeleeAbilityThickness float32 `yaml:"melee_ability_thickness"`

	Thickness     float32           `yaml:"thickness"`
	ColorFront    Color             `yaml:"color_front"`
	FrontSeparate bool              `yaml:"front_separate"`
	ColorRear     Color             `yaml:"color_rear"`
	RearSeparate  bool              `yaml:"rear_separate"`
	ColorFlank    Color             `yaml:"color_flank"`
	FlankType     regions.FlankMode `yaml:"flank_type"`

	HighlightCurrentRegion          bool    `yaml:"highlight_current_region"`
	HighlightTransparencyMultiplier float64 `yaml:"highlight_transparency_multiplier"`

	ArrowEnabled bool    `yaml:"arrow_enabled"`
	ArrowScale   float64 `yaml:"arrow_scale"`
}

func (p PositionalsSettings) BrushFront() draw.Brush {
	return draw.NewBrush(p.ColorFront.NRGBA(), p.Thickness)
}

func (p PositionalsSettings) BrushRear() draw.Brush {
	return draw.NewBrush(p.ColorRear.NRGBA(), p.Thickness)
}

func (p PositionalsSettings) BrushFlank() draw.Brush {
	return draw.NewBrush(p.ColorFlank.NRGBA(), p.Thickness)
}

// Regions is the snapshot handed to sector derivation.
func (p PositionalsSettings) Regions() regions.Settings {
	return regions.Settings{
		Flank:            p.FlankType,
		FrontSeparate:    p.FrontSeparate,
		RearSeparate:     p.RearSeparate,
		FrontBrush:       p.BrushFront(),
		FlankBrush:       p.BrushFlank(),
		RearBrush:        p.BrushRear(),
		ShowAbilityRange: p.MeleeAbilityRange,
		AbilityThickness: p.MeleeAbilityThickness,
	}
}

// Profile is one named set of overlay settings, optionally bound to jobs.
type Profile struct {
	Name string    `yaml:"name"`
	ID   uuid.UUID `yaml:"id"`

	Hitbox      HitboxSettings      `yaml:"hitbox"`
	TargetRing  RingSettings        `yaml:"target_ring"`
	PlayerRing  RingSettings        `yaml:"player_ring"`
	Cone        ConeSettings        `yaml:"cone"`
	Positionals PositionalsSettings `yaml:"positionals"`

	Jobs []string `yaml:"jobs,omitempty"`
}

// NewProfile returns a profile with the default settings and a fresh ID.
func NewProfile(name string) *Profile {
	return &Profile{
		Name: name,
		ID:   uuid.New(),
		Hitbox: HitboxSettings{
			Enabled:          true,
			Color:            Green,
			Outline:          true,
			OutlineColor:     Black,
			UseTargetY:       true,
			ShowTargetDeltaY: true,
		},
		TargetRing: RingSettings{Radius: 5, Brush: BrushSettings{Color: Green, Thickness: 1}},
		PlayerRing: RingSettings{Radius: 5, Brush: BrushSettings{Color: Green, Thickness: 1}},
		Cone: ConeSettings{
			Radius: 7,
			Angle:  90,
			Brush:  BrushSettings{Color: Blurple, Thickness: 3},
		},
		Positionals: PositionalsSettings{
			Enabled:                         true,
			MeleeAbilityRange:               true,
			MeleeAbilityThickness:           1,
			Thickness:                       3,
			ColorFront:                      Red,
			ColorRear:                       Magenta,
			ColorFlank:                      Blurple,
			FlankType:                       regions.FlankRearOnly,
			HighlightCurrentRegion:          true,
			HighlightTransparencyMultiplier: 0.1,
			ArrowEnabled:                    true,
			ArrowScale:                      1,
		},
	}
}

// UnmarshalYAML fills fields missing from the document with defaults.
func (p *Profile) UnmarshalYAML(value *yaml.Node) error {
	type plain Profile
	d := plain(*NewProfile(""))
	if err := value.Decode(&d); err != nil {
		return err
	}
	*p = Profile(d)
	return nil
}

// HasJob reports whether the profile is bound to the job abbreviation.
func (p *Profile) HasJob(job string) bool {
	for _, j := range p.Jobs {
		if j == job {
			return true
		}
	}
	return false
}

// Validate checks the ranges the geometry code relies on.
func (p *Profile) Validate() error {
	var errs []error
	if p.TargetRing.Radius < 0 || p.PlayerRing.Radius < 0 || p.Cone.Radius < 0 {
		errs = append(errs, errors.New("radii must not be negative"))
	}
	if p.Cone.Angle < 0 || p.Cone.Angle > 180 {
		errs = append(errs, fmt.Errorf("cone angle %d outside [0, 180]", p.Cone.Angle))
	}
	pos := p.Positionals
	if pos.ArrowScale <= 0 || pos.ArrowScale > 1 {
		errs = append(errs, fmt.Errorf("arrow scale %g outside (0, 1]", pos.ArrowScale))
	}
	if pos.HighlightTransparencyMultiplier < 0 || pos.HighlightTransparencyMultiplier > 1 {
		errs = append(errs, fmt.Errorf("highlight multiplier %g outside [0, 1]", pos.HighlightTransparencyMultiplier))
	}
	if pos.Thickness < 0 || pos.MeleeAbilityThickness < 0 {
		errs = append(errs, errors.New("thickness must not be negative"))
	}
	if _, err := pos.FlankType.MarshalText(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("profile %q: %w", p.Name, err)
	}
	return nil
}
