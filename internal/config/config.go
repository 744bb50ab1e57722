package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// CurrentVersion is written to new configuration files.
const CurrentVersion = 1

// ErrNoProfiles is returned by Validate for a configuration without profiles.
var ErrNoProfiles = errors.New("configuration has no profiles")

// WindowBox insets the overlay from the viewport edges, in pixels.
type WindowBox struct {
	TopLeft     [2]float64 `yaml:"top_left"`
	BottomRight [2]float64 `yaml:"bottom_right"`
}

// SizeWith returns the overlay size inside a viewport of w by h.
func (b WindowBox) SizeWith(w, h float64) (float64, float64) {
	return w - b.TopLeft[0] - b.BottomRight[0], h - b.TopLeft[1] - b.BottomRight[1]
}

// Configuration is the whole settings file.
type Configuration struct {
	Version           int        `yaml:"version"`
	ActiveProfileID   uuid.UUID  `yaml:"active_profile"`
	Profiles          []*Profile `yaml:"profiles"`
	ViewportWindowBox WindowBox  `yaml:"viewport_window_box"`
	Debug             bool       `yaml:"debug"`
}

// Default returns a configuration holding a single default profile.
func Default() *Configuration {
	c := &Configuration{Version: CurrentVersion}
	c.FillDefaultProfile()
	return c
}

// Active returns the active profile, falling back to the first profile and
// then to a freshly added default one.
func (c *Configuration) Active() *Profile {
	if p := c.Profile(c.ActiveProfileID); p != nil {
		return p
	}
	if len(c.Profiles) > 0 {
		return c.Profiles[0]
	}
	return c.FillDefaultProfile()
}

// SetActive makes p the active profile.
func (c *Configuration) SetActive(p *Profile) { c.ActiveProfileID = p.ID }

// Profile looks a profile up by ID.
func (c *Configuration) Profile(id uuid.UUID) *Profile {
	for _, p := range c.Profiles {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FillDefaultProfile appends a default profile and activates it.
func (c *Configuration) FillDefaultProfile() *Profile {
	p := NewProfile("Default")
	c.Profiles = append(c.Profiles, p)
	c.SetActive(p)
	return p
}

// ProfileForJob returns the first profile bound to job, or nil.
func (c *Configuration) ProfileForJob(job string) *Profile {
	for _, p := range c.Profiles {
		if p.HasJob(job) {
			return p
		}
	}
	return nil
}

// Validate checks every profile.
func (c *Configuration) Validate() error {
	if len(c.Profiles) == 0 {
		return ErrNoProfiles
	}
	var errs []error
	for _, p := range c.Profiles {
		if err := p.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Marshal encodes c as YAML.
func Marshal(c *Configuration) ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode configuration: %w", err)
	}
	return out, nil
}

// Unmarshal decodes and validates a YAML configuration.
func Unmarshal(data []byte) (*Configuration, error) {
	c := &Configuration{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}
	if len(c.Profiles) == 0 {
		c.FillDefaultProfile()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads the configuration at path. A missing file yields Default.
func Load(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	c, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return c, nil
}

// Save writes c to path.
func Save(path string, c *Configuration) error {
	data, err := Marshal(c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
