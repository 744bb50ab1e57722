package game

import (
	"fmt"

	"github.com/atotto/clipboard"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/Garsondee/Resonant/internal/config"
)

func writeClipboard(s string) error { return clipboard.WriteAll(s) }

// ExportProfile renders a single profile as a YAML document suitable for
// pasting into another configuration's profiles list.
func ExportProfile(p *config.Profile) (string, error) {
	data, err := yaml.Marshal([]*config.Profile{p})
	if err != nil {
		return "", fmt.Errorf("export profile %q: %w", p.Name, err)
	}
	return string(data), nil
}

func (g *Game) copyActiveProfile() {
	p := g.cfg.Active()
	s, err := ExportProfile(p)
	if err == nil {
		err = g.copyText(s)
	}
	if err != nil {
		g.event("export", zapcore.ErrorLevel, err.Error())
		return
	}
	g.event("export", zapcore.InfoLevel, fmt.Sprintf("copied profile %q", p.Name))
}
