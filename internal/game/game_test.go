package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Garsondee/Resonant/internal/config"
	"github.com/Garsondee/Resonant/internal/regions"
)

// newTestGame writes c to a temporary file and opens a Game on it.
func newTestGame(t *testing.T, c *config.Configuration) (*Game, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resonant.yaml")
	require.NoError(t, config.Save(path, c))
	g, err := New(Options{ConfigPath: path})
	require.NoError(t, err)
	return g, path
}

func lastEvent(g *Game) Event {
	recent := g.events.Recent()
	return recent[len(recent)-1]
}

func TestNew_MissingConfigUsesDefaults(t *testing.T) {
	g, err := New(Options{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")})
	require.NoError(t, err)
	assert.Len(t, g.cfg.Profiles, 1)
	assert.Equal(t, viewWidth+logPanelWidth, g.width)
}

func TestNew_BrokenConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profiles: [\n"), 0o644))
	_, err := New(Options{ConfigPath: path})
	assert.Error(t, err)
}

func TestGame_JobChangeSwitchesProfile(t *testing.T) {
	c := config.Default()
	general := c.Active()
	monk := config.NewProfile("Monk")
	monk.Jobs = []string{"MNK"}
	c.Profiles = append(c.Profiles, monk)
	g, _ := newTestGame(t, c)

	g.observeJob() // DRG has no profile
	assert.Equal(t, general.ID, g.cfg.Active().ID)

	g.world.CycleJob() // MNK
	g.observeJob()
	assert.Equal(t, "Monk", g.cfg.Active().Name)
	assert.Contains(t, lastEvent(g).Message, "Monk")

	g.world.CycleJob() // NIN keeps the current profile
	g.observeJob()
	assert.Equal(t, "Monk", g.cfg.Active().Name)
}

func TestGame_ReloadsEditedConfig(t *testing.T) {
	g, path := newTestGame(t, config.Default())

	edited := config.Default()
	edited.Debug = true
	edited.ViewportWindowBox.TopLeft = [2]float64{40, 30}
	require.NoError(t, config.Save(path, edited))

	for i := 0; i < reloadEvery; i++ {
		g.pollConfig()
	}
	assert.True(t, g.cfg.Debug)
	assert.Equal(t, 40.0, g.camera.OffX)
	assert.Equal(t, float64(viewWidth-40), g.camera.Width)
	assert.Equal(t, "config", lastEvent(g).Source)
}

func TestGame_ReloadKeepsJobProfile(t *testing.T) {
	c := config.Default()
	monk := config.NewProfile("Monk")
	monk.Jobs = []string{"MNK"}
	c.Profiles = append(c.Profiles, monk)
	g, path := newTestGame(t, c)

	g.world.CycleJob() // MNK
	g.observeJob()
	require.Equal(t, "Monk", g.cfg.Active().Name)

	// the file still names the general profile as active
	c.Debug = true
	require.NoError(t, config.Save(path, c))
	for i := 0; i < reloadEvery; i++ {
		g.pollConfig()
	}
	require.True(t, g.cfg.Debug)
	assert.Equal(t, "Monk", g.cfg.Active().Name)
	assert.Contains(t, lastEvent(g).Message, "Monk")
}

func TestGame_CopyActiveProfile(t *testing.T) {
	g, _ := newTestGame(t, config.Default())
	var copied string
	g.copyText = func(s string) error {
		copied = s
		return nil
	}

	g.copyActiveProfile()

	var back []*config.Profile
	require.NoError(t, yaml.Unmarshal([]byte(copied), &back))
	require.Len(t, back, 1)
	assert.Equal(t, g.cfg.Active().ID, back[0].ID)

	g.copyText = func(string) error { return errors.New("no clipboard") }
	g.copyActiveProfile()
	assert.Equal(t, "no clipboard", lastEvent(g).Message)
}

func TestGame_SaveKeepsFlankMode(t *testing.T) {
	g, path := newTestGame(t, config.Default())
	g.setFlankMode(regions.FlankFullSeparated)
	g.saveConfig()

	back, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, regions.FlankFullSeparated, back.Active().Positionals.FlankType)

	n := len(g.events.Recent())
	for i := 0; i < reloadEvery; i++ {
		g.pollConfig()
	}
	assert.Len(t, g.events.Recent(), n, "our own save is not reported as an edit")
}

func TestGame_HUDShowsRangesInDebug(t *testing.T) {
	c := config.Default()
	c.Debug = true
	g, _ := newTestGame(t, c)

	lines := g.hudLines()
	assert.Contains(t, lines, "[H] toggle HUD")
	found := false
	for _, l := range lines {
		if len(l) > 9 && l[:9] == "distance:" {
			found = true
		}
	}
	assert.True(t, found)
}
