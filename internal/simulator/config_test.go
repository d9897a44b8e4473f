package simulator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenarioMissingFileGivesDefaults(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	assert.Equal(t, 100, scenario.Simulation.Sessions)
	assert.Equal(t, 500, scenario.Simulation.Rounds)
	require.Len(t, scenario.Bots, 1)
	assert.Equal(t, "flat", scenario.Bots[0].Strategy)
}

func TestLoadScenarioParsesFile(t *testing.T) {
	content := `
simulation {
  sessions = 10
  rounds   = 25
  seed     = 99
}

bot "careful" {
  strategy = "flat"
  fraction = 0.05
}

bot "gambler" {
  strategy = "martingale"
  base_bet = 10
}
`
	path := filepath.Join(t.TempDir(), "scenario.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, 10, scenario.Simulation.Sessions)
	assert.Equal(t, 25, scenario.Simulation.Rounds)
	assert.Equal(t, int64(99), scenario.Simulation.Seed)
	assert.Equal(t, 4, scenario.Simulation.Workers, "workers default applies")

	require.Len(t, scenario.Bots, 2)
	assert.Equal(t, "careful", scenario.Bots[0].Name)
	assert.InDelta(t, 0.05, scenario.Bots[0].Fraction, 1e-9)
	assert.Equal(t, "gambler", scenario.Bots[1].Name)
	assert.Equal(t, 10, scenario.Bots[1].BaseBet)
}

func TestLoadScenarioRejectsBadHCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`simulation { sessions = `), 0o644))

	_, err := LoadScenario(path)
	assert.Error(t, err)
}
