package simulator

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Scenario is a simulation run described in an HCL file: one simulation
// block plus any number of bots to compare.
type Scenario struct {
	Simulation SimulationSettings `hcl:"simulation,block"`
	Bots       []BotSpec          `hcl:"bot,block"`
}

// SimulationSettings contains batch-level configuration.
type SimulationSettings struct {
	Sessions  int   `hcl:"sessions,optional"`
	Rounds    int   `hcl:"rounds,optional"`
	Seed      int64 `hcl:"seed,optional"`
	Workers   int   `hcl:"workers,optional"`
	TimeoutMs int   `hcl:"timeout_ms,optional"`
}

// BotSpec defines one bot to run the scenario with.
type BotSpec struct {
	Name     string  `hcl:"name,label"`
	Strategy string  `hcl:"strategy"`
	Fraction float64 `hcl:"fraction,optional"`
	BaseBet  int     `hcl:"base_bet,optional"`
}

// DefaultScenario returns the scenario used when no config file is given.
func DefaultScenario() *Scenario {
	return &Scenario{
		Simulation: SimulationSettings{
			Sessions: 100,
			Rounds:   500,
			Seed:     1,
			Workers:  4,
		},
		Bots: []BotSpec{
			{Name: "flat", Strategy: "flat"},
		},
	}
}

// LoadScenario loads a scenario from an HCL file, falling back to the
// default scenario when the file does not exist.
func LoadScenario(filename string) (*Scenario, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultScenario(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var scenario Scenario
	diags = gohcl.DecodeBody(file.Body, nil, &scenario)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if scenario.Simulation.Sessions == 0 {
		scenario.Simulation.Sessions = 100
	}
	if scenario.Simulation.Rounds == 0 {
		scenario.Simulation.Rounds = 500
	}
	if scenario.Simulation.Workers == 0 {
		scenario.Simulation.Workers = 4
	}
	if len(scenario.Bots) == 0 {
		scenario.Bots = DefaultScenario().Bots
	}
	for i := range scenario.Bots {
		if scenario.Bots[i].Strategy == "" {
			scenario.Bots[i].Strategy = "flat"
		}
	}

	return &scenario, nil
}
