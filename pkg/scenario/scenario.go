package scenario

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Version is the scenario file format written by Default.
const Version = "0.1.0"

// Load reads a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	return Parse(data)
}

// Parse decodes scenario YAML.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario YAML: %w", err)
	}
	return &s, nil
}

// LoadProject loads a scenario from a project directory.
// It looks for scenario.yaml in the given directory.
func LoadProject(projectDir string) (*Scenario, error) {
	return Load(filepath.Join(projectDir, "scenario.yaml"))
}

// Default returns the baseline parameter set offered by the input surface.
func Default() *Scenario {
	return &Scenario{
		ScenarioVersion: Version,
		Name:            "default",
		Description:     "Venezuelan migrants in Colombia",
		Population:      10000,
		Income:          IncomeRange{Min: 300, Max: 650},
		Education:       EducationMix{None: 0.03, Primary: 0.26, Secondary: 0.53, Higher: 0.18},
		Employment:      EmploymentMix{Employed: 0.5, Unemployed: 0.5},
		SocialStatus:    SocialStatusMix{Single: 0.51, Family: 0.49},
		RelativesAbroad: 0.18,
	}
}

// Marshal encodes the scenario as YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding scenario YAML: %w", err)
	}
	return out, nil
}
