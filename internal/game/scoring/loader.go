package scoring

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlRulesFile is the top-level YAML structure for rule preset files.
type yamlRulesFile struct {
	Rules yamlRules `yaml:"rules"`
}

// yamlRules is the YAML representation of a rule preset. Zero fields fall
// back to the defaults of DefaultRules, so a preset only needs to name the
// values it changes.
type yamlRules struct {
	Name        string      `yaml:"name"`
	Straight    int         `yaml:"straight"`
	ThreePairs  int         `yaml:"three_pairs"`
	SingleOne   int         `yaml:"single_1"`
	SingleFive  int         `yaml:"single_5"`
	Triples     map[int]int `yaml:"triples"`
	Multipliers map[int]int `yaml:"multipliers"`
}

// Preset is a named rule set loaded from a YAML preset file.
type Preset struct {
	Name  string
	Rules Rules
}

// LoadPresetFromBytes parses and validates a rule preset from YAML bytes.
//
// Precondition: data must be valid YAML conforming to the preset schema.
// Postcondition: Returns a Preset whose Rules has every field populated
// (unset fields defaulted), or a non-nil error.
func LoadPresetFromBytes(data []byte) (*Preset, error) {
	var file yamlRulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing rules YAML: %w", err)
	}

	y := file.Rules
	if y.Name == "" {
		return nil, fmt.Errorf("rules preset must have a name")
	}

	rules := DefaultRules()
	if y.Straight > 0 {
		rules.Straight = y.Straight
	}
	if y.ThreePairs > 0 {
		rules.ThreePairs = y.ThreePairs
	}
	if y.SingleOne > 0 {
		rules.SingleOne = y.SingleOne
	}
	if y.SingleFive > 0 {
		rules.SingleFive = y.SingleFive
	}
	for face, score := range y.Triples {
		if face < 1 || face > 6 {
			return nil, fmt.Errorf("rules preset %q: triple face %d out of range", y.Name, face)
		}
		if score < 0 {
			return nil, fmt.Errorf("rules preset %q: triple score for face %d must be >= 0", y.Name, face)
		}
		rules.Triples[face] = score
	}
	for tier, factor := range y.Multipliers {
		if tier < 4 || tier > 6 {
			return nil, fmt.Errorf("rules preset %q: multiplier tier %d out of range", y.Name, tier)
		}
		if factor < 1 {
			return nil, fmt.Errorf("rules preset %q: multiplier for tier %d must be >= 1", y.Name, tier)
		}
		rules.Multipliers[tier] = factor
	}

	return &Preset{Name: y.Name, Rules: rules}, nil
}

// LoadPresetFromFile reads and validates a single rule preset YAML file.
//
// Precondition: path must point to a valid YAML preset file.
func LoadPresetFromFile(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file %s: %w", path, err)
	}
	preset, err := LoadPresetFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("loading rules file %s: %w", path, err)
	}
	return preset, nil
}

// LoadPresetsFromDir loads every .yaml/.yml file in dir as a rule preset.
//
// Postcondition: Returns all validated presets or the first error
// encountered; duplicate preset names are an error.
func LoadPresetsFromDir(dir string) (map[string]*Preset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading rules directory %s: %w", dir, err)
	}

	presets := make(map[string]*Preset)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		preset, err := LoadPresetFromFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if _, exists := presets[preset.Name]; exists {
			return nil, fmt.Errorf("duplicate rules preset name %q", preset.Name)
		}
		presets[preset.Name] = preset
	}
	return presets, nil
}
