package mappers

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// RankingStrategy selects how university rankings are read from a row.
type RankingStrategy string

const (
	// RankingLines parses the multi-line "University Ranking" column.
	RankingLines RankingStrategy = "lines"
	// RankingColumns reads QS and THE from two separate columns.
	RankingColumns RankingStrategy = "columns"
)

// Profile is a field-mapping configuration: which optional fields a sheet feeds and
// how rankings are laid out.
type Profile struct {
	Name     string          `yaml:"name"`
	Ranking  RankingStrategy `yaml:"ranking"`
	Website  bool            `yaml:"website"`
	Logo     bool            `yaml:"logo"`
	WorkVisa bool            `yaml:"workVisa"`
}

func (p Profile) validate() error {
	if p.Name == "" {
		return fmt.Errorf("mappers: profile without a name")
	}
	switch p.Ranking {
	case RankingLines, RankingColumns:
		return nil
	default:
		return fmt.Errorf("mappers: profile %q: unknown ranking strategy %q", p.Name, p.Ranking)
	}
}

// Builtin returns the profiles shipped with the tool.
func Builtin() map[string]Profile {
	return map[string]Profile{
		"kc": {
			Name:    "kc",
			Ranking: RankingLines,
			Website: true,
		},
		"studyreach": {
			Name:     "studyreach",
			Ranking:  RankingColumns,
			Logo:     true,
			WorkVisa: true,
		},
	}
}

type profileFile struct {
	Profiles []Profile `yaml:"profiles"`
}

// LoadProfiles returns the built-in profiles overlaid with those defined in the YAML
// file at path. An empty path yields the built-ins.
func LoadProfiles(path string) (map[string]Profile, error) {
	out := Builtin()
	if path == "" {
		return out, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mappers: read profiles: %w", err)
	}
	var pf profileFile
	if err := yaml.Unmarshal(b, &pf); err != nil {
		return nil, fmt.Errorf("mappers: parse profiles %s: %w", path, err)
	}
	for _, p := range pf.Profiles {
		if p.Ranking == "" {
			p.Ranking = RankingLines
		}
		if err := p.validate(); err != nil {
			return nil, err
		}
		out[p.Name] = p
	}
	return out, nil
}

// Lookup picks a profile by name.
func Lookup(profiles map[string]Profile, name string) (Profile, error) {
	p, ok := profiles[name]
	if !ok {
		names := make([]string, 0, len(profiles))
		for n := range profiles {
			names = append(names, n)
		}
		sort.Strings(names)
		return Profile{}, fmt.Errorf("mappers: unknown profile %q (have %v)", name, names)
	}
	return p, nil
}
