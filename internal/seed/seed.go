package seed

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AdamBeresnev/op-bracket/internal/bracket"
	"gopkg.in/yaml.v3"
)

//go:embed presets/*.yaml
var presetFiles embed.FS

var (
	ErrUnknownPreset  = errors.New("unknown seed preset")
	ErrUnknownPlayer  = errors.New("fight references an unknown player")
	ErrMalformedFight = errors.New("fight must list exactly two slots")
)

// File is the YAML layout of a seed. Fights reference players by key, and a
// null slot (~) is a bye.
type File struct {
	Name    string                    `yaml:"name"`
	Players map[string]bracket.Player `yaml:"players"`
	Rounds  [][][]*string             `yaml:"rounds"`
	Winner  string                    `yaml:"winner,omitempty"`
}

type Definition struct {
	Name    string
	Bracket *bracket.Bracket
	// Warnings lists suspicious but accepted seed data, like a fight with
	// two empty slots.
	Warnings []string
}

func Parse(data []byte) (*Definition, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return f.Build()
}

// LoadFile parses a seed file. A seed without a name is named after the file.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if def.Name == "" {
		def.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return def, nil
}

func Preset(name string) (*Definition, error) {
	data, err := presetFiles.ReadFile("presets/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownPreset)
	}
	return Parse(data)
}

func Presets() []string {
	entries, err := presetFiles.ReadDir("presets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Build resolves player keys into shared *Player values, so a player listed
// in several rounds is the same pointer everywhere.
func (f File) Build() (*Definition, error) {
	players := make(map[string]*bracket.Player, len(f.Players))
	for key, p := range f.Players {
		players[key] = bracket.NewPlayer(p.FirstName, p.LastName)
	}

	lookup := func(ref *string) (*bracket.Player, error) {
		if ref == nil {
			return nil, nil
		}
		p, ok := players[*ref]
		if !ok {
			return nil, fmt.Errorf("%q: %w", *ref, ErrUnknownPlayer)
		}
		return p, nil
	}

	def := &Definition{Name: f.Name}
	rounds := make([]*bracket.Round, 0, len(f.Rounds))
	for r, fights := range f.Rounds {
		round := bracket.NewRound()
		seen := make(map[*bracket.Player]bool)
		for i, slots := range fights {
			if len(slots) != 2 {
				return nil, fmt.Errorf("round %d fight %d: %w", r+1, i+1, ErrMalformedFight)
			}
			first, err := lookup(slots[0])
			if err != nil {
				return nil, fmt.Errorf("round %d fight %d: %w", r+1, i+1, err)
			}
			second, err := lookup(slots[1])
			if err != nil {
				return nil, fmt.Errorf("round %d fight %d: %w", r+1, i+1, err)
			}

			fight := bracket.NewFight(first, second)
			if fight.IsEmpty() {
				def.Warnings = append(def.Warnings, fmt.Sprintf("round %d fight %d has no participants", r+1, i+1))
			}
			for _, p := range []*bracket.Player{first, second} {
				if p == nil {
					continue
				}
				if seen[p] {
					def.Warnings = append(def.Warnings, fmt.Sprintf("round %d lists %s more than once", r+1, p.FullName()))
				}
				seen[p] = true
			}
			round.Push(fight)
		}
		rounds = append(rounds, round)
	}

	var winner *bracket.Player
	if f.Winner != "" {
		w, err := lookup(&f.Winner)
		if err != nil {
			return nil, fmt.Errorf("winner: %w", err)
		}
		winner = w
	}

	def.Bracket = bracket.New(rounds, winner)
	return def, nil
}
