package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AdamBeresnev/op-bracket/internal/bracket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{"classic", "eight"}, Presets())

	testCases := []struct {
		name         string
		roundSizes   []int
		participants int
		winner       string
	}{
		{name: "classic", roundSizes: []int{3, 1}, participants: 6},
		{name: "eight", roundSizes: []int{4, 2, 1}, participants: 8, winner: "Zesty Zapus"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			def, err := Preset(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.name, def.Name)
			assert.Empty(t, def.Warnings)

			var sizes []int
			for _, r := range def.Bracket.Rounds {
				sizes = append(sizes, r.Len())
			}
			assert.Equal(t, tc.roundSizes, sizes)
			assert.Len(t, def.Bracket.Participants(), tc.participants)
			assert.Equal(t, bracket.SceneCreate, def.Bracket.Scene)

			if tc.winner == "" {
				assert.Nil(t, def.Bracket.Winner)
			} else {
				require.NotNil(t, def.Bracket.Winner)
				assert.Equal(t, tc.winner, def.Bracket.Winner.FullName())
			}
		})
	}
}

func TestUnknownPreset(t *testing.T) {
	_, err := Preset("sixteen")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestParseSharesPlayersAcrossRounds(t *testing.T) {
	def, err := Preset("classic")
	require.NoError(t, err)

	first, err := def.Bracket.Rounds[0].At(0)
	require.NoError(t, err)
	final, err := def.Bracket.Rounds[1].At(0)
	require.NoError(t, err)

	assert.Same(t, first.First, final.First)
	assert.Equal(t, "jerem ferry", final.First.FullName())
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		err      error
		warnings int
	}{
		{
			name: "byes are null slots",
			input: `
players:
  a: {first_name: A, last_name: One}
  b: {first_name: B, last_name: Two}
rounds:
  - - [a, ~]
    - [~, b]
`,
		},
		{
			name: "unknown player",
			input: `
players:
  a: {first_name: A, last_name: One}
rounds:
  - - [a, z]
`,
			err: ErrUnknownPlayer,
		},
		{
			name: "three slots",
			input: `
players:
  a: {first_name: A, last_name: One}
rounds:
  - - [a, a, a]
`,
			err: ErrMalformedFight,
		},
		{
			name: "unknown winner",
			input: `
players:
  a: {first_name: A, last_name: One}
rounds:
  - - [a, ~]
winner: b
`,
			err: ErrUnknownPlayer,
		},
		{
			name: "empty fight and duplicate are accepted with warnings",
			input: `
players:
  a: {first_name: A, last_name: One}
rounds:
  - - [~, ~]
    - [a, a]
`,
			warnings: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			def, err := Parse([]byte(tc.input))
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, def.Warnings, tc.warnings)
		})
	}
}

func TestParseByeSlots(t *testing.T) {
	def, err := Parse([]byte(`
players:
  a: {first_name: A, last_name: One}
  b: {first_name: B, last_name: Two}
rounds:
  - - [a, ~]
    - [~, b]
`))
	require.NoError(t, err)

	round := def.Bracket.Rounds[0]
	f, err := round.At(0)
	require.NoError(t, err)
	assert.Nil(t, f.Second)

	f, err = round.At(1)
	require.NoError(t, err)
	assert.Nil(t, f.First)
	assert.Equal(t, "B Two", f.Second.FullName())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "club-night.yaml")
	err := os.WriteFile(path, []byte(`
players:
  a: {first_name: A, last_name: One}
  b: {first_name: B, last_name: Two}
rounds:
  - - [a, b]
winner: a
`), 0o644)
	require.NoError(t, err)

	def, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "club-night", def.Name)
	assert.Same(t, def.Bracket.Participants()[0], def.Bracket.Winner)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
