package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/AdamBeresnev/op-bracket/internal/seed"
	"github.com/AdamBeresnev/op-bracket/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const clubSeed = `
name: club
players:
  a: {first_name: A, last_name: One}
  b: {first_name: B, last_name: Two}
rounds:
  - - [a, b]
winner: b
`

func TestResolveSeedWithoutCatalog(t *testing.T) {
	ctx := context.Background()

	def, err := ResolveSeed(ctx, nil, "classic", "")
	require.NoError(t, err)
	assert.Equal(t, "classic", def.Name)

	_, err = ResolveSeed(ctx, nil, "nope", "")
	assert.ErrorIs(t, err, seed.ErrUnknownPreset)

	path := filepath.Join(t.TempDir(), "club.yaml")
	require.NoError(t, os.WriteFile(path, []byte(clubSeed), 0o644))

	def, err = ResolveSeed(ctx, nil, "classic", path)
	require.NoError(t, err)
	assert.Equal(t, "club", def.Name)
	assert.Equal(t, "B Two", def.Bracket.Winner.FullName())
}

func TestResolveSeedWithCatalog(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	ctx := context.Background()
	catalog := NewCatalogService(database, store.NewBracketStore(database))

	// Preset gets imported on first use
	def, err := ResolveSeed(ctx, catalog, "eight", "")
	require.NoError(t, err)
	assert.Equal(t, 7, def.Bracket.FightCount())

	names, err := catalog.Names(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"eight"}, names)

	// A file is imported under its own name and can be served by name later
	path := filepath.Join(t.TempDir(), "club.yaml")
	require.NoError(t, os.WriteFile(path, []byte(clubSeed), 0o644))
	_, err = ResolveSeed(ctx, catalog, "", path)
	require.NoError(t, err)

	def, err = ResolveSeed(ctx, catalog, "club", "")
	require.NoError(t, err)
	assert.Equal(t, "club", def.Name)
	assert.Len(t, def.Bracket.Participants(), 2)

	_, err = ResolveSeed(ctx, catalog, "ghost", "")
	assert.ErrorIs(t, err, seed.ErrUnknownPreset)
}
