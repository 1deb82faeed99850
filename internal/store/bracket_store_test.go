package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/AdamBeresnev/op-bracket/internal/db"
	"github.com/AdamBeresnev/op-bracket/internal/utils"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database and applies migrations
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite3", "file::memory:")
	require.NoError(t, err, "Failed to connect to in-memory DB")
	// Every new connection would open a fresh in-memory database
	database.SetMaxOpenConns(1)

	_, err = database.Exec("PRAGMA foreign_keys = ON;")
	require.NoError(t, err)

	require.NoError(t, db.RunMigrations(database.DB), "Failed to apply migrations")

	return database
}

func createTestBracket(t *testing.T, database *sqlx.DB, s *BracketStore, name string) (BracketRecord, []PlayerRecord, []FightRecord) {
	t.Helper()
	ctx := context.Background()

	bracketID := uuid.New()
	players := []PlayerRecord{
		{ID: uuid.New(), BracketID: bracketID, FirstName: "jerem", LastName: "ferry"},
		{ID: uuid.New(), BracketID: bracketID, FirstName: "tom", LastName: "carotte"},
		{ID: uuid.New(), BracketID: bracketID, FirstName: "super", LastName: "star"},
	}
	b := BracketRecord{
		ID:             bracketID,
		Name:           name,
		RoundCount:     2,
		WinnerPlayerID: utils.Ptr(players[0].ID),
	}
	fights := []FightRecord{
		{ID: uuid.New(), BracketID: bracketID, RoundNumber: 2, FightOrder: 1, FirstPlayerID: &players[0].ID},
		{ID: uuid.New(), BracketID: bracketID, RoundNumber: 1, FightOrder: 2, FirstPlayerID: &players[2].ID},
		{ID: uuid.New(), BracketID: bracketID, RoundNumber: 1, FightOrder: 1, FirstPlayerID: &players[0].ID, SecondPlayerID: &players[1].ID},
	}

	tx, err := database.BeginTxx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, s.CreateBracket(ctx, tx, &b))
	require.NoError(t, s.CreatePlayers(ctx, tx, players))
	require.NoError(t, s.CreateFights(ctx, tx, fights))
	require.NoError(t, tx.Commit())

	return b, players, fights
}

func TestCreateAndGetBracket(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	s := NewBracketStore(database)
	created, players, _ := createTestBracket(t, database, s, "classic")

	fetched, err := s.GetBracketByName(context.Background(), "classic")
	require.NoError(t, err)

	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, 2, fetched.RoundCount)
	require.NotNil(t, fetched.WinnerPlayerID)
	assert.Equal(t, players[0].ID, *fetched.WinnerPlayerID)
	assert.False(t, fetched.CreatedAt.IsZero())

	fetchedPlayers, err := s.GetPlayers(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Len(t, fetchedPlayers, 3)
}

func TestGetFightsOrdered(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	s := NewBracketStore(database)
	b, players, _ := createTestBracket(t, database, s, "classic")

	fights, err := s.GetFights(context.Background(), b.ID)
	require.NoError(t, err)
	require.Len(t, fights, 3)

	var order [][2]int
	for _, f := range fights {
		order = append(order, [2]int{f.RoundNumber, f.FightOrder})
	}
	assert.Equal(t, [][2]int{{1, 1}, {1, 2}, {2, 1}}, order)

	assert.Equal(t, players[1].ID, *fights[0].SecondPlayerID)
	assert.Nil(t, fights[1].SecondPlayerID, "bye slot should stay NULL")
}

func TestGetBracketByNameMissing(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	_, err := NewBracketStore(database).GetBracketByName(context.Background(), "nope")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDeleteBracketByName(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	s := NewBracketStore(database)
	ctx := context.Background()
	kept, _, _ := createTestBracket(t, database, s, "kept")
	removed, _, _ := createTestBracket(t, database, s, "removed")

	tx, err := database.BeginTxx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, s.DeleteBracketByName(ctx, tx, "removed"))
	require.NoError(t, s.DeleteBracketByName(ctx, tx, "never-existed"))
	require.NoError(t, tx.Commit())

	brackets, err := s.ListBrackets(ctx)
	require.NoError(t, err)
	require.Len(t, brackets, 1)
	assert.Equal(t, kept.ID, brackets[0].ID)

	fights, err := s.GetFights(ctx, removed.ID)
	require.NoError(t, err)
	assert.Empty(t, fights)

	players, err := s.GetPlayers(ctx, removed.ID)
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestCreateEmptySlices(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	s := NewBracketStore(database)
	ctx := context.Background()

	tx, err := database.BeginTxx(ctx, nil)
	require.NoError(t, err)
	defer tx.Rollback()

	assert.NoError(t, s.CreatePlayers(ctx, tx, nil))
	assert.NoError(t, s.CreateFights(ctx, tx, []FightRecord{}))
}
