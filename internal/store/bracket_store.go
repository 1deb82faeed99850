package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type BracketRecord struct {
	ID             uuid.UUID  `db:"id"`
	Name           string     `db:"name"`
	RoundCount     int        `db:"round_count"`
	WinnerPlayerID *uuid.UUID `db:"winner_player_id"`
	CreatedAt      time.Time  `db:"created_at"`
}

type PlayerRecord struct {
	ID        uuid.UUID `db:"id"`
	BracketID uuid.UUID `db:"bracket_id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
}

type FightRecord struct {
	ID        uuid.UUID `db:"id"`
	BracketID uuid.UUID `db:"bracket_id"`

	// Position in the bracket for reconstructing rounds
	RoundNumber int `db:"round_number"`
	FightOrder  int `db:"fight_order"`

	FirstPlayerID  *uuid.UUID `db:"first_player_id"`
	SecondPlayerID *uuid.UUID `db:"second_player_id"`
}

type BracketStore struct {
	db *sqlx.DB
}

const (
	createBracketQuery = `
		INSERT INTO brackets (id, name, round_count, winner_player_id)
		VALUES (:id, :name, :round_count, :winner_player_id)`
	createPlayersQuery = `
		INSERT INTO players (id, bracket_id, first_name, last_name)
		VALUES (:id, :bracket_id, :first_name, :last_name)`
	createFightsQuery = `
		INSERT INTO fights (id, bracket_id, round_number, fight_order, first_player_id, second_player_id)
		VALUES (:id, :bracket_id, :round_number, :fight_order, :first_player_id, :second_player_id)`
	getBracketByNameQuery = "SELECT * FROM brackets WHERE name = ?"
	listBracketsQuery     = "SELECT * FROM brackets ORDER BY name ASC"
	getPlayersQuery       = "SELECT * FROM players WHERE bracket_id = ?"
	getFightsQuery        = "SELECT * FROM fights WHERE bracket_id = ? ORDER BY round_number ASC, fight_order ASC"
	deleteFightsQuery     = "DELETE FROM fights WHERE bracket_id IN (SELECT id FROM brackets WHERE name = ?)"
	deletePlayersQuery    = "DELETE FROM players WHERE bracket_id IN (SELECT id FROM brackets WHERE name = ?)"
	deleteBracketQuery    = "DELETE FROM brackets WHERE name = ?"
)

func NewBracketStore(db *sqlx.DB) *BracketStore {
	return &BracketStore{db: db}
}

func (s *BracketStore) CreateBracket(ctx context.Context, tx *sqlx.Tx, b *BracketRecord) error {
	_, err := tx.NamedExecContext(ctx, createBracketQuery, b)
	return err
}

func (s *BracketStore) CreatePlayers(ctx context.Context, tx *sqlx.Tx, players []PlayerRecord) error {
	if len(players) == 0 {
		return nil
	}
	_, err := tx.NamedExecContext(ctx, createPlayersQuery, players)
	return err
}

func (s *BracketStore) CreateFights(ctx context.Context, tx *sqlx.Tx, fights []FightRecord) error {
	if len(fights) == 0 {
		return nil
	}
	_, err := tx.NamedExecContext(ctx, createFightsQuery, fights)
	return err
}

// DeleteBracketByName removes a bracket with its players and fights. Deleting
// a name that does not exist is not an error.
func (s *BracketStore) DeleteBracketByName(ctx context.Context, tx *sqlx.Tx, name string) error {
	for _, q := range []string{deleteFightsQuery, deletePlayersQuery, deleteBracketQuery} {
		if _, err := tx.ExecContext(ctx, q, name); err != nil {
			return err
		}
	}
	return nil
}

func (s *BracketStore) GetBracketByName(ctx context.Context, name string) (*BracketRecord, error) {
	var b BracketRecord
	err := s.db.GetContext(ctx, &b, getBracketByNameQuery, name)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *BracketStore) ListBrackets(ctx context.Context) ([]BracketRecord, error) {
	var brackets []BracketRecord
	err := s.db.SelectContext(ctx, &brackets, listBracketsQuery)
	return brackets, err
}

func (s *BracketStore) GetPlayers(ctx context.Context, bracketID uuid.UUID) ([]PlayerRecord, error) {
	var players []PlayerRecord
	err := s.db.SelectContext(ctx, &players, getPlayersQuery, bracketID)
	return players, err
}

func (s *BracketStore) GetFights(ctx context.Context, bracketID uuid.UUID) ([]FightRecord, error) {
	var fights []FightRecord
	err := s.db.SelectContext(ctx, &fights, getFightsQuery, bracketID)
	return fights, err
}
