package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AdamBeresnev/op-bracket/internal/bracket"
	"github.com/AdamBeresnev/op-bracket/internal/seed"
	"github.com/AdamBeresnev/op-bracket/internal/store"
	"github.com/AdamBeresnev/op-bracket/internal/utils"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrBracketNotFound = errors.New("bracket not found in catalog")

// CatalogService keeps seed definitions in the database so a bracket can be
// served by name. Scenes are never stored.
type CatalogService struct {
	db    *sqlx.DB
	store *store.BracketStore
}

func NewCatalogService(db *sqlx.DB, store *store.BracketStore) *CatalogService {
	return &CatalogService{db: db, store: store}
}

// Import stores the definition, replacing any bracket with the same name.
func (s *CatalogService) Import(ctx context.Context, def *seed.Definition) (uuid.UUID, error) {
	if def.Name == "" {
		return uuid.Nil, fmt.Errorf("import: seed has no name")
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}
	defer tx.Rollback()

	if err := s.store.DeleteBracketByName(ctx, tx, def.Name); err != nil {
		return uuid.Nil, fmt.Errorf("failed to replace %q: %w", def.Name, err)
	}

	bracketID := uuid.New()
	b := def.Bracket

	// Shared players get one row, keyed by pointer
	playerIDs := make(map[*bracket.Player]uuid.UUID)
	var players []store.PlayerRecord
	idFor := func(p *bracket.Player) *uuid.UUID {
		if p == nil {
			return nil
		}
		id, ok := playerIDs[p]
		if !ok {
			id = uuid.New()
			playerIDs[p] = id
			players = append(players, store.PlayerRecord{
				ID:        id,
				BracketID: bracketID,
				FirstName: p.FirstName,
				LastName:  p.LastName,
			})
		}
		return utils.Ptr(id)
	}

	var fights []store.FightRecord
	for r, round := range b.Rounds {
		for i, f := range round.All() {
			fights = append(fights, store.FightRecord{
				ID:             uuid.New(),
				BracketID:      bracketID,
				RoundNumber:    r + 1,
				FightOrder:     i + 1,
				FirstPlayerID:  idFor(f.First),
				SecondPlayerID: idFor(f.Second),
			})
		}
	}

	record := store.BracketRecord{
		ID:             bracketID,
		Name:           def.Name,
		RoundCount:     len(b.Rounds),
		WinnerPlayerID: idFor(b.Winner),
	}

	if err := s.store.CreateBracket(ctx, tx, &record); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create bracket: %w", err)
	}
	if err := s.store.CreatePlayers(ctx, tx, players); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create players: %w", err)
	}
	if err := s.store.CreateFights(ctx, tx, fights); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create fights: %w", err)
	}

	return bracketID, tx.Commit()
}

// Load rebuilds a bracket from the catalog. The result starts in the Create
// scene like any freshly seeded bracket.
func (s *CatalogService) Load(ctx context.Context, name string) (*bracket.Bracket, error) {
	record, err := s.store.GetBracketByName(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%q: %w", name, ErrBracketNotFound)
		}
		return nil, fmt.Errorf("failed to get bracket: %w", err)
	}

	playerRows, err := s.store.GetPlayers(ctx, record.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}
	players := make(map[uuid.UUID]*bracket.Player, len(playerRows))
	for _, p := range playerRows {
		players[p.ID] = bracket.NewPlayer(p.FirstName, p.LastName)
	}

	lookup := func(id *uuid.UUID) (*bracket.Player, error) {
		if id == nil {
			return nil, nil
		}
		p, ok := players[*id]
		if !ok {
			return nil, fmt.Errorf("player %s is not part of bracket %q", id, name)
		}
		return p, nil
	}

	fightRows, err := s.store.GetFights(ctx, record.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fights: %w", err)
	}

	rounds := make([]*bracket.Round, record.RoundCount)
	for i := range rounds {
		rounds[i] = bracket.NewRound()
	}
	// Rows come back ordered by round then fight order
	for _, f := range fightRows {
		if f.RoundNumber < 1 || f.RoundNumber > len(rounds) {
			return nil, fmt.Errorf("fight %s has round %d, bracket %q has %d rounds", f.ID, f.RoundNumber, name, len(rounds))
		}
		first, err := lookup(f.FirstPlayerID)
		if err != nil {
			return nil, err
		}
		second, err := lookup(f.SecondPlayerID)
		if err != nil {
			return nil, err
		}
		rounds[f.RoundNumber-1].Push(bracket.NewFight(first, second))
	}

	winner, err := lookup(record.WinnerPlayerID)
	if err != nil {
		return nil, err
	}

	return bracket.New(rounds, winner), nil
}

func (s *CatalogService) Names(ctx context.Context) ([]string, error) {
	records, err := s.store.ListBrackets(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Name)
	}
	return names, nil
}
