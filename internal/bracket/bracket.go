package bracket

import "fmt"

type Scene string

const (
	SceneCreate     Scene = "create"
	SceneTournament Scene = "tournament"
)

func ParseScene(s string) (Scene, error) {
	switch Scene(s) {
	case SceneCreate, SceneTournament:
		return Scene(s), nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownScene)
}

type Event string

const (
	RequestCreateTournament Event = "create-tournament"
)

func ParseEvent(s string) (Event, error) {
	switch Event(s) {
	case RequestCreateTournament:
		return Event(s), nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownEvent)
}

type Bracket struct {
	Scene  Scene
	Rounds []*Round
	// Winner is declared by the seed data, not derived from the rounds.
	Winner *Player
}

func New(rounds []*Round, winner *Player) *Bracket {
	return &Bracket{
		Scene:  SceneCreate,
		Rounds: rounds,
		Winner: winner,
	}
}

// WithScene returns a shallow copy sharing the rounds and players.
func (b *Bracket) WithScene(scene Scene) *Bracket {
	cp := *b
	cp.Scene = scene
	return &cp
}

// Dispatch applies an event to the scene. The returned bool reports whether
// the view should be rendered again.
func (b *Bracket) Dispatch(ev Event) (bool, error) {
	switch ev {
	case RequestCreateTournament:
		b.Scene = SceneTournament
		return true, nil
	}
	return false, fmt.Errorf("%q: %w", ev, ErrUnknownEvent)
}

// Participants lists the players of the first round in encounter order,
// skipping empty slots. Players are not deduplicated.
func (b *Bracket) Participants() []*Player {
	if len(b.Rounds) == 0 || b.Rounds[0] == nil {
		return nil
	}

	var players []*Player
	cursor := b.Rounds[0].Cursor()
	for {
		fight, err := cursor.Next()
		if err != nil {
			break
		}
		if fight.First != nil {
			players = append(players, fight.First)
		}
		if fight.Second != nil {
			players = append(players, fight.Second)
		}
	}
	return players
}

func (b *Bracket) FightCount() int {
	n := 0
	for _, r := range b.Rounds {
		if r != nil {
			n += r.Len()
		}
	}
	return n
}
