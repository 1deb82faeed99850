package bracket

import "fmt"

type Side int

const (
	FirstSide Side = iota + 1
	SecondSide
)

func (s Side) String() string {
	switch s {
	case FirstSide:
		return "first"
	case SecondSide:
		return "second"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// Fight pairs up to two players. A nil slot is a bye or a participant that is
// not known yet.
type Fight struct {
	First  *Player
	Second *Player
}

func NewFight(first, second *Player) Fight {
	return Fight{First: first, Second: second}
}

// Participant returns the player in the given slot, or ErrMissingParticipant
// when the slot is empty.
func (f Fight) Participant(side Side) (*Player, error) {
	var p *Player
	switch side {
	case FirstSide:
		p = f.First
	case SecondSide:
		p = f.Second
	default:
		return nil, fmt.Errorf("unknown fight side %d", int(side))
	}
	if p == nil {
		return nil, fmt.Errorf("%s slot: %w", side, ErrMissingParticipant)
	}
	return p, nil
}

func (f Fight) IsBye() bool {
	return (f.First == nil) != (f.Second == nil)
}

func (f Fight) IsEmpty() bool {
	return f.First == nil && f.Second == nil
}
