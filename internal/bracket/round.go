package bracket

import (
	"fmt"
	"iter"
)

// Round holds its fights in bracket order. It carries no traversal state;
// use Cursor or All to walk it.
type Round struct {
	fights []Fight
}

func NewRound(fights ...Fight) *Round {
	r := &Round{}
	for _, f := range fights {
		r.Push(f)
	}
	return r
}

func (r *Round) Push(fight Fight) {
	r.fights = append(r.fights, fight)
}

func (r *Round) Len() int {
	return len(r.fights)
}

func (r *Round) At(i int) (Fight, error) {
	if i < 0 || i >= len(r.fights) {
		return Fight{}, fmt.Errorf("fight %d of %d: %w", i, len(r.fights), ErrCursorExhausted)
	}
	return r.fights[i], nil
}

// Fights returns a copy of the fights in push order.
func (r *Round) Fights() []Fight {
	out := make([]Fight, len(r.fights))
	copy(out, r.fights)
	return out
}

// Cursor starts a new traversal at the first fight.
func (r *Round) Cursor() *Cursor {
	return &Cursor{round: r}
}

// All ranges over the fights with a cursor of its own, so nested or repeated
// loops never share position.
func (r *Round) All() iter.Seq2[int, Fight] {
	return func(yield func(int, Fight) bool) {
		c := r.Cursor()
		for {
			i := c.next
			f, err := c.Next()
			if err != nil {
				return
			}
			if !yield(i, f) {
				return
			}
		}
	}
}

// Cursor is a single forward pass over a Round. It is not restartable.
type Cursor struct {
	round *Round
	next  int
}

// Next returns the next fight, or ErrCursorExhausted once every fight has been
// returned. The cursor stays exhausted after that.
func (c *Cursor) Next() (Fight, error) {
	if c.next >= c.round.Len() {
		return Fight{}, ErrCursorExhausted
	}
	f := c.round.fights[c.next]
	c.next++
	return f, nil
}

func (c *Cursor) Remaining() int {
	return c.round.Len() - c.next
}
