package views

import (
	"log/slog"

	"github.com/AdamBeresnev/op-bracket/internal/bracket"
)

const (
	createTournamentKey = "create-tournament"
	byeKey              = "bye"
	pageTitleKey        = "page-title"

	AppRootID = "app"
)

type Translator interface {
	Translate(key string) (string, error)
}

// Project turns the bracket into a markup tree. It only reads the bracket.
func Project(b *bracket.Bracket, tr Translator) Node {
	root := Node{Tag: "div", ID: AppRootID, Classes: []string{"tournaments"}}
	root = root.With(createForm(tr))

	if b.Scene != bracket.SceneTournament {
		return root
	}

	players := div("players")
	for _, p := range b.Participants() {
		players = players.With(PlayerBlock(p))
	}

	rounds := div("rounds")
	for _, r := range b.Rounds {
		rounds = rounds.With(RoundBlock(r, tr))
	}

	tournament := div("tournament").With(players, rounds)
	if b.Winner != nil {
		tournament = tournament.With(div("winner").With(PlayerBlock(b.Winner)))
	}

	return root.With(tournament)
}

// createForm posts the create-tournament event. The form keeps working as a
// plain post when htmx is not loaded.
func createForm(tr Translator) Node {
	button := Node{Tag: "button", Text: translate(tr, createTournamentKey)}
	return Node{
		Tag:      "form",
		Action:   string(bracket.RequestCreateTournament),
		Children: []Node{button},
	}
}

func PlayerBlock(p *bracket.Player) Node {
	return Node{Tag: "div", Classes: []string{"player"}, Text: p.FullName()}
}

func RoundBlock(r *bracket.Round, tr Translator) Node {
	round := div("round")
	if r == nil {
		return round
	}
	for _, f := range r.All() {
		round = round.With(FightBlock(f, tr))
	}
	return round
}

// FightBlock renders both opponents. An empty slot gets a placeholder so one
// bye never takes the rest of the bracket down.
func FightBlock(f bracket.Fight, tr Translator) Node {
	return div("fight").With(
		opponentBlock(f, bracket.FirstSide, tr),
		opponentBlock(f, bracket.SecondSide, tr),
	)
}

func opponentBlock(f bracket.Fight, side bracket.Side, tr Translator) Node {
	n := div(side.String(), "opponent")
	p, err := f.Participant(side)
	if err != nil {
		n.Classes = append(n.Classes, "bye")
		n.Text = translate(tr, byeKey)
		return n
	}
	n.Text = p.FullName()
	return n
}

// translate falls back to the raw key when the message cannot be resolved.
func translate(tr Translator, key string) string {
	if tr == nil {
		return key
	}
	msg, err := tr.Translate(key)
	if err != nil {
		slog.Warn("missing translation", "key", key, "error", err)
		return key
	}
	return msg
}
