package bracket

// Player is never mutated after construction, so the same *Player can sit in
// fight slots across several rounds.
type Player struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
}

func NewPlayer(firstName, lastName string) *Player {
	return &Player{FirstName: firstName, LastName: lastName}
}

func (p *Player) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Equal compares by name pair. A nil player only equals another nil player.
func (p *Player) Equal(other *Player) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.FirstName == other.FirstName && p.LastName == other.LastName
}
