package game

import "bestia-game/internal/shared"

// Display is a side-effecting sink the round calls after each decision.
// Implementations render to the console, collect a trace, or do nothing;
// the round never depends on what they produce.
type Display interface {
	RoundStarted(roundID string, trump shared.Card, players []*shared.Player)
	HandShown(p *shared.Player)
	KnockDecision(p *shared.Player, knocked, safe bool, points int)
	Redrew(p *shared.Player)
	CardPlayed(trick int, p *shared.Player, card shared.Card, leader bool)
	TrickWon(trick int, p *shared.Player, cards []shared.Card, points int)
	RoundEnded(res Result)
}

// NopDisplay discards every notification.
type NopDisplay struct{}

func (NopDisplay) RoundStarted(string, shared.Card, []*shared.Player) {}

func (NopDisplay) HandShown(*shared.Player) {}

func (NopDisplay) KnockDecision(*shared.Player, bool, bool, int) {}

func (NopDisplay) Redrew(*shared.Player) {}

func (NopDisplay) CardPlayed(int, *shared.Player, shared.Card, bool) {}

func (NopDisplay) TrickWon(int, *shared.Player, []shared.Card, int) {}

func (NopDisplay) RoundEnded(Result) {}
