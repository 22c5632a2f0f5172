package game

import "bestia-game/internal/shared"

// HasSafeHand reports whether a hand is guaranteed to take at least one
// trick: the trump Asso, the trump Tre together with the trump Re, or the
// trump Tre alone when the trump indicator itself is the Asso.
func HasSafeHand(hand []shared.Card, trump shared.Card) bool {
	holds := func(rank shared.Rank) bool {
		for _, c := range hand {
			if c.Suit == trump.Suit && c.Rank == rank {
				return true
			}
		}
		return false
	}

	if holds(shared.Asso) {
		return true
	}
	if trump.Rank == shared.Asso {
		// The Asso is out of play as the indicator, so the Tre is the
		// strongest trump left.
		return holds(shared.Tre)
	}
	return holds(shared.Tre) && holds(shared.Re)
}

// ShouldEnterPlay decides whether a player knocks. A safe hand always
// knocks. Otherwise the hand points must exceed the threshold, and with
// stakes enabled the player must be able to cover the pot.
func ShouldEnterPlay(p *shared.Player, trump shared.Card, pot int, cfg Config) bool {
	if HasSafeHand(p.Hand, trump) {
		return true
	}
	if p.HandPoints() > cfg.KnockThreshold {
		if cfg.Stakes && p.Fiches < pot {
			return false
		}
		return true
	}
	return false
}

// ShouldRedraw decides whether a folded player draws a fresh hand. Without
// stakes there is nothing to lose; with stakes the player must be able to
// cover the pot.
func ShouldRedraw(p *shared.Player, pot int, cfg Config) bool {
	if !cfg.Stakes {
		return true
	}
	return p.Fiches >= pot
}
