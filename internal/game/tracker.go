package game

import "bestia-game/internal/shared"

// cardKey is the identity of a card, independent of its derived strength.
type cardKey struct {
	Suit shared.Suit
	Rank shared.Rank
}

func keyOf(c shared.Card) cardKey {
	return cardKey{Suit: c.Suit, Rank: c.Rank}
}

// Tracker accumulates the cards played face up during a round and answers,
// from one player's point of view, which stronger cards could still be in
// another hand.
type Tracker struct {
	trump  shared.Card
	played map[cardKey]bool
	trick  []shared.Card // cards on the table in the current trick
}

// NewTracker creates a tracker for a round with the given trump.
func NewTracker(trump shared.Card) *Tracker {
	return &Tracker{
		trump:  trump,
		played: make(map[cardKey]bool),
	}
}

// RecordPlayed registers a card played face up.
func (t *Tracker) RecordPlayed(c shared.Card) {
	t.played[keyOf(c)] = true
	t.trick = append(t.trick, c)
}

// ResetTrick clears the current-trick view. The cumulative played record
// persists for the whole round.
func (t *Tracker) ResetTrick() {
	t.trick = nil
}

// TrickCards returns the cards on the table in the current trick.
func (t *Tracker) TrickCards() []shared.Card {
	return t.trick
}

// KnownTo returns the set of cards the given player has seen: their own
// hand, their discards, and everything played face up so far.
func (t *Tracker) KnownTo(p *shared.Player) map[cardKey]bool {
	known := make(map[cardKey]bool, len(p.Hand)+len(p.Discarded)+len(t.played))
	for _, c := range p.Hand {
		known[keyOf(c)] = true
	}
	for _, c := range p.Discarded {
		known[keyOf(c)] = true
	}
	for k := range t.played {
		known[k] = true
	}
	return known
}

// StrongerUnseenSameSuit returns every card of the same suit as c with a
// strictly greater strength that the observer has not seen yet.
func (t *Tracker) StrongerUnseenSameSuit(c shared.Card, observer *shared.Player) []shared.Card {
	known := t.KnownTo(observer)
	isTrump := c.Suit == t.trump.Suit

	var stronger []shared.Card
	for _, rank := range shared.Ranks {
		candidate := shared.Card{
			Suit:     c.Suit,
			Rank:     rank,
			Strength: shared.StrengthOf(rank, isTrump),
		}
		if candidate.Strength > c.Strength && !known[keyOf(candidate)] {
			stronger = append(stronger, candidate)
		}
	}
	return stronger
}

// StrongerUnseenTrumps is StrongerUnseenSameSuit restricted to the trump
// suit. It returns nothing when c is not a trump.
func (t *Tracker) StrongerUnseenTrumps(c shared.Card, observer *shared.Player) []shared.Card {
	if c.Suit != t.trump.Suit {
		return nil
	}
	return t.StrongerUnseenSameSuit(c, observer)
}

// ExistsStrongerTrumpUnseen reports whether a trump stronger than c could
// still be in an opponent's hand.
func (t *Tracker) ExistsStrongerTrumpUnseen(c shared.Card, observer *shared.Player) bool {
	return len(t.StrongerUnseenTrumps(c, observer)) > 0
}
