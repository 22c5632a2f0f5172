package game

import (
	"errors"

	"bestia-game/internal/shared"
)

// ErrEmptyTrick reports an attempt to resolve a trick with no cards played.
var ErrEmptyTrick = errors.New("no cards on the table")

// PlayedCard stores a card together with the player who played it.
type PlayedCard struct {
	Player *shared.Player
	Card   shared.Card
}

// Trick tracks one trick from the first card to its resolution. The first
// card fixes the led suit and seeds the provisional winner; each further
// card is compared against the provisional winner as it lands.
type Trick struct {
	trump    shared.Card
	tracker  *Tracker
	expected int
	plays    []PlayedCard
	ledSuit  shared.Suit
	winning  int // index into plays, -1 while empty
}

// NewTrick creates a trick expecting one play from each active player.
func NewTrick(trump shared.Card, tracker *Tracker, expected int) *Trick {
	return &Trick{
		trump:    trump,
		tracker:  tracker,
		expected: expected,
		winning:  -1,
	}
}

// LedSuit returns the suit of the first card played, or "" while empty.
func (t *Trick) LedSuit() shared.Suit {
	return t.ledSuit
}

// Winning returns the provisional winner so far.
func (t *Trick) Winning() (PlayedCard, bool) {
	if t.winning < 0 {
		return PlayedCard{}, false
	}
	return t.plays[t.winning], true
}

// Size returns the number of cards played so far.
func (t *Trick) Size() int {
	return len(t.plays)
}

// Complete reports whether every expected play has been received.
func (t *Trick) Complete() bool {
	return len(t.plays) >= t.expected
}

// AddCard registers a played card, updating the led suit and the
// provisional winner.
func (t *Trick) AddCard(p *shared.Player, card shared.Card) {
	t.plays = append(t.plays, PlayedCard{Player: p, Card: card})
	t.tracker.RecordPlayed(card)

	if len(t.plays) == 1 {
		t.ledSuit = card.Suit
		t.winning = 0
		return
	}
	if beats(card, t.plays[t.winning].Card, t.trump.Suit) {
		t.winning = len(t.plays) - 1
	}
}

// Resolve returns the winner and the cards taken, then resets the trick for
// the next one.
func (t *Trick) Resolve() (*shared.Player, []shared.Card, error) {
	if len(t.plays) == 0 {
		return nil, nil, ErrEmptyTrick
	}
	winner := t.plays[t.winning].Player
	taken := make([]shared.Card, len(t.plays))
	for i, pc := range t.plays {
		taken[i] = pc.Card
	}

	t.plays = nil
	t.ledSuit = ""
	t.winning = -1
	t.tracker.ResetTrick()

	return winner, taken, nil
}

// beats reports whether card a takes over card b, the provisional winner.
// A trump always beats a plain card; within one suit the higher strength
// wins; a plain card of a different suit never wins.
func beats(a, b shared.Card, trumpSuit shared.Suit) bool {
	aTrump := a.Suit == trumpSuit
	bTrump := b.Suit == trumpSuit

	if aTrump && !bTrump {
		return true
	}
	if bTrump && !aTrump {
		return false
	}
	if a.Suit == b.Suit {
		return a.Strength > b.Strength
	}
	return false
}
