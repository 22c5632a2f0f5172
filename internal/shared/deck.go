package shared

import (
	"log"
	"math/rand"
)

// Deck represents the 40-card Bestia deck together with the trump indicator
// once it has been extracted.
type Deck struct {
	Cards []Card
	Trump *Card
}

// NewDeck creates a full 40-card Neapolitan deck. Strengths are zero until
// AssignStrengths is called with a trump in place.
func NewDeck() *Deck {
	cards := make([]Card, 0, len(Suits)*len(Ranks))
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	return &Deck{Cards: cards}
}

// Shuffle randomizes the order of cards using the provided source, so
// simulations can be replayed from a seed.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// DrawTrump removes the top card and keeps it as the trump indicator.
func (d *Deck) DrawTrump() (Card, error) {
	if len(d.Cards) == 0 {
		return Card{}, ErrInsufficientCards
	}
	trump := d.Cards[0]
	d.Cards = d.Cards[1:]
	trump.Strength = StrengthOf(trump.Rank, true)
	d.Trump = &trump
	return trump, nil
}

// AssignStrengths stamps the taking strength of every card remaining in the
// deck according to the extracted trump.
func (d *Deck) AssignStrengths() error {
	if d.Trump == nil {
		return ErrTrumpNotDrawn
	}
	for i := range d.Cards {
		d.Cards[i].Strength = StrengthOf(d.Cards[i].Rank, d.Cards[i].Suit == d.Trump.Suit)
	}
	return nil
}

// Draw removes and returns n cards from the top of the deck. If fewer than n
// remain it returns ErrInsufficientCards and draws nothing.
func (d *Deck) Draw(n int) ([]Card, error) {
	if n < 0 {
		log.Panicf("Invalid draw count %d.", n)
	}
	if len(d.Cards) < n {
		return nil, ErrInsufficientCards
	}
	drawn := make([]Card, n)
	copy(drawn, d.Cards[:n])
	d.Cards = d.Cards[n:]
	return drawn, nil
}

// Remaining returns the number of cards left in the deck.
func (d *Deck) Remaining() int {
	return len(d.Cards)
}
