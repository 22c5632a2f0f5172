package shared

import "github.com/google/uuid"

// Player represents a participant in the Bestia game. Fiches and Points
// persist across rounds; the hand and the card piles reset every round.
type Player struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Hand      []Card `json:"-"`
	WonCards  []Card `json:"-"`
	Discarded []Card `json:"-"`
	Fiches    int    `json:"fiches"`
	Knocked   bool   `json:"knocked"`
	TricksWon int    `json:"tricks_won"`
	Points    int    `json:"points"`
}

// NewPlayer creates a player with a fresh ID and the given starting balance.
func NewPlayer(name string, fiches int) *Player {
	return &Player{
		ID:     uuid.NewString(),
		Name:   name,
		Fiches: fiches,
	}
}

// AddCards appends cards to the player's hand.
func (p *Player) AddCards(cards []Card) {
	p.Hand = append(p.Hand, cards...)
}

// RemoveCard removes a card from the hand by identity. It reports whether
// the card was actually held.
func (p *Player) RemoveCard(card Card) bool {
	for i, c := range p.Hand {
		if c.SameAs(card) {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// PlayCardAt removes and returns the card at the given hand index.
func (p *Player) PlayCardAt(i int) (Card, error) {
	if len(p.Hand) == 0 {
		return Card{}, ErrEmptyHand
	}
	if i < 0 || i >= len(p.Hand) {
		i = 0
	}
	card := p.Hand[i]
	p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
	return card, nil
}

// HandPoints sums the taking strength of every card in hand.
func (p *Player) HandPoints() int {
	points := 0
	for _, c := range p.Hand {
		points += c.Strength
	}
	return points
}

// DiscardHand moves the whole hand onto the player's discard pile.
func (p *Player) DiscardHand() {
	p.Discarded = append(p.Discarded, p.Hand...)
	p.Hand = nil
}

// HasSuit reports whether the player holds at least one card of the suit.
func (p *Player) HasSuit(suit Suit) bool {
	for _, c := range p.Hand {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

// FindCard looks up a card in the hand by suit and rank.
func (p *Player) FindCard(suit Suit, rank Rank) (Card, bool) {
	for _, c := range p.Hand {
		if c.Suit == suit && c.Rank == rank {
			return c, true
		}
	}
	return Card{}, false
}

// Pay deducts up to amount from the player's fiches and returns what was
// actually paid. A short balance pays out in full and leaves zero.
func (p *Player) Pay(amount int) int {
	if p.Fiches >= amount {
		p.Fiches -= amount
		return amount
	}
	paid := p.Fiches
	p.Fiches = 0
	return paid
}

// Receive adds fiches to the player's balance.
func (p *Player) Receive(amount int) {
	p.Fiches += amount
}

// ResetRound clears all per-round state. Fiches and Points carry over.
func (p *Player) ResetRound() {
	p.Hand = nil
	p.WonCards = nil
	p.Discarded = nil
	p.Knocked = false
	p.TricksWon = 0
}
