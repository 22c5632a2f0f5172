package shared

import "log"

// Suit represents the suit of a Neapolitan card.
type Suit string

const (
	Coppe   Suit = "Coppe"
	Denari  Suit = "Denari"
	Spade   Suit = "Spade"
	Bastoni Suit = "Bastoni"
)

// Rank represents the rank of a card.
type Rank string

const (
	Asso    Rank = "Asso"
	Due     Rank = "2"
	Tre     Rank = "3"
	Quattro Rank = "4"
	Cinque  Rank = "5"
	Sei     Rank = "6"
	Sette   Rank = "7"
	Fante   Rank = "Fante"
	Cavallo Rank = "Cavallo"
	Re      Rank = "Re"
)

// Suits lists the four suits in deck-construction order.
var Suits = []Suit{Coppe, Denari, Spade, Bastoni}

// Ranks lists the ten ranks in deck-construction order.
var Ranks = []Rank{Asso, Due, Tre, Quattro, Cinque, Sei, Sette, Fante, Cavallo, Re}

// Taking strength of each rank when its suit is the trump suit.
var trumpStrength = map[Rank]int{
	Asso:    100,
	Tre:     95,
	Re:      85,
	Cavallo: 75,
	Fante:   65,
	Sette:   55,
	Sei:     50,
	Cinque:  45,
	Quattro: 40,
	Due:     35,
}

// Taking strength of each rank in a plain (non-trump) suit.
var plainStrength = map[Rank]int{
	Asso:    90,
	Tre:     80,
	Re:      60,
	Cavallo: 50,
	Fante:   40,
	Sette:   20,
	Sei:     15,
	Cinque:  10,
	Quattro: 5,
	Due:     2,
}

// StrengthOf returns the taking strength of a rank, depending on whether its
// suit is the trump suit. An unknown rank is a programming error.
func StrengthOf(rank Rank, trump bool) int {
	table := plainStrength
	if trump {
		table = trumpStrength
	}
	strength, ok := table[rank]
	if !ok {
		log.Panicf("Invalid rank %q in strength lookup.", rank)
	}
	return strength
}

// Card represents a single card in the Bestia game.
type Card struct {
	Suit     Suit `json:"suit"`
	Rank     Rank `json:"rank"`
	Strength int  `json:"strength"` // Taking strength under the current trump
}

// SameAs reports whether two cards are the same physical card. Identity is
// (suit, rank) only; Strength is derived from the trump and not part of it.
func (c Card) SameAs(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank
}

func (c Card) String() string {
	return string(c.Rank) + " di " + string(c.Suit)
}
