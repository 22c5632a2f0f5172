package game

import "bestia-game/internal/shared"

// mk builds a card with its strength already stamped for the given trump
// suit, the way cards look after Deck.AssignStrengths.
func mk(suit shared.Suit, rank shared.Rank, trumpSuit shared.Suit) shared.Card {
	return shared.Card{
		Suit:     suit,
		Rank:     rank,
		Strength: shared.StrengthOf(rank, suit == trumpSuit),
	}
}

// fullDeck returns all 40 cards with strengths for the given trump suit.
func fullDeck(trumpSuit shared.Suit) []shared.Card {
	cards := make([]shared.Card, 0, 40)
	for _, suit := range shared.Suits {
		for _, rank := range shared.Ranks {
			cards = append(cards, mk(suit, rank, trumpSuit))
		}
	}
	return cards
}
