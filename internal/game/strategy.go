package game

import "bestia-game/internal/shared"

// TurnView is everything a strategy may look at when choosing a card: the
// trump, the trick in progress, the card memory, and the player's position
// in the turn order.
type TurnView struct {
	Trump      shared.Card
	Trick      *Trick
	Tracker    *Tracker
	FirstTrick bool
	Leader     bool
	LastToAct  bool
}

// Strategy chooses which card a player plays. It must pick a legal card but
// must not mutate the hand; the caller removes the chosen card.
type Strategy interface {
	ChooseCard(p *shared.Player, view TurnView) (shared.Card, error)
}

// Heuristic is the standard rule-compliant Bestia strategy.
type Heuristic struct{}

// ChooseCard applies the Bestia play rules:
//  1. the leader of the first trick must open with the trump Asso if held;
//  2. a follower must follow the led suit, then must trump, and only then
//     may discard freely;
// and within the legal cards plays the cheapest card that wins, holding
// strong trumps back while a stronger trump may still be out.
func (Heuristic) ChooseCard(p *shared.Player, view TurnView) (shared.Card, error) {
	if len(p.Hand) == 0 {
		return shared.Card{}, shared.ErrEmptyHand
	}

	if view.Leader && view.FirstTrick {
		if ace, ok := p.FindCard(view.Trump.Suit, shared.Asso); ok {
			return ace, nil
		}
	}

	if !view.Leader {
		if view.Trick.LedSuit() == "" {
			// A follower before any lead should not happen; fall back to
			// the cheapest card.
			return lowestPreferringPlain(p.Hand, view.Trump.Suit), nil
		}
		return followerCard(p, view), nil
	}

	return leaderCard(p, view), nil
}

// leaderCard opens a trick: prefer the strongest plain card and keep trumps
// in reserve, unless a top trump is already unbeatable.
func leaderCard(p *shared.Player, view TurnView) shared.Card {
	trumps := cardsOfSuit(p.Hand, view.Trump.Suit)
	plains := cardsNotOfSuit(p.Hand, view.Trump.Suit)

	if len(plains) == 0 {
		return strongest(trumps)
	}

	if len(trumps) > 0 {
		best := strongest(trumps)
		if best.Rank == shared.Asso || best.Rank == shared.Tre {
			if !view.Tracker.ExistsStrongerTrumpUnseen(best, p) {
				// Nothing left can take it.
				return best
			}
		}
	}

	return strongest(plains)
}

// followerCard answers a led suit under the follow-suit and trump
// obligations.
func followerCard(p *shared.Player, view TurnView) shared.Card {
	legal := cardsOfSuit(p.Hand, view.Trick.LedSuit())
	if len(legal) == 0 {
		legal = cardsOfSuit(p.Hand, view.Trump.Suit)
	}
	if len(legal) == 0 {
		// Free to discard anything.
		return lowestPreferringPlain(p.Hand, view.Trump.Suit)
	}

	toBeat, ok := view.Trick.Winning()
	if !ok {
		return strongest(legal)
	}

	var winners []shared.Card
	for _, c := range legal {
		if beats(c, toBeat.Card, view.Trump.Suit) {
			winners = append(winners, c)
		}
	}

	if view.LastToAct {
		if len(winners) > 0 {
			return weakest(winners)
		}
		return weakest(legal)
	}

	if legal[0].Suit == view.Trump.Suit {
		// Answering with trumps.
		if len(winners) == 0 {
			return weakest(legal)
		}
		cheapest := weakest(winners)
		if view.Tracker.ExistsStrongerTrumpUnseen(cheapest, p) {
			// A later player could still overtake; save the trump.
			return weakest(legal)
		}
		return cheapest
	}

	// Answering with plain cards.
	if len(winners) > 0 {
		return weakest(winners)
	}
	// Cannot win: shed the strongest card, trumps stay in reserve anyway.
	return strongest(legal)
}

func cardsOfSuit(hand []shared.Card, suit shared.Suit) []shared.Card {
	var out []shared.Card
	for _, c := range hand {
		if c.Suit == suit {
			out = append(out, c)
		}
	}
	return out
}

func cardsNotOfSuit(hand []shared.Card, suit shared.Suit) []shared.Card {
	var out []shared.Card
	for _, c := range hand {
		if c.Suit != suit {
			out = append(out, c)
		}
	}
	return out
}

func strongest(cards []shared.Card) shared.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Strength > best.Strength {
			best = c
		}
	}
	return best
}

func weakest(cards []shared.Card) shared.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Strength < best.Strength {
			best = c
		}
	}
	return best
}

// lowestPreferringPlain picks the cheapest card, spending plain cards
// before trumps.
func lowestPreferringPlain(hand []shared.Card, trumpSuit shared.Suit) shared.Card {
	if plains := cardsNotOfSuit(hand, trumpSuit); len(plains) > 0 {
		return weakest(plains)
	}
	return weakest(hand)
}
