package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sort"

	"bestia-game/internal/shared"

	"github.com/google/uuid"
)

// Phase represents the current stage of a round.
type Phase string

const (
	Dealing  Phase = "Dealing"  // Shuffle, trump extraction, initial hands
	Knocking Phase = "Knocking" // Players decide whether to enter play
	Redraw   Phase = "Redraw"   // Folded players may draw a fresh hand
	Playing  Phase = "Playing"  // Tricks are being played
	Over     Phase = "Over"     // Round finished
)

// Result summarizes a finished round.
type Result struct {
	RoundID      string           `json:"round_id"`
	Played       bool             `json:"played"` // false when nobody knocked
	Trump        shared.Card      `json:"trump"`
	TrickWinners []string         `json:"trick_winners"` // player names, in trick order
	Ranking      []*shared.Player `json:"ranking"`       // active players, by points
	Pot          int              `json:"pot"`           // pot residue (stakes only)
}

// Round drives one full round: deal, knock phase, redraw phase, the tricks,
// and the scoring. It owns the deck, the trump and the trick state.
type Round struct {
	ID       string
	cfg      Config
	players  []*shared.Player
	dealer   int
	strategy Strategy
	display  Display

	deck    *shared.Deck
	trump   shared.Card
	tracker *Tracker
	active  []*shared.Player
	lead    int // index into active of the current lead seat
	phase   Phase

	// Stakes bookkeeping. pot is the stake set by the dealer's ante and
	// stays fixed during play, as the prize and penalty reference value;
	// paidOut and collected track the actual fiche flow for the residue.
	pot       int
	paidOut   int
	collected int
}

// NewRound creates a round for the given seats. dealer indexes into players;
// the seat after the dealer speaks and leads first.
func NewRound(cfg Config, players []*shared.Player, dealer int, strategy Strategy, display Display) *Round {
	if strategy == nil {
		strategy = Heuristic{}
	}
	if display == nil {
		display = NopDisplay{}
	}
	return &Round{
		ID:       uuid.NewString(),
		cfg:      cfg,
		players:  players,
		dealer:   ((dealer % len(players)) + len(players)) % len(players),
		strategy: strategy,
		display:  display,
		phase:    Dealing,
	}
}

// Phase returns the round's current phase.
func (r *Round) Phase() Phase {
	return r.phase
}

// Play runs the whole round with a deck shuffled from the given source.
func (r *Round) Play(rng *rand.Rand) (Result, error) {
	deck := shared.NewDeck()
	deck.Shuffle(rng)
	return r.run(deck)
}

// run plays the round with a prepared deck.
func (r *Round) run(deck *shared.Deck) (Result, error) {
	if err := r.cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid config: %w", err)
	}

	if err := r.deal(deck); err != nil {
		return Result{}, err
	}

	if r.cfg.Stakes {
		r.pot = r.players[r.dealer].Pay(r.cfg.DealerAnte)
		log.Printf("Round %s: Dealer %s antes %d fiches.", r.ID, r.players[r.dealer].Name, r.pot)
	}

	r.knockPhase()
	if len(r.active) == 0 {
		log.Printf("Round %s: Nobody knocked, round ends early.", r.ID)
		r.phase = Over
		res := Result{RoundID: r.ID, Played: false, Trump: r.trump, Pot: r.pot}
		r.display.RoundEnded(res)
		return res, nil
	}

	r.redrawPhase()

	res, err := r.playTricks()
	if err != nil {
		return Result{}, err
	}

	r.scorePenalties()
	r.phase = Over

	res.Ranking = r.ranking()
	res.Pot = r.pot - r.paidOut + r.collected
	r.display.RoundEnded(res)
	return res, nil
}

// deal builds the round state from the deck: trump, strengths, hands.
func (r *Round) deal(deck *shared.Deck) error {
	r.phase = Dealing
	r.deck = deck

	trump, err := deck.DrawTrump()
	if err != nil {
		return fmt.Errorf("drawing trump: %w", err)
	}
	r.trump = trump
	if err := deck.AssignStrengths(); err != nil {
		return fmt.Errorf("assigning strengths: %w", err)
	}
	r.tracker = NewTracker(trump)

	for _, p := range r.players {
		p.ResetRound()
		hand, err := deck.Draw(r.cfg.CardsPerHand)
		if err != nil {
			return fmt.Errorf("dealing to %s: %w", p.Name, err)
		}
		p.AddCards(hand)
	}

	log.Printf("Round %s: Trump is %s, %d cards left in deck.", r.ID, trump, deck.Remaining())
	r.display.RoundStarted(r.ID, trump, r.players)
	return nil
}

// knockPhase asks every player, starting left of the dealer, whether they
// enter play. Folded players discard their hand face down.
func (r *Round) knockPhase() {
	r.phase = Knocking
	for offset := range r.players {
		p := r.players[(r.dealer+1+offset)%len(r.players)]
		r.display.HandShown(p)

		safe := HasSafeHand(p.Hand, r.trump)
		points := p.HandPoints()
		if ShouldEnterPlay(p, r.trump, r.pot, r.cfg) {
			p.Knocked = true
			r.active = append(r.active, p)
			log.Printf("Round %s: %s knocks (points %d, safe %t).", r.ID, p.Name, points, safe)
		} else {
			p.DiscardHand()
			log.Printf("Round %s: %s folds (points %d).", r.ID, p.Name, points)
		}
		r.display.KnockDecision(p, p.Knocked, safe, points)
	}
}

// redrawPhase lets folded players buy back in with a fresh hand while at
// most three players have knocked and the deck still holds a full hand.
func (r *Round) redrawPhase() {
	r.phase = Redraw
	for offset := range r.players {
		p := r.players[(r.dealer+1+offset)%len(r.players)]
		if p.Knocked {
			continue
		}
		if len(r.active) > 3 || r.deck.Remaining() < r.cfg.CardsPerHand {
			continue
		}
		if !ShouldRedraw(p, r.pot, r.cfg) {
			log.Printf("Round %s: %s cannot afford to redraw.", r.ID, p.Name)
			continue
		}
		hand, err := r.deck.Draw(r.cfg.CardsPerHand)
		if errors.Is(err, shared.ErrInsufficientCards) {
			continue
		}
		p.AddCards(hand)
		p.Knocked = true
		r.active = append(r.active, p)
		log.Printf("Round %s: %s redraws a fresh hand.", r.ID, p.Name)
		r.display.Redrew(p)
	}
}

// playTricks runs the trick rounds. The winner of each trick leads the next.
func (r *Round) playTricks() (Result, error) {
	r.phase = Playing
	res := Result{RoundID: r.ID, Played: true, Trump: r.trump}
	r.lead = 0

	for trickNo := 0; trickNo < r.cfg.CardsPerHand; trickNo++ {
		trick := NewTrick(r.trump, r.tracker, len(r.active))

		for offset := range r.active {
			p := r.active[(r.lead+offset)%len(r.active)]
			view := TurnView{
				Trump:      r.trump,
				Trick:      trick,
				Tracker:    r.tracker,
				FirstTrick: trickNo == 0,
				Leader:     offset == 0,
				LastToAct:  offset == len(r.active)-1,
			}
			card, err := r.strategy.ChooseCard(p, view)
			if err != nil {
				return Result{}, fmt.Errorf("choosing card for %s: %w", p.Name, err)
			}
			if !p.RemoveCard(card) {
				return Result{}, fmt.Errorf("strategy chose %s, which %s does not hold", card, p.Name)
			}
			trick.AddCard(p, card)
			r.display.CardPlayed(trickNo, p, card, offset == 0)
		}

		winner, taken, err := trick.Resolve()
		if err != nil {
			return Result{}, fmt.Errorf("resolving trick %d: %w", trickNo, err)
		}

		points := 0
		for _, c := range taken {
			points += c.Strength
		}
		winner.WonCards = append(winner.WonCards, taken...)
		winner.Points += points
		winner.TricksWon++
		if r.cfg.Stakes {
			prize := r.pot / r.cfg.CardsPerHand
			winner.Receive(prize)
			r.paidOut += prize
		}

		res.TrickWinners = append(res.TrickWinners, winner.Name)
		log.Printf("Round %s: %s takes trick %d (+%d points).", r.ID, winner.Name, trickNo+1, points)
		r.display.TrickWon(trickNo, winner, taken, points)

		for i, p := range r.active {
			if p == winner {
				r.lead = i
				break
			}
		}
	}

	return res, nil
}

// scorePenalties makes every active player who took no trick pay the pot.
func (r *Round) scorePenalties() {
	if !r.cfg.Stakes {
		return
	}
	for _, p := range r.active {
		if p.TricksWon == 0 {
			paid := p.Pay(r.pot)
			r.collected += paid
			log.Printf("Round %s: %s took no trick and pays %d fiches.", r.ID, p.Name, paid)
		}
	}
}

// ranking returns the active players ordered by points, best first.
func (r *Round) ranking() []*shared.Player {
	ranked := make([]*shared.Player, len(r.active))
	copy(ranked, r.active)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Points > ranked[j].Points
	})
	return ranked
}
