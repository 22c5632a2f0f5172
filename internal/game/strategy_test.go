package game

import (
	"errors"
	"testing"

	"bestia-game/internal/shared"
)

// playScenario seeds a trick with prior plays and asks the heuristic for
// the next card.
type playScenario struct {
	name       string
	trump      shared.Card
	hand       []shared.Card
	prior      []shared.Card // cards already on the table, in play order
	played     []shared.Card // earlier tricks, fed to the tracker
	firstTrick bool
	leader     bool
	lastToAct  bool
	want       shared.Card
}

func TestHeuristicChooseCard(t *testing.T) {
	coppe := shared.Coppe
	trump := mk(coppe, shared.Sette, coppe)

	cases := []playScenario{
		{
			name:  "leader must open the first trick with the trump ace",
			trump: trump,
			hand: []shared.Card{
				mk(shared.Denari, shared.Asso, coppe),
				mk(coppe, shared.Asso, coppe),
				mk(shared.Spade, shared.Due, coppe),
			},
			firstTrick: true,
			leader:     true,
			want:       mk(coppe, shared.Asso, coppe),
		},
		{
			name:  "leader prefers the strongest plain card",
			trump: trump,
			hand: []shared.Card{
				mk(coppe, shared.Due, coppe),
				mk(shared.Spade, shared.Asso, coppe),
				mk(shared.Denari, shared.Cinque, coppe),
			},
			leader: true,
			want:   mk(shared.Spade, shared.Asso, coppe),
		},
		{
			name:  "leader with only trumps plays the strongest",
			trump: trump,
			hand: []shared.Card{
				mk(coppe, shared.Due, coppe),
				mk(coppe, shared.Fante, coppe),
			},
			leader: true,
			want:   mk(coppe, shared.Fante, coppe),
		},
		{
			name:  "leader cashes an unbeatable trump tre",
			trump: trump,
			hand: []shared.Card{
				mk(coppe, shared.Tre, coppe),
				mk(shared.Spade, shared.Re, coppe),
			},
			played: []shared.Card{mk(coppe, shared.Asso, coppe)},
			leader: true,
			want:   mk(coppe, shared.Tre, coppe),
		},
		{
			name:  "leader holds a beatable trump tre back",
			trump: trump,
			hand: []shared.Card{
				mk(coppe, shared.Tre, coppe),
				mk(shared.Spade, shared.Re, coppe),
			},
			leader: true,
			want:   mk(shared.Spade, shared.Re, coppe),
		},
		{
			name:  "follower wins the led suit as cheaply as possible",
			trump: trump,
			hand: []shared.Card{
				mk(shared.Denari, shared.Re, coppe),
				mk(shared.Denari, shared.Asso, coppe),
				mk(shared.Spade, shared.Asso, coppe),
			},
			prior: []shared.Card{mk(shared.Denari, shared.Fante, coppe)},
			want:  mk(shared.Denari, shared.Re, coppe),
		},
		{
			name:  "follower who cannot win dumps the strongest led-suit card",
			trump: trump,
			hand: []shared.Card{
				mk(shared.Denari, shared.Re, coppe),
				mk(shared.Denari, shared.Due, coppe),
			},
			prior: []shared.Card{mk(shared.Denari, shared.Asso, coppe)},
			want:  mk(shared.Denari, shared.Re, coppe),
		},
		{
			name:  "last to act who cannot win plays the cheapest legal card",
			trump: trump,
			hand: []shared.Card{
				mk(shared.Denari, shared.Re, coppe),
				mk(shared.Denari, shared.Due, coppe),
			},
			prior:     []shared.Card{mk(shared.Denari, shared.Asso, coppe)},
			lastToAct: true,
			want:      mk(shared.Denari, shared.Due, coppe),
		},
		{
			name:  "last to act wins with the cheapest winner",
			trump: trump,
			hand: []shared.Card{
				mk(shared.Denari, shared.Re, coppe),
				mk(shared.Denari, shared.Asso, coppe),
			},
			prior:     []shared.Card{mk(shared.Denari, shared.Fante, coppe)},
			lastToAct: true,
			want:      mk(shared.Denari, shared.Re, coppe),
		},
		{
			name:  "void in the led suit must trump",
			trump: trump,
			hand: []shared.Card{
				mk(coppe, shared.Due, coppe),
				mk(shared.Bastoni, shared.Asso, coppe),
			},
			prior: []shared.Card{mk(shared.Denari, shared.Asso, coppe)},
			want:  mk(coppe, shared.Due, coppe),
		},
		{
			name:  "trumping defensively while a stronger trump is out",
			trump: trump,
			hand: []shared.Card{
				mk(coppe, shared.Due, coppe),
				mk(coppe, shared.Re, coppe),
			},
			prior: []shared.Card{mk(coppe, shared.Fante, coppe)},
			want:  mk(coppe, shared.Due, coppe),
		},
		{
			name:  "trumping to win once nothing stronger is out",
			trump: trump,
			hand: []shared.Card{
				mk(coppe, shared.Due, coppe),
				mk(coppe, shared.Re, coppe),
			},
			prior: []shared.Card{mk(coppe, shared.Fante, coppe)},
			played: []shared.Card{
				mk(coppe, shared.Asso, coppe),
				mk(coppe, shared.Tre, coppe),
			},
			want: mk(coppe, shared.Re, coppe),
		},
		{
			name:  "void everywhere sheds the cheapest plain card",
			trump: trump,
			hand: []shared.Card{
				mk(shared.Bastoni, shared.Asso, coppe),
				mk(shared.Spade, shared.Due, coppe),
			},
			prior: []shared.Card{mk(shared.Denari, shared.Asso, coppe)},
			want:  mk(shared.Spade, shared.Due, coppe),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tracker := NewTracker(tc.trump)
			for _, c := range tc.played {
				tracker.RecordPlayed(c)
			}
			tracker.ResetTrick()

			expected := len(tc.prior) + 2
			trick := NewTrick(tc.trump, tracker, expected)
			opponent := shared.NewPlayer("Opponent", 0)
			for _, c := range tc.prior {
				trick.AddCard(opponent, c)
			}

			p := shared.NewPlayer("Test", 0)
			p.Hand = append([]shared.Card{}, tc.hand...)

			got, err := Heuristic{}.ChooseCard(p, TurnView{
				Trump:      tc.trump,
				Trick:      trick,
				Tracker:    tracker,
				FirstTrick: tc.firstTrick,
				Leader:     tc.leader,
				LastToAct:  tc.lastToAct,
			})
			if err != nil {
				t.Fatalf("ChooseCard: %v", err)
			}
			if !got.SameAs(tc.want) {
				t.Errorf("chose %s, want %s", got, tc.want)
			}
			if len(p.Hand) != len(tc.hand) {
				t.Errorf("strategy must not mutate the hand")
			}
		})
	}
}

func TestHeuristicFollowsObligations(t *testing.T) {
	coppe := shared.Coppe
	trump := mk(coppe, shared.Sette, coppe)

	hands := [][]shared.Card{
		{mk(shared.Denari, shared.Due, coppe), mk(shared.Spade, shared.Asso, coppe), mk(coppe, shared.Re, coppe)},
		{mk(shared.Denari, shared.Asso, coppe), mk(shared.Denari, shared.Tre, coppe), mk(shared.Bastoni, shared.Due, coppe)},
		{mk(coppe, shared.Due, coppe), mk(coppe, shared.Tre, coppe), mk(shared.Bastoni, shared.Re, coppe)},
		{mk(shared.Bastoni, shared.Asso, coppe), mk(shared.Spade, shared.Fante, coppe), mk(shared.Spade, shared.Cinque, coppe)},
	}

	for i, hand := range hands {
		for _, last := range []bool{false, true} {
			tracker := NewTracker(trump)
			trick := NewTrick(trump, tracker, 3)
			opponent := shared.NewPlayer("Opponent", 0)
			trick.AddCard(opponent, mk(shared.Denari, shared.Fante, coppe))

			p := shared.NewPlayer("Test", 0)
			p.Hand = append([]shared.Card{}, hand...)

			got, err := Heuristic{}.ChooseCard(p, TurnView{
				Trump:     trump,
				Trick:     trick,
				Tracker:   tracker,
				LastToAct: last,
			})
			if err != nil {
				t.Fatalf("hand %d: %v", i, err)
			}

			holdsLed := p.HasSuit(shared.Denari)
			holdsTrump := p.HasSuit(coppe)
			switch {
			case holdsLed:
				if got.Suit != shared.Denari {
					t.Errorf("hand %d (last=%t): must follow suit, played %s", i, last, got)
				}
			case holdsTrump:
				if got.Suit != coppe {
					t.Errorf("hand %d (last=%t): must trump when void in the led suit, played %s", i, last, got)
				}
			}
		}
	}
}

func TestHeuristicEmptyHand(t *testing.T) {
	coppe := shared.Coppe
	trump := mk(coppe, shared.Sette, coppe)
	tracker := NewTracker(trump)
	trick := NewTrick(trump, tracker, 2)

	p := shared.NewPlayer("Test", 0)
	_, err := Heuristic{}.ChooseCard(p, TurnView{Trump: trump, Trick: trick, Tracker: tracker, Leader: true})
	if !errors.Is(err, shared.ErrEmptyHand) {
		t.Fatalf("expected ErrEmptyHand, got %v", err)
	}
}
