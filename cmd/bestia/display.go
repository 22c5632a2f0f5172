package main

import (
	"fmt"
	"strings"

	"bestia-game/internal/game"
	"bestia-game/internal/shared"
	"bestia-game/internal/trace"
)

// consoleDisplay renders the round on stdout and, when a recorder is set,
// mirrors every notification into the JSON trace.
type consoleDisplay struct {
	rec *trace.Recorder
}

func newConsoleDisplay(rec *trace.Recorder) *consoleDisplay {
	return &consoleDisplay{rec: rec}
}

func (d *consoleDisplay) RoundStarted(roundID string, trump shared.Card, players []*shared.Player) {
	fmt.Printf("=== Nuovo round: briscola %s ===\n", trump)
	if d.rec != nil {
		infos := make([]trace.PlayerInfo, len(players))
		for i, p := range players {
			infos[i] = trace.PlayerInfo{ID: p.ID, Name: p.Name, Fiches: p.Fiches}
		}
		d.rec.Record("round_start", trace.RoundStartPayload{
			RoundID: roundID,
			Trump:   trace.NewCardInfo(trump),
			Players: infos,
		})
	}
}

func (d *consoleDisplay) HandShown(p *shared.Player) {
	cards := make([]string, len(p.Hand))
	for i, c := range p.Hand {
		cards[i] = c.String()
	}
	fmt.Printf("%s: | %s |\n", p.Name, strings.Join(cards, " | "))
}

func (d *consoleDisplay) KnockDecision(p *shared.Player, knocked, safe bool, points int) {
	verdict := "affonda"
	if knocked {
		verdict = "bussa"
		if safe {
			verdict = "bussa (mano sicura)"
		}
	}
	fmt.Printf("%s %s con %d punti.\n", p.Name, verdict, points)
	if d.rec != nil {
		d.rec.Record("knock", trace.KnockPayload{
			Player:  p.Name,
			Knocked: knocked,
			Safe:    safe,
			Points:  points,
		})
	}
}

func (d *consoleDisplay) Redrew(p *shared.Player) {
	fmt.Printf("%s pesca una nuova mano.\n", p.Name)
	if d.rec != nil {
		d.rec.Record("redraw", trace.RedrawPayload{Player: p.Name})
	}
}

func (d *consoleDisplay) CardPlayed(trick int, p *shared.Player, card shared.Card, leader bool) {
	marker := ""
	if leader {
		marker = " [di mano]"
	}
	fmt.Printf("  %s gioca %s%s\n", p.Name, card, marker)
	if d.rec != nil {
		d.rec.Record("card_played", trace.CardPlayedPayload{
			Trick:  trick,
			Player: p.Name,
			Card:   trace.NewCardInfo(card),
			Leader: leader,
		})
	}
}

func (d *consoleDisplay) TrickWon(trick int, p *shared.Player, cards []shared.Card, points int) {
	fmt.Printf("%s vince il turno %d (+%d punti).\n", p.Name, trick+1, points)
	if d.rec != nil {
		infos := make([]trace.CardInfo, len(cards))
		for i, c := range cards {
			infos[i] = trace.NewCardInfo(c)
		}
		d.rec.Record("trick_end", trace.TrickEndPayload{
			Trick:  trick,
			Winner: p.Name,
			Cards:  infos,
			Points: points,
		})
	}
}

func (d *consoleDisplay) RoundEnded(res game.Result) {
	if !res.Played {
		fmt.Println("Nessuno ha bussato: round concluso senza gioco.")
	}
	if d.rec != nil {
		standings := make([]trace.StandingInfo, len(res.Ranking))
		for i, p := range res.Ranking {
			standings[i] = trace.StandingInfo{
				Player:    p.Name,
				Points:    p.Points,
				TricksWon: p.TricksWon,
				Fiches:    p.Fiches,
			}
		}
		d.rec.Record("round_end", trace.RoundEndPayload{
			RoundID:      res.RoundID,
			Played:       res.Played,
			TrickWinners: res.TrickWinners,
			Ranking:      standings,
			Pot:          res.Pot,
		})
	}
}
