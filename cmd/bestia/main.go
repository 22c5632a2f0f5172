package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"bestia-game/internal/game"
	"bestia-game/internal/shared"
	"bestia-game/internal/trace"
)

func main() {
	cfg := game.FromEnv()

	players := flag.Int("players", cfg.Players, "number of players (>= 2)")
	rounds := flag.Int("rounds", 1, "number of rounds to simulate")
	seed := flag.Int64("seed", 0, "shuffle seed (0 picks one from the clock)")
	threshold := flag.Int("threshold", cfg.KnockThreshold, "hand points required to force a knock")
	stakes := flag.Bool("stakes", cfg.Stakes, "enable the fiche/pot betting variant")
	fiches := flag.Int("fiches", cfg.StartingFiches, "starting fiches per player (stakes only)")
	ante := flag.Int("ante", cfg.DealerAnte, "dealer ante (stakes only)")
	tracePath := flag.String("trace", "", "write a JSON trace of the simulation to this file (\"-\" for stdout)")
	flag.Parse()

	cfg.Players = *players
	cfg.KnockThreshold = *threshold
	cfg.Stakes = *stakes
	cfg.StartingFiches = *fiches
	cfg.DealerAnte = *ante
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	log.Printf("Simulating %d round(s) with %d players, seed %d.", *rounds, cfg.Players, *seed)

	seats := make([]*shared.Player, cfg.Players)
	for i := range seats {
		seats[i] = shared.NewPlayer(fmt.Sprintf("Giocatore %d", i+1), cfg.StartingFiches)
	}

	var recorder *trace.Recorder
	if *tracePath != "" {
		recorder = &trace.Recorder{}
	}
	display := newConsoleDisplay(recorder)

	dealer := len(seats) - 1
	for i := 0; i < *rounds; i++ {
		round := game.NewRound(cfg, seats, dealer, game.Heuristic{}, display)
		if _, err := round.Play(rng); err != nil {
			log.Fatalf("Round %d failed: %v", i+1, err)
		}
		dealer = (dealer + 1) % len(seats)
	}

	printStandings(seats, cfg.Stakes)

	if recorder != nil {
		if err := writeTrace(recorder, *tracePath); err != nil {
			log.Fatalf("Writing trace: %v", err)
		}
	}
}

func printStandings(seats []*shared.Player, stakes bool) {
	fmt.Println("--- Classifica finale ---")
	for _, p := range seats {
		if stakes {
			fmt.Printf("%s: %d punti, %d fiches\n", p.Name, p.Points, p.Fiches)
		} else {
			fmt.Printf("%s: %d punti\n", p.Name, p.Points)
		}
	}
}

func writeTrace(recorder *trace.Recorder, path string) error {
	if path == "-" {
		return recorder.WriteJSON(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return recorder.WriteJSON(f)
}
