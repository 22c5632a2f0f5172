package trace

import (
	"encoding/json"
	"io"

	"bestia-game/internal/shared"
)

// Event is one machine-readable record of the simulation.
type Event struct {
	Type    string          `json:"type"`              // Event kind (e.g., "round_start", "card_played")
	Payload json.RawMessage `json:"payload,omitempty"` // Raw JSON payload, allows flexible structures
}

// --- Payload structs ---

type CardInfo struct {
	Suit     string `json:"suit"`
	Rank     string `json:"rank"`
	Strength int    `json:"strength"`
}

type PlayerInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Fiches int    `json:"fiches"`
}

type RoundStartPayload struct {
	RoundID string       `json:"round_id"`
	Trump   CardInfo     `json:"trump"`
	Players []PlayerInfo `json:"players"`
}

type KnockPayload struct {
	Player  string `json:"player"`
	Knocked bool   `json:"knocked"`
	Safe    bool   `json:"safe"`
	Points  int    `json:"points"`
}

type RedrawPayload struct {
	Player string `json:"player"`
}

type CardPlayedPayload struct {
	Trick  int      `json:"trick"`
	Player string   `json:"player"`
	Card   CardInfo `json:"card"`
	Leader bool     `json:"leader"`
}

type TrickEndPayload struct {
	Trick  int        `json:"trick"`
	Winner string     `json:"winner"`
	Cards  []CardInfo `json:"cards"`
	Points int        `json:"points"`
}

type StandingInfo struct {
	Player    string `json:"player"`
	Points    int    `json:"points"`
	TricksWon int    `json:"tricks_won"`
	Fiches    int    `json:"fiches"`
}

type RoundEndPayload struct {
	RoundID      string         `json:"round_id"`
	Played       bool           `json:"played"`
	TrickWinners []string       `json:"trick_winners,omitempty"`
	Ranking      []StandingInfo `json:"ranking,omitempty"`
	Pot          int            `json:"pot"`
}

// NewCardInfo converts a card into its trace form.
func NewCardInfo(c shared.Card) CardInfo {
	return CardInfo{Suit: string(c.Suit), Rank: string(c.Rank), Strength: c.Strength}
}

// NewEvent creates an event with a marshalled payload.
func NewEvent(eventType string, payload interface{}) (Event, error) {
	if payload == nil {
		return Event{Type: eventType}, nil
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{Type: eventType, Payload: payloadBytes}, nil
}

// Recorder collects events for one simulation run.
type Recorder struct {
	events []Event
}

// Record appends an event. Marshal failures drop the event silently; a
// trace is diagnostic output, never load-bearing.
func (r *Recorder) Record(eventType string, payload interface{}) {
	event, err := NewEvent(eventType, payload)
	if err != nil {
		return
	}
	r.events = append(r.events, event)
}

// Events returns the recorded events in order.
func (r *Recorder) Events() []Event {
	return r.events
}

// WriteJSON writes the whole trace as an indented JSON array.
func (r *Recorder) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.events)
}
