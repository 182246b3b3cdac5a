package game

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
)

// Inbound event names.
const (
	EventJoin     = "lobby:join"
	EventStart    = "game:start"
	EventSettings = "settings:update"
	EventYoink    = "tile:yoink"
	EventSubmit   = "word:submit"
)

// Outbound event names.
const (
	EventState         = "lobby:state"
	EventYoinked       = "tile:yoinked"
	EventYoinkRejected = "yoink:rejected"
	EventWordAccepted  = "word:accepted"
	EventWordRejected  = "word:rejected"
	EventRoundEnded    = "round:ended"
	EventGameEnded     = "game:ended"
)

// Envelope frames every message on the wire in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type JoinPayload struct {
	Room string `json:"room"`
	Name string `json:"name"`
}

type YoinkPayload struct {
	Index int `json:"index"`
}

type SubmitPayload struct {
	Word    string `json:"word"`
	Indices []int  `json:"indices"`
}

type PlayerInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LobbyState is the per-viewer projection. Pool slots are single
// letters or null; Bank and MyScore belong to the viewer only.
type LobbyState struct {
	ID              string       `json:"id"`
	Settings        Settings     `json:"settings"`
	Players         []PlayerInfo `json:"players"`
	Pool            []*string    `json:"pool"`
	Bank            []string     `json:"bank"`
	MyScore         int          `json:"myScore"`
	EndsInMs        int64        `json:"endsInMs"`
	Phase           string       `json:"phase"`
	CurrentRound    int          `json:"currentRound"`
	TotalRounds     int          `json:"totalRounds"`
	RoundMultiplier float64      `json:"roundMultiplier"`
	ScoresHidden    bool         `json:"scoresHidden"`
}

type YoinkedEvent struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Index      int    `json:"index"`
	Letter     string `json:"letter"`
}

type YoinkRejectedEvent struct {
	Reason string `json:"reason"`
}

type WordAcceptedEvent struct {
	PlayerID string   `json:"playerId"`
	Name     string   `json:"name"`
	Word     string   `json:"word"`
	Letters  []string `json:"letters"`
	Points   int      `json:"points"`
	Feed     string   `json:"feed"`
}

type WordRejectedEvent struct {
	Word   string `json:"word"`
	Reason string `json:"reason"`
}

type LeaderboardEntry struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	RoundScore      int    `json:"roundScore"`
	CumulativeScore int    `json:"cumulativeScore"`
}

type RoundEndedEvent struct {
	Round       int                `json:"round"`
	TotalRounds int                `json:"totalRounds"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

type GameEndedEvent struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

func encodeEvent(event string, payload any) []byte {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Error().Str("event", event).Err(err).Msg("encode event payload")
		return nil
	}
	frame, err := json.Marshal(Envelope{Event: event, Data: data})
	if err != nil {
		log.Error().Str("event", event).Err(err).Msg("encode event frame")
		return nil
	}
	return frame
}
