package game

import "time"

// broadcastState emits the per-viewer lobby:state projection. The
// room-wide portion is computed once; only bank and myScore vary per
// recipient, because those fields are private.
func (r *Room) broadcastState(now time.Time) {
	if len(r.players) == 0 {
		return
	}
	shared := LobbyState{
		ID:              r.code,
		Settings:        r.settings,
		Players:         make([]PlayerInfo, 0, len(r.players)),
		Pool:            poolView(r.grid.Snapshot()),
		Phase:           r.phase.String(),
		CurrentRound:    r.round,
		TotalRounds:     r.settings.Rounds,
		RoundMultiplier: r.settings.MultiplierFor(r.round),
		ScoresHidden:    r.phase == PHASE_PLAYING,
	}
	if r.phase == PHASE_PLAYING || r.phase == PHASE_INTERMISSION {
		if remaining := r.phaseEndsAt.Sub(now); remaining > 0 {
			shared.EndsInMs = remaining.Milliseconds()
		}
	}
	for _, p := range r.players {
		shared.Players = append(shared.Players, PlayerInfo{ID: p.ID(), Name: p.Name()})
	}

	for _, p := range r.players {
		st := r.states[p.ID()]
		view := shared
		view.Bank = st.bank.Letters()
		view.MyScore = st.roundScore
		p.Send(encodeEvent(EventState, view))
	}
}

func poolView(slots [GridSize]byte) []*string {
	pool := make([]*string, GridSize)
	for i, ch := range slots {
		if ch != 0 {
			s := string(ch)
			pool[i] = &s
		}
	}
	return pool
}
