package game

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type RoomPhase int

const (
	PHASE_LOBBY RoomPhase = iota
	PHASE_PLAYING
	PHASE_INTERMISSION
	PHASE_FINISHED
)

func (p RoomPhase) String() string {
	switch p {
	case PHASE_PLAYING:
		return "playing"
	case PHASE_INTERMISSION:
		return "intermission"
	case PHASE_FINISHED:
		return "finished"
	default:
		return "lobby"
	}
}

// roomParent is the slice of the lobby a room needs for teardown.
type roomParent interface {
	RemoveRoom(room *Room)
}

type RoomJoinRequest struct {
	player  Player
	errChan chan error
}

func NewRoomJoinRequest(player Player) RoomJoinRequest {
	return RoomJoinRequest{player: player, errChan: make(chan error, 1)}
}

// Room is one game's authoritative state. Everything in here is owned
// by the room's goroutine: all mutations arrive through the channels
// in room_actor.go and are applied strictly in acceptance order, which
// is what makes yoink arbitration first-come-first-served.
type Room struct {
	code   string
	log    zerolog.Logger
	parent roomParent

	settings Settings
	phase    RoomPhase
	round    int
	hostID   string

	players []Player // join order
	states  map[string]*playerState

	grid Grid
	bag  *LetterBag
	rng  Rand
	dict WordSet

	// Clock state. Absolute instants; the loop arms real timers to
	// them, the 1 Hz tick only reads them.
	phaseEndsAt  time.Time
	spawnAt      time.Time
	spawnPending bool

	inbox        chan clientEnvelope
	joinRequests chan RoomJoinRequest
	removals     chan Player
	ticks        chan time.Time
	pings        chan struct{}
	done         chan struct{}
}

func NewRoom(code string, dict WordSet, rng Rand, parent roomParent) *Room {
	return &Room{
		code:         code,
		log:          log.With().Str("room", code).Logger(),
		parent:       parent,
		settings:     DefaultSettings(),
		phase:        PHASE_LOBBY,
		states:       make(map[string]*playerState),
		bag:          NewLetterBag(rng),
		rng:          rng,
		dict:         dict,
		inbox:        make(chan clientEnvelope, 1024),
		joinRequests: make(chan RoomJoinRequest, 32),
		removals:     make(chan Player, 64),
		ticks:        make(chan time.Time, 4),
		pings:        make(chan struct{}, 1),
		done:         make(chan struct{}),
	}
}

// --- joins and removals ---

func (r *Room) handleJoin(req RoomJoinRequest, now time.Time) {
	p := req.player
	if _, exists := r.states[p.ID()]; exists {
		req.errChan <- nil
		return
	}
	r.players = append(r.players, p)
	r.states[p.ID()] = &playerState{}
	if r.hostID == "" {
		r.hostID = p.ID()
	}
	p.SetRoom(r.inbox, r.removals, r.done)
	req.errChan <- nil
	r.log.Info().Str("player", p.ID()).Str("name", p.Name()).Msg("player joined")
	r.broadcastState(now)
}

// handleRemoval detaches a player; returns true when the room emptied
// and should tear down.
func (r *Room) handleRemoval(p Player, now time.Time) bool {
	found := false
	for i, other := range r.players {
		if other.ID() == p.ID() {
			r.players = append(r.players[:i], r.players[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return false
	}
	delete(r.states, p.ID())
	p.Destroy()
	r.log.Info().Str("player", p.ID()).Msg("player left")

	if len(r.players) == 0 {
		r.parent.RemoveRoom(r)
		return true
	}
	if r.hostID == p.ID() {
		r.hostID = r.players[0].ID()
	}
	r.broadcastState(now)
	return false
}

// --- inbound events ---

func (r *Room) handleClientEvent(env clientEnvelope, now time.Time) {
	switch env.event {
	case EventStart:
		r.handleStart(env.from, now)
	case EventSettings:
		r.handleSettingsUpdate(env.from, env.data, now)
	case EventYoink:
		var payload YoinkPayload
		if err := json.Unmarshal(env.data, &payload); err != nil {
			r.log.Debug().Err(err).Msg("malformed yoink payload")
			return
		}
		r.handleYoink(env.from, payload.Index, now)
	case EventSubmit:
		var payload SubmitPayload
		if err := json.Unmarshal(env.data, &payload); err != nil {
			r.log.Debug().Err(err).Msg("malformed submit payload")
			return
		}
		r.handleSubmit(env.from, payload, now)
	default:
		r.log.Debug().Str("event", env.event).Msg("unknown event")
	}
}

func (r *Room) handleStart(from Player, now time.Time) {
	if from.ID() != r.hostID {
		r.log.Debug().Str("player", from.ID()).Msg("start from non-host ignored")
		return
	}
	if r.phase != PHASE_LOBBY && r.phase != PHASE_FINISHED {
		return
	}
	if len(r.players) < 1 {
		return
	}
	for _, st := range r.states {
		st.cumulativeScore = 0
	}
	r.log.Info().Int("rounds", r.settings.Rounds).Msg("game started")
	r.startRound(1, now)
}

func (r *Room) handleSettingsUpdate(from Player, data []byte, now time.Time) {
	if from.ID() != r.hostID {
		r.log.Debug().Str("player", from.ID()).Msg("settings from non-host ignored")
		return
	}
	var update SettingsUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		r.log.Debug().Err(err).Msg("malformed settings payload")
		return
	}
	r.settings.Apply(update)
	r.broadcastState(now)
}

// handleYoink arbitrates one yoink attempt. Calls arrive serialized,
// so the first accepted attempt on a slot wins and the rest see it
// empty.
func (r *Room) handleYoink(from Player, index int, now time.Time) {
	if r.phase != PHASE_PLAYING {
		return
	}
	if index < 0 || index >= GridSize {
		r.log.Debug().Int("index", index).Msg("yoink index out of range")
		return
	}
	st := r.states[from.ID()]
	if st == nil {
		return
	}
	cooldown := time.Duration(r.settings.YoinkCooldownMs) * time.Millisecond
	if now.Sub(st.lastYoinkAt) < cooldown {
		from.Send(encodeEvent(EventYoinkRejected, YoinkRejectedEvent{Reason: "cooldown"}))
		return
	}
	if len(st.bank) >= r.settings.BankCapacity {
		from.Send(encodeEvent(EventYoinkRejected, YoinkRejectedEvent{Reason: "bank full"}))
		return
	}
	letter, ok := r.grid.TakeAt(index)
	if !ok {
		r.log.Debug().Int("index", index).Str("player", from.ID()).Msg("tile already taken")
		return
	}
	st.lastYoinkAt = now
	st.bank.Append(letter)

	r.broadcast(encodeEvent(EventYoinked, YoinkedEvent{
		PlayerID:   from.ID(),
		PlayerName: from.Name(),
		Index:      index,
		Letter:     string(letter),
	}))
	r.scheduleSpawn(now)
	r.broadcastState(now)
}

func (r *Room) handleSubmit(from Player, payload SubmitPayload, now time.Time) {
	if r.phase != PHASE_PLAYING {
		return
	}
	if !from.AllowSubmit(now) {
		r.log.Debug().Str("player", from.ID()).Msg("submit rate limited")
		return
	}
	st := r.states[from.ID()]
	if st == nil {
		return
	}
	word, indices, reason := validateWord(r.dict, r.settings, st.bank, payload.Word, payload.Indices)
	if reason != "" {
		from.Send(encodeEvent(EventWordRejected, WordRejectedEvent{Word: word, Reason: reason}))
		return
	}
	st.bank.Remove(indices)
	points := ScoreWord(word, r.settings.MultiplierFor(r.round))
	st.roundScore += points
	st.words = append(st.words, word)

	letters := make([]string, len(word))
	for i := 0; i < len(word); i++ {
		letters[i] = string(word[i])
	}
	r.broadcast(encodeEvent(EventWordAccepted, WordAcceptedEvent{
		PlayerID: from.ID(),
		Name:     from.Name(),
		Word:     word,
		Letters:  letters,
		Points:   points,
		Feed:     fmt.Sprintf("%s scored %d with %s", from.Name(), points, word),
	}))
	r.broadcastState(now)
}

// --- round lifecycle ---

func (r *Room) startRound(round int, now time.Time) {
	r.phase = PHASE_PLAYING
	r.round = round
	for _, st := range r.states {
		st.bank = st.bank[:0]
		st.roundScore = 0
		st.words = nil
	}
	r.grid.Reset()
	r.grid.FillAll(r.bag)
	r.spawnPending = false
	r.phaseEndsAt = now.Add(time.Duration(r.settings.RoundDurationSec) * time.Second)
	r.log.Info().Int("round", round).Msg("round started")
	r.broadcastState(now)
}

// handlePhaseDue fires when the wall clock reaches phaseEndsAt.
func (r *Room) handlePhaseDue(now time.Time) {
	switch r.phase {
	case PHASE_PLAYING:
		r.endRound(now)
	case PHASE_INTERMISSION:
		r.startRound(r.round+1, now)
	}
}

func (r *Room) endRound(now time.Time) {
	r.spawnPending = false
	for _, st := range r.states {
		st.cumulativeScore += st.roundScore
	}
	board := r.leaderboard()
	r.broadcast(encodeEvent(EventRoundEnded, RoundEndedEvent{
		Round:       r.round,
		TotalRounds: r.settings.Rounds,
		Leaderboard: board,
	}))
	if r.round < r.settings.Rounds {
		r.phase = PHASE_INTERMISSION
		r.phaseEndsAt = now.Add(time.Duration(r.settings.IntermissionSec) * time.Second)
	} else {
		r.phase = PHASE_FINISHED
		r.broadcast(encodeEvent(EventGameEnded, GameEndedEvent{Leaderboard: board}))
	}
	r.log.Info().Int("round", r.round).Str("phase", r.phase.String()).Msg("round ended")
	r.broadcastState(now)
}

func (r *Room) leaderboard() []LeaderboardEntry {
	board := make([]LeaderboardEntry, 0, len(r.players))
	for _, p := range r.players {
		st := r.states[p.ID()]
		board = append(board, LeaderboardEntry{
			ID:              p.ID(),
			Name:            p.Name(),
			RoundScore:      st.roundScore,
			CumulativeScore: st.cumulativeScore,
		})
	}
	sort.SliceStable(board, func(i, j int) bool {
		if board[i].CumulativeScore != board[j].CumulativeScore {
			return board[i].CumulativeScore > board[j].CumulativeScore
		}
		return board[i].Name < board[j].Name
	})
	return board
}

// --- spawning ---

// scheduleSpawn (re)computes the single pending spawn deadline from
// the current non-empty count. A yoink always lands here, so a pending
// spawn is invalidated and rescheduled by every grid take.
func (r *Room) scheduleSpawn(now time.Time) {
	n := r.grid.NonEmpty()
	if n >= GridSize {
		r.spawnPending = false
		return
	}
	r.spawnPending = true
	r.spawnAt = now.Add(SpawnInterval(n))
}

func (r *Room) handleSpawnDue(now time.Time) {
	r.spawnPending = false
	if r.phase != PHASE_PLAYING {
		return
	}
	if r.grid.RefillOne(r.bag, r.rng) < 0 {
		return
	}
	r.scheduleSpawn(now)
	r.broadcastState(now)
}

// --- ticks and pings ---

func (r *Room) handleTick(now time.Time) {
	if len(r.players) == 0 {
		return
	}
	r.broadcastState(now)
}

func (r *Room) pingPlayers() {
	for _, p := range r.players {
		p.Ping()
	}
}

// --- broadcast ---

func (r *Room) broadcast(frame []byte) {
	for _, p := range r.players {
		p.Send(frame)
	}
}
