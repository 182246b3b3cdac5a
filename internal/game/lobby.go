package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type lobbyJoinRequest struct {
	roomCode string
	player   Player
	errChan  chan error
}

// Lobby is the room registry: it owns the room table, creates rooms
// lazily on first join, routes joins into room loops, drives the 1 Hz
// projection tick and the keepalive fan-out, and forgets rooms once
// they empty. Room codes are opaque; lookup is by exact match.
type Lobby struct {
	log           zerolog.Logger
	dict          WordSet
	tickerCreator PeriodicTickerChannelCreator
	newRand       func() Rand

	rooms map[string]*Room

	joinReqs       chan lobbyJoinRequest
	removeRoomChan chan *Room
}

func NewLobby(dict WordSet, tickerCreator PeriodicTickerChannelCreator) *Lobby {
	return &Lobby{
		log:           log.With().Str("component", "lobby").Logger(),
		dict:          dict,
		tickerCreator: tickerCreator,
		newRand: func() Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		rooms:          make(map[string]*Room),
		joinReqs:       make(chan lobbyJoinRequest, 256),
		removeRoomChan: make(chan *Room, 32),
	}
}

// Join routes a player into the room with the given code, creating it
// in the lobby phase when absent.
func (l *Lobby) Join(ctx context.Context, roomCode string, player Player) error {
	req := lobbyJoinRequest{roomCode: roomCode, player: player, errChan: make(chan error, 1)}
	select {
	case l.joinReqs <- req:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-req.errChan:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RemoveRoom is called by a room loop as it tears down.
func (l *Lobby) RemoveRoom(room *Room) {
	l.removeRoomChan <- room
}

// LobbyActor runs the registry loop. started closes once the loop is
// receiving.
func (l *Lobby) LobbyActor(started chan struct{}) {
	ticker := l.tickerCreator.Create(time.Second)
	pingTicker := l.tickerCreator.Create(time.Second * 30)

	close(started)

	for {
		select {
		case now := <-ticker:
			for _, r := range l.rooms {
				r.Tick(now)
			}
		case <-pingTicker:
			for _, r := range l.rooms {
				r.PingPlayers()
			}
		case req := <-l.joinReqs:
			l.handleJoinReq(req)
		case room := <-l.removeRoomChan:
			l.handleRemoveRoom(room)
		}
	}
}

func (l *Lobby) handleJoinReq(req lobbyJoinRequest) {
	room, ok := l.rooms[req.roomCode]
	if ok {
		select {
		case <-room.Done():
			// Raced a teardown; fall through and recreate.
			delete(l.rooms, req.roomCode)
		default:
			l.forwardJoin(room, req)
			return
		}
	}
	room = NewRoom(req.roomCode, l.dict, l.newRand(), l)
	l.rooms[req.roomCode] = room
	go room.GameLoop()
	l.log.Info().Str("room", req.roomCode).Msg("room created")
	l.forwardJoin(room, req)
}

func (l *Lobby) forwardJoin(room *Room, req lobbyJoinRequest) {
	jreq := NewRoomJoinRequest(req.player)
	go func() {
		req.errChan <- room.RequestJoin(jreq)
	}()
}

// handleRemoveRoom drops the registry entry, but only when it still
// points at the room that asked: a join racing the teardown may have
// already recreated the code with a fresh room.
func (l *Lobby) handleRemoveRoom(room *Room) {
	if current, ok := l.rooms[room.code]; ok && current == room {
		delete(l.rooms, room.code)
		l.log.Info().Str("room", room.code).Msg("room removed")
	}
}
