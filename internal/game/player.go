package game

import "time"

// Player is the room's view of a connected player. The real
// implementation wraps a websocket session; tests substitute mocks.
type Player interface {
	ID() string
	Name() string
	// Send queues an outbound frame. It must never block the room loop;
	// a frame to a saturated connection is dropped.
	Send(data []byte)
	// AllowSubmit consumes one submit token, false when starved.
	AllowSubmit(now time.Time) bool
	// SetRoom wires the player's read pump into the room's channels.
	// Called from the room loop before the pumps start. done unblocks
	// pump sends once the room has torn down.
	SetRoom(inbox chan<- clientEnvelope, removals chan<- Player, done <-chan struct{})
	// Ping schedules a transport-level keepalive.
	Ping()
	// Destroy tears the connection down. Idempotent.
	Destroy()
}

// clientEnvelope is an inbound event tagged with its sender, queued on
// the room inbox.
type clientEnvelope struct {
	from  Player
	event string
	data  []byte
}

// playerState is the room-owned gameplay state for one player.
type playerState struct {
	bank            Bank
	roundScore      int
	cumulativeScore int
	lastYoinkAt     time.Time
	words           []string
}
