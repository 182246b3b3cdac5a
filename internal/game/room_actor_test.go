package game

import (
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Drives a real room loop end to end: join, start, yoink, tick,
// disconnect, teardown.
func TestGameLoopLifecycle(t *testing.T) {
	t.Parallel()
	parent := &mockParent{}
	r := NewRoom("LOOP", stubDict{"CAT": true}, rand.New(rand.NewSource(1)), parent)
	go r.GameLoop()

	p1 := newRecordingPlayer("p1", "ana")
	p2 := newRecordingPlayer("p2", "bob")
	require.NoError(t, r.RequestJoin(NewRoomJoinRequest(p1)))
	require.NoError(t, r.RequestJoin(NewRoomJoinRequest(p2)))

	post := func(from Player, event string, payload any) {
		data, _ := json.Marshal(payload)
		r.inbox <- clientEnvelope{from: from, event: event, data: data}
	}

	post(p1, EventStart, struct{}{})
	require.Eventually(t, func() bool {
		s, ok := p2.lastState()
		return ok && s.Phase == "playing"
	}, 2*time.Second, 10*time.Millisecond)

	// Concurrent yoinks on the same slot: the loop serializes them and
	// exactly one tile:yoinked goes out. The trailing yoink on a free
	// slot is the fence proving both contested attempts were processed.
	post(p1, EventYoink, YoinkPayload{Index: 2})
	post(p2, EventYoink, YoinkPayload{Index: 2})
	post(p2, EventYoink, YoinkPayload{Index: 9})
	require.Eventually(t, func() bool {
		return len(p2.events(EventYoinked)) == 2
	}, 2*time.Second, 10*time.Millisecond)
	yoinks := p1.events(EventYoinked)
	require.Len(t, yoinks, 2)
	assert.Equal(t, "p1", decodePayload[YoinkedEvent](yoinks[0]).PlayerID)
	assert.Equal(t, 2, decodePayload[YoinkedEvent](yoinks[0]).Index)
	assert.Equal(t, "p2", decodePayload[YoinkedEvent](yoinks[1]).PlayerID)
	assert.Equal(t, 9, decodePayload[YoinkedEvent](yoinks[1]).Index)
	assert.Empty(t, p2.events(EventYoinkRejected))

	// The observational tick produces fresh projections.
	before := len(p1.events(EventState))
	r.Tick(time.Now())
	require.Eventually(t, func() bool {
		return len(p1.events(EventState)) > before
	}, 2*time.Second, 10*time.Millisecond)

	// Last disconnect tears the room down and tells the lobby.
	r.removals <- p1
	r.removals <- p2
	select {
	case <-r.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("room loop did not exit after last disconnect")
	}
	assert.Equal(t, 1, parent.removedCount())
	assert.True(t, p1.destroyed)
	assert.True(t, p2.destroyed)
}

// A panic inside one event handler must not kill the room.
func TestGameLoopSurvivesHandlerPanic(t *testing.T) {
	t.Parallel()
	parent := &mockParent{}
	r := NewRoom("PANIC", stubDict{}, rand.New(rand.NewSource(1)), parent)
	go r.GameLoop()

	p1 := newRecordingPlayer("p1", "ana")
	require.NoError(t, r.RequestJoin(NewRoomJoinRequest(p1)))

	startData, _ := json.Marshal(struct{}{})
	r.inbox <- clientEnvelope{from: p1, event: EventStart, data: startData}
	require.Eventually(t, func() bool {
		s, ok := p1.lastState()
		return ok && s.Phase == "playing"
	}, 2*time.Second, 10*time.Millisecond)

	// A nil sender panics inside the yoink handler; the event boundary
	// absorbs it and drops the event. The inbox is FIFO, so the yoink
	// behind it proves the loop kept going.
	r.inbox <- clientEnvelope{from: nil, event: EventYoink, data: []byte(`{"index":1}`)}
	r.inbox <- clientEnvelope{from: p1, event: EventYoink, data: []byte(`{"index":2}`)}
	require.Eventually(t, func() bool {
		return len(p1.events(EventYoinked)) == 1
	}, 2*time.Second, 10*time.Millisecond)
}
