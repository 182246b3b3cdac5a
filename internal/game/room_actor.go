package game

import "time"

// RequestJoin hands a join request to the room loop. The caller waits
// on the request's errChan; a closed done channel means the room tore
// down before the request was accepted.
func (r *Room) RequestJoin(req RoomJoinRequest) error {
	select {
	case r.joinRequests <- req:
	case <-r.done:
		return ErrRoomClosed
	}
	select {
	case err := <-req.errChan:
		return err
	case <-r.done:
		return ErrRoomClosed
	}
}

// Tick posts the 1 Hz observational tick. Non-blocking: a busy room
// just skips a beat.
func (r *Room) Tick(now time.Time) {
	select {
	case r.ticks <- now:
	default:
	}
}

// PingPlayers schedules a keepalive fan-out on the room loop.
func (r *Room) PingPlayers() {
	select {
	case r.pings <- struct{}{}:
	default:
	}
}

func (r *Room) Done() <-chan struct{} {
	return r.done
}

// GameLoop is the room's serialization point. Every mutation of room
// state happens on this goroutine, in the order events are accepted
// from the channels; the two timers are re-armed to the absolute
// deadlines after every step so at most one of each is ever pending.
func (r *Room) GameLoop() {
	spawnTimer := newStoppedTimer()
	phaseTimer := newStoppedTimer()
	defer func() {
		spawnTimer.Stop()
		phaseTimer.Stop()
		close(r.done)
		r.log.Info().Msg("room closed")
	}()

	for {
		rearmTimer(spawnTimer, r.spawnPending && r.phase == PHASE_PLAYING, r.spawnAt)
		rearmTimer(phaseTimer, r.phase == PHASE_PLAYING || r.phase == PHASE_INTERMISSION, r.phaseEndsAt)

		select {
		case env := <-r.inbox:
			r.safeHandle(func() { r.handleClientEvent(env, time.Now()) })
		case req := <-r.joinRequests:
			r.handleJoin(req, time.Now())
		case p := <-r.removals:
			if r.handleRemoval(p, time.Now()) {
				return
			}
		case now := <-r.ticks:
			r.handleTick(now)
		case <-r.pings:
			r.pingPlayers()
		case <-spawnTimer.C:
			r.handleSpawnDue(time.Now())
		case <-phaseTimer.C:
			r.handlePhaseDue(time.Now())
		}
	}
}

// safeHandle is the event boundary: a panic while handling one client
// event is logged and that event dropped, the room keeps running.
func (r *Room) safeHandle(fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error().Interface("panic", rec).Msg("event handler panicked, event dropped")
		}
	}()
	fn()
}

func newStoppedTimer() *time.Timer {
	t := time.NewTimer(time.Hour)
	if !t.Stop() {
		<-t.C
	}
	return t
}

// rearmTimer resets the timer to the absolute deadline, or leaves it
// stopped and drained when inactive.
func rearmTimer(t *time.Timer, active bool, at time.Time) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	if active {
		t.Reset(time.Until(at))
	}
}
