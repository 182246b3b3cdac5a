package game

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// Submit token bucket: 5 tokens/sec, burst 10, full at connect.
const (
	submitRefillPerSec = 5
	submitBurst        = 10
)

type wsPlayer struct {
	id      string
	name    string
	socket  NetworkSession
	limiter *rate.Limiter

	outbox   chan []byte
	pingChan chan struct{}

	inbox    chan<- clientEnvelope
	removals chan<- Player
	roomDone <-chan struct{}

	destroyOnce sync.Once
}

func NewPlayer(id, name string, socket NetworkSession) *wsPlayer {
	return &wsPlayer{
		id:       id,
		name:     name,
		socket:   socket,
		limiter:  rate.NewLimiter(submitRefillPerSec, submitBurst),
		outbox:   make(chan []byte, 256),
		pingChan: make(chan struct{}, 1),
	}
}

func (p *wsPlayer) ID() string   { return p.id }
func (p *wsPlayer) Name() string { return p.name }

func (p *wsPlayer) AllowSubmit(now time.Time) bool {
	return p.limiter.AllowN(now, 1)
}

func (p *wsPlayer) SetRoom(inbox chan<- clientEnvelope, removals chan<- Player, done <-chan struct{}) {
	p.inbox = inbox
	p.removals = removals
	p.roomDone = done
}

func (p *wsPlayer) Send(data []byte) {
	if data == nil {
		return
	}
	select {
	case p.outbox <- data:
	default:
		log.Debug().Str("player", p.id).Msg("outbox full, dropping frame")
	}
}

func (p *wsPlayer) Ping() {
	select {
	case p.pingChan <- struct{}{}:
	default:
	}
}

func (p *wsPlayer) Destroy() {
	p.destroyOnce.Do(func() {
		close(p.outbox)
		p.socket.Close("")
	})
}

// ReadPump decodes inbound frames and queues them on the room inbox.
// Runs on its own goroutine; exits on the first read error and asks
// the room to remove the player.
func (p *wsPlayer) ReadPump() {
	for {
		data, err := p.socket.Read()
		if err != nil {
			break
		}
		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			log.Debug().Str("player", p.id).Err(err).Msg("malformed frame")
			continue
		}
		select {
		case p.inbox <- clientEnvelope{from: p, event: env.Event, data: env.Data}:
		case <-p.roomDone:
			return
		}
	}
	select {
	case p.removals <- p:
	case <-p.roomDone:
	}
}

// WritePump drains the outbox and ping requests to the socket. Exits
// when the outbox closes or a write fails.
func (p *wsPlayer) WritePump() {
loop:
	for {
		select {
		case data, ok := <-p.outbox:
			if !ok {
				break loop
			}
			if err := p.socket.Write(data); err != nil {
				break loop
			}
		case <-p.pingChan:
			if err := p.socket.Ping(); err != nil {
				break loop
			}
		}
	}
	p.socket.Close("")
}
