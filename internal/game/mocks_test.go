package game

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
)

// --- NetworkSession ---

type MockNetworkSession struct {
	mock.Mock
}

func (m *MockNetworkSession) Close(errCode string) {
	m.Called(errCode)
}

func (m *MockNetworkSession) Write(data []byte) error {
	args := m.Called(data)
	return args.Error(0)
}

func (m *MockNetworkSession) Read() ([]byte, error) {
	args := m.Called()
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *MockNetworkSession) Ping() error {
	args := m.Called()
	return args.Error(0)
}

// --- PeriodicTickerChannelCreator ---

type MockPeriodicTickerChannelCreator struct {
	mock.Mock
}

func (m *MockPeriodicTickerChannelCreator) Create(duration time.Duration) <-chan time.Time {
	args := m.Called(duration)
	return args.Get(0).(<-chan time.Time)
}

// --- roomParent ---

type mockParent struct {
	mu      sync.Mutex
	removed []*Room
}

func (m *mockParent) RemoveRoom(room *Room) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removed = append(m.removed, room)
}

func (m *mockParent) removedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.removed)
}

// --- Player ---

// recordingPlayer captures every frame the room sends, decoded back
// into envelopes, so scenario tests can assert on the exact outbound
// sequence.
type recordingPlayer struct {
	id        string
	name      string
	mu        sync.Mutex
	frames    []Envelope
	allow     bool
	pings     int
	destroyed bool
}

func newRecordingPlayer(id, name string) *recordingPlayer {
	return &recordingPlayer{id: id, name: name, allow: true}
}

func (p *recordingPlayer) ID() string   { return p.id }
func (p *recordingPlayer) Name() string { return p.name }

func (p *recordingPlayer) Send(data []byte) {
	if data == nil {
		return
	}
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		panic(fmt.Sprintf("recordingPlayer %s got undecodable frame: %v", p.id, err))
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frames = append(p.frames, env)
}

func (p *recordingPlayer) AllowSubmit(now time.Time) bool { return p.allow }

func (p *recordingPlayer) SetRoom(inbox chan<- clientEnvelope, removals chan<- Player, done <-chan struct{}) {
}

func (p *recordingPlayer) Ping() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pings++
}

func (p *recordingPlayer) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.destroyed = true
}

func (p *recordingPlayer) events(name string) []Envelope {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []Envelope
	for _, env := range p.frames {
		if env.Event == name {
			out = append(out, env)
		}
	}
	return out
}

func (p *recordingPlayer) eventNames() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.frames))
	for i, env := range p.frames {
		out[i] = env.Event
	}
	return out
}

func (p *recordingPlayer) clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frames = nil
}

// lastState decodes the most recent lobby:state the player saw.
func (p *recordingPlayer) lastState() (LobbyState, bool) {
	states := p.events(EventState)
	if len(states) == 0 {
		return LobbyState{}, false
	}
	return decodePayload[LobbyState](states[len(states)-1]), true
}

func decodePayload[T any](env Envelope) T {
	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		panic(fmt.Sprintf("decode %s payload: %v", env.Event, err))
	}
	return out
}

// --- dictionary ---

type stubDict map[string]bool

func (d stubDict) Contains(word string) bool { return d[word] }

// --- randomness ---

// fakeRand replays a fixed sequence of Intn results, then zeroes.
type fakeRand struct {
	vals []int
	i    int
}

func (f *fakeRand) Intn(n int) int {
	if f.i >= len(f.vals) {
		return 0
	}
	v := f.vals[f.i] % n
	f.i++
	return v
}
