package game

import "time"

const GridSize = 16

const (
	spawnIntervalMin = 500 * time.Millisecond
	spawnIntervalMax = 10000 * time.Millisecond
)

// Grid is the 16-slot shared letter pool. A zero byte marks an empty
// slot. Slot identity is its index: a yoinked slot stays in place and
// may later be refilled with a different letter. All methods assume
// the caller holds the room's serialization (the room loop).
type Grid struct {
	slots [GridSize]byte
}

func (g *Grid) Snapshot() [GridSize]byte {
	return g.slots
}

func (g *Grid) At(index int) byte {
	return g.slots[index]
}

// TakeAt empties the slot and returns its letter. The second return is
// false when the slot was already empty, the losing side of a race.
func (g *Grid) TakeAt(index int) (byte, bool) {
	ch := g.slots[index]
	if ch == 0 {
		return 0, false
	}
	g.slots[index] = 0
	return ch, true
}

func (g *Grid) NonEmpty() int {
	n := 0
	for _, ch := range g.slots {
		if ch != 0 {
			n++
		}
	}
	return n
}

func (g *Grid) Reset() {
	g.slots = [GridSize]byte{}
}

// FillAll loads every slot. Rounds begin with a full grid.
func (g *Grid) FillAll(bag *LetterBag) {
	for i := range g.slots {
		g.slots[i] = bag.Sample()
	}
}

// RefillOne fills one empty slot chosen uniformly at random and
// returns its index, or -1 when the grid is already full.
func (g *Grid) RefillOne(bag *LetterBag, rng Rand) int {
	empty := make([]int, 0, GridSize)
	for i, ch := range g.slots {
		if ch == 0 {
			empty = append(empty, i)
		}
	}
	if len(empty) == 0 {
		return -1
	}
	index := empty[rng.Intn(len(empty))]
	g.slots[index] = bag.Sample()
	return index
}

// SpawnInterval is the delay before the next spawn given the current
// non-empty count: 500ms when the grid is empty, growing linearly to
// 10s at 15/16. No spawn is scheduled at 16.
func SpawnInterval(nonEmpty int) time.Duration {
	span := float64(spawnIntervalMax - spawnIntervalMin)
	return spawnIntervalMin + time.Duration(span*float64(nonEmpty)/float64(GridSize-1))
}
