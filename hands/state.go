package hands

import (
	"fmt"
	"math/bits"
	"sort"

	"github.com/jsphweid/handsplit/model"
)

// HandState summarizes the notes a hand is holding at some instant.
type HandState struct {
	// Active is the number of sounding notes.
	Active int
	// FingersUsed is the number of distinct pitch classes among them.
	FingersUsed int
	// Spread is MaxPitch-MinPitch, or 0 for an empty hand.
	Spread   int
	MinPitch int
	MaxPitch int
	// PitchClasses has bit pc set for every held pitch class.
	PitchClasses uint16
}

func (s HandState) Empty() bool {
	return s.Active == 0
}

func (s HandState) HasPitchClass(pc int) bool {
	return s.PitchClasses&(1<<uint(pc%12)) != 0
}

// SpanWith is the pitch range the hand would cover after also taking pitch.
// An empty hand covers nothing.
func (s HandState) SpanWith(pitch int) int {
	if s.Empty() {
		return 0
	}
	lo, hi := s.MinPitch, s.MaxPitch
	if pitch < lo {
		lo = pitch
	}
	if pitch > hi {
		hi = pitch
	}
	return hi - lo
}

func stateOf(active model.Notes) HandState {
	var s HandState
	for i, n := range active {
		if i == 0 || n.Pitch < s.MinPitch {
			s.MinPitch = n.Pitch
		}
		if i == 0 || n.Pitch > s.MaxPitch {
			s.MaxPitch = n.Pitch
		}
		s.PitchClasses |= 1 << uint(n.PitchClass())
	}
	s.Active = len(active)
	s.FingersUsed = bits.OnesCount16(s.PitchClasses)
	if s.Active > 0 {
		s.Spread = s.MaxPitch - s.MinPitch
	}
	return s
}

// ActiveAt returns the notes in assigned still sounding at t, in their
// original order.
func ActiveAt(assigned model.Notes, t float64) model.Notes {
	var res model.Notes
	for _, n := range assigned {
		if n.SoundingAt(t) {
			res = append(res, n)
		}
	}
	return res
}

// StateAt is the state of a hand holding assigned, queried at time t.
func StateAt(assigned model.Notes, t float64) HandState {
	return stateOf(ActiveAt(assigned, t))
}

// held is one hand's sounding notes ordered by offset, so releasing notes
// is a prefix cut.
type held struct {
	notes model.Notes
	total int
}

func (h *held) release(t float64) {
	i := sort.Search(len(h.notes), func(i int) bool {
		return h.notes[i].SoundingAt(t)
	})
	h.notes = h.notes[i:]
}

func (h *held) add(n model.Note) {
	i := sort.Search(len(h.notes), func(i int) bool {
		return h.notes[i].Offset > n.Offset
	})
	h.notes = append(h.notes, model.Note{})
	copy(h.notes[i+1:], h.notes[i:])
	h.notes[i] = n
	h.total++
}

// tracker follows both hands through a time-sorted pass. The cursor only
// moves forward, which lets each hand drop released notes lazily.
type tracker struct {
	hands  [2]held
	cursor float64
	moved  bool
}

func newTracker() *tracker {
	return &tracker{}
}

func (t *tracker) advance(at float64) {
	if t.moved && at < t.cursor {
		panic(fmt.Sprintf("hands: tracker cursor moved backwards from %v to %v", t.cursor, at))
	}
	t.cursor, t.moved = at, true
	for i := range t.hands {
		t.hands[i].release(at)
	}
}

func (t *tracker) state(h model.Hand) HandState {
	return stateOf(t.hands[h].notes)
}

func (t *tracker) assign(h model.Hand, n model.Note) {
	t.hands[h].add(n)
}

// count is the number of notes ever assigned to h, sounding or not.
func (t *tracker) count(h model.Hand) int {
	return t.hands[h].total
}
