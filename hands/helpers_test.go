package hands

import (
	"math/rand"

	"github.com/jsphweid/handsplit/model"
)

func note(pitch int, onset, offset float64) model.Note {
	return model.Note{Pitch: pitch, Onset: onset, Offset: offset, Velocity: 80}
}

// randomPiece builds a reproducible performance with chords, overlaps and
// repeated onsets across the whole keyboard.
func randomPiece(seed int64, n int) model.Notes {
	r := rand.New(rand.NewSource(seed))
	notes := make(model.Notes, 0, n)
	var t float64
	for len(notes) < n {
		if r.Intn(3) > 0 {
			t += r.Float64() * 0.3
		}
		onset := t
		notes = append(notes, model.Note{
			Pitch:    21 + r.Intn(88),
			Onset:    onset,
			Offset:   onset + 0.05 + r.Float64()*1.5,
			Velocity: 1 + r.Intn(127),
		})
	}
	r.Shuffle(len(notes), func(i, j int) { notes[i], notes[j] = notes[j], notes[i] })
	return notes
}

// twoRegisterPiece is a left-hand triad under a right-hand melody, per bar.
func twoRegisterPiece(bars int) model.Notes {
	var notes model.Notes
	for b := 0; b < bars; b++ {
		t := float64(b)
		for _, p := range []int{48, 52, 55} {
			notes = append(notes, note(p, t, t+1))
		}
		for i, p := range []int{67, 69, 71, 72} {
			on := t + float64(i)*0.25
			notes = append(notes, note(p, on, on+0.25))
		}
	}
	return notes
}

// tableCost prices notes by pitch only, ignoring hand state.
func tableCost(costs map[int][2]float64) CostFunc {
	return func(n model.Note, hand model.Hand, _ HandState) float64 {
		return costs[n.Pitch][hand]
	}
}
