package midi

import (
	"github.com/jsphweid/handsplit/model"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type Note = model.Note

const drumChannel = 9

type ExtractOptions struct {
	// MinDuration drops notes shorter than this many seconds. Transcribers
	// emit short blips; 0.05 is a reasonable cutoff.
	MinDuration float64
	// SkipDrums ignores General MIDI channel 10.
	SkipDrums bool
}

type noteKey struct {
	channel uint8
	key     uint8
}

type sounding struct {
	onset    float64
	velocity uint8
}

// ExtractNotes flattens all tracks of s into one list of notes. Times come
// from the file's tempo map. Each note-off closes the oldest open note on the
// same channel and key; notes still open at the end of a track close there.
// The result is in file order, not sorted.
func ExtractNotes(s *smf.SMF, opts ExtractOptions) []Note {
	var notes []Note

	keep := func(n Note) {
		if n.Offset <= n.Onset || n.Duration() < opts.MinDuration {
			return
		}
		notes = append(notes, n)
	}

	for _, track := range s.Tracks {
		open := make(map[noteKey][]sounding)
		var order []noteKey
		var absTicks int64

		for _, event := range track {
			absTicks += int64(event.Delta)
			msg := gomidi.Message(event.Message)

			var channel, key, velocity uint8
			switch {
			case msg.GetNoteStart(&channel, &key, &velocity):
				if opts.SkipDrums && channel == drumChannel {
					continue
				}
				k := noteKey{channel, key}
				if _, ok := open[k]; !ok {
					order = append(order, k)
				}
				open[k] = append(open[k], sounding{
					onset:    seconds(s.TimeAt(absTicks)),
					velocity: velocity,
				})
			case msg.GetNoteEnd(&channel, &key):
				k := noteKey{channel, key}
				queue := open[k]
				if len(queue) == 0 {
					continue
				}
				open[k] = queue[1:]
				keep(Note{
					Pitch:    int(key),
					Onset:    queue[0].onset,
					Offset:   seconds(s.TimeAt(absTicks)),
					Velocity: int(queue[0].velocity),
				})
			}
		}

		end := seconds(s.TimeAt(absTicks))
		for _, k := range order {
			for _, n := range open[k] {
				keep(Note{Pitch: int(k.key), Onset: n.onset, Offset: end, Velocity: int(n.velocity)})
			}
		}
	}

	return notes
}

func seconds(micros int64) float64 {
	return float64(micros) / 1e6
}
