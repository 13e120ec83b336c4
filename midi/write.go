package midi

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/jsphweid/handsplit/constants"
	"github.com/jsphweid/handsplit/model"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type trackEvent struct {
	tick     uint32
	on       bool
	key      uint8
	velocity uint8
}

// EncodeHands writes p as a two-track SMF: "Left Hand" on channel 1 and
// "Right Hand" on channel 2, at a fixed tempo.
func EncodeHands(w io.Writer, p *model.Partition) error {
	ticks := smf.MetricTicks(constants.TicksPerQuarter)
	s := smf.New()
	s.TimeFormat = ticks

	names := [2]string{constants.LeftTrackName, constants.RightTrackName}
	for _, h := range model.Hands {
		track := handTrack(names[h], uint8(h), p.Hand(h), ticks, h == model.Left)
		if err := s.Add(track); err != nil {
			return fmt.Errorf("adding %v track: %w", h, err)
		}
	}

	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("writing midi: %w", err)
	}
	return nil
}

// WriteHands writes p to a new file at path.
func WriteHands(path string, p *model.Partition) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := EncodeHands(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func handTrack(name string, channel uint8, notes model.Notes, ticks smf.MetricTicks, withTempo bool) smf.Track {
	events := make([]trackEvent, 0, 2*len(notes))
	for _, n := range notes {
		// a note-on with velocity 0 reads back as a note-off
		velocity := uint8(n.Velocity)
		if velocity == 0 {
			velocity = 1
		}
		events = append(events,
			trackEvent{tick: toTicks(ticks, n.Onset), on: true, key: uint8(n.Pitch), velocity: velocity},
			trackEvent{tick: toTicks(ticks, n.Offset), key: uint8(n.Pitch)},
		)
	}
	// releases before attacks on the same tick so repeated keys retrigger
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return !events[i].on && events[j].on
	})

	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName(name))
	if withTempo {
		track.Add(0, smf.MetaTempo(constants.OutputTempo))
	}
	var last uint32
	for _, e := range events {
		delta := e.tick - last
		last = e.tick
		if e.on {
			track.Add(delta, gomidi.NoteOn(channel, e.key, e.velocity))
		} else {
			track.Add(delta, gomidi.NoteOff(channel, e.key))
		}
	}
	track.Close(0)
	return track
}

func toTicks(ticks smf.MetricTicks, secs float64) uint32 {
	if secs <= 0 {
		return 0
	}
	return ticks.Ticks(constants.OutputTempo, time.Duration(secs*float64(time.Second)))
}
