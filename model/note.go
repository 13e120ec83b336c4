package model

import "fmt"

// Note is a single pitched event. Onset and Offset are in seconds.
type Note struct {
	Pitch    int     `json:"pitch" yaml:"pitch"`
	Onset    float64 `json:"onset" yaml:"onset"`
	Offset   float64 `json:"offset" yaml:"offset"`
	Velocity int     `json:"velocity" yaml:"velocity"`
}

type Notes = []Note

// PitchClass is the pitch modulo 12.
func (n Note) PitchClass() int {
	return n.Pitch % 12
}

func (n Note) Duration() float64 {
	return n.Offset - n.Onset
}

// SoundingAt reports whether the note is still held at t. The test is strict:
// a note released exactly at t is no longer sounding.
func (n Note) SoundingAt(t float64) bool {
	return n.Offset > t
}

func (n Note) String() string {
	return fmt.Sprintf("%d@[%.3f,%.3f)v%d", n.Pitch, n.Onset, n.Offset, n.Velocity)
}
