package midi

import (
	"bytes"
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"
)

// ReadMidiFile parses a standard MIDI file. The parser can panic on some
// malformed input (https://github.com/gomidi/midi/issues/20); that is
// reported as an error too.
func ReadMidiFile(path string) (s *smf.SMF, e error) {
	defer func() {
		if r := recover(); r != nil {
			s, e = nil, fmt.Errorf("parsing midi file %s: %v", path, r)
		}
	}()

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading midi file %s: %w", path, err)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("parsing midi file %s: %w", path, err)
	}
	return res, nil
}

// LoadNotes reads every note from the file at path.
func LoadNotes(path string, opts ExtractOptions) ([]Note, error) {
	s, err := ReadMidiFile(path)
	if err != nil {
		return nil, err
	}
	return ExtractNotes(s, opts), nil
}
