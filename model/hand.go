package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Hand uint8

const (
	Left Hand = iota
	Right
)

// Hands lists both hands in evaluation order. Left comes first so that ties
// resolve toward it.
var Hands = [2]Hand{Left, Right}

func (h Hand) String() string {
	switch h {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("hand(%d)", uint8(h))
}

func (h Hand) Other() Hand {
	if h == Left {
		return Right
	}
	return Left
}

func ParseHand(s string) (Hand, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return Left, fmt.Errorf("unknown hand %q", s)
}

func (h Hand) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h *Hand) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseHand(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
