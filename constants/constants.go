package constants

import "os"

// MiddleC splits the keyboard into the left-hand and right-hand registers.
const MiddleC = 60

const (
	MinPitch    = 0
	MaxPitch    = 127
	MaxVelocity = 127
)

// Cost model weights.
const (
	FingerPenalty   = 2.0
	RegisterPenalty = 0.8
	DensityWeight   = 0.2
)

const (
	DefaultMaxFingers    = 5
	DefaultAllowedSpread = 8
	// a hand must beat the other by 10% before the greedy engine picks it
	DefaultHysteresis = 0.9
)

// Env vars read by config.Load.
const (
	EnvConfigPath    = "HANDSPLIT_CONFIG"
	EnvMaxFingers    = "HANDSPLIT_MAX_FINGERS"
	EnvAllowedSpread = "HANDSPLIT_ALLOWED_SPREAD"
	EnvHysteresis    = "HANDSPLIT_HYSTERESIS"
	EnvEngine        = "HANDSPLIT_ENGINE"
	EnvAddr          = "HANDSPLIT_ADDR"
	EnvWatchDir      = "HANDSPLIT_WATCH_DIR"
	EnvOutDir        = "HANDSPLIT_OUT_DIR"
)

func GetOutDir() string {
	path := os.Getenv(EnvOutDir)
	if path != "" {
		return path
	}
	return "./out"
}

// Output MIDI layout.
const (
	TicksPerQuarter = 960
	OutputTempo     = 120.0
	LeftTrackName   = "Left Hand"
	RightTrackName  = "Right Hand"
)
