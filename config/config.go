package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/jsphweid/handsplit/constants"
	"github.com/jsphweid/handsplit/hands"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	MaxFingers    int     `yaml:"max_fingers"`
	AllowedSpread int     `yaml:"allowed_spread"`
	Hysteresis    float64 `yaml:"hysteresis"`
	Engine        string  `yaml:"engine"`

	// MinDuration drops shorter notes when reading MIDI files.
	MinDuration float64 `yaml:"min_duration"`
	SkipDrums   bool    `yaml:"skip_drums"`

	Addr     string `yaml:"addr"`
	WatchDir string `yaml:"watch_dir"`
	OutDir   string `yaml:"out_dir"`
}

func Default() Config {
	p := hands.DefaultParams()
	return Config{
		MaxFingers:    p.MaxFingers,
		AllowedSpread: p.AllowedSpread,
		Hysteresis:    p.Hysteresis,
		Engine:        hands.OptimalName,
		Addr:          ":8080",
		OutDir:        constants.GetOutDir(),
	}
}

// Load starts from the defaults, applies the YAML file at path if path is
// not empty, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(constants.EnvConfigPath)
	}
	if path != "" {
		dat, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(dat, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	ints := map[string]*int{
		constants.EnvMaxFingers:    &c.MaxFingers,
		constants.EnvAllowedSpread: &c.AllowedSpread,
	}
	for name, dst := range ints {
		if v := os.Getenv(name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, name, v, err)
			}
			*dst = n
		}
	}
	if v := os.Getenv(constants.EnvHysteresis); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, constants.EnvHysteresis, v, err)
		}
		c.Hysteresis = f
	}

	strs := map[string]*string{
		constants.EnvEngine:   &c.Engine,
		constants.EnvAddr:     &c.Addr,
		constants.EnvWatchDir: &c.WatchDir,
		constants.EnvOutDir:   &c.OutDir,
	}
	for name, dst := range strs {
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}
	return nil
}

func (c Config) Params() hands.Params {
	return hands.Params{
		MaxFingers:    c.MaxFingers,
		AllowedSpread: c.AllowedSpread,
		Hysteresis:    c.Hysteresis,
	}
}

func (c Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Engine != "both" {
		if _, err := hands.NewEngine(c.Engine, c.Params()); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	if c.MinDuration < 0 {
		return fmt.Errorf("%w: min duration must not be negative", ErrInvalidConfig)
	}
	return nil
}
