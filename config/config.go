// Package config loads visualizer settings from defaults, a YAML file and
// SORTVIZ_* environment variables, then validates the result
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/sortviz/algorithm"
	"github.com/lixenwraith/sortviz/constant"
)

// DefaultPath is consulted when no --config flag is given; absence is not an error
const DefaultPath = "sortviz.yaml"

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Audio controls compare/swap tones
type Audio struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume" validate:"gte=0,lte=1"`
	SampleRate int     `yaml:"sample_rate" validate:"gte=8000,lte=192000"`
}

// Config is the full settings tree
type Config struct {
	// Bars is the element count; zero fits the terminal width
	Bars      int    `yaml:"bars" validate:"gte=0,lte=4096"`
	Algorithm string `yaml:"algorithm" validate:"required,algorithm"`

	// StepsPerSecond limits step cadence; zero steps on every frame
	StepsPerSecond float64 `yaml:"steps_per_second" validate:"gte=0"`
	FrameRate      int     `yaml:"frame_rate" validate:"gte=1,lte=240"`

	// Seed zero picks a time-based seed at startup
	Seed      uint64   `yaml:"seed"`
	BogoLimit int      `yaml:"bogo_limit" validate:"gte=0"`
	Disabled  []string `yaml:"disabled,omitempty" validate:"dive,algorithm"`

	ShowDebug bool  `yaml:"show_debug"`
	Debug     bool  `yaml:"debug"`
	Audio     Audio `yaml:"audio"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Bars:           constant.DefaultBars,
		Algorithm:      strings.ToLower(algorithm.Bubble.String()),
		StepsPerSecond: constant.DefaultStepsPerSecond,
		FrameRate:      constant.DefaultFrameRate,
		BogoLimit:      constant.DefaultBogoLimit,
		ShowDebug:      true,
		Audio: Audio{
			Enabled:    true,
			Volume:     constant.DefaultVolume,
			SampleRate: constant.DefaultSampleRate,
		},
	}
}

// Load reads path over the defaults
// An empty path, or a missing DefaultPath, yields the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && filepath.Clean(path) == DefaultPath {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders the config as YAML
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// ApplyEnv overrides fields from SORTVIZ_* variables
// Unparseable values are ignored and the previous value kept
func (c *Config) ApplyEnv() {
	c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("SORTVIZ_BARS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Bars = n
		}
	}
	if v, ok := lookup("SORTVIZ_ALGORITHM"); ok && v != "" {
		c.Algorithm = v
	}
	if v, ok := lookup("SORTVIZ_STEPS_PER_SECOND"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.StepsPerSecond = f
		}
	}
	if v, ok := lookup("SORTVIZ_FRAME_RATE"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.FrameRate = n
		}
	}
	if v, ok := lookup("SORTVIZ_SEED"); ok {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = n
		}
	}
	if v, ok := lookup("SORTVIZ_DEBUG"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
	if v, ok := lookup("SORTVIZ_AUDIO_ENABLED"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		}
	}
	// Master volume is 0-100 on the environment, 0.0-1.0 internally
	if v, ok := lookup("SORTVIZ_MASTER_VOLUME"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.Volume = min(max(float64(n)/100.0, 0), 1)
		}
	}
	if v, ok := lookup("SORTVIZ_SAMPLE_RATE"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Audio.SampleRate = n
		}
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("algorithm", func(fl validator.FieldLevel) bool {
		_, err := algorithm.Parse(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks field ranges and algorithm names
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// AlgorithmID resolves the configured starting algorithm
func (c *Config) AlgorithmID() (algorithm.ID, error) {
	return algorithm.Parse(c.Algorithm)
}

// Catalog returns the default catalog with Disabled entries marked incomplete
func (c *Config) Catalog() (algorithm.Catalog, error) {
	ids := make([]algorithm.ID, 0, len(c.Disabled))
	for _, name := range c.Disabled {
		id, err := algorithm.Parse(name)
		if err != nil {
			return algorithm.Catalog{}, err
		}
		ids = append(ids, id)
	}
	return algorithm.DefaultCatalog().Disable(ids...), nil
}
