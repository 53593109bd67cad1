/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config holds the user-facing settings of the visualizer: how many
// bars to generate, how long each animation step lasts and whether tones are
// played.
//
// A Config can be built from defaults, from environment variables or from a
// YAML or JSON document. Every loader starts from Default, so keys that are
// absent keep their default value, and every loader validates its result.
package config

import (
	"encoding/json"
	"fmt"
	"time"

	"dirpx.dev/dxsort/dxcore/errors"
	"dirpx.dev/dxsort/dxcore/model"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Bounds and defaults.
const (
	MinArraySize     = 5
	MaxArraySize     = 500
	DefaultArraySize = 310

	MinAnimationSpeed     = 5
	MaxAnimationSpeed     = 500
	DefaultAnimationSpeed = 500

	DefaultSoundEnabled = true
)

// Environment variable names.
const (
	EnvArraySize      = "DXSORT_ARRAY_SIZE"
	EnvAnimationSpeed = "DXSORT_ANIMATION_SPEED"
	EnvSoundEnabled   = "DXSORT_SOUND_ENABLED"
)

// Config holds visualizer settings.
type Config struct {
	// ArraySize is the number of bars generated by a reset.
	ArraySize int `env:"DXSORT_ARRAY_SIZE" envDefault:"310" json:"arraySize" yaml:"arraySize"`

	// AnimationSpeed is the delay of one animation step in milliseconds.
	AnimationSpeed int `env:"DXSORT_ANIMATION_SPEED" envDefault:"500" json:"animationSpeed" yaml:"animationSpeed"`

	// SoundEnabled turns tones on or off.
	SoundEnabled bool `env:"DXSORT_SOUND_ENABLED" envDefault:"true" json:"soundEnabled" yaml:"soundEnabled"`
}

var _ model.Model = (*Config)(nil)

// Default returns the default configuration.
func Default() Config {
	return Config{
		ArraySize:      DefaultArraySize,
		AnimationSpeed: DefaultAnimationSpeed,
		SoundEnabled:   DefaultSoundEnabled,
	}
}

// ParseEnv loads target from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// FromEnv builds a Config from the process environment.
func FromEnv() (Config, error) {
	var c Config
	if err := ParseEnv(&c); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// FromEnvMap builds a Config from vars instead of the process environment.
func FromEnvMap(vars map[string]string) (Config, error) {
	var c Config
	if err := env.ParseWithOptions(&c, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// FromYAML builds a Config from a YAML document. An empty document yields
// Default.
func FromYAML(data []byte) (Config, error) {
	c := Default()
	if err := model.FromYAML(data, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// FromJSON builds a Config from a JSON document.
func FromJSON(data []byte) (Config, error) {
	c := Default()
	if err := model.FromJSON(data, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Delay returns AnimationSpeed as a duration.
func (c Config) Delay() time.Duration {
	return time.Duration(c.AnimationSpeed) * time.Millisecond
}

// WithArraySize returns a copy of c with ArraySize set to n.
func (c Config) WithArraySize(n int) (Config, error) {
	c.ArraySize = n
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// WithAnimationSpeed returns a copy of c with AnimationSpeed set to ms.
func (c Config) WithAnimationSpeed(ms int) (Config, error) {
	c.AnimationSpeed = ms
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks both numeric settings against their bounds.
func (c Config) Validate() error {
	if c.ArraySize < MinArraySize || c.ArraySize > MaxArraySize {
		return &errors.ValidationError{
			Type:   "Config",
			Field:  "ArraySize",
			Reason: fmt.Sprintf("must be between %d and %d", MinArraySize, MaxArraySize),
			Value:  c.ArraySize,
		}
	}
	if c.AnimationSpeed < MinAnimationSpeed || c.AnimationSpeed > MaxAnimationSpeed {
		return &errors.ValidationError{
			Type:   "Config",
			Field:  "AnimationSpeed",
			Reason: fmt.Sprintf("must be between %d and %d", MinAnimationSpeed, MaxAnimationSpeed),
			Value:  c.AnimationSpeed,
		}
	}
	return nil
}

// String returns "Config{arraySize=310, animationSpeed=500ms, sound=true}".
func (c Config) String() string {
	return fmt.Sprintf("Config{arraySize=%d, animationSpeed=%dms, sound=%t}", c.ArraySize, c.AnimationSpeed, c.SoundEnabled)
}

// Redacted returns String; Config holds nothing sensitive.
func (c Config) Redacted() string {
	return c.String()
}

// TypeName returns "Config".
func (c Config) TypeName() string {
	return "Config"
}

// IsZero reports whether c is the zero Config.
func (c Config) IsZero() bool {
	return c == Config{}
}

// MarshalJSON validates c and encodes it as an object.
func (c Config) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid Config: %w", err)
	}

	type configJSON Config
	return json.Marshal(configJSON(c))
}

// UnmarshalJSON decodes an object over the defaults and validates the
// result.
func (c *Config) UnmarshalJSON(data []byte) error {
	type configJSON Config
	temp := configJSON(Default())

	if err := json.Unmarshal(data, &temp); err != nil {
		return &errors.UnmarshalError{Type: "Config", Data: data, Reason: err.Error()}
	}

	*c = Config(temp)

	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid Config after unmarshal: %w", err)
	}
	return nil
}

// MarshalYAML validates c and encodes it as a mapping.
func (c Config) MarshalYAML() (any, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid Config: %w", err)
	}

	type configYAML Config
	return configYAML(c), nil
}

// UnmarshalYAML decodes a mapping over the defaults and validates the
// result.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	type configYAML Config
	temp := configYAML(Default())

	if err := node.Decode(&temp); err != nil {
		return fmt.Errorf("failed to unmarshal Config: %w", err)
	}

	*c = Config(temp)

	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid Config after unmarshal: %w", err)
	}
	return nil
}
