// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the TOML configuration for jdutil.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// FileName is the name of the configuration file.
const FileName = "config.toml"

// Output formats.
const (
	FormatTable   = "table"
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

var formats = []string{FormatTable, FormatJSON, FormatMsgpack}

// ErrInvalid indicates a configuration value is invalid.
var ErrInvalid = errors.New("invalid config")

// Config is the jdutil configuration.
type Config struct {
	Dictionary DictionaryConfig `toml:"dictionary"`
	Log        LogConfig        `toml:"log"`
	Output     OutputConfig     `toml:"output"`
}

// DictionaryConfig configures where the dictionary is loaded from and how it
// is indexed.
type DictionaryConfig struct {
	// Path is the path to the dictionary blob file. If empty the default data
	// directories are searched.
	Path string `toml:"path"`

	// ParallelBuild builds the indices concurrently.
	ParallelBuild bool `toml:"parallel_build"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// OutputConfig configures query output.
type OutputConfig struct {
	// Format is one of table, json or msgpack.
	Format string `toml:"format"`

	// Limit is the maximum number of results printed. Zero prints all.
	Limit int `toml:"limit"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dictionary: DictionaryConfig{
			ParallelBuild: true,
		},
		Log: LogConfig{
			Level: "warn",
		},
		Output: OutputConfig{
			Format: FormatTable,
			Limit:  10,
		},
	}
}

// Load reads the configuration at path on top of the defaults. A missing
// file yields the defaults. Unknown keys are logged and ignored.
func Load(path string) (*Config, error) {
	c := DefaultConfig()

	md, err := toml.DecodeFile(path, c)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("config file not found, using defaults", "path", path)
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	for _, k := range md.Undecoded() {
		log.Warn("unknown config key", "path", path, "key", k.String())
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return c, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if !slices.Contains(formats, c.Output.Format) {
		return fmt.Errorf("%w: output.format %q: must be one of %s",
			ErrInvalid, c.Output.Format, strings.Join(formats, ", "))
	}
	if c.Output.Limit < 0 {
		return fmt.Errorf("%w: output.limit %d: must not be negative", ErrInvalid, c.Output.Limit)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	return nil
}
