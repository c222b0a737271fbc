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

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-japandict/internal/config"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrJdutil is a parent error for all command errors.
var ErrJdutil = errors.New("jdutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrJdutil)

// ErrNoDictionary indicates that no dictionary file could be found.
var ErrNoDictionary = fmt.Errorf("%w: no dictionary found", ErrJdutil)

// configKey is the app metadata key holding the loaded *config.Config.
const configKey = "config"

var copyrightNames = []string{
	"2025 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// defaultConfigPath returns the path of the user's config file.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return config.FileName
	}
	return filepath.Join(dir, "japandict", config.FileName)
}

// onUsageError wraps flag parsing errors so that they map to
// ExitCodeFlagParseError.
func onUsageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %w", ErrFlagParse, err)
}

// loadConfig loads the config file and applies the global flags to it.
func loadConfig(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrJdutil, err)
	}

	if c.IsSet("dictionary") {
		cfg.Dictionary.Path = c.String("dictionary")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFlagParse, err)
	}
	log.SetLevel(level)

	c.App.Metadata[configKey] = cfg
	if c.Bool("metrics") {
		c.App.Metadata[metricsKey] = prometheus.NewRegistry()
	}
	return nil
}

// appConfig returns the config loaded for the app.
func appConfig(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata[configKey].(*config.Config); ok {
		return cfg
	}
	return config.DefaultConfig()
}

func printVersion(c *cli.Context) error {
	info := version.GetVersionInfo()
	info.Name = c.App.Name
	info.Description = c.App.Usage

	_, err := fmt.Fprintln(c.App.Writer, info.String())
	if err != nil {
		return fmt.Errorf("%w: printing version: %w", ErrJdutil, err)
	}
	return nil
}

func newJdutilApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Search Japanese-English dictionaries.",
		Description: strings.Join([]string{
			"Japanese-English dictionary utility written in Go.",
			"http://github.com/ianlewis/go-japandict",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read configuration from `FILE`",
				Aliases: []string{"c"},
				Value:   defaultConfigPath(),
				EnvVars: []string{"JAPANDICT_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "dictionary",
				Usage:   "use the dictionary at `PATH`",
				Aliases: []string{"f"},
			},
			&cli.StringSliceFlag{
				Name:    "data-dir",
				Usage:   "search for dictionaries in `DIR`",
				Aliases: []string{"d"},
				Value:   cli.NewStringSlice(dictLocations()...),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log at `LEVEL` (debug, info, warn, error)",
			},
			&cli.BoolFlag{
				Name:  "metrics",
				Usage: "print dictionary metrics to stderr when the command finishes",
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		Metadata:        map[string]any{},
		OnUsageError:    onUsageError,
		Before:          loadConfig,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			queryCommand,
			infoCommand,
			packCommand,
		},
	}
}
