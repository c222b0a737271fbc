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
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "search the dictionary",
	ArgsUsage: "QUERY...",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Usage:   "output results as `FORMAT` (table, json, msgpack)",
			Aliases: []string{"o"},
		},
		&cli.IntFlag{
			Name:    "limit",
			Usage:   "print at most `N` results (0 prints all)",
			Aliases: []string{"n"},
		},
		&cli.BoolFlag{
			Name:    "explain",
			Usage:   "include scores and match features",
			Aliases: []string{"x"},
		},
		&cli.BoolFlag{
			Name:  "no-index",
			Usage: "scan the dictionary instead of building the indices",
		},
	},
	OnUsageError: onUsageError,
	Action: func(c *cli.Context) error {
		q := strings.Join(c.Args().Slice(), " ")
		if strings.TrimSpace(q) == "" {
			return fmt.Errorf("%w: missing query", ErrFlagParse)
		}

		cfg := appConfig(c)
		if c.IsSet("format") {
			cfg.Output.Format = c.String("format")
		}
		if c.IsSet("limit") {
			cfg.Output.Limit = c.Int("limit")
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		}

		d, err := openDictionary(c, cfg)
		if err != nil {
			return err
		}
		defer d.Close()

		if !c.Bool("no-index") {
			if err := d.BuildIndex(); err != nil {
				return fmt.Errorf("%w: %w", ErrJdutil, err)
			}
		}

		results := d.Lookup(q)
		if n := cfg.Output.Limit; n > 0 && len(results) > n {
			results = results[:n]
		}
		if err := writeResults(c.App.Writer, cfg.Output.Format, results, c.Bool("explain")); err != nil {
			return err
		}
		return printMetrics(c)
	},
}
