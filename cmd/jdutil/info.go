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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

var infoCommand = &cli.Command{
	Name:  "info",
	Usage: "print information about the dictionary",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "index",
			Usage: "build the indices and print their key counts",
		},
	},
	OnUsageError: onUsageError,
	Action: func(c *cli.Context) error {
		cfg := appConfig(c)
		path, err := dictionaryPath(c, cfg)
		if err != nil {
			return err
		}
		cfg.Dictionary.Path = path

		d, err := openDictionary(c, cfg)
		if err != nil {
			return err
		}
		defer d.Close()

		counts := d.Counts()
		tbl := table.New("Field", "Value").WithWriter(c.App.Writer)
		tbl.AddRow("Path", path)
		tbl.AddRow("Words", counts.Words)
		tbl.AddRow("Kanji forms", counts.Kanji)
		tbl.AddRow("Kana forms", counts.Kana)
		tbl.AddRow("Glosses", counts.Gloss)
		tbl.AddRow("POS tags", counts.POS)
		tbl.AddRow("Strings", counts.Strings())

		if c.Bool("index") {
			if err := d.BuildIndex(); err != nil {
				return fmt.Errorf("%w: %w", ErrJdutil, err)
			}
			ix := d.Indices()
			tbl.AddRow("Gloss keys", ix.Gloss.Len())
			tbl.AddRow("Kanji keys", ix.Kanji.Len())
			tbl.AddRow("Kana keys", ix.Kana.Len())
		}

		tbl.Print()
		return printMetrics(c)
	},
}
