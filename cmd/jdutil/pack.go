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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/ianlewis/go-dictzip"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-japandict/blob"
	"github.com/ianlewis/go-japandict/internal/logger"
	"github.com/ianlewis/go-japandict/jmdict"
)

var packCommand = &cli.Command{
	Name:      "pack",
	Usage:     "pack a jmdict-simplified JSON file into a dictionary",
	ArgsUsage: "SOURCE OUTPUT",
	Description: strings.Join([]string{
		"SOURCE is a jmdict-simplified JSON file or a tar archive containing one,",
		"optionally compressed with gzip (.gz, .tgz), zstd (.zst) or lz4 (.lz4).",
		"OUTPUT is compressed with dictzip if it has a .dz extension.",
	}, "\n"),
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "limit",
			Usage:   "pack at most `N` words, common words first (0 packs all)",
			Aliases: []string{"n"},
		},
		&cli.StringFlag{
			Name:  "lang",
			Usage: "keep glosses in `LANG`",
			Value: jmdict.DefaultPackOptions.Lang,
		},
		&cli.BoolFlag{
			Name:    "force",
			Usage:   "overwrite OUTPUT if it exists",
			Aliases: []string{"F"},
		},
	},
	OnUsageError: onUsageError,
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			return fmt.Errorf("%w: expected SOURCE and OUTPUT", ErrFlagParse)
		}
		src, dst := c.Args().Get(0), c.Args().Get(1)
		if c.Int("limit") < 0 {
			return fmt.Errorf("%w: --limit must not be negative", ErrFlagParse)
		}

		l := logger.New("pack")

		d, err := jmdict.Open(src)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrJdutil, err)
		}
		l.Info("read source", "path", src, "version", d.Version, "words", len(d.Words))

		b, err := d.Pack(&jmdict.PackOptions{
			Lang:  c.String("lang"),
			Limit: c.Int("limit"),
		})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrJdutil, err)
		}

		if err := writeBlob(b, dst, c.Bool("force"), l); err != nil {
			return fmt.Errorf("%w: %w", ErrJdutil, err)
		}
		return nil
	},
}

// writeBlob writes b to path, compressing it with dictzip if path has a .dz
// extension.
func writeBlob(b *blob.Blob, path string, force bool, l *log.Logger) (err error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	var w io.Writer = f
	var z *dictzip.Writer
	if strings.ToLower(filepath.Ext(path)) == ".dz" {
		z, err = dictzip.NewWriter(f)
		if err != nil {
			return fmt.Errorf("creating dictzip %q: %w", path, err)
		}
		w = z
	}

	n, err := b.WriteTo(w)
	if err != nil {
		return err
	}
	if z != nil {
		if err := z.Close(); err != nil {
			return fmt.Errorf("closing dictzip %q: %w", path, err)
		}
	}

	l.Info("wrote dictionary", "path", path, "words", b.Len(), "bytes", n)
	return nil
}
