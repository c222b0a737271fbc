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
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-japandict"
	"github.com/ianlewis/go-japandict/internal/config"
	"github.com/ianlewis/go-japandict/internal/logger"
)

var dictExts = []string{".jdb", ".jdb.dz"}

// isDictFile reports whether name has a dictionary file extension.
func isDictFile(name string) bool {
	name = strings.ToLower(name)
	for _, ext := range dictExts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// findDictionary returns the first dictionary file found in dirs.
func findDictionary(dirs []string) (string, error) {
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", fmt.Errorf("%w: reading %q: %w", ErrJdutil, dir, err)
		}
		for _, e := range entries {
			if !e.IsDir() && isDictFile(e.Name()) {
				return filepath.Join(dir, e.Name()), nil
			}
		}
	}
	return "", fmt.Errorf("%w in %s", ErrNoDictionary, strings.Join(dirs, ", "))
}

// dictionaryPath returns the configured dictionary path or searches the
// data directories for one.
func dictionaryPath(c *cli.Context, cfg *config.Config) (string, error) {
	if cfg.Dictionary.Path != "" {
		return cfg.Dictionary.Path, nil
	}
	return findDictionary(c.StringSlice("data-dir"))
}

// openDictionary opens the dictionary without building its indices.
func openDictionary(c *cli.Context, cfg *config.Config) (*japandict.Dictionary, error) {
	path, err := dictionaryPath(c, cfg)
	if err != nil {
		return nil, err
	}

	d, err := japandict.Open(path, &japandict.Options{
		Logger:        logger.New("japandict"),
		Registerer:    registerer(c),
		ParallelBuild: cfg.Dictionary.ParallelBuild,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJdutil, err)
	}
	return d, nil
}
