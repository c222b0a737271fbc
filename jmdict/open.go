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

package jmdict

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// ErrNoJSON indicates that a tar archive contains no JSON file.
var ErrNoJSON = errors.New("no JSON file in archive")

// Open reads the jmdict-simplified file at path.
func Open(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	d, err := Read(f, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return d, nil
}

// Read reads a jmdict-simplified file from r. The name of the file is used
// to determine its compression and whether it is a tar archive.
func Read(r io.Reader, name string) (*Dictionary, error) {
	name = strings.ToLower(name)

	archive := strings.HasSuffix(name, ".tgz")
	compressed := true
	switch {
	case strings.HasSuffix(name, ".tgz"), strings.HasSuffix(name, ".gz"):
		z, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer z.Close()
		r = z
	case strings.HasSuffix(name, ".zst"):
		z, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		defer z.Close()
		r = z
	case strings.HasSuffix(name, ".lz4"):
		r = lz4.NewReader(r)
	default:
		compressed = false
	}

	if compressed {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	if archive || strings.HasSuffix(name, ".tar") {
		return readTar(r)
	}

	d, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}
	return d, nil
}

// readTar decodes the first JSON file in the tar archive read from r.
func readTar(r io.Reader) (*Dictionary, error) {
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil, ErrNoJSON
		}
		if err != nil {
			return nil, fmt.Errorf("tar: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg || !strings.HasSuffix(strings.ToLower(hdr.Name), ".json") {
			continue
		}

		d, err := Decode(tr)
		if err != nil {
			return nil, fmt.Errorf("decoding %q: %w", hdr.Name, err)
		}
		return d, nil
	}
}
