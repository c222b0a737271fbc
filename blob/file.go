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

package blob

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/ianlewis/go-dictzip"
)

// Magic is the magic data at the start of a packed dictionary file.
const Magic = "JPDICT\x00\x01"

// headerSize is the size of the file header: the magic data, six counts and
// the sizes of the string pool and entry blob.
const headerSize = len(Magic) + 8*4

var (
	// ErrBadMagic indicates that the data is not a packed dictionary.
	ErrBadMagic = errors.New("bad magic data")

	// ErrTruncated indicates that the data is shorter than its header claims.
	ErrTruncated = errors.New("truncated data")

	// ErrUnterminated indicates that the string pool does not end with a
	// null byte.
	ErrUnterminated = errors.New("unterminated string pool")
)

// Load returns a Blob over the packed dictionary file contents in data. Only
// the header, the table sizes and the string pool terminator are validated.
// The returned Blob references data directly.
func Load(data []byte) (*Blob, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: header: %d bytes", ErrTruncated, len(data))
	}
	if string(data[:len(Magic)]) != Magic {
		return nil, ErrBadMagic
	}

	h := data[len(Magic):headerSize]
	counts := Counts{
		Kanji: binary.LittleEndian.Uint32(h[0:]),
		Kana:  binary.LittleEndian.Uint32(h[4:]),
		Gloss: binary.LittleEndian.Uint32(h[8:]),
		POS:   binary.LittleEndian.Uint32(h[12:]),
		ID:    binary.LittleEndian.Uint32(h[16:]),
		Words: binary.LittleEndian.Uint32(h[20:]),
	}
	poolSize := uint64(binary.LittleEndian.Uint32(h[24:]))
	entriesSize := uint64(binary.LittleEndian.Uint32(h[28:]))

	// NOTE: Counts.Strings could overflow uint32 on corrupt data.
	numStrings := uint64(counts.Kanji) + uint64(counts.Kana) + uint64(counts.Gloss) +
		uint64(counts.POS) + uint64(counts.ID)

	sizes := []uint64{
		4 * numStrings,
		4 * uint64(counts.Words),
		poolSize,
		entriesSize,
	}
	want := uint64(headerSize)
	for _, s := range sizes {
		want += s
	}
	if uint64(len(data)) < want {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrTruncated, want, len(data))
	}

	var tables [4][]byte
	off := uint64(headerSize)
	for i, s := range sizes {
		tables[i] = data[off : off+s : off+s]
		off += s
	}
	if pool := tables[2]; len(pool) > 0 && pool[len(pool)-1] != 0 {
		return nil, ErrUnterminated
	}

	return New(counts, tables[2], tables[0], tables[3], tables[1]), nil
}

// WriteTo writes the blob to w in the packed dictionary file format.
func (b *Blob) WriteTo(w io.Writer) (int64, error) {
	h := make([]byte, headerSize)
	copy(h, Magic)
	for i, v := range []uint32{
		b.counts.Kanji,
		b.counts.Kana,
		b.counts.Gloss,
		b.counts.POS,
		b.counts.ID,
		b.counts.Words,
		//nolint:gosec // table sizes are bounded by the writer.
		uint32(len(b.strings)),
		//nolint:gosec // table sizes are bounded by the writer.
		uint32(len(b.entries)),
	} {
		binary.LittleEndian.PutUint32(h[len(Magic)+4*i:], v)
	}

	var total int64
	for _, p := range [][]byte{h, b.stringOffsets, b.entryOffsets, b.strings, b.entries} {
		n, err := w.Write(p)
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("writing dictionary: %w", err)
		}
	}
	return total, nil
}

// File is a packed dictionary file opened with Open.
type File struct {
	*Blob

	f  *os.File
	mm mmap.MMap
}

// Open opens the packed dictionary file at path. Uncompressed files are
// memory-mapped read-only. Files with a .dz extension are read as dictzip
// compressed data into memory.
//
// Entries decoded from the File must not be used after the File is closed.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".dz" {
		defer f.Close()

		z, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening dictzip %q: %w", path, err)
		}
		data, err := io.ReadAll(z)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		b, err := Load(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		return &File{Blob: b}, nil
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("mapping %q: %w", path, err)
	}
	b, err := Load(mm)
	if err != nil {
		_ = mm.Unmap()
		_ = f.Close()
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}

	return &File{
		Blob: b,
		f:    f,
		mm:   mm,
	}, nil
}

// Close releases the file's memory mapping.
func (f *File) Close() error {
	var errs []error
	if f.mm != nil {
		if err := f.mm.Unmap(); err != nil {
			errs = append(errs, fmt.Errorf("unmapping dictionary: %w", err))
		}
		f.mm = nil
	}
	if f.f != nil {
		if err := f.f.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing dictionary: %w", err))
		}
		f.f = nil
	}
	return errors.Join(errs...)
}
