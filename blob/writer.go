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
	"math"
)

// ErrTooMany indicates that an entry has more values in a category than an
// entry record can hold.
var ErrTooMany = errors.New("too many values")

// pool is a deduplicating list of strings in a single category.
type pool struct {
	index   map[string]uint32
	strings []string
}

func (p *pool) add(s string) uint32 {
	if i, ok := p.index[s]; ok {
		return i
	}
	if p.index == nil {
		p.index = map[string]uint32{}
	}
	//nolint:gosec // pool sizes are bounded by the entry count.
	i := uint32(len(p.strings))
	p.index[s] = i
	p.strings = append(p.strings, s)
	return i
}

func (p *pool) addAll(values []string) []uint32 {
	var idx []uint32
	for _, s := range values {
		idx = append(idx, p.add(s))
	}
	return idx
}

// record is an entry record before the category offsets are known.
type record struct {
	id     uint32
	kanji  []uint32
	kana   []uint32
	gloss  []uint32
	pos    []uint32
	common bool
}

// Writer builds packed dictionaries. Strings are deduplicated within each
// category. The zero value is ready to use.
type Writer struct {
	kanji pool
	kana  pool
	gloss pool
	pos   pool
	id    pool

	records []record
}

// NewWriter returns a new empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Add appends an entry. Entries are numbered in the order they are added.
func (w *Writer) Add(e Entry) error {
	for _, c := range []struct {
		name   string
		values []string
	}{
		{"kanji forms", e.Kanji},
		{"kana forms", e.Kana},
		{"glosses", e.Glosses},
		{"part-of-speech tags", e.POS},
	} {
		if len(c.values) > math.MaxUint8 {
			return fmt.Errorf("%w: entry %q has %d %s", ErrTooMany, e.ID, len(c.values), c.name)
		}
	}
	if uint64(len(w.records)) >= math.MaxUint32 {
		return fmt.Errorf("%w: entries", ErrTooMany)
	}

	w.records = append(w.records, record{
		id:     w.id.add(e.ID),
		kanji:  w.kanji.addAll(e.Kanji),
		kana:   w.kana.addAll(e.Kana),
		gloss:  w.gloss.addAll(e.Glosses),
		pos:    w.pos.addAll(e.POS),
		common: e.Common,
	})
	return nil
}

// Len returns the number of entries added so far.
func (w *Writer) Len() int {
	return len(w.records)
}

// Blob assembles the entries added so far into a new Blob.
func (w *Writer) Blob() *Blob {
	//nolint:gosec // pool and record sizes are checked in Add.
	counts := Counts{
		Kanji: uint32(len(w.kanji.strings)),
		Kana:  uint32(len(w.kana.strings)),
		Gloss: uint32(len(w.gloss.strings)),
		POS:   uint32(len(w.pos.strings)),
		ID:    uint32(len(w.id.strings)),
		Words: uint32(len(w.records)),
	}

	var stringPool, stringOffsets []byte
	for _, p := range []*pool{&w.kanji, &w.kana, &w.gloss, &w.pos, &w.id} {
		for _, s := range p.strings {
			//nolint:gosec // the pool is limited to 4GiB by the file format.
			stringOffsets = binary.LittleEndian.AppendUint32(stringOffsets, uint32(len(stringPool)))
			stringPool = append(stringPool, s...)
			stringPool = append(stringPool, 0)
		}
	}

	kanaBase := counts.Kanji
	glossBase := kanaBase + counts.Kana
	posBase := glossBase + counts.Gloss

	var entryBlob, entryOffsets []byte
	for _, r := range w.records {
		//nolint:gosec // the blob is limited to 4GiB by the file format.
		entryOffsets = binary.LittleEndian.AppendUint32(entryOffsets, uint32(len(entryBlob)))

		var common byte
		if r.common {
			common = 1
		}
		entryBlob = binary.LittleEndian.AppendUint32(entryBlob, r.id)
		entryBlob = append(entryBlob,
			byte(len(r.kanji)),
			byte(len(r.kana)),
			byte(len(r.gloss)),
			byte(len(r.pos)),
			common,
		)
		for _, c := range []struct {
			base uint32
			idx  []uint32
		}{
			{0, r.kanji},
			{kanaBase, r.kana},
			{glossBase, r.gloss},
			{posBase, r.pos},
		} {
			for _, i := range c.idx {
				entryBlob = binary.LittleEndian.AppendUint32(entryBlob, c.base+i)
			}
		}
	}

	return New(counts, stringPool, stringOffsets, entryBlob, entryOffsets)
}
