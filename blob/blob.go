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
	"bytes"
	"encoding/binary"
	"slices"
	"strconv"
	"unsafe"
)

const (
	// recordHeaderSize is the size of the fixed part of an entry record: the
	// id index, four counts and the common flag.
	recordHeaderSize = 9

	// indexSize is the size of a string index in an entry record.
	indexSize = 4
)

// Counts holds the number of strings in each string category and the number
// of entries in a Blob.
type Counts struct {
	Kanji uint32
	Kana  uint32
	Gloss uint32
	POS   uint32
	ID    uint32
	Words uint32
}

// Strings returns the total number of strings in all categories.
func (c Counts) Strings() uint32 {
	return c.Kanji + c.Kana + c.Gloss + c.POS + c.ID
}

// idBase is the StringOffsets index of the first entry id.
func (c Counts) idBase() uint32 {
	return c.Kanji + c.Kana + c.Gloss + c.POS
}

// Entry is a decoded dictionary entry.
type Entry struct {
	// ID is the entry's unique id.
	ID string `json:"id" msgpack:"id"`

	// Kanji are the entry's written forms using kanji.
	Kanji []string `json:"kanji,omitempty" msgpack:"kanji,omitempty"`

	// Kana are the entry's readings in hiragana or katakana.
	Kana []string `json:"kana,omitempty" msgpack:"kana,omitempty"`

	// Glosses are the entry's English meanings.
	Glosses []string `json:"glosses,omitempty" msgpack:"glosses,omitempty"`

	// POS are the entry's part-of-speech tags.
	POS []string `json:"pos,omitempty" msgpack:"pos,omitempty"`

	// Common is true if the entry is a common word.
	Common bool `json:"common" msgpack:"common"`
}

// Clone returns a copy of the entry that shares no slices with e.
func (e Entry) Clone() Entry {
	e.Kanji = slices.Clone(e.Kanji)
	e.Kana = slices.Clone(e.Kana)
	e.Glosses = slices.Clone(e.Glosses)
	e.POS = slices.Clone(e.POS)
	return e
}

// Blob is a packed dictionary. A Blob does not own its tables and never
// modifies them.
type Blob struct {
	counts Counts

	strings       []byte
	stringOffsets []byte
	entries       []byte
	entryOffsets  []byte
}

// New returns a Blob over the given tables. The tables are not copied and
// must not be modified for the lifetime of the Blob or any Entry decoded from
// it.
func New(counts Counts, stringPool, stringOffsets, entryBlob, entryOffsets []byte) *Blob {
	return &Blob{
		counts:        counts,
		strings:       stringPool,
		stringOffsets: stringOffsets,
		entries:       entryBlob,
		entryOffsets:  entryOffsets,
	}
}

// Counts returns the blob's string and entry counts.
func (b *Blob) Counts() Counts {
	return b.counts
}

// Len returns the number of entries.
func (b *Blob) Len() int {
	return int(b.counts.Words)
}

// Entry decodes the entry at index i. Only the returned slices are allocated.
//
// Entry panics if i is not in [0, Len()) or if the entry record references
// data outside of the blob's tables.
func (b *Blob) Entry(i int) Entry {
	rec := b.entries[u32(b.entryOffsets, i):]

	idIndex := binary.LittleEndian.Uint32(rec)
	kanjiCount := int(rec[4])
	kanaCount := int(rec[5])
	glossCount := int(rec[6])
	posCount := int(rec[7])

	e := Entry{
		Common: rec[8] != 0,
	}

	p := rec[recordHeaderSize:]
	e.Kanji, p = b.readStrings(p, kanjiCount)
	e.Kana, p = b.readStrings(p, kanaCount)
	e.Glosses, p = b.readStrings(p, glossCount)
	e.POS, _ = b.readStrings(p, posCount)
	e.ID = b.String(int(b.counts.idBase() + idIndex))

	return e
}

// String returns the string at index i of the StringOffsets table. The
// returned string shares memory with the string pool.
//
// String panics if i is out of range or if the string is not null
// terminated.
func (b *Blob) String(i int) string {
	start := int(u32(b.stringOffsets, i))
	n := bytes.IndexByte(b.strings[start:], 0)
	if n < 0 {
		panic("blob: string " + strconv.Itoa(i) + " is not null terminated")
	}
	if n == 0 {
		return ""
	}
	return unsafe.String(&b.strings[start], n)
}

func (b *Blob) readStrings(p []byte, n int) ([]string, []byte) {
	if n == 0 {
		return nil, p
	}
	s := make([]string, n)
	for i := range s {
		s[i] = b.String(int(binary.LittleEndian.Uint32(p[i*indexSize:])))
	}
	return s, p[n*indexSize:]
}

// u32 reads the i-th little-endian uint32 from the table.
func u32(table []byte, i int) uint32 {
	return binary.LittleEndian.Uint32(table[i*4 : i*4+4])
}
