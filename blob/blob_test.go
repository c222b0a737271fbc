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

package blob_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-japandict/blob"
	"github.com/ianlewis/go-japandict/internal/testutil"
)

// TestBlob_Entry tests Blob.Entry.
func TestBlob_Entry(t *testing.T) {
	t.Parallel()

	entries := testutil.Entries()
	b := testutil.MakeBlob(t, entries)

	if want, got := len(entries), b.Len(); want != got {
		t.Fatalf("Len: want: %d, got: %d", want, got)
	}

	for i, want := range entries {
		got := b.Entry(i)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Entry(%d) (-want, +got):\n%s", i, diff)
		}
	}
}

// TestBlob_Entry_strings tests that decoded strings are non-empty and
// resolvable through the string pool.
func TestBlob_Entry_strings(t *testing.T) {
	t.Parallel()

	b := testutil.MakeBlob(t, testutil.Entries())
	c := b.Counts()

	pool := map[string]bool{}
	for i := range int(c.Strings()) {
		pool[b.String(i)] = true
	}

	for i := range b.Len() {
		e := b.Entry(i)
		for _, values := range [][]string{{e.ID}, e.Kanji, e.Kana, e.Glosses, e.POS} {
			for _, s := range values {
				if s == "" {
					t.Errorf("Entry(%d): empty string", i)
				}
				if !pool[s] {
					t.Errorf("Entry(%d): %q not in string pool", i, s)
				}
			}
		}
	}
}

func TestBlob_Entry_outOfRange(t *testing.T) {
	t.Parallel()

	b := testutil.MakeBlob(t, testutil.Entries())

	for _, i := range []int{-1, b.Len()} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Entry(%d): expected panic", i)
				}
			}()
			_ = b.Entry(i)
		}()
	}
}

func TestBlob_String_unterminated(t *testing.T) {
	t.Parallel()

	// A single kanji string at offset 0 of a pool with no null byte.
	pool := []byte("犬")
	b := blob.New(blob.Counts{Kanji: 1}, pool, []byte{0, 0, 0, 0}, nil, nil)

	defer func() {
		if recover() == nil {
			t.Errorf("String(0): expected panic")
		}
	}()
	_ = b.String(0)
}

func TestWriter_dedup(t *testing.T) {
	t.Parallel()

	w := blob.NewWriter()
	for _, e := range []blob.Entry{
		{ID: "1", Kanji: []string{"犬"}, Kana: []string{"いぬ"}, POS: []string{"n"}},
		{ID: "2", Kanji: []string{"犬"}, Kana: []string{"けん"}, POS: []string{"n"}},
	} {
		if err := w.Add(e); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	want := blob.Counts{
		Kanji: 1,
		Kana:  2,
		POS:   1,
		ID:    2,
		Words: 2,
	}
	if diff := cmp.Diff(want, w.Blob().Counts()); diff != "" {
		t.Fatalf("Counts (-want, +got):\n%s", diff)
	}
}

func TestWriter_tooMany(t *testing.T) {
	t.Parallel()

	glosses := make([]string, 256)
	for i := range glosses {
		glosses[i] = "gloss"
	}

	err := blob.NewWriter().Add(blob.Entry{ID: "1", Glosses: glosses})
	if !errors.Is(err, blob.ErrTooMany) {
		t.Fatalf("Add: want: %v, got: %v", blob.ErrTooMany, err)
	}
}

// TestLoad tests that a written blob can be loaded back.
func TestLoad(t *testing.T) {
	t.Parallel()

	entries := testutil.Entries()

	var buf bytes.Buffer
	if _, err := testutil.MakeBlob(t, entries).WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	b, err := blob.Load(buf.Bytes())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for i, want := range entries {
		if diff := cmp.Diff(want, b.Entry(i)); diff != "" {
			t.Errorf("Entry(%d) (-want, +got):\n%s", i, diff)
		}
	}
}

func TestLoad_errors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := testutil.MakeBlob(t, testutil.Entries()).WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	data := buf.Bytes()

	badMagic := bytes.Clone(data)
	badMagic[0] = 'X'

	var unterminated bytes.Buffer
	pool := []byte("犬")
	if _, err := blob.New(blob.Counts{Kanji: 1}, pool, []byte{0, 0, 0, 0}, nil, nil).WriteTo(&unterminated); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	tests := []struct {
		name string
		data []byte
		err  error
	}{
		{
			name: "empty",
			data: nil,
			err:  blob.ErrTruncated,
		},
		{
			name: "bad magic",
			data: badMagic,
			err:  blob.ErrBadMagic,
		},
		{
			name: "truncated tables",
			data: data[:len(data)-1],
			err:  blob.ErrTruncated,
		},
		{
			name: "unterminated pool",
			data: unterminated.Bytes(),
			err:  blob.ErrUnterminated,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := blob.Load(test.data)
			if !errors.Is(err, test.err) {
				t.Fatalf("Load: want: %v, got: %v", test.err, err)
			}
		})
	}
}
