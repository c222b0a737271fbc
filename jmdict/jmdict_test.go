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
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/ianlewis/go-japandict/blob"
)

const testJSON = `{
  "version": "3.6.1",
  "languages": ["eng", "ger"],
  "commonOnly": false,
  "dictDate": "2025-08-18",
  "words": [
    {
      "id": "1000010",
      "kanji": [{"text": "犬小屋", "common": false, "tags": []}],
      "kana": [{"text": "いぬごや", "common": false, "tags": []}],
      "sense": [
        {"partOfSpeech": ["n"], "misc": [], "gloss": [
          {"lang": "eng", "text": "kennel"},
          {"lang": "ger", "text": "Hundehütte"}
        ]}
      ]
    },
    {
      "id": "1000000",
      "kanji": [{"text": "犬", "common": true, "tags": []}],
      "kana": [{"text": "いぬ", "common": true, "tags": []}],
      "sense": [
        {"partOfSpeech": ["n"], "misc": [], "gloss": [{"lang": "eng", "text": "dog"}]},
        {"partOfSpeech": ["n", "adj-no"], "misc": ["derog"], "gloss": [{"lang": "eng", "text": "snoop"}]}
      ]
    },
    {
      "id": "1000080",
      "kanji": [],
      "kana": [{"text": "ドア", "common": true, "tags": []}],
      "sense": [
        {"partOfSpeech": [], "misc": [], "gloss": [{"lang": "ger", "text": "Tür"}]},
        {"partOfSpeech": ["n"], "misc": [], "gloss": [{"lang": "eng", "text": "door"}]}
      ]
    },
    {
      "id": "1000070",
      "kanji": [{"text": "干支", "common": false, "tags": []}],
      "kana": [{"text": "えと", "common": false, "tags": []}],
      "sense": [
        {"partOfSpeech": ["n"], "misc": [], "gloss": [{"lang": "eng", "text": " sexagenary \t cycle "}, {"lang": "eng", "text": "  "}]}
      ]
    }
  ]
}`

func packed(t *testing.T, b *blob.Blob) []blob.Entry {
	t.Helper()

	var entries []blob.Entry
	for i := range b.Len() {
		entries = append(entries, b.Entry(i).Clone())
	}
	return entries
}

func TestDecode(t *testing.T) {
	t.Parallel()

	d, err := Decode(strings.NewReader(testJSON))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got, want := d.Version, "3.6.1"; got != want {
		t.Errorf("Version: want: %q, got: %q", want, got)
	}
	if got, want := len(d.Words), 4; got != want {
		t.Fatalf("len(Words): want: %d, got: %d", want, got)
	}

	w := d.Words[1]
	if !w.Common() {
		t.Error("Common: want: true, got: false")
	}
	if diff := cmp.Diff([]string{"dog", "snoop"}, w.Glosses("eng")); diff != "" {
		t.Errorf("Glosses (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"n"}, w.PartOfSpeech()); diff != "" {
		t.Errorf("PartOfSpeech (-want, +got):\n%s", diff)
	}

	// The first sense without a part of speech is skipped.
	if diff := cmp.Diff([]string{"n"}, d.Words[2].PartOfSpeech()); diff != "" {
		t.Errorf("PartOfSpeech (-want, +got):\n%s", diff)
	}
}

func TestDecode_invalid(t *testing.T) {
	t.Parallel()

	if _, err := Decode(strings.NewReader(`{"words": [`)); err == nil {
		t.Fatal("Decode: expected error")
	}
}

func TestDictionary_Pack(t *testing.T) {
	t.Parallel()

	d, err := Decode(strings.NewReader(testJSON))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	tests := []struct {
		name     string
		opts     *PackOptions
		expected []blob.Entry
	}{
		{
			name: "default",
			expected: []blob.Entry{
				{
					ID:      "1000000",
					Kanji:   []string{"犬"},
					Kana:    []string{"いぬ"},
					Glosses: []string{"dog", "snoop"},
					POS:     []string{"n"},
					Common:  true,
				},
				{
					ID:      "1000080",
					Kana:    []string{"ドア"},
					Glosses: []string{"door"},
					POS:     []string{"n"},
					Common:  true,
				},
				{
					ID:      "1000010",
					Kanji:   []string{"犬小屋"},
					Kana:    []string{"いぬごや"},
					Glosses: []string{"kennel"},
					POS:     []string{"n"},
				},
				{
					ID:      "1000070",
					Kanji:   []string{"干支"},
					Kana:    []string{"えと"},
					Glosses: []string{"sexagenary cycle"},
					POS:     []string{"n"},
				},
			},
		},
		{
			name: "limit",
			opts: &PackOptions{
				Limit: 1,
			},
			expected: []blob.Entry{
				{
					ID:      "1000000",
					Kanji:   []string{"犬"},
					Kana:    []string{"いぬ"},
					Glosses: []string{"dog", "snoop"},
					POS:     []string{"n"},
					Common:  true,
				},
			},
		},
		{
			name: "lang",
			opts: &PackOptions{
				Lang:  "ger",
				Limit: 2,
			},
			expected: []blob.Entry{
				{
					ID:     "1000000",
					Kanji:  []string{"犬"},
					Kana:   []string{"いぬ"},
					POS:    []string{"n"},
					Common: true,
				},
				{
					ID:      "1000080",
					Kana:    []string{"ドア"},
					Glosses: []string{"Tür"},
					POS:     []string{"n"},
					Common:  true,
				},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			b, err := d.Pack(test.opts)
			if err != nil {
				t.Fatalf("Pack: %v", err)
			}
			if diff := cmp.Diff(test.expected, packed(t, b), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Pack (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestDictionary_Pack_tooMany(t *testing.T) {
	t.Parallel()

	w := Word{ID: "1"}
	for range 256 {
		w.Kana = append(w.Kana, Form{Text: "あ"})
	}
	d := &Dictionary{Words: []Word{w}}

	if _, err := d.Pack(nil); !errors.Is(err, blob.ErrTooMany) {
		t.Fatalf("Pack: want: %v, got: %v", blob.ErrTooMany, err)
	}
}

// tarball returns a tar archive containing the named files.
func tarball(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	for name, contents := range files {
		if err := tw.WriteHeader(&tar.Header{
			Name:     name,
			Mode:     0o600,
			Size:     int64(len(contents)),
			Typeflag: tar.TypeReg,
		}); err != nil {
			t.Fatalf("WriteHeader: %v", err)
		}
		if _, err := io.WriteString(tw, contents); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return buf.Bytes()
}

func compress(t *testing.T, data []byte, newWriter func(io.Writer) (io.WriteCloser, error)) []byte {
	t.Helper()

	var buf bytes.Buffer
	w, err := newWriter(&buf)
	if err != nil {
		t.Fatalf("newWriter: %v", err)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return buf.Bytes()
}

func gzipWriter(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriter(w), nil
}

func zstdWriter(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w)
}

func lz4Writer(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}

func TestOpen(t *testing.T) {
	t.Parallel()

	archive := tarball(t, map[string]string{
		"jmdict-eng-3.6.1.json": testJSON,
	})

	tests := []struct {
		name string
		data []byte
		err  error
	}{
		{
			name: "jmdict.json",
			data: []byte(testJSON),
		},
		{
			name: "jmdict.json.gz",
			data: compress(t, []byte(testJSON), gzipWriter),
		},
		{
			name: "jmdict.json.zst",
			data: compress(t, []byte(testJSON), zstdWriter),
		},
		{
			name: "jmdict.json.lz4",
			data: compress(t, []byte(testJSON), lz4Writer),
		},
		{
			name: "jmdict.tar",
			data: archive,
		},
		{
			name: "JMDICT-ENG.JSON.TGZ",
			data: compress(t, archive, gzipWriter),
		},
		{
			name: "jmdict.tar.zst",
			data: compress(t, archive, zstdWriter),
		},
		{
			name: "empty.tar.gz",
			data: compress(t, tarball(t, map[string]string{"README": "hello"}), gzipWriter),
			err:  ErrNoJSON,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), test.name)
			if err := os.WriteFile(path, test.data, 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}

			d, err := Open(path)
			if !errors.Is(err, test.err) {
				t.Fatalf("Open: want: %v, got: %v", test.err, err)
			}
			if err != nil {
				return
			}
			if got, want := len(d.Words), 4; got != want {
				t.Errorf("len(Words): want: %d, got: %d", want, got)
			}
		})
	}
}

func TestOpen_notExist(t *testing.T) {
	t.Parallel()

	if _, err := Open(filepath.Join(t.TempDir(), "jmdict.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Open: want: %v, got: %v", os.ErrNotExist, err)
	}
}
