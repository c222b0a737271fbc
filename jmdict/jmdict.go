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

// Package jmdict reads JMdict dictionaries in the jmdict-simplified JSON
// format and packs them into dictionary blobs.
//
// Source files may be plain JSON or a tar archive containing a JSON file,
// optionally compressed with gzip, zstd or lz4. The format of a file is
// determined from its name, e.g. jmdict-eng-3.6.1.json.tgz.
//
// See https://github.com/scriptin/jmdict-simplified for the format.
package jmdict

import (
	"io"

	gojson "github.com/goccy/go-json"

	"github.com/ianlewis/go-japandict/internal/folding"
)

// Dictionary is a decoded jmdict-simplified file.
type Dictionary struct {
	Version    string   `json:"version"`
	Languages  []string `json:"languages"`
	CommonOnly bool     `json:"commonOnly"`
	DictDate   string   `json:"dictDate"`
	Words      []Word   `json:"words"`
}

// Word is a single JMdict entry.
type Word struct {
	ID    string  `json:"id"`
	Kanji []Form  `json:"kanji"`
	Kana  []Form  `json:"kana"`
	Sense []Sense `json:"sense"`
}

// Form is a kanji or kana writing of a word.
type Form struct {
	Text   string   `json:"text"`
	Common bool     `json:"common"`
	Tags   []string `json:"tags"`
}

// Sense is one meaning of a word.
type Sense struct {
	PartOfSpeech []string `json:"partOfSpeech"`
	Misc         []string `json:"misc"`
	Gloss        []Gloss  `json:"gloss"`
}

// Gloss is a translation of a sense.
type Gloss struct {
	Lang string `json:"lang"`
	Text string `json:"text"`
}

// Decode reads a jmdict-simplified JSON document from r.
func Decode(r io.Reader) (*Dictionary, error) {
	var d Dictionary
	if err := gojson.NewDecoder(r).Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Common reports whether any kanji or kana form of the word is common.
func (w *Word) Common() bool {
	for _, forms := range [][]Form{w.Kanji, w.Kana} {
		for _, f := range forms {
			if f.Common {
				return true
			}
		}
	}
	return false
}

// Glosses returns the text of the word's glosses in the given language,
// across all senses. White space in each gloss is folded and empty glosses
// are dropped.
func (w *Word) Glosses(lang string) []string {
	var glosses []string
	for _, s := range w.Sense {
		for _, g := range s.Gloss {
			if g.Lang != lang {
				continue
			}
			if t := folding.FoldWhitespace(g.Text); t != "" {
				glosses = append(glosses, t)
			}
		}
	}
	return glosses
}

// PartOfSpeech returns the part of speech tags of the first sense that has
// any.
func (w *Word) PartOfSpeech() []string {
	for _, s := range w.Sense {
		if len(s.PartOfSpeech) > 0 {
			return s.PartOfSpeech
		}
	}
	return nil
}

// texts returns the white space folded text of each non-empty form.
func texts(forms []Form) []string {
	var s []string
	for _, f := range forms {
		if t := folding.FoldWhitespace(f.Text); t != "" {
			s = append(s, t)
		}
	}
	return s
}
