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
	"fmt"
	"slices"

	"github.com/ianlewis/go-japandict/blob"
)

// PackOptions are options for Pack.
type PackOptions struct {
	// Lang is the gloss language to keep. Defaults to "eng".
	Lang string

	// Limit is the maximum number of words to pack. Zero packs all words.
	Limit int
}

// DefaultPackOptions are the default options for Pack.
var DefaultPackOptions = &PackOptions{
	Lang: "eng",
}

func (o *PackOptions) lang() string {
	if o == nil || o.Lang == "" {
		return DefaultPackOptions.Lang
	}
	return o.Lang
}

func (o *PackOptions) limit() int {
	if o == nil {
		return 0
	}
	return o.Limit
}

// Entry converts the word to a dictionary entry keeping only glosses in the
// given language.
func (w *Word) Entry(lang string) blob.Entry {
	return blob.Entry{
		ID:      w.ID,
		Kanji:   texts(w.Kanji),
		Kana:    texts(w.Kana),
		Glosses: w.Glosses(lang),
		POS:     w.PartOfSpeech(),
		Common:  w.Common(),
	}
}

// Pack adds the dictionary's words to a blob writer and returns the packed
// blob. Common words are packed first, otherwise the source order is kept.
// If a limit is set only that many words are packed.
func (d *Dictionary) Pack(opts *PackOptions) (*blob.Blob, error) {
	words := make([]*Word, len(d.Words))
	for i := range d.Words {
		words[i] = &d.Words[i]
	}
	slices.SortStableFunc(words, func(a, b *Word) int {
		switch ac, bc := a.Common(), b.Common(); {
		case ac && !bc:
			return -1
		case !ac && bc:
			return 1
		default:
			return 0
		}
	})

	if n := opts.limit(); n > 0 && n < len(words) {
		words = words[:n]
	}

	lang := opts.lang()
	w := blob.NewWriter()
	for _, word := range words {
		if err := w.Add(word.Entry(lang)); err != nil {
			return nil, fmt.Errorf("word %q: %w", word.ID, err)
		}
	}
	return w.Blob(), nil
}
