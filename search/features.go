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

package search

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ianlewis/go-japandict/blob"
	"github.com/ianlewis/go-japandict/internal/folding"
	"github.com/ianlewis/go-japandict/query"
)

// maxEditDistance is the largest edit distance that counts as a match.
const maxEditDistance = 2

// Features are the match signals computed for an entry against a query.
type Features struct {
	// ExactForm is true if a kanji form equals the query.
	ExactForm bool `json:"exact_form" msgpack:"exact_form"`

	// ExactReading is true if a kana form equals the query.
	ExactReading bool `json:"exact_reading" msgpack:"exact_reading"`

	// Prefix is true if a kanji or kana form starts with the query.
	Prefix bool `json:"prefix" msgpack:"prefix"`

	// EditDistance is the edit distance between the query and the first kana
	// form within maxEditDistance of it. Zero if none was found.
	EditDistance uint8 `json:"edit_distance" msgpack:"edit_distance"`

	// HasCommon mirrors the entry's common flag.
	HasCommon bool `json:"has_common" msgpack:"has_common"`

	// ShorterLemma is true if the entry has a short kanji or kana form.
	ShorterLemma bool `json:"shorter_lemma" msgpack:"shorter_lemma"`

	// GlossHit is true if the query matched a gloss.
	GlossHit bool `json:"gloss_hit" msgpack:"gloss_hit"`

	// FirstGloss is true if the query matched the first clause of the first
	// gloss.
	FirstGloss bool `json:"first_gloss" msgpack:"first_gloss"`

	// ExactEnglish is true if a whole gloss clause equals the query.
	ExactEnglish bool `json:"exact_english" msgpack:"exact_english"`

	// SimpleForm is true for i-adjectives and entries with short forms.
	SimpleForm bool `json:"simple_form" msgpack:"simple_form"`
}

// matched reports whether any match signal is set.
func (f *Features) matched() bool {
	return f.ExactForm || f.ExactReading || f.Prefix || f.GlossHit || f.EditDistance != 0
}

// Evaluate computes the features and score of entry e for the query q of
// class c. It returns false if the entry does not match the query.
func Evaluate(e blob.Entry, q string, c query.Class) (Result, bool) {
	return evaluate(e, query.Normalize(q), c)
}

// evaluate is Evaluate for an already normalized query.
func evaluate(e blob.Entry, q string, c query.Class) (Result, bool) {
	var f Features

	switch c {
	case query.Kanji:
		matchKanji(&f, e, q)
	case query.Kana:
		matchKana(&f, e, q)
	case query.English:
		matchGlosses(&f, e, q)
	}

	if !f.matched() {
		return Result{}, false
	}

	f.HasCommon = e.Common
	f.ShorterLemma = anyShorter(e.Kanji, 2) || anyShorter(e.Kana, 3)
	f.SimpleForm = isSimpleForm(e)

	return Result{
		Entry:    e,
		Score:    Score(f),
		Features: f,
	}, true
}

func matchKanji(f *Features, e blob.Entry, q string) {
	for _, k := range e.Kanji {
		k = folding.LowerString(k)
		if k == q {
			f.ExactForm = true
			break
		}
		if strings.HasPrefix(k, q) {
			f.Prefix = true
		}
	}

	// Mixed queries may also match a reading.
	for _, k := range e.Kana {
		if folding.LowerString(k) == q {
			f.ExactReading = true
			break
		}
	}
}

func matchKana(f *Features, e blob.Entry, q string) {
	for _, k := range e.Kana {
		k = folding.LowerString(k)
		if k == q {
			f.ExactReading = true
			break
		}
		if strings.HasPrefix(k, q) {
			f.Prefix = true
		}
		if d := EditDistance(k, q); d <= maxEditDistance && f.EditDistance == 0 {
			f.EditDistance = d
		}
	}
}

// matchGlosses matches the query against each semicolon separated clause of
// each gloss. Matching stops once the first clause of the first gloss
// matches.
func matchGlosses(f *Features, e blob.Entry, q string) {
	toQuery := "to " + q

	for i, g := range e.Glosses {
		for j, clause := range strings.Split(folding.LowerString(g), ";") {
			clause = strings.TrimSpace(clause)
			first := i == 0 && j == 0

			// Whole clause, including verb glosses like "to eat".
			if clause == q || clause == toQuery {
				f.GlossHit = true
				f.ExactEnglish = true
				f.FirstGloss = f.FirstGloss || first
				break
			}

			words := strings.Fields(clause)
			if len(words) > 0 && trimWord(words[0]) == q {
				f.GlossHit = true
				if len(words) == 1 {
					f.ExactEnglish = true
				}
				f.FirstGloss = f.FirstGloss || first
				break
			}

			if len(words) >= 2 && words[0] == "to" && trimWord(words[1]) == q {
				f.GlossHit = true
				if len(words) == 2 {
					f.ExactEnglish = true
				}
				f.FirstGloss = f.FirstGloss || first
				break
			}

			for _, w := range words {
				if trimWord(w) == q {
					f.GlossHit = true
					break
				}
			}
		}

		if f.FirstGloss {
			return
		}
	}
}

// trimWord removes leading and trailing non-alphabetic runes from w.
func trimWord(w string) string {
	return strings.TrimFunc(w, func(r rune) bool {
		return !isAlphabetic(r)
	})
}

func isAlphabetic(r rune) bool {
	return unicode.IsLetter(r) || unicode.In(r, unicode.Nl, unicode.Other_Alphabetic)
}

// EditDistance returns a capped position-wise distance between a and b. It
// is not the Levenshtein distance. Equal strings have distance 0. Strings
// whose byte lengths differ by more than 2 have distance 3. Otherwise the
// distance is the number of rune positions that differ plus the difference in
// rune length, capped at 3.
func EditDistance(a, b string) uint8 {
	if a == b {
		return 0
	}
	if abs(len(a)-len(b)) > 2 {
		return 3
	}

	ar, br := []rune(a), []rune(b)
	if len(ar) < len(br) {
		ar, br = br, ar
	}
	d := len(ar) - len(br)
	for i := range br {
		if ar[i] != br[i] {
			d++
		}
	}
	//nolint:gosec // d is capped at 3.
	return uint8(min(d, 3))
}

// anyShorter reports whether any of the forms has at most n runes.
func anyShorter(forms []string, n int) bool {
	for _, s := range forms {
		if utf8.RuneCountInString(s) <= n {
			return true
		}
	}
	return false
}

// isSimpleForm reports whether the entry is an i-adjective written with a
// trailing い or has a short kanji or kana form.
func isSimpleForm(e blob.Entry) bool {
	adjI := false
	for _, p := range e.POS {
		if strings.Contains(p, "adj-i") {
			adjI = true
			break
		}
	}
	if adjI {
		for _, k := range e.Kanji {
			if strings.HasSuffix(k, "い") {
				return true
			}
		}
	}
	return anyShorter(e.Kanji, 2) || anyShorter(e.Kana, 4)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
