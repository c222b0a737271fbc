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

// Package query classifies dictionary search queries by script.
package query

import (
	"github.com/ianlewis/go-japandict/internal/folding"
)

// Class is the script regime of a query.
type Class int

const (
	// English is a query with no kanji or kana.
	English Class = iota

	// Kana is a query containing hiragana or katakana but no kanji.
	Kana

	// Kanji is a query containing at least one kanji.
	Kanji
)

// String implements [fmt.Stringer.String].
func (c Class) String() string {
	switch c {
	case English:
		return "english"
	case Kana:
		return "kana"
	case Kanji:
		return "kanji"
	default:
		return "unknown"
	}
}

// Classify returns the class of the query. Kanji takes precedence over kana
// so queries with okurigana are classified as Kanji.
func Classify(q string) Class {
	hasKana := false
	for _, r := range q {
		if IsKanji(r) {
			return Kanji
		}
		if IsKana(r) {
			hasKana = true
		}
	}
	if hasKana {
		return Kana
	}
	return English
}

// IsKanji reports whether r is in the CJK unified ideographs block.
func IsKanji(r rune) bool {
	return '\u4E00' <= r && r <= '\u9FAF'
}

// IsKana reports whether r is in the hiragana or katakana blocks.
func IsKana(r rune) bool {
	return ('\u3040' <= r && r <= '\u309F') || ('\u30A0' <= r && r <= '\u30FF')
}

// Normalize returns the query with leading and trailing white space removed,
// mapped to lower case.
func Normalize(q string) string {
	return folding.Normalize(q)
}
