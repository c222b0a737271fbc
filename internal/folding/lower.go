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

// Package folding implements the text folding used to build index keys and
// normalize queries.
package folding

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

// Lower returns a [transform.Transformer] that maps text to lower case using
// the full Unicode case mappings. A Transformer is not safe for concurrent
// use so a new one is returned on each call.
func Lower() transform.Transformer {
	return cases.Lower(language.Und)
}

// LowerString returns s mapped to lower case.
func LowerString(s string) string {
	// Fast path for ascii lower case and kana/kanji-only strings, which make
	// up most index keys.
	if isLower(s) {
		return s
	}
	folded, _, err := transform.String(Lower(), s)
	if err != nil {
		return strings.ToLower(s)
	}
	return folded
}

// Normalize removes leading and trailing white space from s and maps it to
// lower case.
func Normalize(s string) string {
	return LowerString(strings.TrimSpace(s))
}

// isLower reports whether s contains no rune that could change when lower
// cased.
func isLower(s string) bool {
	for _, r := range s {
		switch {
		case 'A' <= r && r <= 'Z':
			return false
		case r >= 0x80 && !isCaseless(r):
			return false
		}
	}
	return true
}

// isCaseless reports whether r is in one of the Japanese script blocks, none
// of which have case mappings.
func isCaseless(r rune) bool {
	return (0x3000 <= r && r <= 0x30FF) || // CJK symbols, hiragana, katakana
		(0x4E00 <= r && r <= 0x9FFF) // CJK unified ideographs
}
