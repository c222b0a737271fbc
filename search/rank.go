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
	"cmp"
	"slices"
	"strings"

	"github.com/ianlewis/go-japandict/blob"
)

const (
	// MaxResults is the maximum number of ranked results.
	MaxResults = 50

	// noFormLength is the length used for entries without kanji or kana.
	noFormLength = 100
)

// Rank sorts results in place by descending score and returns at most
// MaxResults of them. Ties are broken by common entries first, then the
// shortest form in bytes, then the first kanji or kana form.
func Rank(results []Result) []Result {
	slices.SortStableFunc(results, compareResults)
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}

func compareResults(a, b Result) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	if a.Entry.Common != b.Entry.Common {
		if a.Entry.Common {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(shortestForm(a.Entry), shortestForm(b.Entry)); c != 0 {
		return c
	}
	return strings.Compare(headword(a.Entry), headword(b.Entry))
}

// shortestForm returns the byte length of the entry's shortest kanji or kana
// form.
func shortestForm(e blob.Entry) int {
	n := -1
	for _, forms := range [][]string{e.Kanji, e.Kana} {
		for _, s := range forms {
			if n < 0 || len(s) < n {
				n = len(s)
			}
		}
	}
	if n < 0 {
		return noFormLength
	}
	return n
}

// headword returns the entry's first kanji form, or its first kana form if
// it has no kanji.
func headword(e blob.Entry) string {
	if len(e.Kanji) > 0 {
		return e.Kanji[0]
	}
	if len(e.Kana) > 0 {
		return e.Kana[0]
	}
	return ""
}
