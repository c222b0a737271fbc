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

package search_test

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-japandict/blob"
	"github.com/ianlewis/go-japandict/search"
)

func TestRank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		results  []search.Result
		expected []string
	}{
		{
			name: "score",
			results: []search.Result{
				{Entry: blob.Entry{ID: "a", Kana: []string{"あ"}}, Score: 10},
				{Entry: blob.Entry{ID: "b", Kana: []string{"い"}}, Score: 20},
			},
			expected: []string{"b", "a"},
		},
		{
			name: "common first",
			results: []search.Result{
				{Entry: blob.Entry{ID: "b", Kana: []string{"あ"}}, Score: 10},
				{Entry: blob.Entry{ID: "a", Kana: []string{"いいい"}, Common: true}, Score: 10},
			},
			expected: []string{"a", "b"},
		},
		{
			name: "shortest form",
			results: []search.Result{
				{Entry: blob.Entry{ID: "a", Kana: []string{"ドア"}}, Score: 10},
				{Entry: blob.Entry{ID: "b", Kanji: []string{"猫猫"}, Kana: []string{"ね"}}, Score: 10},
			},
			expected: []string{"b", "a"},
		},
		{
			name: "headword",
			results: []search.Result{
				{Entry: blob.Entry{ID: "a", Kanji: []string{"猫"}}, Score: 10},
				{Entry: blob.Entry{ID: "b", Kanji: []string{"犬"}}, Score: 10},
			},
			expected: []string{"b", "a"},
		},
		{
			name: "no forms last",
			results: []search.Result{
				{Entry: blob.Entry{ID: "a"}, Score: 10},
				{Entry: blob.Entry{ID: "b", Kana: []string{"いぬ"}}, Score: 10},
			},
			expected: []string{"b", "a"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, ids(search.Rank(test.results))); diff != "" {
				t.Fatalf("Rank (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestRank_order tests that ranking does not depend on input order.
func TestRank_order(t *testing.T) {
	t.Parallel()

	common := search.Result{Entry: blob.Entry{ID: "common", Kana: []string{"いぬいぬ"}, Common: true}, Score: 50}
	other := search.Result{Entry: blob.Entry{ID: "other", Kana: []string{"い"}}, Score: 50}

	for _, results := range [][]search.Result{
		{common, other},
		{other, common},
	} {
		if diff := cmp.Diff([]string{"common", "other"}, ids(search.Rank(results))); diff != "" {
			t.Fatalf("Rank (-want, +got):\n%s", diff)
		}
	}
}

func TestRank_truncate(t *testing.T) {
	t.Parallel()

	var results []search.Result
	for i := range 60 {
		results = append(results, search.Result{
			Entry: blob.Entry{ID: strconv.Itoa(i)},
			Score: i,
		})
	}

	ranked := search.Rank(results)
	if want, got := search.MaxResults, len(ranked); want != got {
		t.Fatalf("Rank: want: %d, got: %d", want, got)
	}
	if want, got := "59", ranked[0].Entry.ID; want != got {
		t.Fatalf("Rank[0]: want: %q, got: %q", want, got)
	}
}
