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

package index_test

import (
	"slices"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-japandict/index"
)

func TestIndex_Get(t *testing.T) {
	t.Parallel()

	x, err := index.BuildKana(entries{
		{ID: "1", Kana: []string{"いぬ"}},
		{ID: "2", Kana: []string{"いぬごや"}},
	})
	if err != nil {
		t.Fatalf("BuildKana: %v", err)
	}

	tests := []struct {
		name     string
		key      string
		expected []uint32
	}{
		{
			name:     "exact",
			key:      "いぬ",
			expected: []uint32{0},
		},
		{
			name:     "prefix only",
			key:      "い",
			expected: nil,
		},
		{
			name:     "empty",
			key:      "",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var got []uint32
			if ids := x.Get(test.key); ids != nil {
				got = ids.ToArray()
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Get(%q) (-want, +got):\n%s", test.key, diff)
			}
		})
	}
}

func TestIndex_VisitPrefix(t *testing.T) {
	t.Parallel()

	x, err := index.BuildKana(entries{
		{ID: "1", Kana: []string{"いぬ"}},
		{ID: "2", Kana: []string{"いぬごや"}},
		{ID: "3", Kana: []string{"こいぬ"}},
	})
	if err != nil {
		t.Fatalf("BuildKana: %v", err)
	}

	var keys []string
	if err := x.VisitPrefix("いぬ", func(key string, _ *roaring.Bitmap) error {
		keys = append(keys, key)
		return nil
	}); err != nil {
		t.Fatalf("VisitPrefix: %v", err)
	}
	slices.Sort(keys)

	if diff := cmp.Diff([]string{"いぬ", "いぬごや"}, keys); diff != "" {
		t.Fatalf("VisitPrefix (-want, +got):\n%s", diff)
	}
}

func TestIndex_nil(t *testing.T) {
	t.Parallel()

	var x *index.Index
	if got := x.Len(); got != 0 {
		t.Errorf("Len: want: 0, got: %d", got)
	}
	if got := x.Get("いぬ"); got != nil {
		t.Errorf("Get: want: nil, got: %v", got)
	}
	if err := x.VisitPrefix("いぬ", func(string, *roaring.Bitmap) error {
		t.Error("VisitPrefix: unexpected call")
		return nil
	}); err != nil {
		t.Errorf("VisitPrefix: %v", err)
	}
}
