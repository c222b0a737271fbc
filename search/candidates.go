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
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/ianlewis/go-japandict/index"
	"github.com/ianlewis/go-japandict/query"
)

const (
	// MaxCandidates is the maximum number of candidates taken from the
	// indices.
	MaxCandidates = 1000

	// ScanLimit is the number of entries from the start of the dictionary
	// evaluated when the indices yield no candidates.
	//
	// NOTE: fuzzy matches beyond the first ScanLimit entries are never found.
	ScanLimit = 5000

	// MaxScanMatches is the number of matches after which a scan stops.
	MaxScanMatches = 200
)

// Candidates returns the ids of entries in the indices whose keys equal or
// start with the normalized query q, in ascending order and capped at
// MaxCandidates. For English queries prefix matches are only used when there
// is no exact match. A nil ix yields no candidates.
func Candidates(ix *index.Indices, q string, c query.Class) []uint32 {
	if ix == nil || q == "" {
		return nil
	}

	// The walks below only fail when their callback does. collect never
	// returns an error so the results of VisitPrefix are discarded.
	var lists []*roaring.Bitmap
	collect := func(_ string, ids *roaring.Bitmap) error {
		lists = append(lists, ids)
		return nil
	}

	switch c {
	case query.English:
		if ids := ix.Gloss.Get(q); ids != nil && !ids.IsEmpty() {
			lists = append(lists, ids)
			break
		}
		_ = ix.Gloss.VisitPrefix(q, func(key string, ids *roaring.Bitmap) error {
			if key == q {
				return nil
			}
			return collect(key, ids)
		})
	case query.Kanji:
		_ = ix.Kanji.VisitPrefix(q, collect)
	case query.Kana:
		_ = ix.Kana.VisitPrefix(q, collect)
	}

	if len(lists) == 0 {
		return nil
	}

	var ids []uint32
	it := roaring.FastOr(lists...).Iterator()
	for it.HasNext() && len(ids) < MaxCandidates {
		ids = append(ids, it.Next())
	}
	return ids
}
