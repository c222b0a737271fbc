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

// Package search implements candidate selection, scoring and ranking of
// dictionary entries for a query.
//
// A query is classified by script (see package query) and used to collect
// candidate entries from the indices built by package index. When the
// indices yield nothing, a bounded prefix of the dictionary is scanned
// instead so that near misses on readings can still be found. Each candidate
// is scored from a fixed set of match features and the results are ranked
// deterministically.
package search

import (
	"strings"

	"github.com/ianlewis/go-japandict/blob"
	"github.com/ianlewis/go-japandict/index"
	"github.com/ianlewis/go-japandict/query"
)

// Store is a source of dictionary entries numbered [0, Len()).
type Store interface {
	Len() int
	Entry(i int) blob.Entry
}

// Result is a scored dictionary entry.
type Result struct {
	Entry    blob.Entry `json:"entry" msgpack:"entry"`
	Score    int        `json:"score" msgpack:"score"`
	Features Features   `json:"features" msgpack:"features"`
}

// Source is where a search found its candidates.
type Source int

const (
	// SourceNone means the query was empty and nothing was searched.
	SourceNone Source = iota

	// SourceIndex means the candidates came from the indices.
	SourceIndex

	// SourceScan means the indices yielded no candidates and the start of
	// the dictionary was scanned.
	SourceScan
)

// String implements [fmt.Stringer.String].
func (s Source) String() string {
	switch s {
	case SourceNone:
		return "none"
	case SourceIndex:
		return "index"
	case SourceScan:
		return "scan"
	default:
		return "unknown"
	}
}

// Search returns the ranked results for the query q along with where the
// candidates were found. Empty and whitespace-only queries return no results.
// ix may be nil, in which case the scan is always used.
func Search(s Store, ix *index.Indices, q string) ([]Result, Source) {
	if strings.TrimSpace(q) == "" {
		return nil, SourceNone
	}

	c := query.Classify(q)
	nq := query.Normalize(q)

	var results []Result
	if ids := Candidates(ix, nq, c); len(ids) > 0 {
		for _, id := range ids {
			if r, ok := evaluate(s.Entry(int(id)), nq, c); ok {
				results = append(results, r)
			}
		}
		return Rank(results), SourceIndex
	}

	for i := range min(s.Len(), ScanLimit) {
		if r, ok := evaluate(s.Entry(i), nq, c); ok {
			results = append(results, r)
			if len(results) >= MaxScanMatches {
				break
			}
		}
	}
	return Rank(results), SourceScan
}
