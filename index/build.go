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

package index

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ianlewis/go-japandict/blob"
	"github.com/ianlewis/go-japandict/internal/folding"
)

// ErrCorrupt indicates that an entry could not be decoded while building an
// index.
var ErrCorrupt = errors.New("corrupt dictionary")

// Store is a source of dictionary entries numbered [0, Len()).
type Store interface {
	Len() int
	Entry(i int) blob.Entry
}

// Indices holds the three dictionary indices. A nil *Indices is treated as a
// set of empty indices.
type Indices struct {
	Gloss *Index
	Kanji *Index
	Kana  *Index
}

// Build scans every entry in s and builds the gloss, kanji and kana indices.
// When parallel is true the three indices are built concurrently. Both modes
// produce identical indices.
func Build(s Store, parallel bool) (*Indices, error) {
	var ix Indices
	builders := []struct {
		dst   **Index
		build func(Store) (*Index, error)
	}{
		{&ix.Gloss, BuildGloss},
		{&ix.Kanji, BuildKanji},
		{&ix.Kana, BuildKana},
	}

	if !parallel {
		for _, b := range builders {
			x, err := b.build(s)
			if err != nil {
				return nil, err
			}
			*b.dst = x
		}
		return &ix, nil
	}

	var g errgroup.Group
	for _, b := range builders {
		g.Go(func() error {
			x, err := b.build(s)
			if err != nil {
				return err
			}
			*b.dst = x
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		//nolint:wrapcheck // errors are already wrapped by the builders.
		return nil, err
	}
	return &ix, nil
}

// BuildGloss builds the gloss index. Each gloss is lower cased and
// registered under the whole gloss, each of its words longer than one byte,
// each of its semicolon separated clauses and the first word of each clause
// if longer than one byte.
func BuildGloss(s Store) (*Index, error) {
	return build(s, "gloss", func(e blob.Entry, add func(string)) {
		for _, g := range e.Glosses {
			gloss := folding.Normalize(g)
			add(gloss)

			for _, w := range strings.Fields(gloss) {
				if len(w) > 1 {
					add(w)
				}
			}

			for _, c := range strings.Split(gloss, ";") {
				c = strings.TrimSpace(c)
				if c == "" {
					continue
				}
				add(c)
				if w := strings.Fields(c); len(w[0]) > 1 {
					add(w[0])
				}
			}
		}
	})
}

// BuildKanji builds the kanji index keyed by each literal kanji form.
func BuildKanji(s Store) (*Index, error) {
	return build(s, "kanji", func(e blob.Entry, add func(string)) {
		for _, k := range e.Kanji {
			add(k)
		}
	})
}

// BuildKana builds the kana index keyed by each literal kana form.
func BuildKana(s Store) (*Index, error) {
	return build(s, "kana", func(e blob.Entry, add func(string)) {
		for _, k := range e.Kana {
			add(k)
		}
	})
}

// build populates a new index with the keys returned for each entry. A panic
// while decoding an entry is returned as ErrCorrupt.
func build(s Store, name string, keys func(blob.Entry, func(string))) (x *Index, err error) {
	i := 0
	defer func() {
		if r := recover(); r != nil {
			x = nil
			err = fmt.Errorf("%w: building %s index: entry %d: %v", ErrCorrupt, name, i, r)
		}
	}()

	x = newIndex()
	for ; i < s.Len(); i++ {
		//nolint:gosec // entry counts are stored as uint32.
		id := uint32(i)
		keys(s.Entry(i), func(k string) {
			x.add(k, id)
		})
	}
	x.optimize()
	return x, nil
}
