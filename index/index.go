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
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Index is an inverted index from string keys to entry ids.
type Index struct {
	trie *patricia.Trie
	keys int
}

func newIndex() *Index {
	return &Index{
		trie: patricia.NewTrie(),
	}
}

// add registers id under key. Empty keys are ignored.
func (x *Index) add(key string, id uint32) {
	if key == "" {
		return
	}
	p := patricia.Prefix(key)
	if item := x.trie.Get(p); item != nil {
		//nolint:forcetypeassert // only bitmaps are inserted.
		item.(*roaring.Bitmap).Add(id)
		return
	}
	x.trie.Insert(p, roaring.BitmapOf(id))
	x.keys++
}

// optimize compacts posting lists after the index has been populated.
func (x *Index) optimize() {
	_ = x.trie.Visit(func(_ patricia.Prefix, item patricia.Item) error {
		//nolint:forcetypeassert // only bitmaps are inserted.
		item.(*roaring.Bitmap).RunOptimize()
		return nil
	})
}

// Len returns the number of keys in the index.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return x.keys
}

// Get returns the entry ids stored under key or nil if there are none. The
// returned bitmap must not be modified.
func (x *Index) Get(key string) *roaring.Bitmap {
	if x == nil || key == "" {
		return nil
	}
	if item := x.trie.Get(patricia.Prefix(key)); item != nil {
		//nolint:forcetypeassert // only bitmaps are inserted.
		return item.(*roaring.Bitmap)
	}
	return nil
}

// VisitPrefix calls fn for each key that starts with prefix, including prefix
// itself. Keys are visited in no particular order. The bitmaps passed to fn
// must not be modified. If fn returns an error the walk stops and the error
// is returned.
func (x *Index) VisitPrefix(prefix string, fn func(key string, ids *roaring.Bitmap) error) error {
	if x == nil {
		return nil
	}
	//nolint:wrapcheck // errors come from fn.
	return x.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		//nolint:forcetypeassert // only bitmaps are inserted.
		return fn(string(p), item.(*roaring.Bitmap))
	})
}

// Postings returns a copy of the whole index as a map of keys to sorted entry
// ids.
func (x *Index) Postings() map[string][]uint32 {
	m := map[string][]uint32{}
	if x == nil {
		return m
	}
	// The callback never fails.
	_ = x.trie.Visit(func(p patricia.Prefix, item patricia.Item) error {
		//nolint:forcetypeassert // only bitmaps are inserted.
		m[string(p)] = item.(*roaring.Bitmap).ToArray()
		return nil
	})
	return m
}
