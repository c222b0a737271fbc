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

// Package index implements the in-memory inverted indices used to find
// dictionary search candidates.
//
// Three indices are built from a dictionary:
//  1. The gloss index maps lower cased English glosses, gloss clauses and
//     gloss words to entries.
//  2. The kanji index maps kanji forms to entries.
//  3. The kana index maps kana forms to entries.
//
// Keys are stored in a patricia trie so that both exact and prefix lookups
// are cheap. Each key maps to a roaring bitmap of entry ids which is always
// sorted and free of duplicates. Indices are immutable once built and are
// safe for concurrent use.
package index
