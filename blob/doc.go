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

// Package blob implements reading and writing packed japandict dictionary
// data.
//
// A packed dictionary is made of four tables:
//  1. StringPool: null terminated utf-8 strings.
//  2. StringOffsets: little-endian uint32 offsets into StringPool, one per
//     distinct string. Strings are grouped by category in the order kanji
//     forms, kana forms, glosses, part-of-speech tags, entry ids.
//  3. EntryBlob: entry records.
//  4. EntryOffsets: little-endian uint32 offsets into EntryBlob, one per
//     entry.
//
// Each entry record is laid out as follows:
//  1. A 4 byte little-endian index into the entry id category.
//  2. Four 1 byte counts: kanji forms, kana forms, glosses and
//     part-of-speech tags.
//  3. A 1 byte common flag.
//  4. The 4 byte little-endian StringOffsets indices of each kanji form, kana
//     form, gloss and part-of-speech tag in that order. Indices already
//     include the size of the preceding categories.
//
// Blobs are immutable. Decoded entries hold string views into the pool and
// never copy string data.
package blob
