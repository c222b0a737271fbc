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

// Package japandict implements a Japanese-English dictionary lookup and
// ranking engine in pure Go.
//
// A dictionary is a packed binary blob (see package blob) holding every
// entry's kanji forms, kana readings, English glosses and part-of-speech
// tags. Entries are decoded from the blob on demand. Three inverted indices
// over glosses, kanji forms and kana forms are built once after the blob is
// opened and published atomically. Until they are published, searches fall
// back to scanning the start of the dictionary.
//
// Queries may be written in kanji, kana or English. Results are scored from
// a fixed set of match features and ranked deterministically:
//
//	d, err := japandict.Open("jmdict.jdb", nil)
//	if err != nil {
//		return err
//	}
//	defer d.Close()
//
//	if err := d.BuildIndex(); err != nil {
//		return err
//	}
//	for _, e := range d.Search("dog") {
//		fmt.Println(e.Kanji, e.Kana, e.Glosses)
//	}
package japandict
