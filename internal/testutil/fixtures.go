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

package testutil

import (
	"github.com/ianlewis/go-japandict/blob"
)

// Entries returns a small dictionary used across package tests. Entries are
// numbered by their position in the returned slice.
func Entries() []blob.Entry {
	return []blob.Entry{
		{
			ID:      "1000000",
			Kanji:   []string{"犬"},
			Kana:    []string{"いぬ"},
			Glosses: []string{"dog"},
			POS:     []string{"n"},
			Common:  true,
		},
		{
			ID:      "1000010",
			Kanji:   []string{"犬小屋"},
			Kana:    []string{"いぬごや"},
			Glosses: []string{"kennel", "doghouse"},
			POS:     []string{"n"},
		},
		{
			ID:      "1000020",
			Kanji:   []string{"子犬", "小犬"},
			Kana:    []string{"こいぬ"},
			Glosses: []string{"puppy"},
			POS:     []string{"n"},
			Common:  true,
		},
		{
			ID:      "1000030",
			Kanji:   []string{"認識票"},
			Kana:    []string{"にんしきひょう"},
			Glosses: []string{"dog tag; identification tag"},
			POS:     []string{"n"},
		},
		{
			ID:      "1000040",
			Kanji:   []string{"猫"},
			Kana:    []string{"ねこ"},
			Glosses: []string{"cat"},
			POS:     []string{"n"},
			Common:  true,
		},
		{
			ID:      "1000050",
			Kanji:   []string{"食べる", "喰べる"},
			Kana:    []string{"たべる"},
			Glosses: []string{"to eat", "to live on (e.g. a salary)"},
			POS:     []string{"v1", "vt"},
			Common:  true,
		},
		{
			ID:      "1000060",
			Kanji:   []string{"高い"},
			Kana:    []string{"たかい"},
			Glosses: []string{"high; tall", "expensive; costly"},
			POS:     []string{"adj-i"},
			Common:  true,
		},
		{
			ID:      "1000070",
			Kanji:   []string{"干支"},
			Kana:    []string{"えと"},
			Glosses: []string{"sexagenary cycle"},
			POS:     []string{"n"},
		},
		{
			ID:      "1000080",
			Kana:    []string{"ドア"},
			Glosses: []string{"door"},
			POS:     []string{"n"},
			Common:  true,
		},
		{
			ID:      "1000090",
			Kanji:   []string{"走る"},
			Kana:    []string{"はしる"},
			Glosses: []string{"to run", "to travel (movement of vehicles)"},
			POS:     []string{"v5r", "vi"},
			Common:  true,
		},
	}
}
