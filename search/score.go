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

// Feature weights.
const (
	WeightExactEnglish = 250
	WeightFirstGloss   = 200
	WeightExactForm    = 100
	WeightExactReading = 95
	WeightHasCommon    = 50
	WeightPrefix       = 30
	WeightSimpleForm   = 25
	WeightGlossHit     = 10
	WeightShorterLemma = 5

	// WeightEditDistance is subtracted per unit of edit distance.
	WeightEditDistance = 2
)

// Score reduces features to a score. Higher is better.
func Score(f Features) int {
	score := 0
	if f.ExactEnglish {
		score += WeightExactEnglish
	}
	if f.FirstGloss {
		score += WeightFirstGloss
	}
	if f.ExactForm {
		score += WeightExactForm
	}
	if f.ExactReading {
		score += WeightExactReading
	}
	if f.HasCommon {
		score += WeightHasCommon
	}
	if f.Prefix {
		score += WeightPrefix
	}
	if f.SimpleForm {
		score += WeightSimpleForm
	}
	// A first gloss hit is already weighted above.
	if f.GlossHit && !f.FirstGloss {
		score += WeightGlossHit
	}
	if f.ShorterLemma {
		score += WeightShorterLemma
	}
	score -= WeightEditDistance * int(f.EditDistance)
	return score
}
