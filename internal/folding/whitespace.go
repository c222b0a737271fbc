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

package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// spaceFolder is a [transform.Transformer] that drops leading and trailing
// white space and collapses each internal run of white space, including
// ideographic spaces, to one ASCII space.
type spaceFolder struct {
	// seenText is set once a non-space rune has been written.
	seenText bool

	// pending is set while inside a run of white space that follows text.
	pending bool
}

// Whitespace returns a [transform.Transformer] that folds white space.
func Whitespace() transform.Transformer {
	return &spaceFolder{}
}

// FoldWhitespace returns s with leading and trailing white space removed and
// internal white space runs replaced by a single space.
func FoldWhitespace(s string) string {
	folded, _, err := transform.String(Whitespace(), s)
	if err != nil {
		return s
	}
	return folded
}

// Transform implements [transform.Transformer.Transform].
func (f *spaceFolder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if unicode.IsSpace(r) {
			f.pending = f.seenText
			nSrc += size
			continue
		}

		need := size
		if f.pending {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if f.pending {
			dst[nDst] = ' '
			nDst++
			f.pending = false
		}
		// Invalid bytes are copied through unchanged.
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
		f.seenText = true
	}
	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (f *spaceFolder) Reset() {
	*f = spaceFolder{}
}
