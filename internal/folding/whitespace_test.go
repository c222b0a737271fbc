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
	"strings"
	"testing"

	"golang.org/x/text/transform"
)

func TestFoldWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    " \t\n　",
			expected: "",
		},
		{
			name:     "no folding",
			input:    "to eat",
			expected: "to eat",
		},
		{
			name:     "leading and trailing",
			input:    "  to eat\n",
			expected: "to eat",
		},
		{
			name:     "internal runs",
			input:    "to \t live  on",
			expected: "to live on",
		},
		{
			name:     "ideographic space",
			input:    "犬　小屋",
			expected: "犬 小屋",
		},
		{
			name:     "invalid utf8",
			input:    "a \xff  b",
			expected: "a \xff b",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if got := FoldWhitespace(test.input); got != test.expected {
				t.Fatalf("FoldWhitespace(%q): want: %q, got: %q", test.input, test.expected, got)
			}
		})
	}
}

// TestWhitespace_reader tests folding across small reads.
func TestWhitespace_reader(t *testing.T) {
	t.Parallel()

	input := strings.Repeat("sexagenary   cycle 　", 200)
	r := transform.NewReader(strings.NewReader(input), Whitespace())

	var b strings.Builder
	buf := make([]byte, 7)
	for {
		n, err := r.Read(buf)
		b.Write(buf[:n])
		if err != nil {
			break
		}
	}

	want := strings.TrimSuffix(strings.Repeat("sexagenary cycle ", 200), " ")
	if got := b.String(); got != want {
		t.Fatalf("Whitespace: want: %q, got: %q", want, got)
	}
}
