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

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/rodaine/table"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ianlewis/go-japandict"
	"github.com/ianlewis/go-japandict/internal/config"
	"github.com/ianlewis/go-japandict/search"
)

// writeResults writes search results to w in the given format. Scores and
// features are only written if explain is true.
func writeResults(w io.Writer, format string, results []search.Result, explain bool) error {
	var v any = results
	if !explain {
		entries := make([]japandict.Entry, len(results))
		for i, r := range results {
			entries[i] = r.Entry
		}
		v = entries
	}

	var err error
	switch format {
	case config.FormatJSON:
		enc := gojson.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(v)
	case config.FormatMsgpack:
		err = msgpack.NewEncoder(w).Encode(v)
	default:
		err = writeTable(w, results, explain)
	}
	if err != nil {
		return fmt.Errorf("%w: writing results: %w", ErrJdutil, err)
	}
	return nil
}

func writeTable(w io.Writer, results []search.Result, explain bool) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}

	headers := []any{"Kanji", "Kana", "Gloss", "POS", "Common"}
	if explain {
		headers = append(headers, "Score", "Features")
	}

	tbl := table.New(headers...).WithWriter(w)
	for _, r := range results {
		e := r.Entry
		row := []any{
			strings.Join(e.Kanji, ", "),
			strings.Join(e.Kana, ", "),
			strings.Join(e.Glosses, " / "),
			strings.Join(e.POS, ", "),
			common(e.Common),
		}
		if explain {
			row = append(row, r.Score, strings.Join(featureNames(r.Features), " "))
		}
		tbl.AddRow(row...)
	}
	tbl.Print()
	return nil
}

func common(c bool) string {
	if c {
		return "*"
	}
	return ""
}

// featureNames returns the names of the features that are set.
func featureNames(f search.Features) []string {
	var names []string
	for _, b := range []struct {
		name string
		set  bool
	}{
		{"exact_english", f.ExactEnglish},
		{"first_gloss", f.FirstGloss},
		{"exact_form", f.ExactForm},
		{"exact_reading", f.ExactReading},
		{"has_common", f.HasCommon},
		{"prefix", f.Prefix},
		{"simple_form", f.SimpleForm},
		{"gloss_hit", f.GlossHit},
		{"shorter_lemma", f.ShorterLemma},
	} {
		if b.set {
			names = append(names, b.name)
		}
	}
	if f.EditDistance > 0 {
		names = append(names, "edit_distance="+strconv.Itoa(int(f.EditDistance)))
	}
	return names
}
