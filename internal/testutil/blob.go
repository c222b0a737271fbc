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
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-japandict/blob"
)

// MakeBlobOptions are options for MakeTempBlob.
type MakeBlobOptions struct {
	// Ext is an optional file extension for the dictionary file. Defaults to
	// '.jdb.dz' if DictZip is true. Otherwise '.jdb'.
	Ext string

	// DictZip indicates that the file should be compressed with DictZip.
	DictZip bool
}

// GetExt returns the file extension to use.
func (o *MakeBlobOptions) GetExt() string {
	if o != nil {
		if o.Ext != "" {
			return o.Ext
		}
		if o.DictZip {
			return ".jdb.dz"
		}
	}
	return ".jdb"
}

// MakeBlob creates an in-memory packed dictionary from entries.
func MakeBlob(t testing.TB, entries []blob.Entry) *blob.Blob {
	t.Helper()

	w := blob.NewWriter()
	for _, e := range entries {
		if err := w.Add(e); err != nil {
			t.Fatalf("adding entry %q: %v", e.ID, err)
		}
	}
	return w.Blob()
}

// MakeTempBlob writes a packed dictionary file to a temporary directory and
// returns its path. The file is removed when the test completes.
func MakeTempBlob(t testing.TB, entries []blob.Entry, opts *MakeBlobOptions) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "jmdict"+opts.GetExt())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	b := MakeBlob(t, entries)
	if opts != nil && opts.DictZip {
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := b.WriteTo(z); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	} else if _, err := b.WriteTo(f); err != nil {
		t.Fatal(err)
	}

	return path
}
