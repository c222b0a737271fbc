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

package japandict

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"

	"github.com/ianlewis/go-japandict/blob"
	"github.com/ianlewis/go-japandict/index"
	"github.com/ianlewis/go-japandict/internal/logger"
	"github.com/ianlewis/go-japandict/search"
)

// ErrClosed is returned when using a Dictionary after Close.
var ErrClosed = errors.New("dictionary closed")

// Entry is a decoded dictionary entry.
type Entry = blob.Entry

// Options are options for opening a Dictionary.
type Options struct {
	// Logger receives index build and search logs. Defaults to a logger
	// prefixed with "japandict" at the global log level.
	Logger *log.Logger

	// Registerer registers the dictionary's Prometheus metrics. Metrics are
	// not registered if nil.
	Registerer prometheus.Registerer

	// ParallelBuild builds the gloss, kanji and kana indices concurrently.
	ParallelBuild bool
}

// DefaultOptions are the default options for a Dictionary.
var DefaultOptions = &Options{
	ParallelBuild: true,
}

// Dictionary is a searchable Japanese-English dictionary. It is safe for
// concurrent use. Searches made before BuildIndex completes scan the start
// of the dictionary instead of using the indices.
type Dictionary struct {
	// mu is held for reading while the store is in use and for writing while
	// the store is released.
	mu     sync.RWMutex
	store  *blob.Blob
	closer io.Closer

	indices atomic.Pointer[index.Indices]
	closed  atomic.Bool
	builds  singleflight.Group

	parallel bool
	log      *log.Logger
	metrics  *metrics
}

// Open opens the packed dictionary file at path. If opts is nil,
// DefaultOptions is used. The indices are not built until BuildIndex or
// BuildIndexAsync is called.
func Open(path string, opts *Options) (*Dictionary, error) {
	f, err := blob.Open(path)
	if err != nil {
		return nil, err
	}
	d := New(f.Blob, opts)
	d.closer = f
	d.log.Debug("opened dictionary", "path", path, "words", f.Len())
	return d, nil
}

// New returns a Dictionary over an in-memory blob. If opts is nil,
// DefaultOptions is used.
func New(b *blob.Blob, opts *Options) *Dictionary {
	if opts == nil {
		opts = DefaultOptions
	}
	l := opts.Logger
	if l == nil {
		l = logger.New("japandict")
	}
	return &Dictionary{
		store:    b,
		parallel: opts.ParallelBuild,
		log:      l,
		metrics:  newMetrics(opts.Registerer),
	}
}

// Len returns the number of entries in the dictionary.
func (d *Dictionary) Len() int {
	return d.store.Len()
}

// Counts returns the dictionary's string and word counts.
func (d *Dictionary) Counts() blob.Counts {
	return d.store.Counts()
}

// Entry decodes the i-th entry. It panics if i is out of range.
func (d *Dictionary) Entry(i int) Entry {
	return d.store.Entry(i)
}

// Indexed reports whether the indices have been published.
func (d *Dictionary) Indexed() bool {
	return d.indices.Load() != nil
}

// Indices returns the published indices or nil if they have not been built.
func (d *Dictionary) Indices() *index.Indices {
	return d.indices.Load()
}

// BuildIndex builds the gloss, kanji and kana indices and publishes them
// together. Concurrent calls share a single build. Calling it again after a
// build completes rebuilds and republishes identical indices.
func (d *Dictionary) BuildIndex() error {
	_, err, _ := d.builds.Do("index", func() (any, error) {
		return nil, d.buildIndex()
	})
	return err
}

func (d *Dictionary) buildIndex() error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed.Load() {
		return ErrClosed
	}

	start := time.Now()
	ix, err := index.Build(d.store, d.parallel)
	if err != nil {
		return fmt.Errorf("building index: %w", err)
	}
	elapsed := time.Since(start)

	d.indices.Store(ix)
	d.metrics.indexBuild.Observe(elapsed.Seconds())
	d.log.Info("built index",
		"words", d.store.Len(),
		"gloss_keys", ix.Gloss.Len(),
		"kanji_keys", ix.Kanji.Len(),
		"kana_keys", ix.Kana.Len(),
		"parallel", d.parallel,
		"elapsed", elapsed,
	)
	return nil
}

// BuildIndexAsync builds the indices in a new goroutine. The returned
// channel receives the result of BuildIndex and is then closed.
func (d *Dictionary) BuildIndexAsync() <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		if err := d.BuildIndex(); err != nil {
			d.log.Error("building index", "err", err)
			done <- err
			return
		}
		done <- nil
	}()
	return done
}

// Search returns at most search.MaxResults entries ranked by relevance to
// q. Empty and whitespace-only queries return nil.
func (d *Dictionary) Search(q string) []Entry {
	results := d.Lookup(q)
	if len(results) == 0 {
		return nil
	}
	entries := make([]Entry, len(results))
	for i, r := range results {
		entries[i] = r.Entry
	}
	return entries
}

// Lookup is like Search but returns each entry's score and match features.
// It returns nil after Close.
func (d *Dictionary) Lookup(q string) []search.Result {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed.Load() {
		return nil
	}

	start := time.Now()
	results, src := search.Search(d.store, d.indices.Load(), q)

	d.metrics.searches.WithLabelValues(src.String()).Inc()
	if src != search.SourceNone {
		d.metrics.searchDuration.Observe(time.Since(start).Seconds())
		d.metrics.searchResults.Observe(float64(len(results)))
	}
	d.log.Debug("search", "query", q, "source", src, "results", len(results))
	return results
}

// Close releases the dictionary file. It waits for running searches and
// index builds to finish. Entries returned by a Dictionary opened with Open
// must not be used after Close.
func (d *Dictionary) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed.Swap(true) {
		return nil
	}
	d.indices.Store(nil)
	if d.closer != nil {
		if err := d.closer.Close(); err != nil {
			return fmt.Errorf("closing dictionary: %w", err)
		}
	}
	return nil
}
