// Copyright 2024 The Hayadict Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hayadict

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"

	"github.com/hayalese/hayadict/parser"
	"github.com/hayalese/hayadict/search"
)

// Entry is one parsed dictionary entry.
type Entry = parser.Entry

// Warning is a non-fatal parse anomaly.
type Warning = parser.Warning

// Dictionary is a parsed Hayalese dictionary. It owns the entry sequence and
// its search index; there is no shared or package-level state.
type Dictionary struct {
	entries  []*Entry
	warnings []Warning

	index *search.Index
}

// Parse parses a dictionary document. The returned Dictionary holds the
// entries in document order along with any parse warnings. An empty or
// whitespace-only document yields a Dictionary with no entries and a single
// document-level warning.
func Parse(raw string) *Dictionary {
	entries, warnings := parser.Parse(raw)
	return &Dictionary{
		entries:  entries,
		warnings: warnings,
	}
}

// ParseReader parses a dictionary document read from r.
func ParseReader(r io.Reader) (*Dictionary, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return Parse(string(b)), nil
}

// New returns a Dictionary over an existing entry sequence, such as one
// loaded from a JSON export.
func New(entries []*Entry) *Dictionary {
	return &Dictionary{
		entries: entries,
	}
}

// Open parses the dictionary document at the given path. Documents with a
// .gz extension are decompressed with gzip; documents with a .dz extension
// are decompressed with dictzip.
func Open(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		defer z.Close()
		return ParseReader(z)
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		defer z.Close()
		return ParseReader(z)
	default:
		return ParseReader(f)
	}
}

// Entries returns the dictionary's entries in document order.
func (d *Dictionary) Entries() []*Entry {
	return d.entries
}

// Warnings returns the warnings produced while parsing.
func (d *Dictionary) Warnings() []Warning {
	return d.warnings
}

// WordCount returns the number of entries.
func (d *Dictionary) WordCount() int {
	return len(d.entries)
}

// Index returns the dictionary's search index, building it on first use.
func (d *Dictionary) Index() *search.Index {
	if d.index == nil {
		d.index = search.New(d.entries)
	}
	return d.index
}

// Search returns the entries matching term under the given mode, in document
// order.
func (d *Dictionary) Search(term string, mode search.Mode) ([]*Entry, error) {
	entries, err := d.Index().Lookup(term, mode)
	if err != nil {
		return nil, fmt.Errorf("searching dictionary: %w", err)
	}
	return entries, nil
}
