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

// Package search implements lookup over a parsed entry sequence. An Index
// is built once from the entries and is read-only afterwards; it may be
// queried freely by concurrent readers.
package search

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hayalese/hayadict/internal/folding"
	"github.com/hayalese/hayadict/internal/index"
	"github.com/hayalese/hayadict/parser"
)

// indexedEntry pairs an entry with its folded headword and document
// position.
type indexedEntry struct {
	key   string
	pos   int
	entry *parser.Entry

	// foldedDefs are the entry's definitions in search key form.
	foldedDefs []string
}

// Key implements [index.Keyer].
func (e *indexedEntry) Key() string {
	return e.key
}

// Index answers word and definition queries over a parsed entry sequence.
// The index holds a read-only view of the entries; it does not own or
// modify them.
type Index struct {
	// entries is the indexed view in document order.
	entries []*indexedEntry

	// words is sorted by the folded headword.
	words *index.Index[*indexedEntry]
}

// New builds an index over the given entries. Word matching is
// case-insensitive; duplicate headwords are all retained and all returned
// by lookups.
func New(entries []*parser.Entry) *Index {
	indexed := make([]*indexedEntry, len(entries))
	for i, e := range entries {
		foldedDefs := make([]string, len(e.Definitions))
		for j, def := range e.Definitions {
			foldedDefs[j] = folding.Key(def)
		}
		indexed[i] = &indexedEntry{
			key:        folding.Key(e.Word),
			pos:        i,
			entry:      e,
			foldedDefs: foldedDefs,
		}
	}

	return &Index{
		entries: indexed,
		words:   index.New(indexed),
	}
}

// Lookup returns the entries matching term under the given mode, in document
// order. An empty or whitespace-only term matches nothing. An unrecognized
// mode returns an error wrapping [ErrInvalidQuery].
func (ix *Index) Lookup(term string, mode Mode) ([]*parser.Entry, error) {
	if mode != ModeWord && mode != ModeDefinition {
		return nil, fmt.Errorf("%w: unrecognized mode %v", ErrInvalidQuery, mode)
	}

	key := folding.Key(term)
	if key == "" {
		return nil, nil
	}

	if mode == ModeWord {
		return ix.lookupWord(key), nil
	}
	return ix.lookupDefinition(key), nil
}

// lookupWord returns entries whose folded headword equals key. When there is
// no exact match, entries whose folded headword starts with key are returned
// instead. Either way results are in document order.
func (ix *Index) lookupWord(key string) []*parser.Entry {
	matches := ix.words.Search(key)
	if len(matches) == 0 {
		matches = ix.words.SearchPrefix(key)
	}
	if len(matches) == 0 {
		return nil
	}

	matches = slices.Clone(matches)
	slices.SortFunc(matches, func(a, b *indexedEntry) int {
		return a.pos - b.pos
	})

	entries := make([]*parser.Entry, len(matches))
	for i, m := range matches {
		entries[i] = m.entry
	}
	return entries
}

// lookupDefinition returns entries where any sense contains key as a
// substring. An entry appears at most once even when several of its senses
// match.
func (ix *Index) lookupDefinition(key string) []*parser.Entry {
	var entries []*parser.Entry
	for _, ie := range ix.entries {
		for _, def := range ie.foldedDefs {
			if strings.Contains(def, key) {
				entries = append(entries, ie.entry)
				break
			}
		}
	}
	return entries
}
