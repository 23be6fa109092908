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

// Package index implements a generic sorted-array index supporting exact and
// prefix key lookup.
package index

import (
	"slices"
	"sort"
	"strings"
)

// Keyer is a value that exposes a lookup key. Keys are expected to be
// pre-folded; the index compares them byte-wise.
type Keyer interface {
	Key() string
}

// Index is a sorted-array index over values with string keys. Duplicate keys
// are allowed; lookups return every value under a key.
type Index[V Keyer] struct {
	values []V
}

// New creates an index from the given slice. The slice is copied and sorted;
// the caller's slice is not modified.
func New[V Keyer](values []V) *Index[V] {
	sorted := make([]V, len(values))
	copy(sorted, values)
	slices.SortStableFunc(sorted, func(a, b V) int {
		return strings.Compare(a.Key(), b.Key())
	})

	return &Index[V]{
		values: sorted,
	}
}

// Search returns all values whose key is exactly equal to key.
func (idx *Index[V]) Search(key string) []V {
	i := idx.lowerBound(key)
	j := i
	for j < len(idx.values) && idx.values[j].Key() == key {
		j++
	}
	if i == j {
		return nil
	}
	return idx.values[i:j]
}

// SearchPrefix returns all values whose key starts with prefix.
func (idx *Index[V]) SearchPrefix(prefix string) []V {
	i := idx.lowerBound(prefix)
	j := i
	for j < len(idx.values) && strings.HasPrefix(idx.values[j].Key(), prefix) {
		j++
	}
	if i == j {
		return nil
	}
	return idx.values[i:j]
}

// lowerBound returns the index of the first value whose key is >= key.
func (idx *Index[V]) lowerBound(key string) int {
	return sort.Search(len(idx.values), func(i int) bool {
		return idx.values[i].Key() >= key
	})
}
