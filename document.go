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
	"encoding/json"
	"fmt"
	"io"
)

// Document is the stable JSON export shape of a parsed dictionary.
type Document struct {
	Items []*Entry `json:"items"`
}

// Document returns the dictionary's export document.
func (d *Dictionary) Document() *Document {
	return &Document{
		Items: d.entries,
	}
}

// WriteDocument writes the JSON encoding of doc to w. The default output is
// indented; set compact to emit a single line.
func WriteDocument(w io.Writer, doc *Document, compact bool) error {
	// An empty dictionary still exports an items list, not null.
	if doc.Items == nil {
		doc = &Document{Items: []*Entry{}}
	}

	enc := json.NewEncoder(w)
	if !compact {
		enc.SetIndent("", "    ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	return nil
}

// ReadDocument reads a JSON export document from r.
func ReadDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return &doc, nil
}
