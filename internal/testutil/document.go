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

// Package testutil provides helpers for creating test dictionary documents.
package testutil

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// MakeDocumentOptions are options for creating a test document file.
type MakeDocumentOptions struct {
	// Ext is the file extension. Defaults to ".txt", or ".txt.gz" /
	// ".txt.dz" when compression is requested.
	Ext string

	// Gzip compresses the document with gzip.
	Gzip bool

	// DictZip compresses the document with dictzip.
	DictZip bool
}

func (o *MakeDocumentOptions) ext() string {
	if o != nil && o.Ext != "" {
		return o.Ext
	}
	switch {
	case o != nil && o.Gzip:
		return ".txt.gz"
	case o != nil && o.DictZip:
		return ".txt.dz"
	default:
		return ".txt"
	}
}

// MakeTempDocument writes a dictionary document to a temporary file and
// returns its path. The file is removed when the test finishes.
func MakeTempDocument(t *testing.T, content string, opts *MakeDocumentOptions) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dictionary"+opts.ext())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	switch {
	case opts != nil && opts.Gzip:
		z := gzip.NewWriter(f)
		defer z.Close()
		if _, err := z.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	case opts != nil && opts.DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		defer z.Close()
		if _, err := z.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	default:
		if _, err := f.WriteString(content); err != nil {
			t.Fatal(err)
		}
	}

	return path
}
