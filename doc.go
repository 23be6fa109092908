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

// Package hayadict implements a parser and search index for the Hayalese
// Dictionary of Modern Rikatisyï in pure Go.
//
// The dictionary is a hand-edited flat-text document. Each entry occupies a
// headword line of the form
//
//	WORD [POS.] [CLASS.] // DEFINITION
//
// optionally followed by continuation lines holding usage notes, irregular
// inflections and derived terms. Blank lines separate entry blocks. Because
// the document is hand-edited, irregularities are expected: the parser skips
// malformed blocks and reports them as warnings instead of failing.
//
// A parsed dictionary can be searched by headword or by definition text and
// exported as a stable JSON document.
package hayadict
