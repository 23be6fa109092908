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

package parser

// Entry is one structured headword record produced by parsing. Entries are
// immutable after the parse that produced them returns. The field order and
// JSON keys are a stable export shape.
type Entry struct {
	// Word is the headword, case preserved.
	Word string `json:"word"`

	// PartOfSpeech is the expanded part-of-speech name, or the verbatim tag
	// when it is not in the abbreviation table. Empty if the headword line
	// carries no tag.
	PartOfSpeech string `json:"part_of_speech,omitempty"`

	// WordClass is the Hayalese word class ("i", "ii" or "iii"), if any.
	WordClass string `json:"word_class,omitempty"`

	// Definitions holds the entry's senses in source order. It is never
	// empty.
	Definitions []string `json:"definitions"`

	// Notes are usage notes from the entry's continuation lines.
	Notes []string `json:"notes,omitempty"`

	// Inflections are irregular inflected forms from an "inflections:"
	// continuation line.
	Inflections []string `json:"inflections,omitempty"`

	// Parent is the headword this entry is derived from. It is only set for
	// derived terms.
	Parent string `json:"parent,omitempty"`

	// RawText is the original text of the block the entry came from.
	RawText string `json:"raw_text"`
}
