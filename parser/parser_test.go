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

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestParse tests parsing of whole documents.
func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string

		expected []*Entry
		warnings []Warning
	}{
		{
			name: "single entry",
			raw:  "aki v. // to run",
			expected: []*Entry{
				{
					Word:         "aki",
					PartOfSpeech: "verb",
					Definitions:  []string{"to run"},
					RawText:      "aki v. // to run",
				},
			},
		},
		{
			name: "word class",
			raw:  "tor n. ii. // a large stone",
			expected: []*Entry{
				{
					Word:         "tor",
					PartOfSpeech: "noun",
					WordClass:    "ii",
					Definitions:  []string{"a large stone"},
					RawText:      "tor n. ii. // a large stone",
				},
			},
		},
		{
			name: "no part of speech",
			raw:  "tor // a large stone",
			expected: []*Entry{
				{
					Word:        "tor",
					Definitions: []string{"a large stone"},
					RawText:     "tor // a large stone",
				},
			},
		},
		{
			name: "numbered senses",
			raw:  "tor n. // 1. a large stone 2. to carry",
			expected: []*Entry{
				{
					Word:         "tor",
					PartOfSpeech: "noun",
					Definitions:  []string{"a large stone", "to carry"},
					RawText:      "tor n. // 1. a large stone 2. to carry",
				},
			},
		},
		{
			name: "sense-like marker mid-definition is one sense",
			raw:  "tor n. // a stone weighing 3. 5 units",
			expected: []*Entry{
				{
					Word:         "tor",
					PartOfSpeech: "noun",
					Definitions:  []string{"a stone weighing 3. 5 units"},
					RawText:      "tor n. // a stone weighing 3. 5 units",
				},
			},
		},
		{
			name: "multi-word headword",
			raw:  "ka tor phr. // a standing stone",
			expected: []*Entry{
				{
					Word:         "ka tor",
					PartOfSpeech: "phrase",
					Definitions:  []string{"a standing stone"},
					RawText:      "ka tor phr. // a standing stone",
				},
			},
		},
		{
			name: "dot-terminated headword",
			raw:  "etc. n. // and so on",
			expected: []*Entry{
				{
					Word:         "etc.",
					PartOfSpeech: "noun",
					Definitions:  []string{"and so on"},
					RawText:      "etc. n. // and so on",
				},
			},
		},
		{
			name: "dot-terminated headword without tags",
			raw:  "t.k. // an abbreviation",
			expected: []*Entry{
				{
					Word:        "t.k.",
					Definitions: []string{"an abbreviation"},
					RawText:     "t.k. // an abbreviation",
				},
			},
		},
		{
			name: "whitespace normalized",
			raw:  "aki   v. //  to \t run ",
			expected: []*Entry{
				{
					Word:         "aki",
					PartOfSpeech: "verb",
					Definitions:  []string{"to run"},
					RawText:      "aki   v. //  to \t run ",
				},
			},
		},
		{
			name: "continuation lines",
			raw: strings.Join([]string{
				"aki irr.v. i. // to run",
				"    inflections: akir, akitem",
				"    used of animals and people",
				"    akisi n. // a runner",
			}, "\n"),
			expected: []*Entry{
				{
					Word:         "aki",
					PartOfSpeech: "irregular_verb",
					WordClass:    "i",
					Definitions:  []string{"to run"},
					Notes:        []string{"used of animals and people"},
					Inflections:  []string{"akir", "akitem"},
					RawText: strings.Join([]string{
						"aki irr.v. i. // to run",
						"    inflections: akir, akitem",
						"    used of animals and people",
						"    akisi n. // a runner",
					}, "\n"),
				},
				{
					Word:         "akisi",
					PartOfSpeech: "noun",
					Definitions:  []string{"a runner"},
					Parent:       "aki",
					RawText: strings.Join([]string{
						"aki irr.v. i. // to run",
						"    inflections: akir, akitem",
						"    used of animals and people",
						"    akisi n. // a runner",
					}, "\n"),
				},
			},
		},
		{
			name: "headings skipped",
			raw:  "Aa\n\naki v. // to run\n\n'Ï\n\n'ïlo n. // a door",
			expected: []*Entry{
				{
					Word:         "aki",
					PartOfSpeech: "verb",
					Definitions:  []string{"to run"},
					RawText:      "aki v. // to run",
				},
				{
					Word:         "'ïlo",
					PartOfSpeech: "noun",
					Definitions:  []string{"a door"},
					RawText:      "'ïlo n. // a door",
				},
			},
		},
		{
			name: "duplicate headwords preserved in order",
			raw:  "aki v. // to run\n\nAki n. // a name\n\naki n. // a sprint",
			expected: []*Entry{
				{
					Word:         "aki",
					PartOfSpeech: "verb",
					Definitions:  []string{"to run"},
					RawText:      "aki v. // to run",
				},
				{
					Word:         "Aki",
					PartOfSpeech: "noun",
					Definitions:  []string{"a name"},
					RawText:      "Aki n. // a name",
				},
				{
					Word:         "aki",
					PartOfSpeech: "noun",
					Definitions:  []string{"a sprint"},
					RawText:      "aki n. // a sprint",
				},
			},
		},
		{
			name: "consecutive headword lines in one block",
			raw:  "aki v. // to run\ntor n. // a stone",
			expected: []*Entry{
				{
					Word:         "aki",
					PartOfSpeech: "verb",
					Definitions:  []string{"to run"},
					RawText:      "aki v. // to run\ntor n. // a stone",
				},
				{
					Word:         "tor",
					PartOfSpeech: "noun",
					Definitions:  []string{"a stone"},
					RawText:      "aki v. // to run\ntor n. // a stone",
				},
			},
		},
		{
			name: "missing headword",
			raw:  " // a definition with no word",
			warnings: []Warning{
				{
					Reason:  ReasonMissingHeadword,
					RawText: " // a definition with no word",
					Line:    1,
				},
			},
		},
		{
			name: "missing definition",
			raw:  "nulo v. //  ",
			warnings: []Warning{
				{
					Reason:  ReasonMissingDefinition,
					RawText: "nulo v. //  ",
					Line:    1,
				},
			},
		},
		{
			name: "unknown part of speech kept verbatim",
			raw:  "aki zz. // to run",
			expected: []*Entry{
				{
					Word:         "aki",
					PartOfSpeech: "zz.",
					Definitions:  []string{"to run"},
					RawText:      "aki zz. // to run",
				},
			},
			warnings: []Warning{
				{
					Reason:  ReasonUnknownPOS,
					RawText: "aki zz. // to run",
					Line:    1,
				},
			},
		},
		{
			name: "orphan continuation",
			raw:  "    a stray note about nothing",
			warnings: []Warning{
				{
					Reason:  ReasonOrphanContinuation,
					RawText: "    a stray note about nothing",
					Line:    1,
				},
			},
		},
		{
			name: "orphan inflections line",
			raw:  "    inflections: akir, akitem",
			warnings: []Warning{
				{
					Reason:  ReasonOrphanContinuation,
					RawText: "    inflections: akir, akitem",
					Line:    1,
				},
			},
		},
		{
			name: "document-leading derived term kept without parent",
			raw:  "    akisi n. // a runner",
			expected: []*Entry{
				{
					Word:         "akisi",
					PartOfSpeech: "noun",
					Definitions:  []string{"a runner"},
					RawText:      "    akisi n. // a runner",
				},
			},
			warnings: []Warning{
				{
					Reason:  ReasonOrphanContinuation,
					RawText: "    akisi n. // a runner",
					Line:    1,
				},
			},
		},
		{
			name: "note attaches across blank lines",
			raw:  "aki v. // to run\n\nonly in the northern dialect",
			expected: []*Entry{
				{
					Word:         "aki",
					PartOfSpeech: "verb",
					Definitions:  []string{"to run"},
					Notes:        []string{"only in the northern dialect"},
					RawText:      "aki v. // to run",
				},
			},
		},
		{
			name: "malformed neighbor does not drop entries",
			raw:  "aki v. // to run\n\n // broken\n\ntor n. // a stone",
			expected: []*Entry{
				{
					Word:         "aki",
					PartOfSpeech: "verb",
					Definitions:  []string{"to run"},
					RawText:      "aki v. // to run",
				},
				{
					Word:         "tor",
					PartOfSpeech: "noun",
					Definitions:  []string{"a stone"},
					RawText:      "tor n. // a stone",
				},
			},
			warnings: []Warning{
				{
					Reason:  ReasonMissingHeadword,
					RawText: " // broken",
					Line:    3,
				},
			},
		},
		{
			name: "empty document",
			raw:  "",
			warnings: []Warning{
				{
					Reason:  ReasonEmptyDocument,
					RawText: "",
				},
			},
		},
		{
			name: "whitespace-only document",
			raw:  " \n\t \n",
			warnings: []Warning{
				{
					Reason:  ReasonEmptyDocument,
					RawText: " \n\t \n",
				},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			entries, warnings := Parse(tc.raw)
			if diff := cmp.Diff(tc.expected, entries); diff != "" {
				t.Errorf("Parse entries (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.warnings, warnings); diff != "" {
				t.Errorf("Parse warnings (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestParse_idempotent checks that parsing the same document twice yields
// identical results.
func TestParse_idempotent(t *testing.T) {
	t.Parallel()

	raw := strings.Join([]string{
		"Aa",
		"",
		"aki irr.v. i. // to run",
		"    inflections: akir, akitem",
		"",
		" // broken block",
		"",
		"tor n. // 1. a large stone 2. to carry",
	}, "\n")

	entries1, warnings1 := Parse(raw)
	entries2, warnings2 := Parse(raw)

	if diff := cmp.Diff(entries1, entries2); diff != "" {
		t.Errorf("entries differ between parses (-first, +second):\n%s", diff)
	}
	if diff := cmp.Diff(warnings1, warnings2); diff != "" {
		t.Errorf("warnings differ between parses (-first, +second):\n%s", diff)
	}
}

// Test_splitSenses tests definition sense splitting.
func Test_splitSenses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rhs  string

		expected []string
	}{
		{
			name:     "empty",
			rhs:      "  ",
			expected: nil,
		},
		{
			name:     "single sense",
			rhs:      "to run",
			expected: []string{"to run"},
		},
		{
			name:     "two senses",
			rhs:      "1. a large stone 2. to carry",
			expected: []string{"a large stone", "to carry"},
		},
		{
			name:     "three senses",
			rhs:      "1. first 2. second 3. third",
			expected: []string{"first", "second", "third"},
		},
		{
			name:     "marker not at start",
			rhs:      "see rule 3. for details",
			expected: []string{"see rule 3. for details"},
		},
		{
			name:     "empty senses dropped",
			rhs:      "1. 2. to carry",
			expected: []string{"to carry"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := splitSenses(tc.rhs)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("splitSenses (-want, +got):\n%s", diff)
			}
		})
	}
}
