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
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestScanner tests block scanning.
func TestScanner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string

		expected []Block
	}{
		{
			name:     "empty document",
			raw:      "",
			expected: nil,
		},
		{
			name:     "blank lines only",
			raw:      "\n \n\t\n",
			expected: nil,
		},
		{
			name: "single block",
			raw:  "aki v. // to run",
			expected: []Block{
				{
					Raw:   "aki v. // to run",
					Lines: []string{"aki v. // to run"},
					Line:  1,
				},
			},
		},
		{
			name: "blank line separation",
			raw:  "aki v. // to run\n\ntor n. // a stone\n",
			expected: []Block{
				{
					Raw:   "aki v. // to run",
					Lines: []string{"aki v. // to run"},
					Line:  1,
				},
				{
					Raw:   "tor n. // a stone",
					Lines: []string{"tor n. // a stone"},
					Line:  3,
				},
			},
		},
		{
			name: "whitespace-only separator lines",
			raw:  "aki v. // to run\n \t \ntor n. // a stone",
			expected: []Block{
				{
					Raw:   "aki v. // to run",
					Lines: []string{"aki v. // to run"},
					Line:  1,
				},
				{
					Raw:   "tor n. // a stone",
					Lines: []string{"tor n. // a stone"},
					Line:  3,
				},
			},
		},
		{
			name: "multi-line block keeps indentation",
			raw:  "\n\naki v. // to run\n    used of animals\n\n",
			expected: []Block{
				{
					Raw:   "aki v. // to run\n    used of animals",
					Lines: []string{"aki v. // to run", "    used of animals"},
					Line:  3,
				},
			},
		},
		{
			name: "carriage returns stripped",
			raw:  "aki v. // to run\r\n\r\ntor n. // a stone\r\n",
			expected: []Block{
				{
					Raw:   "aki v. // to run",
					Lines: []string{"aki v. // to run"},
					Line:  1,
				},
				{
					Raw:   "tor n. // a stone",
					Lines: []string{"tor n. // a stone"},
					Line:  3,
				},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var got []Block
			s := NewScanner(tc.raw)
			for s.Scan() {
				got = append(got, s.Block())
			}
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("Scan (-want, +got):\n%s", diff)
			}
		})
	}
}
