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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/hayalese/hayadict"
)

const indent = "    "

var (
	headwordColor = color.New(color.FgBlue, color.Bold)
	classColor    = color.New(color.Bold)
	noteColor     = color.New(color.Faint)
	labelColor    = color.New(color.Bold)
	parentColor   = color.New(color.FgGreen, color.Bold)
)

// renderEntry prints one entry in the long form.
func renderEntry(w io.Writer, e *hayadict.Entry) {
	fmt.Fprintln(w)

	header := headwordColor.Sprint(e.Word)
	if e.PartOfSpeech != "" {
		header += ", " + renderPOS(e.PartOfSpeech)
	}
	if e.WordClass != "" {
		header += " " + classColor.Sprintf("(%s)", e.WordClass)
	}
	fmt.Fprintln(w, header)

	if len(e.Definitions) == 1 {
		fmt.Fprintf(w, "%s%s\n", indent, e.Definitions[0])
	} else {
		for i, definition := range e.Definitions {
			fmt.Fprintf(w, "%s%d. %s\n", indent, i+1, definition)
		}
	}

	for _, note := range e.Notes {
		fmt.Fprintf(w, "%s%s\n", indent, noteColor.Sprint(note))
	}
	if e.Parent != "" {
		fmt.Fprintf(w, "%s%s %s\n", indent, labelColor.Sprint("Derived from"), parentColor.Sprint(e.Parent))
	}
	if len(e.Inflections) != 0 {
		fmt.Fprintf(w, "%s%s %s\n", indent, labelColor.Sprint("Irregular inflections:"), strings.Join(e.Inflections, ", "))
	}
}

// renderTable prints entries in the compact tabular form. Only the first
// sense of each entry is shown.
func renderTable(w io.Writer, entries []*hayadict.Entry) {
	tbl := table.New("WORD", "POS", "DEFINITION").WithWriter(w)
	for _, e := range entries {
		// Entries loaded from a hand-edited export may lack senses.
		first := ""
		if len(e.Definitions) > 0 {
			first = e.Definitions[0]
		}
		tbl.AddRow(e.Word, renderPOS(e.PartOfSpeech), first)
	}
	tbl.Print()
}

// renderPOS renders a part-of-speech name for display.
func renderPOS(pos string) string {
	return strings.ReplaceAll(pos, "_", " ")
}
