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

// Package parser parses the flat-text format of the Hayalese Dictionary of
// Modern Rikatisyï into structured entries.
//
// The document is made up of blocks separated by blank lines. A headword
// line has the form
//
//	WORD [POS.] [CLASS.] // DEFINITION
//
// where POS. is an abbreviated part-of-speech tag (n., v., irr.v., ...) and
// CLASS. is a word class tag (i., ii. or iii.). The definition may contain
// several numbered senses ("1. ... 2. ..."). A continuation line that is
// indented and itself a headword line is a derived term; a continuation line
// of the form "inflections: a, b" records irregular inflections; any other
// continuation line is a usage note. Continuation lines attach to the most
// recent entry, even across blank lines. Single short lines such as "Aa" are
// section headings and carry no content.
//
// Parsing never aborts on a malformed block. Blocks that cannot yield an
// entry are reported as warnings and skipped; the rest of the document is
// parsed normally.
package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hayalese/hayadict/internal/folding"
)

// defSeparator separates a headword line's left-hand side from its
// definition.
const defSeparator = " // "

// inflectionsPrefix marks a continuation line listing irregular inflections.
const inflectionsPrefix = "inflections:"

// headingMaxRunes is the maximum length of a section heading line.
const headingMaxRunes = 4

// senseMarker matches the numbered sense markers that split a definition
// into multiple senses.
var senseMarker = regexp.MustCompile(`\b\d+\.\s+`)

// Parse parses a whole dictionary document into an ordered sequence of
// entries plus any warnings encountered. Entries appear in document order;
// duplicate headwords are all preserved. Parse is a pure function of its
// input: an identical document yields identical entries and warnings.
//
// An empty or whitespace-only document yields no entries and a single
// document-level warning with reason [ReasonEmptyDocument]. Whether an empty
// result is an error is the caller's decision.
func Parse(raw string) ([]*Entry, []Warning) {
	if strings.TrimSpace(raw) == "" {
		return nil, []Warning{{
			Reason:  ReasonEmptyDocument,
			RawText: raw,
		}}
	}

	p := &parser{}
	s := NewScanner(raw)
	for s.Scan() {
		p.parseBlock(s.Block())
	}
	return p.entries, p.warnings
}

// parser accumulates entries and warnings over the blocks of one document.
type parser struct {
	entries  []*Entry
	warnings []Warning
}

// parseBlock parses one block, appending any entries and warnings it yields.
func (p *parser) parseBlock(b Block) {
	for i, line := range b.Lines {
		lineno := b.Line + i
		indented := isIndented(line)
		lhs, rhs, isHeadword := strings.Cut(line, defSeparator)

		switch {
		case isHeadword:
			entry := p.parseHeadword(lhs, rhs, b, lineno)
			if entry == nil {
				continue
			}
			if indented {
				// An indented headword line is a term derived from the most
				// recent entry. With no entry to derive from it is kept as
				// an ordinary entry and the dangling indent is reported.
				if last := p.last(); last != nil {
					entry.Parent = last.Word
				} else {
					p.warn(ReasonOrphanContinuation, b, lineno)
				}
			}
			p.entries = append(p.entries, entry)

		case !indented && isHeading(line):
			// Section headings ("Aa", "Bb", ...) carry no content.

		case hasInflections(line):
			p.parseInflections(line, b, lineno)

		default:
			p.parseNote(line, b, lineno)
		}
	}
}

// parseHeadword parses a headword line into an entry. It returns nil if the
// line yields no usable entry; warnings are recorded either way.
//
// The first field is always (the start of) the headword, even when it ends
// in a dot; only the remaining fields are classified as part-of-speech or
// word class tags.
func (p *parser) parseHeadword(lhs, rhs string, b Block, lineno int) *Entry {
	var word []string
	var pos, class string

	for i, tok := range strings.Fields(lhs) {
		switch {
		case i == 0:
			word = append(word, tok)
		case wordClasses[tok]:
			class = strings.TrimSuffix(tok, ".")
		case strings.HasSuffix(tok, "."):
			expanded, ok := partsOfSpeech[tok]
			if !ok {
				// Keep the verbatim tag rather than dropping the entry.
				expanded = tok
				p.warn(ReasonUnknownPOS, b, lineno)
			}
			pos = expanded
		default:
			word = append(word, tok)
		}
	}

	headword := folding.Normalize(strings.Join(word, " "))
	if headword == "" {
		p.warn(ReasonMissingHeadword, b, lineno)
		return nil
	}

	definitions := splitSenses(rhs)
	if len(definitions) == 0 {
		p.warn(ReasonMissingDefinition, b, lineno)
		return nil
	}

	return &Entry{
		Word:         headword,
		PartOfSpeech: pos,
		WordClass:    class,
		Definitions:  definitions,
		RawText:      b.Raw,
	}
}

// parseInflections attaches an "inflections:" line to the most recent entry.
func (p *parser) parseInflections(line string, b Block, lineno int) {
	last := p.last()
	if last == nil {
		p.warn(ReasonOrphanContinuation, b, lineno)
		return
	}

	rest, _ := strings.CutPrefix(strings.TrimSpace(line), inflectionsPrefix)
	for _, inflection := range strings.Split(rest, ",") {
		if inflection = folding.Normalize(inflection); inflection != "" {
			last.Inflections = append(last.Inflections, inflection)
		}
	}
}

// parseNote attaches a free-form continuation line to the most recent entry
// as a usage note.
func (p *parser) parseNote(line string, b Block, lineno int) {
	note := folding.Normalize(line)
	if note == "" {
		return
	}
	last := p.last()
	if last == nil {
		p.warn(ReasonOrphanContinuation, b, lineno)
		return
	}
	last.Notes = append(last.Notes, note)
}

// last returns the most recently parsed entry, or nil.
func (p *parser) last() *Entry {
	if len(p.entries) == 0 {
		return nil
	}
	return p.entries[len(p.entries)-1]
}

func (p *parser) warn(reason Reason, b Block, lineno int) {
	p.warnings = append(p.warnings, Warning{
		Reason:  reason,
		RawText: b.Raw,
		Line:    lineno,
	})
}

// splitSenses splits a definition into its numbered senses. A definition
// with no leading "1." style marker is a single sense. Senses are
// whitespace-normalized; empty senses are dropped.
func splitSenses(rhs string) []string {
	s := folding.Normalize(rhs)
	if s == "" {
		return nil
	}

	locs := senseMarker.FindAllStringIndex(s, -1)
	if len(locs) == 0 || locs[0][0] != 0 {
		return []string{s}
	}

	var senses []string
	for i, loc := range locs {
		end := len(s)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		if sense := strings.TrimSpace(s[loc[1]:end]); sense != "" {
			senses = append(senses, sense)
		}
	}
	return senses
}

// isIndented reports whether the line is a continuation line belonging to a
// preceding headword.
func isIndented(line string) bool {
	return strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
}

// isHeading reports whether the line is a section heading such as "Aa" or
// "'Ï": a short line starting with a letter or apostrophe.
func isHeading(line string) bool {
	t := strings.TrimSpace(line)
	if t == "" || utf8.RuneCountInString(t) > headingMaxRunes {
		return false
	}
	r, _ := utf8.DecodeRuneInString(t)
	return unicode.IsLetter(r) || r == '\''
}

// hasInflections reports whether the line is an irregular inflections list.
func hasInflections(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), inflectionsPrefix)
}
