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

// Package folding implements the text normalization used for dictionary
// fields and search keys. Whitespace folding trims the input and collapses
// internal whitespace spans; key folding additionally applies Unicode case
// folding so that lookups are case-insensitive.
package folding

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
)

// Space returns a transformer that performs whitespace folding.
func Space() transform.Transformer {
	return &whitespaceFolder{}
}

// Word returns a transformer that folds a word into its search key form.
// It chains whitespace folding with Unicode case folding.
func Word() transform.Transformer {
	return transform.Chain(&whitespaceFolder{}, cases.Fold())
}

// Normalize returns s with surrounding whitespace removed and internal
// whitespace spans collapsed to a single space. Case is preserved.
func Normalize(s string) string {
	folded, _, err := transform.String(Space(), s)
	if err != nil {
		return strings.TrimSpace(s)
	}
	return folded
}

// Key returns the search key form of s: whitespace folded and case folded.
func Key(s string) string {
	folded, _, err := transform.String(Word(), s)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return folded
}

// whitespaceFolder removes whitespace from the beginning and end of the
// input and replaces all internal whitespace spans with a single ASCII space
// rune.
type whitespaceFolder struct {
	// notStart is true after encountering the first non-whitespace rune.
	notStart bool

	// wsSpan is true while the transformer is inside a whitespace span.
	wsSpan bool
}

// Transform implements [transform.Transformer.Transform].
func (w *whitespaceFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if unicode.IsSpace(c) {
			nSrc += size
			if !w.notStart {
				// Leading whitespace is dropped.
				continue
			}
			w.wsSpan = true
			continue
		}

		if w.wsSpan {
			// Emit a single space when coming out of a whitespace span.
			// Trailing whitespace never reaches this point and is never
			// emitted.
			spc := ' '
			if nDst+utf8.RuneLen(spc) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += utf8.EncodeRune(dst[nDst:], spc)
			w.wsSpan = false
		}
		w.notStart = true
		nSrc += size

		// NOTE: size cannot be used here because c could be utf8.RuneError
		// in which case size would be 1 but the length of utf8.RuneError is
		// 3.
		if nDst+utf8.RuneLen(c) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], c)
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *whitespaceFolder) Reset() {
	*w = whitespaceFolder{}
}
