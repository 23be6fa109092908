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
	"fmt"
)

// Reason is a warning reason code.
type Reason string

const (
	// ReasonMissingHeadword indicates a definition line with no headword on
	// its left-hand side.
	ReasonMissingHeadword Reason = "MISSING_HEADWORD"

	// ReasonMissingDefinition indicates a headword line whose right-hand
	// side contains no definition text.
	ReasonMissingDefinition Reason = "MISSING_DEFINITION"

	// ReasonUnknownPOS indicates a part-of-speech tag that is not in the
	// abbreviation table. The tag is kept verbatim on the entry.
	ReasonUnknownPOS Reason = "UNKNOWN_POS"

	// ReasonOrphanContinuation indicates a continuation line (note,
	// inflections or indented headword) with no preceding entry anywhere in
	// the document. Continuation lines attach to the most recent entry even
	// across blank lines, so only lines before the first entry are orphans.
	ReasonOrphanContinuation Reason = "ORPHAN_CONTINUATION"

	// ReasonEmptyDocument indicates an empty or whitespace-only document.
	// It is the only document-level reason and is reported exactly once.
	ReasonEmptyDocument Reason = "EMPTY_DOCUMENT"
)

// Warning records a non-fatal anomaly found while parsing. Warnings are
// accumulated and returned alongside the successfully parsed entries; they
// are never raised as errors.
type Warning struct {
	// Reason is the warning reason code.
	Reason Reason

	// RawText is the original text of the offending block, or the whole
	// document for document-level warnings.
	RawText string

	// Line is the 1-based source line the warning refers to, or zero for
	// document-level warnings.
	Line int
}

// String returns a human readable description of the warning.
func (w Warning) String() string {
	if w.Line == 0 {
		return fmt.Sprintf("%s: %q", w.Reason, w.RawText)
	}
	return fmt.Sprintf("line %d: %s: %q", w.Line, w.Reason, w.RawText)
}
