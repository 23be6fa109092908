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
)

// Block is a contiguous span of non-blank lines assumed to correspond to one
// headword cluster before parsing.
type Block struct {
	// Raw is the block's original text without the surrounding blank lines.
	Raw string

	// Lines are the block's lines, leading whitespace preserved.
	Lines []string

	// Line is the 1-based source line number of the block's first line.
	Line int
}

// Scanner scans a dictionary document block by block. Blocks are separated
// by one or more blank lines; a line containing only whitespace is blank.
type Scanner struct {
	lines []string
	line  int
	block Block
}

// NewScanner returns a Scanner over the given document text.
func NewScanner(raw string) *Scanner {
	return &Scanner{
		lines: strings.Split(raw, "\n"),
	}
}

// Scan advances the scanner to the next block. It returns false when the end
// of the document is reached.
func (s *Scanner) Scan() bool {
	var block []string
	start := 0
	for s.line < len(s.lines) {
		line := strings.TrimSuffix(s.lines[s.line], "\r")
		s.line++
		if strings.TrimSpace(line) == "" {
			if len(block) == 0 {
				continue
			}
			break
		}
		if len(block) == 0 {
			start = s.line
		}
		block = append(block, line)
	}
	if len(block) == 0 {
		return false
	}
	s.block = Block{
		Raw:   strings.Join(block, "\n"),
		Lines: block,
		Line:  start,
	}
	return true
}

// Block returns the current block.
func (s *Scanner) Block() Block {
	return s.block
}
