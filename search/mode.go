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

package search

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidQuery indicates a query with an unrecognized mode.
var ErrInvalidQuery = errors.New("invalid query")

// Mode selects what part of an entry a query term is matched against.
type Mode int

const (
	// ModeWord matches the term against entry headwords.
	ModeWord Mode = iota + 1

	// ModeDefinition matches the term against definition text.
	ModeDefinition
)

// String implements [fmt.Stringer].
func (m Mode) String() string {
	switch m {
	case ModeWord:
		return "word"
	case ModeDefinition:
		return "definition"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses a mode name as given on the command line. The name is
// trimmed and lowercased before matching. Unrecognized names return an error
// wrapping [ErrInvalidQuery]; they never fall back to a default mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "word":
		return ModeWord, nil
	case "definition":
		return ModeDefinition, nil
	default:
		return 0, fmt.Errorf("%w: unrecognized mode %q", ErrInvalidQuery, s)
	}
}
