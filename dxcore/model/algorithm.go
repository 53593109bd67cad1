/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package model

import (
	"encoding/json"

	"dirpx.dev/dxsort/dxcore/errors"
	"gopkg.in/yaml.v3"
)

// Algorithm selects which instrumented sort produces a trace.
//
// The two algorithms produce traces of different shapes, and the playback
// driver replays them differently:
//
//  1. Merge emits pairs of operations (Compare, then Overwrite) in absolute
//     array coordinates. Every pair is replayed in one fixed time slot, so the
//     whole animation takes len(trace) steps.
//
//  2. Bubble emits only Swap operations between adjacent positions. Each swap
//     is replayed as a longer multi-phase animation (comparing, swapping,
//     settling).
type Algorithm int

const (
	// Merge is top-down merge sort with an explicit auxiliary buffer.
	Merge Algorithm = iota

	// Bubble is iterative adjacent-swap sort with early exit.
	Bubble
)

var _ Model = (*Algorithm)(nil)

// String constants for Algorithm values used in serialization, parsing and
// human-facing output. Changing them is a breaking change for recordings.
const (
	MergeStr  = "merge"
	BubbleStr = "bubble"
)

// String returns the canonical lowercase name of the algorithm, or "unknown"
// for values outside the defined constants.
func (a Algorithm) String() string {
	switch a {
	case Merge:
		return MergeStr
	case Bubble:
		return BubbleStr
	default:
		return "unknown"
	}
}

// ParseAlgorithm converts a textual representation into an Algorithm.
//
// Accepted inputs:
//
//	"merge", "Merge", "merge-sort", "merge_sort", "MergeSort", "MERGE"      -> Merge
//	"bubble", "Bubble", "bubble-sort", "bubble_sort", "BubbleSort", "BUBBLE" -> Bubble
//
// Any other input yields a *errors.ParseError and the returned Algorithm
// MUST NOT be used.
func ParseAlgorithm(str string) (Algorithm, error) {
	switch str {
	case MergeStr, "Merge", "merge-sort", "merge_sort", "MergeSort", "MERGE":
		return Merge, nil
	case BubbleStr, "Bubble", "bubble-sort", "bubble_sort", "BubbleSort", "BUBBLE":
		return Bubble, nil
	default:
		return Merge, &errors.ParseError{Type: "Algorithm", Value: str}
	}
}

// Valid reports whether the Algorithm is one of the defined constants.
func (a Algorithm) Valid() bool {
	return a == Merge || a == Bubble
}

// MarshalJSON encodes a valid Algorithm as its canonical string.
func (a Algorithm) MarshalJSON() ([]byte, error) {
	if !a.Valid() {
		return nil, &errors.MarshalError{Type: "Algorithm", Value: int(a)}
	}
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON accepts either a string (resolved via ParseAlgorithm) or the
// numeric constant value.
func (a *Algorithm) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Algorithm", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "Algorithm", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseAlgorithm(str)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Algorithm", Data: data, Reason: err.Error()}
	}
	*a = Algorithm(i)
	if !a.Valid() {
		return &errors.UnmarshalError{Type: "Algorithm", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, &errors.MarshalError{Type: "Algorithm", Value: int(a)}
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseAlgorithm.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// TypeName returns "Algorithm".
func (a Algorithm) TypeName() string {
	return "Algorithm"
}

// Redacted returns the same string as String; algorithms carry nothing
// sensitive.
func (a Algorithm) Redacted() string {
	return a.String()
}

// IsZero reports whether a is Merge, the zero constant. Merge is valid, so
// IsZero returning true is not an error condition.
func (a Algorithm) IsZero() bool {
	return a == Merge
}

// Equal reports whether other is an Algorithm (or non-nil *Algorithm) with
// the same value.
func (a Algorithm) Equal(other any) bool {
	switch v := other.(type) {
	case Algorithm:
		return a == v
	case *Algorithm:
		if v == nil {
			return false
		}
		return a == *v
	default:
		return false
	}
}

// Validate returns a *errors.MarshalError when a is not a defined constant.
func (a Algorithm) Validate() error {
	if !a.Valid() {
		return &errors.MarshalError{Type: "Algorithm", Value: int(a)}
	}
	return nil
}

// MarshalYAML encodes a valid Algorithm as its canonical string.
func (a Algorithm) MarshalYAML() (any, error) {
	if !a.Valid() {
		return nil, &errors.MarshalError{Type: "Algorithm", Value: int(a)}
	}
	return a.String(), nil
}

// UnmarshalYAML decodes a string node via ParseAlgorithm.
func (a *Algorithm) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Algorithm", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseAlgorithm(str)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
