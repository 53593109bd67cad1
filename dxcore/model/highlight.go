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

// Highlight is the visual state of a single bar on the presentation surface.
//
// The playback driver only ever speaks in Highlight values; turning them into
// pixels is the surface's business. Color returns the hex color the reference
// renderer uses for each state.
type Highlight int

const (
	// HighlightPrimary is the resting state of a bar.
	HighlightPrimary Highlight = iota

	// HighlightCompare marks the two positions a merge step is comparing.
	HighlightCompare

	// HighlightBubbleCompare marks an adjacent pair a bubble step is about
	// to exchange.
	HighlightBubbleCompare

	// HighlightBubbleSwap marks an adjacent pair while its heights are being
	// exchanged.
	HighlightBubbleSwap
)

var _ Model = (*Highlight)(nil)

// String constants for Highlight values.
const (
	HighlightPrimaryStr       = "primary"
	HighlightCompareStr       = "compare"
	HighlightBubbleCompareStr = "bubble-compare"
	HighlightBubbleSwapStr    = "bubble-swap"
)

// Reference colors for each Highlight.
const (
	PrimaryColor       = "#ff69b4"
	CompareColor       = "#32CD32"
	BubbleCompareColor = "#FFA500"
	BubbleSwapColor    = "#FF4500"
)

// String returns the canonical kebab-case name, or "unknown".
func (h Highlight) String() string {
	switch h {
	case HighlightPrimary:
		return HighlightPrimaryStr
	case HighlightCompare:
		return HighlightCompareStr
	case HighlightBubbleCompare:
		return HighlightBubbleCompareStr
	case HighlightBubbleSwap:
		return HighlightBubbleSwapStr
	default:
		return "unknown"
	}
}

// Color returns the reference hex color for h. Unknown values render as the
// primary color so that a bad value never hides a bar.
func (h Highlight) Color() string {
	switch h {
	case HighlightCompare:
		return CompareColor
	case HighlightBubbleCompare:
		return BubbleCompareColor
	case HighlightBubbleSwap:
		return BubbleSwapColor
	default:
		return PrimaryColor
	}
}

// ParseHighlight converts a textual representation into a Highlight. Both
// kebab-case and snake_case spellings are accepted.
func ParseHighlight(str string) (Highlight, error) {
	switch str {
	case HighlightPrimaryStr, "Primary", "PRIMARY":
		return HighlightPrimary, nil
	case HighlightCompareStr, "Compare", "COMPARE":
		return HighlightCompare, nil
	case HighlightBubbleCompareStr, "bubble_compare", "BubbleCompare":
		return HighlightBubbleCompare, nil
	case HighlightBubbleSwapStr, "bubble_swap", "BubbleSwap":
		return HighlightBubbleSwap, nil
	default:
		return HighlightPrimary, &errors.ParseError{Type: "Highlight", Value: str}
	}
}

// Valid reports whether h is one of the defined constants.
func (h Highlight) Valid() bool {
	return h >= HighlightPrimary && h <= HighlightBubbleSwap
}

// MarshalJSON encodes a valid Highlight as its canonical string.
func (h Highlight) MarshalJSON() ([]byte, error) {
	if !h.Valid() {
		return nil, &errors.MarshalError{Type: "Highlight", Value: int(h)}
	}
	return []byte(`"` + h.String() + `"`), nil
}

// UnmarshalJSON accepts a JSON string resolved via ParseHighlight.
func (h *Highlight) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "Highlight", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseHighlight(str)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// TypeName returns "Highlight".
func (h Highlight) TypeName() string {
	return "Highlight"
}

// Redacted returns the same string as String.
func (h Highlight) Redacted() string {
	return h.String()
}

// IsZero reports whether h is HighlightPrimary.
func (h Highlight) IsZero() bool {
	return h == HighlightPrimary
}

// Validate returns a *errors.MarshalError when h is not a defined constant.
func (h Highlight) Validate() error {
	if !h.Valid() {
		return &errors.MarshalError{Type: "Highlight", Value: int(h)}
	}
	return nil
}

// MarshalYAML encodes a valid Highlight as its canonical string.
func (h Highlight) MarshalYAML() (any, error) {
	if !h.Valid() {
		return nil, &errors.MarshalError{Type: "Highlight", Value: int(h)}
	}
	return h.String(), nil
}

// UnmarshalYAML decodes a string node via ParseHighlight.
func (h *Highlight) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Highlight", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseHighlight(str)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
