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

package trace

import (
	"encoding/json"

	"dirpx.dev/dxsort/dxcore/errors"
	"dirpx.dev/dxsort/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Kind tags an Operation with the elementary step it records.
type Kind int

const (
	// KindCompare records that two positions were compared. It never
	// mutates the array. A self-compare (I == J) is emitted by merge tracing
	// as a marker when one half of a merge is exhausted.
	KindCompare Kind = iota

	// KindOverwrite records that position I took Value.
	KindOverwrite

	// KindSwap records that positions I and J exchanged their values.
	KindSwap
)

var _ model.Model = (*Kind)(nil)

// String constants for Kind values used in serialization.
const (
	CompareStr   = "compare"
	OverwriteStr = "overwrite"
	SwapStr      = "swap"
)

// String returns the canonical lowercase name, or "unknown".
func (k Kind) String() string {
	switch k {
	case KindCompare:
		return CompareStr
	case KindOverwrite:
		return OverwriteStr
	case KindSwap:
		return SwapStr
	default:
		return "unknown"
	}
}

// ParseKind converts a textual representation into a Kind. Lowercase,
// CamelCase and uppercase spellings are accepted.
func ParseKind(str string) (Kind, error) {
	switch str {
	case CompareStr, "Compare", "COMPARE":
		return KindCompare, nil
	case OverwriteStr, "Overwrite", "OVERWRITE":
		return KindOverwrite, nil
	case SwapStr, "Swap", "SWAP":
		return KindSwap, nil
	default:
		return KindCompare, &errors.ParseError{Type: "Kind", Value: str}
	}
}

// Valid reports whether k is one of the defined constants.
func (k Kind) Valid() bool {
	return k == KindCompare || k == KindOverwrite || k == KindSwap
}

// Mutates reports whether replaying an operation of this kind changes the
// array.
func (k Kind) Mutates() bool {
	return k == KindOverwrite || k == KindSwap
}

// MarshalJSON encodes a valid Kind as its canonical string.
func (k Kind) MarshalJSON() ([]byte, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return []byte(`"` + k.String() + `"`), nil
}

// UnmarshalJSON accepts either a string (resolved via ParseKind) or the
// numeric constant value.
func (k *Kind) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseKind(str)
		if err != nil {
			return err
		}
		*k = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: err.Error()}
	}
	*k = Kind(i)
	if !k.Valid() {
		return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// TypeName returns "Kind".
func (k Kind) TypeName() string {
	return "Kind"
}

// Redacted returns the same string as String.
func (k Kind) Redacted() string {
	return k.String()
}

// IsZero reports whether k is KindCompare, the zero constant.
func (k Kind) IsZero() bool {
	return k == KindCompare
}

// Validate returns a *errors.MarshalError when k is not a defined constant.
func (k Kind) Validate() error {
	if !k.Valid() {
		return &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return nil
}

// MarshalYAML encodes a valid Kind as its canonical string.
func (k Kind) MarshalYAML() (any, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return k.String(), nil
}

// UnmarshalYAML decodes a string node via ParseKind.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Kind", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseKind(str)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
