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
	"fmt"
	"math"
	"strconv"

	"dirpx.dev/dxsort/dxcore/errors"
	"dirpx.dev/dxsort/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Operation is one elementary step of a traced sort.
//
// Indices are absolute positions in the array that was handed to the engine,
// never offsets into a recursive sub-slice. The meaning of the fields depends
// on Kind:
//
//	KindCompare    I, J   positions compared (I == J marks a drained half)
//	KindOverwrite  I      position written; Value is the value written
//	KindSwap       I, J   positions exchanged
//
// J is zero and ignored for KindOverwrite; Value is zero and ignored for the
// other kinds.
type Operation struct {
	Kind  Kind    `json:"kind" yaml:"kind"`
	I     int     `json:"i" yaml:"i"`
	J     int     `json:"j,omitempty" yaml:"j,omitempty"`
	Value float64 `json:"value,omitempty" yaml:"value,omitempty"`
}

var _ model.Model = (*Operation)(nil)

// Compare returns a KindCompare operation for positions i and j.
func Compare(i, j int) Operation {
	return Operation{Kind: KindCompare, I: i, J: j}
}

// Overwrite returns a KindOverwrite operation writing value at position k.
func Overwrite(k int, value float64) Operation {
	return Operation{Kind: KindOverwrite, I: k, Value: value}
}

// Swap returns a KindSwap operation exchanging positions i and j.
func Swap(i, j int) Operation {
	return Operation{Kind: KindSwap, I: i, J: j}
}

// Indices returns the positions o touches: one for an overwrite, two
// otherwise (possibly equal).
func (o Operation) Indices() []int {
	if o.Kind == KindOverwrite {
		return []int{o.I}
	}
	return []int{o.I, o.J}
}

// ApplyTo replays o onto values in place. Compare operations only have their
// indices checked. An index outside values yields a *errors.ValidationError
// and leaves values untouched.
func (o Operation) ApplyTo(values []float64) error {
	for _, idx := range o.Indices() {
		if idx < 0 || idx >= len(values) {
			return &errors.ValidationError{
				Type:   "Operation",
				Reason: fmt.Sprintf("index %d out of range [0, %d)", idx, len(values)),
				Value:  o.String(),
			}
		}
	}

	switch o.Kind {
	case KindOverwrite:
		values[o.I] = o.Value
	case KindSwap:
		values[o.I], values[o.J] = values[o.J], values[o.I]
	}
	return nil
}

// String renders o in call notation, for example "compare(3, 7)",
// "overwrite(4, 12.5)" or "swap(0, 1)".
func (o Operation) String() string {
	if o.Kind == KindOverwrite {
		return fmt.Sprintf("%s(%d, %s)", o.Kind, o.I, strconv.FormatFloat(o.Value, 'g', -1, 64))
	}
	return fmt.Sprintf("%s(%d, %d)", o.Kind, o.I, o.J)
}

// Redacted returns the same string as String.
func (o Operation) Redacted() string {
	return o.String()
}

// TypeName returns "Operation".
func (o Operation) TypeName() string {
	return "Operation"
}

// IsZero reports whether o is the zero Operation, which is compare(0, 0).
func (o Operation) IsZero() bool {
	return o == Operation{}
}

// Equal reports whether o and other record the same step.
func (o Operation) Equal(other Operation) bool {
	return o == other
}

// Validate checks the kind, that indices are non-negative and that an
// overwrite carries a finite value. Whether indices fit a particular array
// is checked by Trace.ValidateFor.
func (o Operation) Validate() error {
	if !o.Kind.Valid() {
		return &errors.ValidationError{Type: "Operation", Field: "Kind", Reason: "unknown kind", Value: int(o.Kind)}
	}
	if o.I < 0 {
		return &errors.ValidationError{Type: "Operation", Field: "I", Reason: "must be non-negative", Value: o.I}
	}

	switch o.Kind {
	case KindOverwrite:
		if math.IsNaN(o.Value) || math.IsInf(o.Value, 0) {
			return &errors.ValidationError{Type: "Operation", Field: "Value", Reason: "must be finite", Value: o.Value}
		}
	default:
		if o.J < 0 {
			return &errors.ValidationError{Type: "Operation", Field: "J", Reason: "must be non-negative", Value: o.J}
		}
	}
	return nil
}

// MarshalJSON validates o and encodes it as an object.
func (o Operation) MarshalJSON() ([]byte, error) {
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid Operation: %w", err)
	}

	type operationJSON Operation
	return json.Marshal(operationJSON(o))
}

// UnmarshalJSON decodes an object and validates the result.
func (o *Operation) UnmarshalJSON(data []byte) error {
	type operationJSON Operation
	var temp operationJSON

	if err := json.Unmarshal(data, &temp); err != nil {
		return &errors.UnmarshalError{Type: "Operation", Data: data, Reason: err.Error()}
	}

	*o = Operation(temp)

	if err := o.Validate(); err != nil {
		return fmt.Errorf("invalid Operation after unmarshal: %w", err)
	}
	return nil
}

// MarshalYAML validates o and encodes it as a mapping.
func (o Operation) MarshalYAML() (any, error) {
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid Operation: %w", err)
	}

	type operationYAML Operation
	return operationYAML(o), nil
}

// UnmarshalYAML decodes a mapping and validates the result.
func (o *Operation) UnmarshalYAML(node *yaml.Node) error {
	type operationYAML Operation
	var temp operationYAML

	if err := node.Decode(&temp); err != nil {
		return &errors.UnmarshalError{Type: "Operation", Data: []byte(node.Value), Reason: err.Error()}
	}

	*o = Operation(temp)

	if err := o.Validate(); err != nil {
		return fmt.Errorf("invalid Operation after unmarshal: %w", err)
	}
	return nil
}
