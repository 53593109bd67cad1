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
	"slices"

	"dirpx.dev/dxsort/dxcore/errors"
	"dirpx.dev/dxsort/dxcore/model"
	"dirpx.dev/dxsort/dxcore/model/semver"
	"gopkg.in/yaml.v3"
)

// FormatVersion is the recording format written by this package. Readers
// accept recordings whose format it Accepts.
var FormatVersion = semver.MustParse("1.0.0")

// Recording is a self-describing sort run: the input, the algorithm that
// sorted it and the trace it produced. A Recording can be handed to a
// consumer that never saw the original array and still be replayed.
type Recording struct {
	// Format is the recording format the value was written in.
	Format semver.Version `json:"format" yaml:"format"`

	// Algorithm is the sort that produced Ops.
	Algorithm model.Algorithm `json:"algorithm" yaml:"algorithm"`

	// Input is the array before sorting.
	Input []float64 `json:"input" yaml:"input"`

	// Ops is the trace produced by Algorithm over Input.
	Ops Trace `json:"ops" yaml:"ops"`
}

var _ model.Model = (*Recording)(nil)

// NewRecording builds a Recording stamped with FormatVersion. input and ops
// are copied.
func NewRecording(alg model.Algorithm, input []float64, ops Trace) (Recording, error) {
	r := Recording{
		Format:    FormatVersion,
		Algorithm: alg,
		Input:     slices.Clone(input),
		Ops:       ops.Clone(),
	}

	if err := r.Validate(); err != nil {
		return Recording{}, fmt.Errorf("invalid Recording: %w", err)
	}
	return r, nil
}

// Replay applies Ops to a copy of Input and returns the sorted result.
func (r Recording) Replay() ([]float64, error) {
	return r.Ops.Apply(r.Input)
}

// EncodeJSON validates r and returns it as JSON.
func EncodeJSON(r Recording) ([]byte, error) {
	return model.ToJSON(r)
}

// EncodeYAML validates r and returns it as YAML.
func EncodeYAML(r Recording) ([]byte, error) {
	return model.ToYAML(r)
}

// DecodeJSON parses a JSON recording and validates it.
func DecodeJSON(data []byte) (Recording, error) {
	var r Recording
	if err := model.FromJSON(data, &r); err != nil {
		return Recording{}, err
	}
	return r, nil
}

// DecodeYAML parses a YAML recording and validates it. An empty document is
// rejected because the zero Recording has no readable format.
func DecodeYAML(data []byte) (Recording, error) {
	var r Recording
	if err := model.FromYAML(data, &r); err != nil {
		return Recording{}, err
	}
	return r, nil
}

// Validate checks that the format is readable by this package, that every
// input value is finite, that the operation kinds match the algorithm and
// that every index addresses Input.
func (r Recording) Validate() error {
	if err := r.Format.Validate(); err != nil {
		return fmt.Errorf("invalid Recording Format: %w", err)
	}
	if !FormatVersion.Accepts(r.Format) {
		return &errors.ValidationError{
			Type:   "Recording",
			Field:  "Format",
			Reason: fmt.Sprintf("unsupported format %s (reader is %s)", r.Format, FormatVersion),
			Value:  r.Format.String(),
		}
	}
	if err := r.Algorithm.Validate(); err != nil {
		return fmt.Errorf("invalid Recording Algorithm: %w", err)
	}

	for i, v := range r.Input {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &errors.ValidationError{
				Type:   "Recording",
				Field:  fmt.Sprintf("Input[%d]", i),
				Reason: "must be finite",
				Value:  v,
			}
		}
	}

	for i, op := range r.Ops {
		if !r.allows(op.Kind) {
			return &errors.ValidationError{
				Type:   "Recording",
				Field:  fmt.Sprintf("Ops[%d]", i),
				Reason: fmt.Sprintf("%s operation in a %s recording", op.Kind, r.Algorithm),
				Value:  op.String(),
			}
		}
	}

	return r.Ops.ValidateFor(len(r.Input))
}

func (r Recording) allows(k Kind) bool {
	if r.Algorithm == model.Bubble {
		return k == KindSwap
	}
	return k == KindCompare || k == KindOverwrite
}

// Clone returns a deep copy of r.
func (r Recording) Clone() Recording {
	return Recording{
		Format:    r.Format,
		Algorithm: r.Algorithm,
		Input:     slices.Clone(r.Input),
		Ops:       r.Ops.Clone(),
	}
}

// Equal reports whether r and other describe the same run. Nil and empty
// slices compare equal.
func (r Recording) Equal(other Recording) bool {
	return r.Format == other.Format &&
		r.Algorithm == other.Algorithm &&
		slices.Equal(r.Input, other.Input) &&
		r.Ops.Equal(other.Ops)
}

// String renders the header and the full trace.
func (r Recording) String() string {
	return fmt.Sprintf("Recording{format=%s, algorithm=%s, input=%v}\n%s", r.Format, r.Algorithm, r.Input, r.Ops)
}

// Redacted renders the header and a summary of the trace.
func (r Recording) Redacted() string {
	return fmt.Sprintf("Recording{format=%s, algorithm=%s, n=%d, ops=%s}", r.Format, r.Algorithm, len(r.Input), r.Ops.Redacted())
}

// TypeName returns "Recording".
func (r Recording) TypeName() string {
	return "Recording"
}

// IsZero reports whether r is the zero Recording.
func (r Recording) IsZero() bool {
	return r.Format.IsZero() && r.Algorithm.IsZero() && len(r.Input) == 0 && len(r.Ops) == 0
}

// MarshalJSON validates r and encodes it as an object.
func (r Recording) MarshalJSON() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid Recording: %w", err)
	}

	type recordingJSON Recording
	temp := recordingJSON(r)
	if temp.Input == nil {
		temp.Input = []float64{}
	}
	return json.Marshal(temp)
}

// UnmarshalJSON decodes an object and validates the result.
func (r *Recording) UnmarshalJSON(data []byte) error {
	type recordingJSON Recording
	var temp recordingJSON

	if err := json.Unmarshal(data, &temp); err != nil {
		return &errors.UnmarshalError{Type: "Recording", Data: data, Reason: err.Error()}
	}

	*r = Recording(temp)

	if err := r.Validate(); err != nil {
		return fmt.Errorf("invalid Recording after unmarshal: %w", err)
	}
	return nil
}

// MarshalYAML validates r and encodes it as a mapping.
func (r Recording) MarshalYAML() (any, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid Recording: %w", err)
	}

	type recordingYAML Recording
	temp := recordingYAML(r)
	if temp.Input == nil {
		temp.Input = []float64{}
	}
	return temp, nil
}

// UnmarshalYAML decodes a mapping and validates the result.
func (r *Recording) UnmarshalYAML(node *yaml.Node) error {
	type recordingYAML Recording
	var temp recordingYAML

	if err := node.Decode(&temp); err != nil {
		return fmt.Errorf("failed to unmarshal Recording: %w", err)
	}

	*r = Recording(temp)

	if err := r.Validate(); err != nil {
		return fmt.Errorf("invalid Recording after unmarshal: %w", err)
	}
	return nil
}
