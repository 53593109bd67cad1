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

// Package trace defines the contract between the sort engine and the
// playback driver: a Trace is the ordered list of elementary operations a
// sort performed, expressed in the absolute coordinates of the input array.
//
// A trace is deterministic and self-sufficient. Replaying it from the first
// operation onto a copy of the original input reproduces the sorted output
// exactly:
//
//	ops, _ := engine.SortWithTrace(values)
//	replayed, _ := ops.Apply(values)
//	// replayed equals engine.Sort(values)
//
// Traces are values. They are never modified after the engine returns them,
// and a consumer that needs to keep one beyond the call SHOULD Clone it.
// There is no way to resume a trace mid-way: playback always starts at index
// zero.
package trace

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"dirpx.dev/dxsort/dxcore/errors"
	"dirpx.dev/dxsort/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Trace is an ordered sequence of operations.
type Trace []Operation

var _ model.Model = (*Trace)(nil)

// Counts holds the number of operations of each kind in a trace.
type Counts struct {
	Compare   int
	Overwrite int
	Swap      int
}

// Total returns the number of operations counted.
func (c Counts) Total() int {
	return c.Compare + c.Overwrite + c.Swap
}

// Counts tallies the operations of t by kind. Operations with an unknown
// kind are not counted.
func (t Trace) Counts() Counts {
	var c Counts
	for _, op := range t {
		switch op.Kind {
		case KindCompare:
			c.Compare++
		case KindOverwrite:
			c.Overwrite++
		case KindSwap:
			c.Swap++
		}
	}
	return c
}

// Apply replays t onto a copy of values and returns the copy. values itself
// is never modified. Replay stops at the first operation whose indices fall
// outside values; the error names its position in t.
func (t Trace) Apply(values []float64) ([]float64, error) {
	out := slices.Clone(values)
	if out == nil {
		out = []float64{}
	}

	for i, op := range t {
		if err := op.ApplyTo(out); err != nil {
			return nil, fmt.Errorf("replay step %d: %w", i, err)
		}
	}
	return out, nil
}

// ValidateFor validates every operation and checks that all indices address
// an array of length n.
func (t Trace) ValidateFor(n int) error {
	if err := t.Validate(); err != nil {
		return err
	}

	for i, op := range t {
		for _, idx := range op.Indices() {
			if idx >= n {
				return &errors.ValidationError{
					Type:   "Trace",
					Field:  fmt.Sprintf("Ops[%d]", i),
					Reason: fmt.Sprintf("index %d out of range [0, %d)", idx, n),
					Value:  op.String(),
				}
			}
		}
	}
	return nil
}

// Validate validates every operation of t and reports all failures at once.
func (t Trace) Validate() error {
	return model.ValidateAll([]Operation(t))
}

// Clone returns a copy of t that shares no backing array with it.
func (t Trace) Clone() Trace {
	if t == nil {
		return nil
	}
	return slices.Clone(t)
}

// Equal reports whether t and other hold the same operations in the same
// order. A nil trace equals an empty one.
func (t Trace) Equal(other Trace) bool {
	return slices.Equal(t, other)
}

// String lists every operation, one per line. It is meant for tests and
// debugging; use Redacted for logs.
func (t Trace) String() string {
	var b strings.Builder
	for i, op := range t {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(op.String())
	}
	return b.String()
}

// Redacted summarizes t by length and per-kind counts.
func (t Trace) Redacted() string {
	c := t.Counts()
	return fmt.Sprintf("Trace{len=%d, compare=%d, overwrite=%d, swap=%d}", len(t), c.Compare, c.Overwrite, c.Swap)
}

// TypeName returns "Trace".
func (t Trace) TypeName() string {
	return "Trace"
}

// IsZero reports whether t holds no operations.
func (t Trace) IsZero() bool {
	return len(t) == 0
}

// MarshalJSON validates t and encodes it as an array. A nil trace encodes as
// an empty array.
func (t Trace) MarshalJSON() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid Trace: %w", err)
	}
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Operation(t))
}

// UnmarshalJSON decodes an array of operations and validates each of them.
func (t *Trace) UnmarshalJSON(data []byte) error {
	var ops []Operation
	if err := json.Unmarshal(data, &ops); err != nil {
		return fmt.Errorf("failed to unmarshal Trace: %w", err)
	}
	*t = Trace(ops)
	return nil
}

// MarshalYAML validates t and encodes it as a sequence.
func (t Trace) MarshalYAML() (any, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid Trace: %w", err)
	}
	if t == nil {
		return []Operation{}, nil
	}
	return []Operation(t), nil
}

// UnmarshalYAML decodes a sequence of operations and validates each of them.
func (t *Trace) UnmarshalYAML(node *yaml.Node) error {
	var ops []Operation
	if err := node.Decode(&ops); err != nil {
		return fmt.Errorf("failed to unmarshal Trace: %w", err)
	}
	*t = Trace(ops)
	return nil
}
