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

// Package model defines the contracts every dxsort value type implements,
// together with the small enums shared by the engine, the playback driver
// and the visualizer (Algorithm and Highlight).
//
// Value types that cross a package boundary (a trace Operation, a Trace, a
// Recording of a sort run) implement Model so that they can be validated,
// serialized to JSON and YAML, logged and compared in a uniform way.
// Unmarshal methods have pointer receivers, so it is the pointer type that
// implements Model. ValidateAll, ToJSON and ToYAML take values and only need
// Checked; FromJSON and FromYAML take the pointer and need the full Model.
//
// Model values are treated as immutable. Concurrent reads are safe;
// concurrent writes require external synchronization.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining the contracts required for dxsort
// value types: Validatable, Serializable, Loggable, Identifiable and
// ZeroCheckable.
//
// Example implementation:
//
//	type Operation struct {
//	    Kind  Kind
//	    I, J  int
//	    Value float64
//	}
//
//	func (o Operation) Validate() error { ... }
//	func (o Operation) TypeName() string { return "Operation" }
//	func (o Operation) IsZero() bool { return o == Operation{} }
//	func (o Operation) Redacted() string { return o.String() }
//	func (o Operation) String() string { return "compare(1, 2)" }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ model.Model = (*Operation)(nil)
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable is implemented by types that check their own invariants.
//
// Validate MUST return nil if and only if the instance is fully valid. It
// MUST be fast, deterministic and free of side effects: no I/O and no
// logging. Errors SHOULD name the offending field, for example
// "Operation.I must be non-negative" rather than "validation failed".
//
// Callers SHOULD validate at boundaries: after unmarshaling external data,
// before handing a trace to the playback driver, and after building a value
// from user input.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants.
	Validate() error
}

// Serializable is implemented by types with JSON and YAML codecs.
//
// Marshal methods MUST validate first and refuse to encode an invalid value.
// Unmarshal methods MUST validate the decoded value and return the
// validation error when it is invalid; callers MUST NOT use the receiver in
// that case. A JSON round-trip and a YAML round-trip MUST both reproduce an
// equal value.
//
// Implementations SHOULD use a local alias type to delegate to the standard
// codecs without re-entering the custom method:
//
//	func (o Operation) MarshalJSON() ([]byte, error) {
//	    if err := o.Validate(); err != nil {
//	        return nil, fmt.Errorf("cannot marshal invalid Operation: %w", err)
//	    }
//	    type operationJSON Operation
//	    return json.Marshal(operationJSON(o))
//	}
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable is implemented by types that render themselves for logs.
//
// Redacted returns the form used in production logs and MUST be cheap to
// compute. For large values such as a Trace it SHOULD summarize (length and
// per-kind counts) instead of listing every element. String MAY be
// arbitrarily detailed and is meant for tests and debugging.
type Loggable interface {
	// Redacted returns a compact representation suitable for logs.
	Redacted() string

	// String returns a full human-readable representation.
	String() string
}

// Identifiable is implemented by types that report a canonical type name.
//
// The name MUST be constant for the type, CamelCase and without a package
// prefix (for example, "Operation", "Trace", "Recording"). It is used in
// error messages and by ValidateAll to label failures.
type Identifiable interface {
	// TypeName returns the canonical name of this model type.
	TypeName() string
}

// ZeroCheckable is implemented by types that can report an empty state.
//
// IsZero MUST return true if and only if the instance carries no meaningful
// data. Note that for enums the zero constant is usually a valid value (the
// zero Kind is Compare), so IsZero returning true does not imply an error.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in its zero state.
	IsZero() bool
}

// Comparable is implemented by types that can be compared for equality.
//
// Equal MUST be reflexive, symmetric, transitive and free of side effects.
type Comparable[T any] interface {
	// Equal reports whether this instance is equal to other.
	Equal(other T) bool
}

// Cloneable is implemented by types that can produce deep copies.
//
// The returned instance MUST share no mutable state with the receiver. This
// matters for Trace and Recording, whose backing slices would otherwise be
// aliased between a producer and a consumer.
type Cloneable[T any] interface {
	// Clone returns a deep copy of the receiver.
	Clone() T
}
