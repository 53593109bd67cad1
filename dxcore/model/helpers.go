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
	"fmt"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// Checked is satisfied by any value that can validate itself and name its
// type. Enums and value structs satisfy it with value receivers, which makes
// slices of them usable with ValidateAll without taking addresses.
type Checked interface {
	Validatable
	Identifiable
}

// Decodable is the pointer side of a Model. Unmarshal methods have pointer
// receivers, so decoding helpers are parameterized by the pointer type.
type Decodable[T any] interface {
	*T
	Model
}

// ValidateAll validates every value in the slice and returns all failures
// combined into a single error, or nil when every value is valid.
//
// Each failure is labeled with the value's index and TypeName so that a
// caller validating a whole trace can tell which operation is broken:
//
//	model[17] (Operation): dxsort: invalid Operation.I: must be non-negative
//
// The function never stops at the first failure. Empty and nil slices are
// valid.
func ValidateAll[T Checked](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// SafeString returns m.String() when unsafe is true and m.Redacted()
// otherwise. Loggers that may receive very large traces SHOULD pass false.
func SafeString[T Loggable](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON validates m and then marshals it to JSON.
func ToJSON[T Checked](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML validates m and then marshals it to YAML.
func ToYAML[T Checked](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON unmarshals data into m and validates the result. Fields absent
// from data keep the value m held before the call.
func FromJSON[T any, PT Decodable[T]](data []byte, m PT) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", m.TypeName(), err)
	}
	return nil
}

// FromYAML unmarshals data into m and validates the result. An empty
// document leaves m unchanged, and it is still validated.
func FromYAML[T any, PT Decodable[T]](data []byte, m PT) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", m.TypeName(), err)
	}
	return nil
}
