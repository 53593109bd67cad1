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

package model_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"dirpx.dev/dxsort/dxcore/model"
	"gopkg.in/yaml.v3"
)

// snapshot demonstrates a complete Model implementation: a labelled array
// together with the seed that generated it.
type snapshot struct {
	Label  string    `json:"label" yaml:"label"`
	Values []float64 `json:"values" yaml:"values"`
	Seed   uint64    `json:"seed" yaml:"seed"`
}

func (s snapshot) Validate() error {
	if s.Label == "" {
		return errors.New("label required")
	}
	if len(s.Values) == 0 {
		return errors.New("values required")
	}
	return nil
}

func (s snapshot) TypeName() string {
	return "snapshot"
}

func (s snapshot) IsZero() bool {
	return s.Label == "" && len(s.Values) == 0 && s.Seed == 0
}

// Redacted hides the values and the seed.
func (s snapshot) Redacted() string {
	return fmt.Sprintf("snapshot{Label:%s, Values:[%d values], Seed:[REDACTED]}", s.Label, len(s.Values))
}

func (s snapshot) String() string {
	return fmt.Sprintf("snapshot{Label:%s, Values:%v, Seed:%d}", s.Label, s.Values, s.Seed)
}

func (s snapshot) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	type alias snapshot
	return json.Marshal((alias)(s))
}

func (s *snapshot) UnmarshalJSON(data []byte) error {
	type alias snapshot
	if err := json.Unmarshal(data, (*alias)(s)); err != nil {
		return err
	}
	return s.Validate()
}

func (s snapshot) MarshalYAML() (interface{}, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	type alias snapshot
	return (alias)(s), nil
}

func (s *snapshot) UnmarshalYAML(node *yaml.Node) error {
	type alias snapshot
	if err := node.Decode((*alias)(s)); err != nil {
		return err
	}
	return s.Validate()
}

var _ model.Model = (*snapshot)(nil)

func TestModel_Validate(t *testing.T) {
	tests := []struct {
		name    string
		model   snapshot
		wantErr bool
	}{
		{
			name:    "valid model",
			model:   snapshot{Label: "run-1", Values: []float64{3, 1, 2}},
			wantErr: false,
		},
		{
			name:    "missing label",
			model:   snapshot{Values: []float64{1}},
			wantErr: true,
		},
		{
			name:    "missing values",
			model:   snapshot{Label: "run-1"},
			wantErr: true,
		},
		{
			name:    "empty model",
			model:   snapshot{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.model.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestModel_IsZero(t *testing.T) {
	if !(snapshot{}).IsZero() {
		t.Error("IsZero() = false for zero model")
	}
	if (snapshot{Seed: 1}).IsZero() {
		t.Error("IsZero() = true for non-zero model")
	}
}

func TestModel_Redacted(t *testing.T) {
	m := snapshot{Label: "run-1", Values: []float64{412, 7}, Seed: 9876}

	redacted := m.Redacted()

	if !strings.Contains(redacted, "run-1") {
		t.Errorf("Redacted() should contain label, got %q", redacted)
	}
	if strings.Contains(redacted, "412") {
		t.Errorf("Redacted() should not contain values, got %q", redacted)
	}
	if strings.Contains(redacted, "9876") {
		t.Errorf("Redacted() should not contain seed, got %q", redacted)
	}
	if !strings.Contains(redacted, "[2 values]") {
		t.Errorf("Redacted() should report the value count, got %q", redacted)
	}
	if !strings.Contains(m.String(), "9876") {
		t.Errorf("String() should contain seed, got %q", m.String())
	}
}

func TestModel_JSON_RoundTrip(t *testing.T) {
	original := snapshot{Label: "run-1", Values: []float64{3, 1, 2}, Seed: 42}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var decoded snapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if decoded.String() != original.String() {
		t.Errorf("JSON round-trip failed: got %v, want %v", decoded, original)
	}
}

func TestModel_YAML_RoundTrip(t *testing.T) {
	original := snapshot{Label: "run-1", Values: []float64{3, 1, 2}, Seed: 42}

	data, err := yaml.Marshal(original)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}

	var decoded snapshot
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if decoded.String() != original.String() {
		t.Errorf("YAML round-trip failed: got %v, want %v", decoded, original)
	}
}

func TestModel_Marshal_FailsOnInvalid(t *testing.T) {
	invalid := snapshot{}

	if _, err := json.Marshal(invalid); err == nil {
		t.Error("json.Marshal() should fail on invalid model")
	}
	if _, err := yaml.Marshal(invalid); err == nil {
		t.Error("yaml.Marshal() should fail on invalid model")
	}
}

func TestModel_Unmarshal_FailsOnInvalid(t *testing.T) {
	var m snapshot
	if err := json.Unmarshal([]byte(`{"values":[1,2]}`), &m); err == nil {
		t.Error("json.Unmarshal() should fail when validation fails")
	}

	var m2 snapshot
	if err := yaml.Unmarshal([]byte("values: [1, 2]"), &m2); err == nil {
		t.Error("yaml.Unmarshal() should fail when validation fails")
	}
}

func TestModel_TypeName(t *testing.T) {
	if got := (snapshot{}).TypeName(); got != "snapshot" {
		t.Errorf("TypeName() = %q, want %q", got, "snapshot")
	}
}
