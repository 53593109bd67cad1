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
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestTrace_Apply(t *testing.T) {
	input := []float64{2, 1}
	tr := Trace{Compare(0, 1), Overwrite(0, 1), Compare(0, 0), Overwrite(1, 2)}

	got, err := tr.Apply(input)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got[0] != 1 || got[1] != 2 {
		t.Errorf("Apply() = %v, want [1 2]", got)
	}
	if input[0] != 2 || input[1] != 1 {
		t.Errorf("Apply() mutated its input: %v", input)
	}
}

func TestTrace_Apply_Empty(t *testing.T) {
	got, err := Trace(nil).Apply(nil)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Apply(nil) = %#v, want empty non-nil slice", got)
	}
}

func TestTrace_Apply_OutOfRange(t *testing.T) {
	_, err := Trace{Swap(0, 1), Swap(1, 2)}.Apply([]float64{1, 2})
	if err == nil || !strings.Contains(err.Error(), "replay step 1") {
		t.Errorf("Apply() error = %v, want replay step 1 failure", err)
	}
}

func TestTrace_ValidateFor(t *testing.T) {
	tr := Trace{Compare(0, 3), Overwrite(3, 1)}

	if err := tr.ValidateFor(4); err != nil {
		t.Errorf("ValidateFor(4) error = %v, want nil", err)
	}
	err := tr.ValidateFor(3)
	if err == nil || !strings.Contains(err.Error(), "Trace.Ops[0]") {
		t.Errorf("ValidateFor(3) error = %v, want Ops[0] failure", err)
	}
	if err := (Trace{Compare(-1, 0)}).ValidateFor(5); err == nil {
		t.Error("ValidateFor() with negative index: expected error")
	}
}

func TestTrace_Validate_ReportsEveryBadOperation(t *testing.T) {
	if err := (Trace{Compare(0, 1), Overwrite(1, 2.5)}).Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
	if err := Trace(nil).Validate(); err != nil {
		t.Errorf("Validate(nil) error = %v, want nil", err)
	}

	tr := Trace{Compare(0, 1), Compare(-1, 0), Overwrite(2, 1), {Kind: Kind(7)}}
	err := tr.Validate()
	if err == nil {
		t.Fatal("Validate() error = nil, want error")
	}
	msg := err.Error()
	for _, want := range []string{"model[1] (Operation)", "model[3] (Operation)"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Validate() error %q does not mention %q", msg, want)
		}
	}
	if strings.Contains(msg, "model[0]") || strings.Contains(msg, "model[2]") {
		t.Errorf("Validate() error %q mentions a valid operation", msg)
	}
}

func TestTrace_Counts(t *testing.T) {
	tr := Trace{Compare(0, 1), Overwrite(0, 4), Compare(1, 1), Overwrite(1, 5), Swap(0, 1)}
	c := tr.Counts()
	if c.Compare != 2 || c.Overwrite != 2 || c.Swap != 1 || c.Total() != 5 {
		t.Errorf("Counts() = %+v", c)
	}
	if got, want := tr.Redacted(), "Trace{len=5, compare=2, overwrite=2, swap=1}"; got != want {
		t.Errorf("Redacted() = %q, want %q", got, want)
	}
}

func TestTrace_CloneIsIndependent(t *testing.T) {
	tr := Trace{Swap(0, 1)}
	clone := tr.Clone()
	clone[0] = Swap(2, 3)
	if tr[0] != Swap(0, 1) {
		t.Errorf("Clone() shares storage: original = %v", tr)
	}
	if Trace(nil).Clone() != nil {
		t.Error("Clone(nil) != nil")
	}
}

func TestTrace_JSON(t *testing.T) {
	tr := Trace{Compare(0, 1), Overwrite(0, 3)}

	data, err := json.Marshal(tr)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	want := `[{"kind":"compare","i":0,"j":1},{"kind":"overwrite","i":0,"value":3}]`
	if string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}

	var back Trace
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if !back.Equal(tr) {
		t.Errorf("round-trip = %v, want %v", back, tr)
	}

	empty, err := json.Marshal(Trace(nil))
	if err != nil || string(empty) != "[]" {
		t.Errorf("json.Marshal(nil) = %s, %v; want []", empty, err)
	}
}

func TestTrace_YAML(t *testing.T) {
	tr := Trace{Swap(1, 2), Swap(0, 1)}

	data, err := yaml.Marshal(tr)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}

	var back Trace
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if !back.Equal(tr) {
		t.Errorf("round-trip = %v, want %v", back, tr)
	}
}
