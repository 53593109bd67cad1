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

package semver_test

import (
	"encoding/json"
	"testing"

	"dirpx.dev/dxsort/dxcore/model/semver"
	"gopkg.in/yaml.v3"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    semver.Version
		wantErr bool
	}{
		{name: "simple", input: "1.2.3", want: semver.Version{Major: 1, Minor: 2, Patch: 3}},
		{name: "v_prefix", input: "v2.0.0", want: semver.Version{Major: 2}},
		{name: "prerelease", input: "1.0.0-alpha.1", want: semver.Version{Major: 1, Prerelease: "alpha.1"}},
		{name: "metadata", input: "1.1.0+build.7", want: semver.Version{Major: 1, Minor: 1, Metadata: "build.7"}},
		{name: "missing_patch", input: "1.2", wantErr: true},
		{name: "garbage", input: "trace", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := semver.ParseVersion(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVersion(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseVersion(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestVersion_String(t *testing.T) {
	tests := []struct {
		version semver.Version
		want    string
	}{
		{semver.Version{Major: 1, Minor: 2, Patch: 3}, "1.2.3"},
		{semver.Version{Major: 1, Prerelease: "rc.1", Metadata: "sha.5114f85"}, "1.0.0-rc.1+sha.5114f85"},
		{semver.Version{}, "0.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.version.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "1.0.1", -1},
		{"2.0.0", "1.9.9", 1},
		{"1.0.0-alpha", "1.0.0", -1},
		{"1.0.0+a", "1.0.0+b", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			a, b := semver.MustParse(tt.a), semver.MustParse(tt.b)
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}

	neg := semver.Version{Major: -1}
	if got := neg.Compare(semver.Version{}); got != -1 {
		t.Errorf("Compare() on invalid version = %d, want -1", got)
	}
}

func TestVersion_Accepts(t *testing.T) {
	reader := semver.MustParse("1.2.0")
	tests := []struct {
		written string
		want    bool
	}{
		{"1.0.0", true},
		{"1.2.5", true},
		{"1.3.0", false},
		{"2.0.0", false},
		{"0.9.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.written, func(t *testing.T) {
			if got := reader.Accepts(semver.MustParse(tt.written)); got != tt.want {
				t.Errorf("Accepts(%s) = %v, want %v", tt.written, got, tt.want)
			}
		})
	}
}

func TestVersion_Validate(t *testing.T) {
	if err := semver.MustParse("1.0.0").Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
	if err := (semver.Version{Minor: -3}).Validate(); err == nil {
		t.Error("Validate() on negative minor: expected error")
	}
}

func TestVersion_Codecs(t *testing.T) {
	v := semver.MustParse("1.4.2-beta.2")

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `"1.4.2-beta.2"` {
		t.Errorf("json.Marshal() = %s", data)
	}
	var fromJSON semver.Version
	if err := json.Unmarshal(data, &fromJSON); err != nil || fromJSON != v {
		t.Errorf("json round-trip = %+v, %v", fromJSON, err)
	}

	data, err = yaml.Marshal(v)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	var fromYAML semver.Version
	if err := yaml.Unmarshal(data, &fromYAML); err != nil || fromYAML != v {
		t.Errorf("yaml round-trip = %+v, %v", fromYAML, err)
	}

	var bad semver.Version
	if err := json.Unmarshal([]byte(`42`), &bad); err == nil {
		t.Error("json.Unmarshal(42): expected error")
	}
}
