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

// Package semver provides the semantic version value used to stamp trace
// recordings with the format they were written in.
//
// A consumer that replays a recording produced by another build needs to know
// whether it understands the operation encoding. The rule is the usual
// semantic versioning one: a reader accepts any recording whose Major equals
// its own and whose Minor is not newer than its own (see Version.Accepts).
//
// Parsing and precedence are delegated to github.com/blang/semver/v4.
package semver

import (
	"encoding/json"
	"fmt"
	"strings"

	dxerrors "dirpx.dev/dxsort/dxcore/errors"
	bsemver "github.com/blang/semver/v4"

	"gopkg.in/yaml.v3"
)

// Version is a Semantic Versioning 2.0.0 value:
// Major.Minor.Patch[-Prerelease][+Metadata].
//
// Build metadata does not affect precedence. The zero value is 0.0.0.
type Version struct {
	// Major changes when the operation encoding changes incompatibly.
	Major int

	// Minor changes when fields are added that older readers may ignore.
	Minor int

	// Patch changes for fixes that do not affect the encoding.
	Patch int

	// Prerelease is the dot-separated pre-release identifier, without "-".
	Prerelease string

	// Metadata is the dot-separated build metadata, without "+".
	Metadata string
}

// ParseVersion parses s, with or without a leading "v".
func ParseVersion(s string) (Version, error) {
	s = strings.TrimPrefix(s, "v")

	bv, err := bsemver.Parse(s)
	if err != nil {
		return Version{}, fmt.Errorf("invalid version format %q: %w", s, err)
	}

	return fromBlangSemver(bv), nil
}

// MustParse is like ParseVersion but panics on error. It is meant for
// package-level constants.
func MustParse(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the canonical textual form without a "v" prefix.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		s += "-" + v.Prerelease
	}
	if v.Metadata != "" {
		s += "+" + v.Metadata
	}
	return s
}

func (v Version) toBlangSemver() (bsemver.Version, error) {
	bv, err := bsemver.Parse(v.String())
	if err != nil {
		return bsemver.Version{}, fmt.Errorf("failed to convert to blang/semver: %w", err)
	}
	return bv, nil
}

func fromBlangSemver(bv bsemver.Version) Version {
	var prerelease string
	if len(bv.Pre) > 0 {
		parts := make([]string, len(bv.Pre))
		for i, p := range bv.Pre {
			parts[i] = p.String()
		}
		prerelease = strings.Join(parts, ".")
	}

	var metadata string
	if len(bv.Build) > 0 {
		metadata = strings.Join(bv.Build, ".")
	}

	return Version{
		Major:      int(bv.Major),
		Minor:      int(bv.Minor),
		Patch:      int(bv.Patch),
		Prerelease: prerelease,
		Metadata:   metadata,
	}
}

// Validate reports whether v is a well-formed semantic version.
func (v Version) Validate() error {
	if v.Major < 0 || v.Minor < 0 || v.Patch < 0 {
		return &dxerrors.ValidationError{
			Type:   "Version",
			Reason: "components must be non-negative",
			Value:  v.String(),
		}
	}

	if _, err := v.toBlangSemver(); err != nil {
		return &dxerrors.ValidationError{Type: "Version", Reason: err.Error(), Value: v.String()}
	}

	return nil
}

// TypeName returns "Version".
func (v Version) TypeName() string {
	return "Version"
}

// Redacted returns the same string as String.
func (v Version) Redacted() string {
	return v.String()
}

// IsZero reports whether v is 0.0.0 with no pre-release or metadata.
func (v Version) IsZero() bool {
	return v == Version{}
}

// Compare returns -1, 0 or +1 depending on the precedence of v relative to
// other. Invalid versions compare by their numeric core only.
func (v Version) Compare(other Version) int {
	bv, errA := v.toBlangSemver()
	bo, errB := other.toBlangSemver()
	if errA == nil && errB == nil {
		return bv.Compare(bo)
	}

	for _, d := range [][2]int{{v.Major, other.Major}, {v.Minor, other.Minor}, {v.Patch, other.Patch}} {
		switch {
		case d[0] < d[1]:
			return -1
		case d[0] > d[1]:
			return 1
		}
	}
	return 0
}

// Less reports whether v has lower precedence than other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// Equal reports whether v and other have the same precedence.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// Accepts reports whether a reader at version v can decode data written at
// version written: the majors match and written's minor is not newer.
func (v Version) Accepts(written Version) bool {
	return v.Major == written.Major && written.Minor <= v.Minor
}

// MarshalJSON encodes v as a JSON string.
func (v Version) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes a JSON string via ParseVersion.
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &dxerrors.UnmarshalError{Type: "Version", Data: data, Reason: err.Error()}
	}

	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}

	*v = parsed
	return nil
}

// MarshalYAML encodes v as a YAML string.
func (v Version) MarshalYAML() (any, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v.String(), nil
}

// UnmarshalYAML decodes a YAML string via ParseVersion.
func (v *Version) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return &dxerrors.UnmarshalError{Type: "Version", Reason: err.Error()}
	}

	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}

	*v = parsed
	return nil
}
