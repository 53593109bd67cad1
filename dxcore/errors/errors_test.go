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

package errors

import (
	stderrors "errors"
	"fmt"
	"math"
	"testing"
)

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			"Kind type",
			&ParseError{Type: "Kind", Value: "shuffle"},
			"dxsort: invalid Kind value: shuffle",
		},
		{
			"Algorithm type",
			&ParseError{Type: "Algorithm", Value: "quick"},
			"dxsort: invalid Algorithm value: quick",
		},
		{
			"empty value",
			&ParseError{Type: "Highlight", Value: ""},
			"dxsort: invalid Highlight value: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *MarshalError
		want string
	}{
		{
			"positive value",
			&MarshalError{Type: "Kind", Value: 99},
			"dxsort: cannot marshal invalid Kind value: 99",
		},
		{
			"negative value",
			&MarshalError{Type: "Algorithm", Value: -1},
			"dxsort: cannot marshal invalid Algorithm value: -1",
		},
		{
			"value 42 should be decimal not unicode",
			&MarshalError{Type: "Highlight", Value: 42},
			"dxsort: cannot marshal invalid Highlight value: 42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("MarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnmarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *UnmarshalError
		want string
	}{
		{
			"empty data",
			&UnmarshalError{Type: "Kind", Data: []byte{}, Reason: "empty data"},
			"dxsort: cannot unmarshal Kind: empty data",
		},
		{
			"data is not part of message",
			&UnmarshalError{Type: "Operation", Data: []byte(`{broken`), Reason: "unexpected end of JSON input"},
			"dxsort: cannot unmarshal Operation: unexpected end of JSON input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("UnmarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			"with field",
			&ValidationError{Type: "Config", Field: "ArraySize", Reason: "must be at least 5", Value: 1},
			"dxsort: invalid Config.ArraySize: must be at least 5",
		},
		{
			"without field",
			&ValidationError{Type: "Trace", Reason: "index out of range"},
			"dxsort: invalid Trace: index out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ValidationError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInputError_Error(t *testing.T) {
	err := &InputError{Index: 3, Value: math.NaN(), Reason: "not a number"}
	want := "dxsort: invalid input at index 3: not a number"
	if got := err.Error(); got != want {
		t.Errorf("InputError.Error() = %q, want %q", got, want)
	}
}

func TestSentinels_Wrap(t *testing.T) {
	wrapped := fmt.Errorf("sort: %w", ErrInvalidInput)
	if !stderrors.Is(wrapped, ErrInvalidInput) {
		t.Errorf("errors.Is(%v, ErrInvalidInput) = false, want true", wrapped)
	}
	if stderrors.Is(wrapped, ErrBusy) {
		t.Errorf("errors.Is(%v, ErrBusy) = true, want false", wrapped)
	}

	var inErr *InputError
	joined := fmt.Errorf("%w: %w", ErrInvalidInput, &InputError{Index: 1, Reason: "infinite"})
	if !stderrors.As(joined, &inErr) || inErr.Index != 1 {
		t.Errorf("errors.As(%v, *InputError) failed", joined)
	}
}

func TestErrors_Implements_Error_Interface(t *testing.T) {
	var _ error = (*ParseError)(nil)
	var _ error = (*MarshalError)(nil)
	var _ error = (*UnmarshalError)(nil)
	var _ error = (*ValidationError)(nil)
	var _ error = (*InputError)(nil)
}
