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

// Package errors provides the error value types shared by every dxsort
// package.
//
// The sort engine, the trace model and the playback driver all report
// failures with the same small set of types so that callers can recognize
// them with errors.As and errors.Is regardless of which layer produced them.
// The types are plain value carriers with stable message formats:
//
//   - ParseError
//     Returned when parsing a string into an enum-like type (Kind,
//     Algorithm, Highlight) fails.
//
//   - MarshalError
//     Returned when marshaling an enum-like value that does not correspond
//     to a known constant.
//
//   - UnmarshalError
//     Returned when decoding JSON or YAML into a typed value fails.
//
//   - ValidationError
//     Returned by Validate methods when a model or configuration value
//     violates its constraints.
//
//   - InputError
//     Returned (wrapped together with ErrInvalidInput) when a sequence handed
//     to the sort engine contains a value that cannot be ordered numerically,
//     such as NaN or an infinity.
//
// Two sentinels complete the set: ErrInvalidInput marks every rejected engine
// input, and ErrBusy marks a playback or reset request issued while a
// playback session is still running.
package errors

import (
	stderrors "errors"
	"strconv"
)

// ErrInvalidInput is wrapped by every error the sort engine returns for a
// sequence it refuses to sort. Callers SHOULD test for it with errors.Is.
var ErrInvalidInput = stderrors.New("dxsort: invalid input")

// ErrBusy is returned when a playback session is already in progress and the
// request would interfere with it. Nothing is scheduled or mutated when
// ErrBusy is returned.
var ErrBusy = stderrors.New("dxsort: playback in progress")

// ParseError is returned when parsing a string into a strongly typed enum-like
// value fails.
//
// Type identifies the logical type being parsed (for example, "Kind" or
// "Algorithm"), and Value contains the exact string that could not be
// interpreted.
//
// # Example
//
//	func ParseKind(s string) (Kind, error) {
//	    switch s {
//	    case "compare":
//	        return Compare, nil
//	    default:
//	        // "dxsort: invalid Kind value: <value>"
//	        return 0, &errors.ParseError{Type: "Kind", Value: s}
//	    }
//	}
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Kind").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxsort: invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	return "dxsort: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails due to it being
// outside the set of valid constants.
//
// In most cases a MarshalError indicates a programming error, for example a
// Kind produced by a numeric cast that was never validated.
type MarshalError struct {
	// Type is the logical name of the type being marshaled (for example, "Kind").
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxsort: cannot marshal invalid {Type} value: {Value}"
//
// where Value is rendered as a decimal integer.
func (e *MarshalError) Error() string {
	return "dxsort: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Type identifies the logical type being populated, Data contains the
// original raw payload and Reason describes what went wrong. The Data field
// is not part of the formatted message; callers MAY log it separately.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxsort: cannot unmarshal {Type}: {Reason}"
func (e *UnmarshalError) Error() string {
	return "dxsort: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the type being validated (for example, "Operation" or
// "Config"), Field optionally names the offending field, Reason explains the
// failure and Value optionally carries the rejected value.
//
// # Example
//
//	func (c Config) Validate() error {
//	    if c.ArraySize < MinArraySize {
//	        return &errors.ValidationError{
//	            Type:   "Config",
//	            Field:  "ArraySize",
//	            Reason: "must be at least 5",
//	            Value:  c.ArraySize,
//	        }
//	    }
//	    return nil
//	}
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxsort: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxsort: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxsort: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxsort: invalid " + e.Type + ": " + e.Reason
}

// InputError describes a single element of an engine input that cannot take
// part in a numeric ordering.
//
// The engine reports one InputError per offending position so that a caller
// holding a large array can point at every bad element at once instead of
// fixing them one run at a time.
type InputError struct {
	// Index is the position of the rejected element in the caller's sequence.
	Index int

	// Value is the rejected element.
	Value float64

	// Reason is a short description such as "not a number".
	Reason string
}

// Error implements the error interface for InputError.
//
// The error message format is:
//
//	"dxsort: invalid input at index {Index}: {Reason}"
func (e *InputError) Error() string {
	return "dxsort: invalid input at index " + strconv.Itoa(e.Index) + ": " + e.Reason
}
