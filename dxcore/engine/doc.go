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

// Package engine implements the trace-producing sort engine.
//
// Every entry point takes a slice of finite float64 values and never mutates
// it. There are three modes, all of which agree on the final order:
//
//   - Sort returns a sorted copy (top-down merge sort).
//   - SortWithTrace returns the merge sort as a trace of Compare/Overwrite
//     pairs in absolute coordinates.
//   - SortWithSwaps returns bubble sort as a trace of adjacent Swaps.
//
// Inputs containing NaN or an infinity are rejected with an error wrapping
// errors.ErrInvalidInput; no partial result is returned. Empty and
// single-element inputs are valid and produce empty traces.
//
// The engine is synchronous and keeps no state between calls. Each call owns
// its working buffers, so concurrent calls are safe.
package engine
