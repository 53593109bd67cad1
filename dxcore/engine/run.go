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

package engine

import (
	"fmt"

	"dirpx.dev/dxsort/dxcore/model"
	"dirpx.dev/dxsort/dxcore/model/trace"
)

// Run produces the trace of alg over values: SortWithTrace for model.Merge,
// SortWithSwaps for model.Bubble.
func Run(alg model.Algorithm, values []float64) (trace.Trace, error) {
	switch alg {
	case model.Merge:
		return SortWithTrace(values)
	case model.Bubble:
		return SortWithSwaps(values)
	default:
		return nil, fmt.Errorf("run: %w", alg.Validate())
	}
}

// Record runs alg over values and packages the result as a trace.Recording
// that can be replayed without access to the engine.
func Record(alg model.Algorithm, values []float64) (trace.Recording, error) {
	ops, err := Run(alg, values)
	if err != nil {
		return trace.Recording{}, err
	}
	return trace.NewRecording(alg, values, ops)
}
