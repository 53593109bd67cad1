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
	"slices"

	"dirpx.dev/dxsort/dxcore/model/trace"
)

// SortWithSwaps bubble-sorts a copy of values and returns every exchange as
// a Swap(j, j+1) operation, in the order performed. Applying the swaps in
// order to a copy of values yields the same result as Sort.
//
// Adjacent elements are exchanged only when the left one is strictly
// greater, and a pass without any exchange ends the sort early.
func SortWithSwaps(values []float64) (trace.Trace, error) {
	if err := Validate(values); err != nil {
		return nil, err
	}

	a := slices.Clone(values)
	swaps := trace.Trace{}

	for end := len(a) - 1; end > 0; end-- {
		swapped := false
		for j := 0; j < end; j++ {
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
				swaps = append(swaps, trace.Swap(j, j+1))
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}

	return swaps, nil
}
