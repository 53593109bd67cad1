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
	"math/bits"
	"slices"

	"dirpx.dev/dxsort/dxcore/model/trace"
)

// Sort returns a new slice holding values in non-decreasing order.
//
// The split point is floor(len/2) and the merge takes from the left half only
// when its head is strictly less than the right head, so equal values are
// emitted from the right half first. The final order of numbers does not
// depend on this, but the trace does, and SortWithTrace uses the same rule.
func Sort(values []float64) ([]float64, error) {
	if err := Validate(values); err != nil {
		return nil, err
	}
	return mergeSort(slices.Clone(values)), nil
}

func mergeSort(values []float64) []float64 {
	if len(values) <= 1 {
		if values == nil {
			return []float64{}
		}
		return values
	}

	mid := len(values) / 2
	return merge(mergeSort(values[:mid]), mergeSort(values[mid:]))
}

func merge(left, right []float64) []float64 {
	out := make([]float64, 0, len(left)+len(right))
	l, r := 0, 0

	for l < len(left) && r < len(right) {
		if left[l] < right[r] {
			out = append(out, left[l])
			l++
		} else {
			out = append(out, right[r])
			r++
		}
	}

	out = append(out, left[l:]...)
	return append(out, right[r:]...)
}

// SortWithTrace sorts a copy of values and returns the operations performed.
//
// The sort works on two buffers spanning the whole input. At every level of
// recursion the roles of the main and auxiliary buffer swap: the halves are
// sorted into the auxiliary buffer and then merged back into the main one.
// Because both buffers span the whole array, every index in the trace is an
// absolute position in values.
//
// For each element written by a merge the trace holds two operations:
// Compare(i, j) for the heads being compared followed by Overwrite(k, v) for
// the write. Once one half is drained the remaining elements are written with
// a Compare(i, i) marker so every write keeps the same two-step shape.
func SortWithTrace(values []float64) (trace.Trace, error) {
	if err := Validate(values); err != nil {
		return nil, err
	}
	if len(values) <= 1 {
		return trace.Trace{}, nil
	}

	t := &tracer{
		ops: make(trace.Trace, 0, MaxTraceLen(len(values))),
	}
	main := slices.Clone(values)
	aux := slices.Clone(values)
	t.sort(main, aux, 0, len(values))

	return t.ops, nil
}

type tracer struct {
	ops trace.Trace
}

// sort orders main[lo:hi], using aux as scratch. On entry main[lo:hi] and
// aux[lo:hi] hold the same multiset.
func (t *tracer) sort(main, aux []float64, lo, hi int) {
	if hi-lo <= 1 {
		return
	}

	mid := lo + (hi-lo)/2
	t.sort(aux, main, lo, mid)
	t.sort(aux, main, mid, hi)
	t.merge(main, aux, lo, mid, hi)
}

// merge writes the sorted runs aux[lo:mid] and aux[mid:hi] into main[lo:hi].
func (t *tracer) merge(main, aux []float64, lo, mid, hi int) {
	k, i, j := lo, lo, mid

	for i < mid && j < hi {
		t.ops = append(t.ops, trace.Compare(i, j))
		if aux[i] < aux[j] {
			t.write(main, k, aux[i])
			i++
		} else {
			t.write(main, k, aux[j])
			j++
		}
		k++
	}

	for ; i < mid; i, k = i+1, k+1 {
		t.ops = append(t.ops, trace.Compare(i, i))
		t.write(main, k, aux[i])
	}

	for ; j < hi; j, k = j+1, k+1 {
		t.ops = append(t.ops, trace.Compare(j, j))
		t.write(main, k, aux[j])
	}
}

func (t *tracer) write(main []float64, k int, v float64) {
	t.ops = append(t.ops, trace.Overwrite(k, v))
	main[k] = v
}

// MaxTraceLen returns the length SortWithTrace never exceeds for an input of
// n elements: two operations per element per merge level, 2·n·⌈log₂ n⌉.
func MaxTraceLen(n int) int {
	if n <= 1 {
		return 0
	}
	return 2 * n * bits.Len(uint(n-1))
}
