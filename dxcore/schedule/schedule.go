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

// Package schedule provides the timer abstraction the playback driver runs
// on.
//
// Playback is a chain of deferred callbacks. All callbacks of one scheduler
// run on a single goroutine, one at a time, in due-time order; callbacks due
// at the same instant run in the order they were scheduled. Nothing here runs
// callbacks in parallel, so state touched only from callbacks needs no lock.
//
// Two implementations are provided:
//
//   - Loop runs callbacks against the wall clock on the goroutine that calls
//     Run. Delivery time is best-effort; ordering is exact.
//   - Fake runs callbacks only when the test advances its clock, which makes
//     playback deterministic under test.
package schedule

import (
	"time"

	"github.com/twmb/algoimpl/go/tree/heap"
)

// Scheduler defers callbacks.
type Scheduler interface {
	// AfterFunc arranges for fn to run once, delay after the call. A
	// non-positive delay schedules fn for the next turn of the loop; fn never
	// runs inside AfterFunc itself.
	AfterFunc(delay time.Duration, fn func())
}

type timer struct {
	due time.Time
	seq uint64
	fn  func()
}

// queue is a timer heap ordered so that the root is the earliest timer.
// algoimpl's heap is a max-heap, so Less reports whether i fires after j.
type queue []*timer

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].seq > q[j].seq
	}
	return q[i].due.After(q[j].due)
}

func (q queue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *queue) Push(x interface{}) { *q = append(*q, x.(*timer)) }

func (q *queue) Pop() interface{} {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}

func (q *queue) push(t *timer) {
	heap.Push(q, t)
}

// peek returns the earliest timer without removing it.
func (q queue) peek() *timer {
	if len(q) == 0 {
		return nil
	}
	return q[0]
}

func (q *queue) pop() *timer {
	return heap.Pop(q).(*timer)
}
