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

package schedule

import (
	"time"
)

// Fake is a manually driven Scheduler for tests. Time stands still until
// Advance or RunAll is called; callbacks then run synchronously on the
// calling goroutine.
//
// Fake is not safe for concurrent use.
type Fake struct {
	now time.Time
	q   queue
	seq uint64
	ran int
}

var _ Scheduler = (*Fake)(nil)

// NewFake returns a Fake whose clock starts at the Unix epoch.
func NewFake() *Fake {
	return &Fake{now: time.Unix(0, 0).UTC()}
}

// AfterFunc schedules fn to run once the clock has advanced by delay.
func (f *Fake) AfterFunc(delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	f.seq++
	f.q.push(&timer{due: f.now.Add(delay), seq: f.seq, fn: fn})
}

// Now returns the fake clock's current time.
func (f *Fake) Now() time.Time {
	return f.now
}

// Elapsed returns how far the clock has advanced since NewFake.
func (f *Fake) Elapsed() time.Duration {
	return f.now.Sub(time.Unix(0, 0))
}

// Pending returns the number of callbacks not yet run.
func (f *Fake) Pending() int {
	return f.q.Len()
}

// Ran returns the number of callbacks run so far.
func (f *Fake) Ran() int {
	return f.ran
}

// Advance moves the clock forward by d, running every callback that falls
// due on the way, including callbacks scheduled by those callbacks. The
// clock reads each callback's due time while it runs.
func (f *Fake) Advance(d time.Duration) {
	target := f.now.Add(d)

	for {
		t := f.q.peek()
		if t == nil || t.due.After(target) {
			break
		}
		f.q.pop()
		f.now = t.due
		f.ran++
		t.fn()
	}

	f.now = target
}

// RunAll runs callbacks until none are pending and returns the total time
// the clock advanced. limit bounds the number of callbacks run so that a
// self-rescheduling chain cannot hang a test; RunAll stops once it is hit.
func (f *Fake) RunAll(limit int) time.Duration {
	start := f.now
	for n := 0; n < limit; n++ {
		t := f.q.peek()
		if t == nil {
			break
		}
		f.q.pop()
		f.now = t.due
		f.ran++
		t.fn()
	}
	return f.now.Sub(start)
}
