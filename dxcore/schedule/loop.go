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
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Loop is a single-goroutine event loop backed by the wall clock.
//
// Callbacks may be scheduled from any goroutine, including from inside other
// callbacks. They run only while Run is executing.
type Loop struct {
	mu        sync.Mutex
	q         queue
	seq       uint64
	wake      chan struct{}
	done      chan struct{}
	now       func() time.Time
	closeOnce sync.Once

	closed atomic.Bool
}

var _ Scheduler = (*Loop)(nil)

// NewLoop returns a Loop. Call Run to start delivering callbacks.
func NewLoop() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
		now:  time.Now,
	}
}

// AfterFunc schedules fn to run delay from now. Calls after Close are
// ignored.
func (l *Loop) AfterFunc(delay time.Duration, fn func()) {
	if l.closed.Load() {
		return
	}
	if delay < 0 {
		delay = 0
	}

	l.mu.Lock()
	l.seq++
	l.q.push(&timer{due: l.now().Add(delay), seq: l.seq, fn: fn})
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Pending returns the number of callbacks not yet run.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.Len()
}

// Run delivers callbacks until ctx is done or Close is called, and returns
// ctx.Err() or nil respectively. Pending callbacks are dropped on return.
// Run MUST NOT be called concurrently with itself.
func (l *Loop) Run(ctx context.Context) error {
	wait := time.NewTimer(time.Hour)
	defer wait.Stop()

	for {
		fn, delay := l.next()
		if fn != nil {
			fn()
			continue
		}

		if delay < 0 {
			delay = time.Hour
		}
		wait.Reset(delay)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.done:
			return nil
		case <-l.wake:
		case <-wait.C:
		}
	}
}

// next pops the earliest timer if it is due. Otherwise it returns the time
// until the earliest timer, or -1 when the queue is empty.
func (l *Loop) next() (func(), time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	t := l.q.peek()
	if t == nil {
		return nil, -1
	}
	if wait := t.due.Sub(l.now()); wait > 0 {
		return nil, wait
	}
	return l.q.pop().fn, 0
}

// Close stops Run and discards pending callbacks. It is safe to call more
// than once.
func (l *Loop) Close() {
	l.closeOnce.Do(func() {
		l.closed.Store(true)
		close(l.done)

		l.mu.Lock()
		l.q = nil
		l.mu.Unlock()
	})
}
