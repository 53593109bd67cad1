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

package schedule_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"dirpx.dev/dxsort/dxcore/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFake_RunsInDueOrder(t *testing.T) {
	f := schedule.NewFake()
	var got []string

	f.AfterFunc(30*time.Millisecond, func() { got = append(got, "c") })
	f.AfterFunc(10*time.Millisecond, func() { got = append(got, "a") })
	f.AfterFunc(20*time.Millisecond, func() { got = append(got, "b") })

	f.Advance(15 * time.Millisecond)
	assert.Equal(t, []string{"a"}, got)
	assert.Equal(t, 2, f.Pending())

	f.Advance(15 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, 0, f.Pending())
	assert.Equal(t, 30*time.Millisecond, f.Elapsed())
}

func TestFake_EqualDueTimesAreFIFO(t *testing.T) {
	f := schedule.NewFake()
	var got []int

	for i := range 50 {
		f.AfterFunc(time.Second, func() { got = append(got, i) })
	}
	f.Advance(time.Second)

	require.Len(t, got, 50)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestFake_NestedCallbacksWithinWindow(t *testing.T) {
	f := schedule.NewFake()
	var at []time.Duration

	var step func()
	step = func() {
		at = append(at, f.Elapsed())
		if len(at) < 5 {
			f.AfterFunc(10*time.Millisecond, step)
		}
	}
	f.AfterFunc(0, step)

	f.Advance(25 * time.Millisecond)
	assert.Equal(t, []time.Duration{0, 10 * time.Millisecond, 20 * time.Millisecond}, at)

	f.Advance(time.Second)
	assert.Len(t, at, 5)
	assert.Equal(t, 5, f.Ran())
}

func TestFake_ZeroDelayDoesNotRunInline(t *testing.T) {
	f := schedule.NewFake()
	ran := false

	f.AfterFunc(0, func() { ran = true })
	assert.False(t, ran)

	f.Advance(0)
	assert.True(t, ran)
}

func TestFake_NegativeDelayIsClamped(t *testing.T) {
	f := schedule.NewFake()
	var got []string

	f.AfterFunc(time.Millisecond, func() { got = append(got, "later") })
	f.AfterFunc(-time.Hour, func() { got = append(got, "now") })
	f.Advance(time.Millisecond)

	assert.Equal(t, []string{"now", "later"}, got)
}

func TestFake_RunAll(t *testing.T) {
	f := schedule.NewFake()
	count := 0

	var tick func()
	tick = func() {
		count++
		f.AfterFunc(time.Second, tick)
	}
	f.AfterFunc(time.Second, tick)

	elapsed := f.RunAll(10)
	assert.Equal(t, 10, count)
	assert.Equal(t, 10*time.Second, elapsed)
	assert.Equal(t, 1, f.Pending())
}

func TestLoop_RunsCallbacksInOrder(t *testing.T) {
	l := schedule.NewLoop()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var mu sync.Mutex
	var got []int
	done := make(chan struct{})

	l.AfterFunc(20*time.Millisecond, func() {
		mu.Lock()
		got = append(got, 2)
		mu.Unlock()
		close(done)
	})
	l.AfterFunc(0, func() {
		mu.Lock()
		got = append(got, 0)
		mu.Unlock()
		l.AfterFunc(time.Millisecond, func() {
			mu.Lock()
			got = append(got, 1)
			mu.Unlock()
		})
	})

	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()

	select {
	case <-done:
	case <-ctx.Done():
		t.Fatal("callbacks did not run")
	}

	l.Close()
	require.NoError(t, <-errc)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestLoop_StopsOnContext(t *testing.T) {
	l := schedule.NewLoop()
	ctx, cancel := context.WithCancel(context.Background())

	l.AfterFunc(time.Hour, func() { t.Error("must not run") })

	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()
	cancel()

	assert.ErrorIs(t, <-errc, context.Canceled)
}

func TestLoop_CloseDropsPending(t *testing.T) {
	l := schedule.NewLoop()
	l.AfterFunc(time.Hour, func() {})
	require.Equal(t, 1, l.Pending())

	l.Close()
	l.Close()
	assert.Equal(t, 0, l.Pending())

	l.AfterFunc(0, func() {})
	assert.Equal(t, 0, l.Pending())
	assert.NoError(t, l.Run(context.Background()))
}

func TestLoop_ConcurrentScheduling(t *testing.T) {
	l := schedule.NewLoop()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	const n = 200
	var (
		mu    sync.Mutex
		count int
	)
	done := make(chan struct{})

	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.AfterFunc(time.Millisecond, func() {
				mu.Lock()
				count++
				if count == n {
					close(done)
				}
				mu.Unlock()
			})
		}()
	}

	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()
	wg.Wait()

	select {
	case <-done:
	case <-ctx.Done():
		t.Fatal("not all callbacks ran")
	}
	l.Close()
	require.NoError(t, <-errc)
}
