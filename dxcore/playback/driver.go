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

// Package playback replays traces onto a presentation surface over time.
//
// A Driver owns a two-state machine. It starts Idle; PlayTrace or PlaySwaps
// moves it to Playing and schedules the whole animation on a
// schedule.Scheduler; the last scheduled callback moves it back to Idle. While
// Playing every new request fails with errors.ErrBusy and changes nothing.
//
// Audio is optional. Tone failures and panics are contained, logged and
// collected in AudioErr; they never interrupt the visual chain.
package playback

import (
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"dirpx.dev/dxsort/dxcore/errors"
	"dirpx.dev/dxsort/dxcore/model"
	"dirpx.dev/dxsort/dxcore/model/trace"
	"dirpx.dev/dxsort/dxcore/schedule"
	"github.com/convox/logger"
	"github.com/dustin/go-humanize"
)

// State is the playback state of a Driver.
type State int

const (
	// StateIdle accepts new playback requests.
	StateIdle State = iota

	// StatePlaying rejects new playback requests.
	StatePlaying
)

// String returns "idle" or "playing".
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Driver animates traces on a Surface.
//
// A Driver is safe for concurrent use. Surface and Audio calls happen on the
// scheduler's goroutine.
type Driver struct {
	sched   schedule.Scheduler
	surface Surface
	audio   Audio
	log     *logger.Logger
	onIdle  func()

	mu      sync.Mutex
	state   State
	session uint64
	sound   bool
	pending []int // bars highlighted by the last compare
	started *logger.Logger
	errs    audioErrors
}

// Option configures a Driver.
type Option func(*Driver)

// WithAudio sets the audio capability. A nil Audio means silent playback.
func WithAudio(a Audio) Option {
	return func(d *Driver) { d.audio = a }
}

// WithSound sets whether tones are played. Defaults to true.
func WithSound(on bool) Option {
	return func(d *Driver) { d.sound = on }
}

// WithLogger sets the logger. Defaults to a logger that discards output.
func WithLogger(l *logger.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.log = l
		}
	}
}

// WithOnIdle registers fn to run every time the driver returns to Idle. fn
// runs without the driver's lock held and may call back into the driver.
func WithOnIdle(fn func()) Option {
	return func(d *Driver) { d.onIdle = fn }
}

// NewDriver returns an Idle driver that animates surface using sched.
func NewDriver(sched schedule.Scheduler, surface Surface, opts ...Option) *Driver {
	d := &Driver{
		sched:   sched,
		surface: surface,
		sound:   true,
		log:     logger.NewWriter("ns=playback", io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// State returns the current state.
func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Busy reports whether a playback is in progress.
func (d *Driver) Busy() bool {
	return d.State() == StatePlaying
}

// SetSound turns tones on or off. It takes effect from the next tone.
func (d *Driver) SetSound(on bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sound = on
}

// Sound reports whether tones are on.
func (d *Driver) Sound() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sound
}

// AudioErr returns every audio failure seen so far, combined with multierr,
// or nil.
func (d *Driver) AudioErr() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.errs.err
}

// PlayTrace schedules t so that operation i takes effect i*delay after the
// call, and returns to Idle at len(t)*delay.
//
// A compare highlights both bars. The following overwrite returns them to
// the primary highlight, sets the bar height and plays a tone for the written
// value. Swap sequences are played with PlaySwaps.
//
// t is checked against the surface length before anything is scheduled.
func (d *Driver) PlayTrace(t trace.Trace, delay time.Duration) error {
	n := d.surface.Len()

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == StatePlaying {
		return errors.ErrBusy
	}
	if delay < 0 {
		return &errors.ValidationError{Type: "Driver", Field: "delay", Reason: "must not be negative", Value: delay}
	}
	for i, op := range t {
		if op.Kind == trace.KindSwap {
			return &errors.ValidationError{
				Type:   "Trace",
				Field:  fmt.Sprintf("Ops[%d]", i),
				Reason: "swap operations are played with PlaySwaps",
				Value:  op.String(),
			}
		}
	}
	if err := t.ValidateFor(n); err != nil {
		return fmt.Errorf("playback: %w", err)
	}

	session := d.begin("trace", len(t), delay)
	ops := t.Clone()

	for i, op := range ops {
		d.sched.AfterFunc(time.Duration(i)*delay, func() {
			d.step(session, op)
		})
	}
	d.sched.AfterFunc(time.Duration(len(ops))*delay, func() {
		d.finish(session, len(ops), false)
	})
	return nil
}

// PlaySwaps animates a swap sequence over initial, one swap at a time.
//
// For each swap both bars are highlighted as compared and a tone is played
// for each value. After 10*delay the bars are highlighted as swapping, their
// heights are exchanged and a longer tone is played for the value now at the
// right position. After another 5*delay both return to the primary highlight
// and the next swap starts. When no swap remains every bar returns to the
// primary highlight, the driver goes Idle and, with sound on, a closing run of
// FinaleTones ascending tones plays.
//
// The surface heights are set to initial on the first tick, before the
// first swap.
func (d *Driver) PlaySwaps(initial []float64, swaps trace.Trace, delay time.Duration) error {
	n := d.surface.Len()

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == StatePlaying {
		return errors.ErrBusy
	}
	if delay < 0 {
		return &errors.ValidationError{Type: "Driver", Field: "delay", Reason: "must not be negative", Value: delay}
	}
	if len(initial) != n {
		return &errors.ValidationError{
			Type:   "Driver",
			Field:  "initial",
			Reason: fmt.Sprintf("length %d does not match surface length %d", len(initial), n),
		}
	}
	for i, op := range swaps {
		if op.Kind != trace.KindSwap {
			return &errors.ValidationError{
				Type:   "Trace",
				Field:  fmt.Sprintf("Ops[%d]", i),
				Reason: "swap playback accepts swap operations only",
				Value:  op.String(),
			}
		}
	}
	if err := swaps.ValidateFor(len(initial)); err != nil {
		return fmt.Errorf("playback: %w", err)
	}

	session := d.begin("swaps", len(swaps), delay)
	heights := slices.Clone(initial)
	ops := swaps.Clone()
	d.sched.AfterFunc(0, func() {
		d.swapStart(session, heights, ops, delay)
	})
	return nil
}

// Cancel stops the running playback. Pending callbacks become no-ops and
// every bar returns to the primary highlight on the next tick. Cancel reports
// whether a playback was running.
func (d *Driver) Cancel() bool {
	d.mu.Lock()
	if d.state != StatePlaying {
		d.mu.Unlock()
		return false
	}

	d.session++
	session := d.session
	d.state = StateIdle
	d.pending = nil
	d.started.At("cancel").Logf("state=canceled")
	d.mu.Unlock()

	d.sched.AfterFunc(0, func() {
		d.mu.Lock()
		current := d.session == session && d.state == StateIdle
		d.mu.Unlock()

		if current {
			resetHighlights(d.surface)
		}
	})

	if d.onIdle != nil {
		d.onIdle()
	}
	return true
}

// effects is a batch of Surface and Audio calls collected while d.mu is held
// and applied, in order, once it is released. Callbacks run on the scheduler
// goroutine one at a time, so batches never interleave.
type effects []func()

func (fx *effects) add(f func()) {
	*fx = append(*fx, f)
}

func (fx effects) apply() {
	for _, f := range fx {
		f()
	}
}

// begin moves to Playing and opens a new session. d.mu must be held.
func (d *Driver) begin(kind string, ops int, delay time.Duration) uint64 {
	d.session++
	d.state = StatePlaying
	d.pending = nil
	d.started = d.log.At(kind).Start()
	d.started.Logf("ops=%s delay=%s", humanize.Comma(int64(ops)), delay)
	return d.session
}

// live reports whether session is still the running one. d.mu must be held.
func (d *Driver) live(session uint64) bool {
	return d.session == session && d.state == StatePlaying
}

func (d *Driver) step(session uint64, op trace.Operation) {
	var fx effects

	d.mu.Lock()
	if d.live(session) {
		switch op.Kind {
		case trace.KindCompare:
			d.release(&fx)
			d.pending = op.Indices()
			for _, i := range d.pending {
				d.highlight(&fx, i, model.HighlightCompare)
			}
		case trace.KindOverwrite:
			d.release(&fx)
			d.height(&fx, op.I, op.Value)
			d.tone(&fx, op.Value, ToneDuration)
		}
	}
	d.mu.Unlock()

	fx.apply()
}

// release returns the last compared pair to the primary highlight. d.mu must
// be held.
func (d *Driver) release(fx *effects) {
	for _, i := range d.pending {
		d.highlight(fx, i, model.HighlightPrimary)
	}
	d.pending = nil
}

func (d *Driver) highlight(fx *effects, i int, h model.Highlight) {
	fx.add(func() { d.surface.SetHighlight(i, h) })
}

func (d *Driver) height(fx *effects, i int, v float64) {
	fx.add(func() { d.surface.SetHeight(i, v) })
}

// tone queues value if sound is on and audio is present. d.mu must be held.
func (d *Driver) tone(fx *effects, value float64, dur time.Duration) {
	if !d.sound || d.audio == nil {
		return
	}
	a := d.audio
	fx.add(func() { d.playTone(a, value, dur) })
}

// playTone plays one tone and records a failure. d.mu must not be held.
func (d *Driver) playTone(a Audio, value float64, dur time.Duration) {
	err := playSafe(a, value, dur)
	if err == nil {
		return
	}

	d.mu.Lock()
	d.errs.add(err)
	d.mu.Unlock()

	d.log.At("tone").Error(err)
}

// swapStart shows the initial heights and starts the first swap.
func (d *Driver) swapStart(session uint64, heights []float64, ops trace.Trace, delay time.Duration) {
	var fx effects

	d.mu.Lock()
	live := d.live(session)
	if live {
		for i, v := range heights {
			d.height(&fx, i, v)
		}
	}
	d.mu.Unlock()

	if !live {
		return
	}
	fx.apply()
	d.swapStep(session, heights, ops, 0, delay)
}

// swapStep plays swap k and schedules the rest. heights belongs to the
// session and is only touched from its callbacks.
func (d *Driver) swapStep(session uint64, heights []float64, ops trace.Trace, k int, delay time.Duration) {
	var fx effects

	d.mu.Lock()
	if !d.live(session) {
		d.mu.Unlock()
		return
	}
	if k == len(ops) {
		d.mu.Unlock()
		d.finish(session, len(ops), true)
		return
	}

	op := ops[k]
	d.tone(&fx, heights[op.I], ToneDuration)
	d.tone(&fx, heights[op.J], ToneDuration)
	d.highlight(&fx, op.I, model.HighlightBubbleCompare)
	d.highlight(&fx, op.J, model.HighlightBubbleCompare)
	d.mu.Unlock()

	fx.apply()

	d.sched.AfterFunc(10*delay, func() {
		var fx effects

		d.mu.Lock()
		if !d.live(session) {
			d.mu.Unlock()
			return
		}
		heights[op.I], heights[op.J] = heights[op.J], heights[op.I]
		d.highlight(&fx, op.I, model.HighlightBubbleSwap)
		d.highlight(&fx, op.J, model.HighlightBubbleSwap)
		d.height(&fx, op.I, heights[op.I])
		d.height(&fx, op.J, heights[op.J])
		d.tone(&fx, heights[op.J], SwapToneDuration)
		d.mu.Unlock()

		fx.apply()

		d.sched.AfterFunc(5*delay, func() {
			var fx effects

			d.mu.Lock()
			if !d.live(session) {
				d.mu.Unlock()
				return
			}
			d.highlight(&fx, op.I, model.HighlightPrimary)
			d.highlight(&fx, op.J, model.HighlightPrimary)
			d.mu.Unlock()

			fx.apply()
			d.swapStep(session, heights, ops, k+1, delay)
		})
	})
}

// finish returns the driver to Idle if session is still running.
func (d *Driver) finish(session uint64, ops int, finale bool) {
	var fx effects

	d.mu.Lock()
	if !d.live(session) {
		d.mu.Unlock()
		return
	}

	d.release(&fx)
	fx.add(func() { resetHighlights(d.surface) })
	d.state = StateIdle
	d.started.Successf("ops=%s", humanize.Comma(int64(ops)))

	if finale && d.sound && d.audio != nil {
		for i := range FinaleTones {
			value := 300 + 50*float64(i)
			d.sched.AfterFunc(time.Duration(i)*FinaleToneSpacing, func() {
				d.finaleTone(session, value)
			})
		}
	}
	d.mu.Unlock()

	fx.apply()

	if d.onIdle != nil {
		d.onIdle()
	}
}

// finaleTone plays one tone of the closing run unless a newer playback has
// started since.
func (d *Driver) finaleTone(session uint64, value float64) {
	var fx effects

	d.mu.Lock()
	if d.session == session {
		d.tone(&fx, value, FinaleToneDuration)
	}
	d.mu.Unlock()

	fx.apply()
}
