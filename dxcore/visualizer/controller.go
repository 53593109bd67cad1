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

// Package visualizer ties the sort engine and the playback driver to a set of
// bars: it owns the array being sorted, the user settings and the audio
// device, and exposes the actions of the visualizer's controls.
//
// Every action that would disturb a running animation fails with
// errors.ErrBusy and changes nothing.
package visualizer

import (
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"sync"

	"dirpx.dev/dxsort/dxcore/config"
	"dirpx.dev/dxsort/dxcore/engine"
	"dirpx.dev/dxsort/dxcore/errors"
	"dirpx.dev/dxsort/dxcore/model"
	"dirpx.dev/dxsort/dxcore/model/trace"
	"dirpx.dev/dxsort/dxcore/playback"
	"dirpx.dev/dxsort/dxcore/schedule"
	"github.com/convox/logger"
	"github.com/dustin/go-humanize"
)

// Value ranges of generated arrays.
const (
	MinValue = 5
	MaxValue = 500

	SelfTestMinLen   = 1
	SelfTestMaxLen   = 1000
	SelfTestMinValue = -1000
	SelfTestMaxValue = 1000

	DefaultSelfTestTrials = 100
)

// Controller drives one visualizer.
type Controller struct {
	mu     sync.Mutex
	cfg    config.Config
	values []float64
	rng    *rand.Rand

	bars   *Bars
	audio  *playback.LazyAudio
	driver *playback.Driver
	log    *logger.Logger
}

// Option configures a Controller.
type Option func(*options)

type options struct {
	seed   *uint64
	open   func() (playback.Audio, error)
	log    *logger.Logger
	onIdle func()
}

// WithSeed fixes the random source. Without it the seed comes from
// crypto/rand.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = &seed }
}

// WithAudioDevice sets the function that opens the audio device. It is called
// on the first interaction or sound toggle, not before.
func WithAudioDevice(open func() (playback.Audio, error)) Option {
	return func(o *options) { o.open = open }
}

// WithLogger sets the logger. Playback logs go to the same writer.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithOnIdle registers fn to run whenever an animation finishes or is
// canceled. fn must not block or call back into the Controller.
func WithOnIdle(fn func()) Option {
	return func(o *options) { o.onIdle = fn }
}

// NewController validates cfg, generates the first array and returns a
// controller animating on sched.
func NewController(sched schedule.Scheduler, cfg config.Config, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{log: logger.NewWriter("ns=visualizer", io.Discard)}
	for _, opt := range opts {
		opt(&o)
	}

	seed := uint64(0)
	if o.seed != nil {
		seed = *o.seed
	} else {
		s, err := newSeed()
		if err != nil {
			return nil, err
		}
		seed = s
	}

	c := &Controller{
		cfg:   cfg,
		rng:   newRand(seed),
		bars:  NewBars(nil),
		audio: &playback.LazyAudio{Open: o.open},
		log:   o.log,
	}

	onIdle := func() {
		c.log.At("idle").Logf("state=idle")
		if o.onIdle != nil {
			o.onIdle()
		}
	}
	c.driver = playback.NewDriver(sched, c.bars,
		playback.WithAudio(c.audio),
		playback.WithSound(cfg.SoundEnabled),
		playback.WithLogger(logger.NewWriter("ns=playback", o.log.Writer())),
		playback.WithOnIdle(onIdle),
	)

	c.log.At("start").Logf("config=%q", model.SafeString(cfg, false))
	c.reset()
	return c, nil
}

// Bars returns the display surface.
func (c *Controller) Bars() *Bars {
	return c.bars
}

// Config returns the current settings.
func (c *Controller) Config() config.Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg
}

// Values returns the array as sorted by the last accepted action. After
// MergeSort or BubbleSort it holds the sorted result even while the bars are
// still animating toward it.
func (c *Controller) Values() []float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.values)
}

// Busy reports whether an animation is running.
func (c *Controller) Busy() bool {
	return c.driver.Busy()
}

// ResetArray replaces the array with ArraySize random values in
// [MinValue, MaxValue].
func (c *Controller) ResetArray() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.driver.Busy() {
		return errors.ErrBusy
	}
	c.reset()
	return nil
}

// reset regenerates the array. c.mu must be held unless c is not shared yet.
func (c *Controller) reset() {
	c.values = randomArray(c.rng, c.cfg.ArraySize, MinValue, MaxValue)
	c.bars.Resize(c.values)
	c.log.At("reset").Logf("size=%d", c.cfg.ArraySize)
}

// SetArraySize changes ArraySize and regenerates the array.
func (c *Controller) SetArraySize(n int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.driver.Busy() {
		return errors.ErrBusy
	}
	cfg, err := c.cfg.WithArraySize(n)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.reset()
	return nil
}

// SetAnimationSpeed changes the per-step delay in milliseconds. It applies to
// the next animation.
func (c *Controller) SetAnimationSpeed(ms int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.driver.Busy() {
		return errors.ErrBusy
	}
	cfg, err := c.cfg.WithAnimationSpeed(ms)
	if err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}

// ToggleSound flips SoundEnabled, makes sure the audio device is open and
// returns the new setting. Toggling is allowed during an animation.
func (c *Controller) ToggleSound() bool {
	c.mu.Lock()
	c.cfg.SoundEnabled = !c.cfg.SoundEnabled
	on := c.cfg.SoundEnabled
	c.mu.Unlock()

	c.driver.SetSound(on)
	c.Interact()
	c.log.At("sound").Logf("enabled=%t", on)
	return on
}

// Interact opens the audio device if it is not open yet. Call it on the first
// user interaction; later calls are cheap. A device that cannot be opened
// leaves playback silent.
func (c *Controller) Interact() {
	if c.audio.Active() {
		return
	}
	if err := c.audio.Activate(); err != nil {
		c.log.At("audio").Error(err)
	}
}

// MergeSort animates a merge sort of the array.
func (c *Controller) MergeSort() error {
	return c.play(model.Merge)
}

// BubbleSort animates a bubble sort of the array.
func (c *Controller) BubbleSort() error {
	return c.play(model.Bubble)
}

// Sort animates alg over the array.
func (c *Controller) Sort(alg model.Algorithm) error {
	return c.play(alg)
}

func (c *Controller) play(alg model.Algorithm) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.driver.Busy() {
		return errors.ErrBusy
	}

	ops, err := engine.Run(alg, c.values)
	if err != nil {
		return err
	}
	return c.animate(alg, c.values, ops)
}

// animate plays ops over input and records the sorted result. c.mu must be
// held and the bars must already show input.
func (c *Controller) animate(alg model.Algorithm, input []float64, ops trace.Trace) error {
	sorted, err := ops.Apply(input)
	if err != nil {
		return err
	}

	switch alg {
	case model.Bubble:
		err = c.driver.PlaySwaps(input, ops, c.cfg.Delay())
	default:
		err = c.driver.PlayTrace(ops, c.cfg.Delay())
	}
	if err != nil {
		return err
	}

	c.values = sorted
	c.log.At("sort").Logf("algorithm=%s n=%s ops=%s", alg, humanize.Comma(int64(len(sorted))), humanize.Comma(int64(len(ops))))
	return nil
}

// Export records alg over the current array without animating it and
// encodes the recording as "json" or "yaml".
func (c *Controller) Export(alg model.Algorithm, format string) ([]byte, error) {
	c.mu.Lock()
	values := slices.Clone(c.values)
	c.mu.Unlock()

	r, err := engine.Record(alg, values)
	if err != nil {
		return nil, err
	}

	switch format {
	case "json":
		return trace.EncodeJSON(r)
	case "yaml":
		return trace.EncodeYAML(r)
	default:
		return nil, &errors.ParseError{Type: "Format", Value: format}
	}
}

// PlayRecording replaces the array with r.Input and animates r.Ops over it.
func (c *Controller) PlayRecording(r trace.Recording) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.driver.Busy() {
		return errors.ErrBusy
	}
	if err := r.Validate(); err != nil {
		return err
	}

	c.values = slices.Clone(r.Input)
	c.bars.Resize(c.values)
	c.log.At("recording").Logf("recording=%q", model.SafeString(r, false))
	return c.animate(r.Algorithm, c.values, r.Ops)
}

// Cancel stops the running animation and reports whether one was running.
// The bars keep the heights reached so far and Values is set to them.
func (c *Controller) Cancel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.driver.Cancel() {
		return false
	}
	c.values = c.bars.Values()
	return true
}

// AudioErr returns the audio failures seen so far, or nil.
func (c *Controller) AudioErr() error {
	return c.driver.AudioErr()
}

// SelfTestReport is the outcome of SelfTest.
type SelfTestReport struct {
	Trials int
	Passed int

	// Failures lists the lengths of arrays whose result did not match.
	Failures []int
}

// OK reports whether every trial passed.
func (r SelfTestReport) OK() bool {
	return r.Passed == r.Trials
}

// String returns "SelfTest{passed=100/100}".
func (r SelfTestReport) String() string {
	return fmt.Sprintf("SelfTest{passed=%d/%d}", r.Passed, r.Trials)
}

// SelfTest sorts trials random arrays with the engine and compares each
// result with the standard library sort. Arrays have SelfTestMinLen to
// SelfTestMaxLen values in [SelfTestMinValue, SelfTestMaxValue]. It does not
// touch the displayed array.
func (c *Controller) SelfTest(trials int) (SelfTestReport, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.driver.Busy() {
		return SelfTestReport{}, errors.ErrBusy
	}
	if trials <= 0 {
		trials = DefaultSelfTestTrials
	}

	l := c.log.At("selftest").Start()
	report := SelfTestReport{Trials: trials}

	for range trials {
		n := intBetween(c.rng, SelfTestMinLen, SelfTestMaxLen)
		values := randomArray(c.rng, n, SelfTestMinValue, SelfTestMaxValue)

		got, err := engine.Sort(values)
		if err != nil {
			return SelfTestReport{}, err
		}
		want := slices.Clone(values)
		slices.Sort(want)

		if slices.Equal(got, want) {
			report.Passed++
		} else {
			report.Failures = append(report.Failures, n)
			l.Logf("state=mismatch n=%d", n)
		}
	}

	l.Successf("passed=%d trials=%d", report.Passed, report.Trials)
	return report, nil
}
