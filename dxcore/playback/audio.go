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

package playback

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/multierr"
)

// Tone durations used by playback.
const (
	// ToneDuration is the length of a compare or write tone.
	ToneDuration = 100 * time.Millisecond

	// SwapToneDuration is the length of the tone played when two bars swap.
	SwapToneDuration = 200 * time.Millisecond

	// FinaleToneDuration is the length of each tone in the closing run played
	// after a swap sequence completes.
	FinaleToneDuration = 150 * time.Millisecond

	// FinaleToneSpacing separates the tones of the closing run.
	FinaleToneSpacing = 100 * time.Millisecond

	// FinaleTones is the number of tones in the closing run.
	FinaleTones = 8
)

// Audio plays a short tone keyed by an array value.
//
// Implementations map the value to a pitch, normally with Frequency. A
// returned error or a panic is contained by the driver and never stops
// playback.
type Audio interface {
	PlayTone(value float64, d time.Duration) error
}

// AudioFunc adapts a function to Audio.
type AudioFunc func(value float64, d time.Duration) error

// PlayTone calls f(value, d).
func (f AudioFunc) PlayTone(value float64, d time.Duration) error {
	return f(value, d)
}

// Frequency maps an array value to a pitch in Hz. Values 0 and 500 map to
// 200 Hz and 800 Hz; other values follow the same line and are not clamped.
func Frequency(value float64) float64 {
	const (
		minFreq = 200.0
		maxFreq = 800.0
		span    = 500.0
	)
	return minFreq + value/span*(maxFreq-minFreq)
}

// LazyAudio defers opening an audio device until Activate is called, usually
// on the first user interaction. Until then PlayTone is silent.
//
// A failed Activate leaves the LazyAudio inactive; a later call retries.
type LazyAudio struct {
	// Open creates the underlying device.
	Open func() (Audio, error)

	mu    sync.Mutex
	audio Audio
}

var _ Audio = (*LazyAudio)(nil)

// Activate opens the device if it is not open yet.
func (l *LazyAudio) Activate() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.audio != nil {
		return nil
	}
	if l.Open == nil {
		return fmt.Errorf("playback: audio unavailable")
	}

	a, err := l.Open()
	if err != nil {
		return fmt.Errorf("playback: open audio: %w", err)
	}
	if a == nil {
		return fmt.Errorf("playback: audio unavailable")
	}
	l.audio = a
	return nil
}

// Active reports whether the device has been opened.
func (l *LazyAudio) Active() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.audio != nil
}

// PlayTone forwards to the device once active and does nothing before.
func (l *LazyAudio) PlayTone(value float64, d time.Duration) error {
	l.mu.Lock()
	a := l.audio
	l.mu.Unlock()

	if a == nil {
		return nil
	}
	return a.PlayTone(value, d)
}

// playSafe calls a.PlayTone and turns a panic into an error.
func playSafe(a Audio, value float64, d time.Duration) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("playback: audio panic: %v", r)
		}
	}()
	return a.PlayTone(value, d)
}

// audioErrors accumulates tone failures for a driver.
type audioErrors struct {
	err error
}

func (a *audioErrors) add(err error) {
	a.err = multierr.Append(a.err, err)
}
