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

package visualizer

import (
	"slices"
	"sync"

	"dirpx.dev/dxsort/dxcore/model"
	"dirpx.dev/dxsort/dxcore/playback"
)

// Bar is one element of the display.
type Bar struct {
	Height    float64         `json:"height" yaml:"height"`
	Highlight model.Highlight `json:"highlight" yaml:"highlight"`
}

// Color returns the CSS color of the bar's highlight.
func (b Bar) Color() string {
	return b.Highlight.Color()
}

// Bars is an in-memory playback.Surface. A renderer polls Snapshot while a
// driver writes to it from the scheduler goroutine.
type Bars struct {
	mu      sync.RWMutex
	bars    []Bar
	version uint64
}

var _ playback.Surface = (*Bars)(nil)

// NewBars returns bars with the given heights, all primary.
func NewBars(values []float64) *Bars {
	b := &Bars{}
	b.Resize(values)
	return b
}

// Len returns the number of bars.
func (b *Bars) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.bars)
}

// SetHeight sets the height of bar i.
func (b *Bars) SetHeight(i int, value float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bars[i].Height = value
	b.version++
}

// SetHighlight sets the highlight of bar i.
func (b *Bars) SetHighlight(i int, h model.Highlight) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bars[i].Highlight = h
	b.version++
}

// Resize replaces every bar with values, all primary.
func (b *Bars) Resize(values []float64) {
	bars := make([]Bar, len(values))
	for i, v := range values {
		bars[i] = Bar{Height: v, Highlight: model.HighlightPrimary}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.bars = bars
	b.version++
}

// Snapshot returns a copy of the bars and the version it was taken at. The
// version changes on every write, so a renderer can skip unchanged frames.
func (b *Bars) Snapshot() ([]Bar, uint64) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.bars), b.version
}

// Values returns the current heights.
func (b *Bars) Values() []float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]float64, len(b.bars))
	for i, bar := range b.bars {
		out[i] = bar.Height
	}
	return out
}
