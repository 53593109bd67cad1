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
	"dirpx.dev/dxsort/dxcore/model"
)

// Surface is the presentation the driver animates: an array of bars addressed
// by index.
//
// SetHeight and SetHighlight arrive on the scheduler's goroutine; Len is also
// called by the goroutine starting a playback. The driver never holds its own
// lock while calling a Surface, so implementations may call back into it.
// Implementations shared with other goroutines synchronize themselves.
type Surface interface {
	// Len returns the number of bars.
	Len() int

	// SetHeight sets bar i to value.
	SetHeight(i int, value float64)

	// SetHighlight sets the highlight of bar i.
	SetHighlight(i int, h model.Highlight)
}

// resetHighlights returns every bar of s to the primary highlight.
func resetHighlights(s Surface) {
	for i := range s.Len() {
		s.SetHighlight(i, model.HighlightPrimary)
	}
}
