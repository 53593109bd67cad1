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
	"fmt"
	"math"

	"dirpx.dev/dxsort/dxcore/errors"
	"dirpx.dev/rxmerr"
)

// Validate reports whether values can be sorted. It returns nil for valid
// input and otherwise an error wrapping errors.ErrInvalidInput that lists one
// *errors.InputError per offending position.
func Validate(values []float64) error {
	c := rxmerr.NewCollector()

	for i, v := range values {
		switch {
		case math.IsNaN(v):
			c.Append(&errors.InputError{Index: i, Value: v, Reason: "not a number"})
		case math.IsInf(v, 0):
			c.Append(&errors.InputError{Index: i, Value: v, Reason: "infinite value"})
		}
	}

	if err := c.Err(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidInput, err)
	}
	return nil
}
