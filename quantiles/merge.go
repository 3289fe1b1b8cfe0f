/*
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package quantiles

import (
	"sort"

	"github.com/streamsketch/streamsketch/sketcherr"
)

// Merge folds other into s. Both sketches must share k: down-sampling a
// larger-k source into a smaller-k destination is a distinct algorithm
// (see DESIGN.md) and is not implemented by this package.
//
// The base buffer of other is merged item by item via Update (4.2.4); each
// compacted level of other is carried into s starting at that level's
// index, mirroring ordinary propagate-carry, which is exactly binary
// addition of the two bitPatterns.
func (s *Sketch) Merge(other *Sketch) error {
	if s.compact {
		return sketcherr.New(sketcherr.IllegalState, "Merge called on a compact destination sketch")
	}
	if other.n == 0 {
		return nil
	}
	if other.k != s.k {
		return sketcherr.New(sketcherr.InvalidParameter, "Merge requires equal k: dst=%d src=%d", s.k, other.k)
	}

	if s.n == 0 {
		s.minValue, s.maxValue = other.minValue, other.maxValue
	} else {
		if other.minValue < s.minValue {
			s.minValue = other.minValue
		}
		if other.maxValue > s.maxValue {
			s.maxValue = other.maxValue
		}
	}

	twoK := s.twoK()
	bbCount := int(other.n % uint64(twoK))
	for i := 0; i < bbCount; i++ {
		if err := s.updatePreservingExtremes(other.items.Get(i)); err != nil {
			return err
		}
	}

	for level := 0; level < 64; level++ {
		if other.bitPattern&(uint64(1)<<uint(level)) == 0 {
			continue
		}
		base := twoK + level*twoK
		run := make([]float64, twoK)
		for i := 0; i < twoK; i++ {
			run[i] = other.items.Get(base + i)
		}
		if err := s.propagateCarry(run, level); err != nil {
			return err
		}
		s.n += uint64(twoK) << uint(level)
	}
	return s.writeScalarsToRegion()
}

// updatePreservingExtremes is Update without the compact-sketch guard,
// used internally by Merge which has already validated the destination.
func (s *Sketch) updatePreservingExtremes(x float64) error {
	if s.n == 0 {
		s.minValue, s.maxValue = x, x
	} else {
		if x < s.minValue {
			s.minValue = x
		}
		if x > s.maxValue {
			s.maxValue = x
		}
	}
	twoK := s.twoK()
	bbCount := int(s.n % uint64(twoK))
	if err := s.items.Grow(bbCount + 1); err != nil {
		return err
	}
	s.items.Set(bbCount, x)
	s.n++
	if bbCount+1 == twoK {
		run := make([]float64, twoK)
		for i := range run {
			run[i] = s.items.Get(i)
		}
		sort.Float64s(run)
		return s.propagateCarry(run, 0)
	}
	return nil
}
