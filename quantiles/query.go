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
	"math"
	"math/bits"
	"sort"

	"github.com/streamsketch/streamsketch/sketcherr"
)

// weightedItem pairs a retained value with the stream-count it represents:
// 1 for a base-buffer item, 2^level for an item retained in a level (a
// level's 2k-item run stands for 2k*2^level stream items, as in n).
type weightedItem struct {
	value  float64
	weight uint64
}

// retained returns every item the sketch currently holds, each tagged with
// its weight, sorted ascending by value. This is the sketch's full "sorted
// view": O(k*log(n/k)) in size, not O(n).
func (s *Sketch) retained() []weightedItem {
	twoK := s.twoK()
	bbCount := int(s.n % uint64(twoK))
	out := make([]weightedItem, 0, bbCount+bits.OnesCount64(s.bitPattern)*twoK)
	for i := 0; i < bbCount; i++ {
		out = append(out, weightedItem{value: s.items.Get(i), weight: 1})
	}
	for level := 0; level < 64; level++ {
		if s.bitPattern&(uint64(1)<<uint(level)) == 0 {
			continue
		}
		base := twoK + level*twoK
		weight := uint64(1) << uint(level)
		for i := 0; i < twoK; i++ {
			out = append(out, weightedItem{value: s.items.Get(base + i), weight: weight})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].value < out[j].value })
	return out
}

// GetQuantile returns the value at the given normalized rank phi in [0,1].
func (s *Sketch) GetQuantile(phi float64) (float64, error) {
	if phi < 0 || phi > 1 || math.IsNaN(phi) {
		return 0, sketcherr.New(sketcherr.InvalidParameter, "phi must be in [0,1], got %v", phi)
	}
	if s.n == 0 {
		return 0, sketcherr.New(sketcherr.IllegalState, "GetQuantile called on an empty sketch")
	}
	if phi == 0 {
		return s.minValue, nil
	}
	if phi == 1 {
		return s.maxValue, nil
	}
	rank := uint64(phi * float64(s.n))
	items := s.retained()
	var cum uint64
	for _, it := range items {
		cum += it.weight
		if cum > rank {
			return it.value, nil
		}
	}
	return items[len(items)-1].value, nil
}

func validateSplits(splits []float64) error {
	if len(splits) == 0 {
		return sketcherr.New(sketcherr.InvalidParameter, "splits must be non-empty")
	}
	for i, v := range splits {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return sketcherr.New(sketcherr.InvalidParameter, "split values must be finite, got %v at index %d", v, i)
		}
		if i > 0 && v <= splits[i-1] {
			return sketcherr.New(sketcherr.InvalidParameter, "splits must be strictly increasing")
		}
	}
	return nil
}

// GetCDF returns, for each split point and a final +inf bucket, the
// fraction of the stream that is <= that split (cumulative).
func (s *Sketch) GetCDF(splits []float64) ([]float64, error) {
	if err := validateSplits(splits); err != nil {
		return nil, err
	}
	if s.n == 0 {
		return nil, sketcherr.New(sketcherr.IllegalState, "GetCDF called on an empty sketch")
	}
	items := s.retained()
	out := make([]float64, len(splits)+1)
	idx := 0
	var cum uint64
	for i, split := range splits {
		for idx < len(items) && items[idx].value <= split {
			cum += items[idx].weight
			idx++
		}
		out[i] = float64(cum) / float64(s.n)
	}
	out[len(splits)] = 1.0
	return out, nil
}

// GetPMF returns the probability mass in each bucket delimited by splits:
// (-inf,splits[0]], (splits[0],splits[1]], ..., (splits[last], +inf).
func (s *Sketch) GetPMF(splits []float64) ([]float64, error) {
	cdf, err := s.GetCDF(splits)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(cdf))
	prev := 0.0
	for i, c := range cdf {
		out[i] = c - prev
		prev = c
	}
	return out, nil
}
