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

// Package quantiles implements a bounded-error rank/quantile summary over
// a stream of doubles, built on the Agarwal-Mishra-Munro buffer-compactor
// scheme: a small base buffer plus a bitmap-addressed stack of compacted
// levels, each an exactly-2k sorted run. See DESIGN.md for how this maps
// onto the shared memory.Region/header building blocks.
package quantiles

import (
	"math"
	"sort"

	"github.com/streamsketch/streamsketch/header"
	"github.com/streamsketch/streamsketch/memory"
	"github.com/streamsketch/streamsketch/sketcherr"
)

const (
	MinK = 2
	MaxK = 32768

	serVer = 1
)

// Sketch is a doubles quantile sketch. The zero value is not usable; build
// one with Builder. A single instance backs both the "heap" variant
// (native slice storage) and the "direct" variant (storage addressed
// through a borrowed memory.Region) behind the itemsArray seam.
type Sketch struct {
	k          uint16
	n          uint64
	minValue   float64
	maxValue   float64
	bitPattern uint64
	items      itemsArray
	coin       CoinFlipper
	compact    bool // true once Compact() has produced this instance; rejects further Update

	region     memory.Region // non-nil for the direct variant, for IsSameResource
	regionBase int
}

// Builder configures and constructs a Sketch.
type Builder struct {
	k    uint16
	coin CoinFlipper
}

// NewBuilder returns a Builder with the default k (128, matching the
// family's historical default) and an OS-seeded coin flipper.
func NewBuilder() *Builder {
	return &Builder{k: 128}
}

// SetK sets the accuracy parameter; k must be a power of two in
// [MinK, MaxK].
func (b *Builder) SetK(k uint16) *Builder {
	b.k = k
	return b
}

// SetCoinFlipper injects the compactor's source of randomness, making
// compaction (and therefore the serialized image) deterministic. Intended
// for tests; production callers normally leave this unset.
func (b *Builder) SetCoinFlipper(c CoinFlipper) *Builder {
	b.coin = c
	return b
}

func validateK(k uint16) error {
	if k < MinK || k > MaxK || (k&(k-1)) != 0 {
		return sketcherr.New(sketcherr.InvalidParameter, "k must be a power of two in [%d,%d], got %d", MinK, MaxK, k)
	}
	return nil
}

// Build constructs a heap-backed sketch.
func (b *Builder) Build() (*Sketch, error) {
	if err := validateK(b.k); err != nil {
		return nil, err
	}
	coin := b.coin
	if coin == nil {
		coin = defaultCoinFlipper()
	}
	return &Sketch{
		k:     b.k,
		items: newHeapItems(2 * int(b.k)),
		coin:  coin,
	}, nil
}

// BuildDirect constructs a direct sketch operating in place on region. The
// region must be at least 48 + 16*k bytes (the preamble plus a 2k-item
// base buffer).
func (b *Builder) BuildDirect(region memory.Region) (*Sketch, error) {
	if err := validateK(b.k); err != nil {
		return nil, err
	}
	coin := b.coin
	if coin == nil {
		coin = defaultCoinFlipper()
	}
	items, err := newDirectItems(region, dataStartOffset, 2*int(b.k))
	if err != nil {
		return nil, err
	}
	s := &Sketch{k: b.k, items: items, coin: coin, region: region}
	if err := s.writeScalarsToRegion(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sketch) twoK() int { return 2 * int(s.k) }

// K returns the sketch's accuracy parameter.
func (s *Sketch) K() uint16 { return s.k }

// N returns the number of updates seen.
func (s *Sketch) N() uint64 { return s.n }

// IsEmpty reports whether the sketch has seen no updates.
func (s *Sketch) IsEmpty() bool { return s.n == 0 }

// MinValue returns the minimum of all updated values; undefined if empty.
func (s *Sketch) MinValue() float64 { return s.minValue }

// MaxValue returns the maximum of all updated values; undefined if empty.
func (s *Sketch) MaxValue() float64 { return s.maxValue }

// IsDirect reports whether this sketch operates on a borrowed region.
func (s *Sketch) IsDirect() bool { return s.region != nil }

// IsCompact reports whether this sketch is an immutable compact form.
func (s *Sketch) IsCompact() bool { return s.compact }

// IsSameResource reports whether this direct sketch's backing region has
// the same identity, base offset, and capacity as other.
func (s *Sketch) IsSameResource(other memory.Region) bool {
	if s.region == nil {
		return false
	}
	return s.region.IsSameResource(other)
}

// Reset clears all accumulated state, preserving k.
func (s *Sketch) Reset() error {
	if s.compact {
		return sketcherr.New(sketcherr.IllegalState, "Reset called on a compact sketch")
	}
	s.n = 0
	s.bitPattern = 0
	s.minValue = 0
	s.maxValue = 0
	if h, ok := s.items.(*heapItems); ok {
		h.data = make([]float64, s.twoK())
	} else if d, ok := s.items.(*directItems); ok {
		d.length = s.twoK()
	}
	return s.writeScalarsToRegion()
}

// Update adds a value to the stream. NaN is accepted and normalized to the
// canonical IEEE-754 bit pattern; -0.0 is normalized to 0.0, mirroring the
// hash primitive's canonicalization rule for doubles so that -0.0 and 0.0
// are indistinguishable to every sketch family.
func (s *Sketch) Update(x float64) error {
	if s.compact {
		return sketcherr.New(sketcherr.IllegalState, "Update called on a compact sketch")
	}
	if x == 0 {
		x = 0.0 // canonicalize -0.0
	} else if math.IsNaN(x) {
		x = math.Float64frombits(0x7ff8000000000000) // canonical NaN
	}
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

	bbCount := int(s.n % uint64(s.twoK()))
	if err := s.items.Grow(bbCount + 1); err != nil {
		return err
	}
	s.items.Set(bbCount, x)
	s.n++

	if bbCount+1 == s.twoK() {
		run := make([]float64, s.twoK())
		for i := range run {
			run[i] = s.items.Get(i)
		}
		sort.Float64s(run)
		if err := s.propagateCarry(run, 0); err != nil {
			return err
		}
	}
	return s.writeScalarsToRegion()
}

// propagateCarry implements the compaction cascade of 4.2.2: run (a sorted
// 2k slice) arrives at level; while that level is occupied, merge with its
// resident run into 4k items and keep every other item (coin-chosen
// parity), carrying into the next level, until an empty level is found.
func (s *Sketch) propagateCarry(run []float64, level int) error {
	twoK := s.twoK()
	for level < 64 && s.bitPattern&(uint64(1)<<uint(level)) != 0 {
		resident := make([]float64, twoK)
		base := twoK + level*twoK
		for i := 0; i < twoK; i++ {
			resident[i] = s.items.Get(base + i)
		}
		merged := mergeSorted(run, resident)
		run = compactHalf(merged, s.coin)
		s.bitPattern &^= uint64(1) << uint(level)
		level++
	}
	if err := s.items.Grow(twoK + (level+1)*twoK); err != nil {
		return err
	}
	base := twoK + level*twoK
	for i, v := range run {
		s.items.Set(base+i, v)
	}
	s.bitPattern |= uint64(1) << uint(level)
	return nil
}

// mergeSorted merges two ascending sorted slices of equal length into one
// ascending slice of double the length.
func mergeSorted(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b))
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			out[k] = a[i]
			i++
		} else {
			out[k] = b[j]
			j++
		}
		k++
	}
	for i < len(a) {
		out[k] = a[i]
		i, k = i+1, k+1
	}
	for j < len(b) {
		out[k] = b[j]
		j, k = j+1, k+1
	}
	return out
}

// compactHalf keeps every other item of a 4k sorted run, starting at an
// independently, randomly chosen parity (0 or 1). This fair coin flip per
// compaction is the source of the sketch's probabilistic error bound.
func compactHalf(merged []float64, coin CoinFlipper) []float64 {
	start := 0
	if coin.NextBool() {
		start = 1
	}
	out := make([]float64, len(merged)/2)
	for i, j := 0, start; i < len(out); i, j = i+1, j+2 {
		out[i] = merged[j]
	}
	return out
}
