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
	"math/bits"

	"github.com/streamsketch/streamsketch/header"
	"github.com/streamsketch/streamsketch/memory"
	"github.com/streamsketch/streamsketch/sketcherr"
)

// Byte offsets of the fields following the common 8-byte preamble.
const (
	offsetK          = 8  // uint16
	offsetN          = 16 // uint64, present when preLongs >= preLongsFull
	offsetMin        = 24 // float64
	offsetMax        = 32 // float64
	offsetBitPattern = 40 // uint64
	dataStartOffset  = 48

	preLongsEmptyOrSingle = 2 // empty (n=0) or single-item (n=1): k + optional single value
	preLongsFull          = 6 // k, n, min, max, bitPattern

	offsetSingleItemValue = offsetMin // min==max==value in the single-item short form
)

// writeScalarsToRegion mirrors k/n/min/max/bitPattern into the backing
// region for a direct sketch; a no-op for heap sketches.
func (s *Sketch) writeScalarsToRegion() error {
	if s.region == nil {
		return nil
	}
	r := s.region
	preLongs := byte(preLongsFull)
	flags := byte(0)
	if s.n == 0 {
		flags |= header.FlagEmpty
		preLongs = preLongsEmptyOrSingle
	} else if s.n == 1 {
		flags |= header.FlagSingleItem
		preLongs = preLongsEmptyOrSingle
	}
	if s.compact {
		flags |= header.FlagCompact
	}
	if err := header.Write(r, header.Preamble{PreLongs: preLongs, SerVer: serVer, FamilyID: header.FamilyQuantiles, Flags: flags}); err != nil {
		return err
	}
	r.PutUint16(offsetK, s.k)
	if s.n == 1 {
		r.PutFloat64(offsetSingleItemValue, s.minValue)
		return nil
	}
	if s.n == 0 {
		return nil
	}
	r.PutUint64(offsetN, s.n)
	r.PutFloat64(offsetMin, s.minValue)
	r.PutFloat64(offsetMax, s.maxValue)
	r.PutUint64(offsetBitPattern, s.bitPattern)
	return nil
}

// UpdatableStorageBytes returns the size in bytes of the updatable (not
// compacted) serialized form of the sketch as it is currently allocated:
// the full preamble plus every item slot presently reserved, including
// slack for levels that are allocated but whose bit is not (yet) set.
func (s *Sketch) UpdatableStorageBytes() int {
	if s.n == 0 {
		return preLongsEmptyOrSingle * 8
	}
	if s.n == 1 {
		return dataStartOffset
	}
	return dataStartOffset + 8*s.items.Len()
}

// CompactStorageBytes returns the size in bytes of the compact serialized
// form: only the base buffer's live entries and exactly the set levels,
// with no slack.
func (s *Sketch) CompactStorageBytes() int {
	if s.n == 0 {
		return preLongsEmptyOrSingle * 8
	}
	if s.n == 1 {
		return dataStartOffset
	}
	bbCount := int(s.n % uint64(s.twoK()))
	numSetLevels := bits.OnesCount64(s.bitPattern)
	return dataStartOffset + 8*(bbCount+numSetLevels*s.twoK())
}

// ToByteArray serializes the sketch. When compact is true the image omits
// unused level capacity (see CompactStorageBytes); otherwise it preserves
// the full 2k-aligned slot structure so the image can be heapified back
// into an updatable sketch (see UpdatableStorageBytes).
func (s *Sketch) ToByteArray(compact bool) []byte {
	if s.n == 0 {
		r := memory.NewHeap(preLongsEmptyOrSingle * 8)
		_ = header.Write(r, header.Preamble{PreLongs: preLongsEmptyOrSingle, SerVer: serVer, FamilyID: header.FamilyQuantiles, Flags: header.FlagEmpty})
		r.PutUint16(offsetK, s.k)
		return r.ToByteArray()
	}
	if s.n == 1 {
		r := memory.NewHeap(dataStartOffset)
		flags := header.FlagSingleItem
		if compact {
			flags |= header.FlagCompact
		}
		_ = header.Write(r, header.Preamble{PreLongs: preLongsEmptyOrSingle, SerVer: serVer, FamilyID: header.FamilyQuantiles, Flags: flags})
		r.PutUint16(offsetK, s.k)
		r.PutFloat64(offsetSingleItemValue, s.minValue)
		return r.ToByteArray()
	}

	size := s.UpdatableStorageBytes()
	if compact {
		size = s.CompactStorageBytes()
	}
	r := memory.NewHeap(size)
	flags := byte(0)
	if compact {
		flags |= header.FlagCompact
	}
	_ = header.Write(r, header.Preamble{PreLongs: preLongsFull, SerVer: serVer, FamilyID: header.FamilyQuantiles, Flags: flags})
	r.PutUint16(offsetK, s.k)
	r.PutUint64(offsetN, s.n)
	r.PutFloat64(offsetMin, s.minValue)
	r.PutFloat64(offsetMax, s.maxValue)
	r.PutUint64(offsetBitPattern, s.bitPattern)

	twoK := s.twoK()
	bbCount := int(s.n % uint64(twoK))
	off := dataStartOffset
	for i := 0; i < bbCount; i++ {
		r.PutFloat64(off, s.items.Get(i))
		off += 8
	}
	if compact {
		for level := 0; level < 64; level++ {
			if s.bitPattern&(uint64(1)<<uint(level)) == 0 {
				continue
			}
			base := twoK + level*twoK
			for i := 0; i < twoK; i++ {
				r.PutFloat64(off, s.items.Get(base+i))
				off += 8
			}
		}
	} else {
		numLevels := s.items.Len()/twoK - 1
		for level := 0; level < numLevels; level++ {
			base := twoK + level*twoK
			for i := 0; i < twoK; i++ {
				r.PutFloat64(off, s.items.Get(base+i))
				off += 8
			}
		}
	}
	return r.ToByteArray()
}

// Heapify parses a serialized image into a new heap sketch, copying bytes
// out of the source region.
func Heapify(bytes []byte) (*Sketch, error) {
	return parse(memory.WrapForeign(bytes, true), true)
}

// Wrap parses a serialized image, binding a direct sketch to region in
// place. If the image is marked compact, the returned sketch rejects
// further updates (IllegalState).
func Wrap(region memory.Region) (*Sketch, error) {
	return parse(region, false)
}

func parse(r memory.Region, asHeap bool) (*Sketch, error) {
	p, err := header.Read(r)
	if err != nil {
		return nil, sketcherr.New(sketcherr.InvalidSerializedImage, "%v", err)
	}
	if err := header.CheckFamily(p, header.FamilyQuantiles); err != nil {
		return nil, sketcherr.New(sketcherr.InvalidSerializedImage, "%v", err)
	}
	if p.SerVer != serVer {
		return nil, sketcherr.New(sketcherr.InvalidSerializedImage, "unsupported serVer %d", p.SerVer)
	}
	k := r.GetUint16(offsetK)
	if err := validateK(k); err != nil {
		return nil, sketcherr.New(sketcherr.InvalidSerializedImage, "%v", err)
	}

	s := &Sketch{k: k, coin: defaultCoinFlipper(), compact: p.Compact()}

	if p.Empty() {
		if asHeap {
			s.items = newHeapItems(s.twoK())
		} else {
			items, err := newDirectItems(r, dataStartOffset, s.twoK())
			if err != nil {
				return nil, err
			}
			s.items, s.region = items, r
		}
		return s, nil
	}
	if p.SingleItem() {
		v := r.GetFloat64(offsetSingleItemValue)
		s.n, s.minValue, s.maxValue = 1, v, v
		if asHeap {
			s.items = newHeapItems(s.twoK())
		} else {
			items, err := newDirectItems(r, dataStartOffset, s.twoK())
			if err != nil {
				return nil, err
			}
			s.items, s.region = items, r
		}
		s.items.Set(0, v)
		return s, nil
	}

	if p.PreLongs != preLongsFull {
		return nil, sketcherr.New(sketcherr.InvalidSerializedImage, "unexpected preLongs %d for populated sketch", p.PreLongs)
	}
	s.n = r.GetUint64(offsetN)
	s.minValue = r.GetFloat64(offsetMin)
	s.maxValue = r.GetFloat64(offsetMax)
	s.bitPattern = r.GetUint64(offsetBitPattern)

	twoK := s.twoK()
	bbCount := int(s.n % uint64(twoK))

	if p.Compact() {
		highestLevel := -1
		if s.bitPattern != 0 {
			highestLevel = bits.Len64(s.bitPattern) - 1
		}
		// In-memory storage always uses the gapped positional layout
		// (level i at items[twoK+i*twoK:...)) regardless of how compactly
		// the wire image packed the set levels, so query/merge/propagate
		// code never needs to know which form a sketch was parsed from.
		total := twoK * (1 + highestLevel + 1)
		items := newHeapItems(total)
		off := dataStartOffset
		for i := 0; i < bbCount; i++ {
			items.Set(i, r.GetFloat64(off))
			off += 8
		}
		for level := 0; level <= highestLevel; level++ {
			if s.bitPattern&(uint64(1)<<uint(level)) == 0 {
				continue
			}
			base := twoK + level*twoK
			for i := 0; i < twoK; i++ {
				items.Set(base+i, r.GetFloat64(off))
				off += 8
			}
		}
		s.items = items
		// A compact image always lands on heap storage, even when parsed
		// via Wrap: a packed layout has no slack for future levels, and
		// Update is rejected on a compact sketch regardless of storage.
		return s, nil
	}

	dataBytes := r.Capacity() - dataStartOffset
	numItems := dataBytes / 8
	if asHeap {
		items := newHeapItems(numItems)
		off := dataStartOffset
		for i := 0; i < numItems; i++ {
			items.Set(i, r.GetFloat64(off))
			off += 8
		}
		s.items = items
	} else {
		items, err := newDirectItems(r, dataStartOffset, numItems)
		if err != nil {
			return nil, err
		}
		s.items, s.region = items, r
	}
	return s, nil
}

// Compact returns an immutable, serialization-optimized copy of the
// sketch. The receiver is unaffected.
func (s *Sketch) Compact() *Sketch {
	bytes := s.ToByteArray(true)
	out, err := Heapify(bytes)
	if err != nil {
		panic("quantiles: internal compaction round-trip failed: " + err.Error())
	}
	out.compact = true
	return out
}
