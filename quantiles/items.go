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
	"github.com/streamsketch/streamsketch/memory"
	"github.com/streamsketch/streamsketch/sketcherr"
)

// itemsArray is the storage seam that lets the same compaction/query
// engine drive both a heap sketch (native []float64) and a direct sketch
// (typed offsets into a borrowed memory.Region): see DESIGN.md for the
// capability-interface rationale.
type itemsArray interface {
	Len() int
	Get(i int) float64
	Set(i int, v float64)
	// Grow extends the array to newLen items (a multiple of 2k), copying
	// existing contents into the low end. Heap arrays always succeed;
	// direct arrays fail with sketcherr.CapacityExceeded if the backing
	// region has no room.
	Grow(newLen int) error
}

type heapItems struct {
	data []float64
}

func newHeapItems(initialLen int) *heapItems {
	return &heapItems{data: make([]float64, initialLen)}
}

func (h *heapItems) Len() int            { return len(h.data) }
func (h *heapItems) Get(i int) float64   { return h.data[i] }
func (h *heapItems) Set(i int, v float64) { h.data[i] = v }

func (h *heapItems) Grow(newLen int) error {
	if newLen <= len(h.data) {
		return nil
	}
	grown := make([]float64, newLen)
	copy(grown, h.data)
	h.data = grown
	return nil
}

// directItems addresses doubles at dataStart+8*i inside region. The
// region's total capacity bounds how far Grow can extend.
type directItems struct {
	region    memory.Region
	dataStart int
	length    int // logical length currently in use, in items
}

func newDirectItems(region memory.Region, dataStart, initialLen int) (*directItems, error) {
	d := &directItems{region: region, dataStart: dataStart}
	if err := d.Grow(initialLen); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *directItems) Len() int { return d.length }

func (d *directItems) Get(i int) float64 {
	return d.region.GetFloat64(d.dataStart + i*8)
}

func (d *directItems) Set(i int, v float64) {
	d.region.PutFloat64(d.dataStart+i*8, v)
}

func (d *directItems) Grow(newLen int) error {
	if newLen <= d.length {
		return nil
	}
	needed := d.dataStart + newLen*8
	if needed > d.region.Capacity() {
		return sketcherr.New(sketcherr.CapacityExceeded,
			"direct quantiles sketch region has %d bytes, needs %d for %d items", d.region.Capacity(), needed, newLen)
	}
	d.length = newLen
	return nil
}
