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

package memory

import (
	"math"
	"unsafe"
)

// sliceIdentity returns the address of the first element of buf, used to
// tell apart two regions that happen to hold byte-identical content but
// back different allocations.
func sliceIdentity(buf []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
}

func encodeFloat64(v float64) uint64 { return math.Float64bits(v) }
func decodeFloat64(bits uint64) float64 { return math.Float64frombits(bits) }
