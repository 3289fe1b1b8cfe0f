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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeapRegionReadWrite(t *testing.T) {
	r := NewHeap(64)
	r.PutUint64(8, 0x0102030405060708)
	assert.Equal(t, uint64(0x0102030405060708), r.GetUint64(8))
	assert.Equal(t, byte(0x08), r.GetByte(8))

	r.PutFloat64(16, 3.14159)
	assert.InDelta(t, 3.14159, r.GetFloat64(16), 1e-12)

	r.PutUint16(24, 0xBEEF)
	assert.Equal(t, uint16(0xBEEF), r.GetUint16(24))

	r.PutByteSlice(32, []byte{1, 2, 3, 4})
	assert.Equal(t, []byte{1, 2, 3, 4}, r.GetByteSlice(32, 4))
}

func TestWrapForeignMutatesCallerSlice(t *testing.T) {
	buf := make([]byte, 16)
	r := WrapForeign(buf, false)
	r.PutUint32(0, 0xCAFEBABE)
	assert.Equal(t, uint32(0xCAFEBABE), buf32(buf))
}

func buf32(buf []byte) uint32 {
	return uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
}

func TestReadOnlyRegionPanicsOnWrite(t *testing.T) {
	buf := make([]byte, 8)
	r := WrapForeign(buf, true)
	assert.Panics(t, func() { r.PutByte(0, 1) })
}

func TestIsSameResource(t *testing.T) {
	buf := make([]byte, 32)
	a := WrapForeign(buf, false)
	b := WrapForeign(buf, false)
	assert.True(t, a.IsSameResource(b))

	other := make([]byte, 32)
	c := WrapForeign(other, false)
	assert.False(t, a.IsSameResource(c))

	sub := Slice(a, 0, 16)
	assert.False(t, a.IsSameResource(sub), "a differently-capacitied view is not the same resource")
}

func TestToByteArrayCopies(t *testing.T) {
	r := NewHeap(4)
	r.PutByte(0, 9)
	cp := r.ToByteArray()
	cp[0] = 200
	assert.Equal(t, byte(9), r.GetByte(0))
}
