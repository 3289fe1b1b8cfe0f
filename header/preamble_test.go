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

package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/streamsketch/streamsketch/memory"
)

func TestRoundTrip(t *testing.T) {
	r := memory.NewHeap(CommonSize)
	want := Preamble{PreLongs: 2, SerVer: 3, FamilyID: FamilyTheta, Field3: 12, Flags: FlagCompact | FlagOrdered}
	assert.NoError(t, Write(r, want))

	got, err := Read(r)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, got.Compact())
	assert.True(t, got.Ordered())
	assert.False(t, got.Empty())
}

func TestRejectsBigEndian(t *testing.T) {
	r := memory.NewHeap(CommonSize)
	assert.NoError(t, Write(r, Preamble{PreLongs: 1, FamilyID: FamilyHLL}))
	r.PutByte(OffsetFlags, FlagBigEndian)
	_, err := Read(r)
	assert.Error(t, err)
}

func TestCheckFamily(t *testing.T) {
	assert.NoError(t, CheckFamily(Preamble{FamilyID: FamilyQuantiles}, FamilyQuantiles))
	assert.Error(t, CheckFamily(Preamble{FamilyID: FamilyTheta}, FamilyQuantiles))
}

func TestTooSmallRegion(t *testing.T) {
	r := memory.NewHeap(4)
	_, err := Read(r)
	assert.Error(t, err)
	assert.Error(t, Write(r, Preamble{PreLongs: 1}))
}
