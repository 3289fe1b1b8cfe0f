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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/streamsketch/streamsketch/memory"
)

// Q1: default k=128, update 0..999 in order.
func TestScenarioQ1(t *testing.T) {
	s, err := NewBuilder().SetK(128).SetCoinFlipper(NewSeededCoinFlipper(1)).Build()
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		require.NoError(t, s.Update(float64(i)))
	}
	assert.Equal(t, 0.0, s.MinValue())
	assert.Equal(t, 999.0, s.MaxValue())
	q, err := s.GetQuantile(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 500, q, 4)
}

// Q2: direct sketch on a 10000-byte region, update 0..999, serialize,
// heapify, update 1000..1999.
func TestScenarioQ2(t *testing.T) {
	region := memory.NewHeap(10000)
	s, err := NewBuilder().SetK(128).SetCoinFlipper(NewSeededCoinFlipper(2)).BuildDirect(region)
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		require.NoError(t, s.Update(float64(i)))
	}
	bytes := s.ToByteArray(false)

	s2, err := Heapify(bytes)
	require.NoError(t, err)
	s2.coin = NewSeededCoinFlipper(3)
	for i := 1000; i < 2000; i++ {
		require.NoError(t, s2.Update(float64(i)))
	}
	assert.Equal(t, 0.0, s2.MinValue())
	assert.Equal(t, 1999.0, s2.MaxValue())
	q, err := s2.GetQuantile(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 1000, q, 10)
}

// Q3: update(1), update(2); toByteArray(updatable).length == UpdatableStorageBytes.
func TestScenarioQ3(t *testing.T) {
	s, err := NewBuilder().SetK(128).Build()
	require.NoError(t, err)
	require.NoError(t, s.Update(1))
	require.NoError(t, s.Update(2))
	assert.Equal(t, s.UpdatableStorageBytes(), len(s.ToByteArray(false)))
}

func TestEmptySketch(t *testing.T) {
	s, err := NewBuilder().SetK(64).Build()
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())
	_, err = s.GetQuantile(0.5)
	assert.Error(t, err)

	bytes := s.ToByteArray(false)
	s2, err := Heapify(bytes)
	require.NoError(t, err)
	assert.True(t, s2.IsEmpty())
	assert.Equal(t, s.K(), s2.K())
}

func TestSingleItemRoundTrip(t *testing.T) {
	s, err := NewBuilder().SetK(32).Build()
	require.NoError(t, err)
	require.NoError(t, s.Update(42.5))

	for _, compact := range []bool{true, false} {
		bytes := s.ToByteArray(compact)
		s2, err := Heapify(bytes)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), s2.N())
		assert.Equal(t, 42.5, s2.MinValue())
		assert.Equal(t, 42.5, s2.MaxValue())
	}
}

func TestRoundTripAfterCompaction(t *testing.T) {
	s, err := NewBuilder().SetK(16).SetCoinFlipper(NewSeededCoinFlipper(42)).Build()
	require.NoError(t, err)
	for i := 0; i < 5000; i++ {
		require.NoError(t, s.Update(float64(i)))
	}
	for _, compact := range []bool{true, false} {
		bytes := s.ToByteArray(compact)
		s2, err := Heapify(bytes)
		require.NoError(t, err)
		assert.Equal(t, s.N(), s2.N())
		assert.Equal(t, s.MinValue(), s2.MinValue())
		assert.Equal(t, s.MaxValue(), s2.MaxValue())
		assert.Equal(t, s.bitPattern, s2.bitPattern)
	}
}

func TestCompactSketchRejectsUpdate(t *testing.T) {
	s, err := NewBuilder().SetK(16).Build()
	require.NoError(t, err)
	require.NoError(t, s.Update(1))
	c := s.Compact()
	assert.True(t, c.IsCompact())
	err = c.Update(2)
	assert.Error(t, err)
}

func TestDirectHeapEquivalence(t *testing.T) {
	heap, err := NewBuilder().SetK(32).SetCoinFlipper(NewSeededCoinFlipper(7)).Build()
	require.NoError(t, err)

	region := memory.NewHeap(20000)
	direct, err := NewBuilder().SetK(32).SetCoinFlipper(NewSeededCoinFlipper(7)).BuildDirect(region)
	require.NoError(t, err)

	for i := 0; i < 3000; i++ {
		v := math.Sin(float64(i))
		require.NoError(t, heap.Update(v))
		require.NoError(t, direct.Update(v))
	}
	assert.Equal(t, heap.ToByteArray(true), direct.ToByteArray(true))
}

func TestMergeEqualK(t *testing.T) {
	a, err := NewBuilder().SetK(32).SetCoinFlipper(NewSeededCoinFlipper(1)).Build()
	require.NoError(t, err)
	b, err := NewBuilder().SetK(32).SetCoinFlipper(NewSeededCoinFlipper(2)).Build()
	require.NoError(t, err)
	for i := 0; i < 2000; i++ {
		require.NoError(t, a.Update(float64(i)))
	}
	for i := 2000; i < 4000; i++ {
		require.NoError(t, b.Update(float64(i)))
	}
	require.NoError(t, a.Merge(b))
	assert.Equal(t, uint64(4000), a.N())
	assert.Equal(t, 0.0, a.MinValue())
	assert.Equal(t, 3999.0, a.MaxValue())
	q, err := a.GetQuantile(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 2000, q, 40)
}

func TestMergeRejectsDifferentK(t *testing.T) {
	a, err := NewBuilder().SetK(32).Build()
	require.NoError(t, err)
	b, err := NewBuilder().SetK(64).Build()
	require.NoError(t, err)
	require.NoError(t, b.Update(1))
	assert.Error(t, a.Merge(b))
}

func TestInvalidK(t *testing.T) {
	_, err := NewBuilder().SetK(100).Build() // not a power of two
	assert.Error(t, err)
	_, err = NewBuilder().SetK(1).Build() // below MinK
	assert.Error(t, err)
}

func TestCDFAndPMF(t *testing.T) {
	s, err := NewBuilder().SetK(64).Build()
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		require.NoError(t, s.Update(float64(i)))
	}
	cdf, err := s.GetCDF([]float64{250, 500, 750})
	require.NoError(t, err)
	require.Len(t, cdf, 4)
	assert.InDelta(t, 0.25, cdf[0], 0.02)
	assert.InDelta(t, 0.5, cdf[1], 0.02)
	assert.InDelta(t, 0.75, cdf[2], 0.02)
	assert.Equal(t, 1.0, cdf[3])

	pmf, err := s.GetPMF([]float64{500})
	require.NoError(t, err)
	require.Len(t, pmf, 2)
	assert.InDelta(t, 1.0, pmf[0]+pmf[1], 1e-9)

	_, err = s.GetCDF([]float64{5, 3})
	assert.Error(t, err)
	_, err = s.GetCDF([]float64{math.NaN()})
	assert.Error(t, err)
}

func TestNegativeZeroCanonicalization(t *testing.T) {
	a, err := NewBuilder().SetK(16).Build()
	require.NoError(t, err)
	require.NoError(t, a.Update(0.0))
	b, err := NewBuilder().SetK(16).Build()
	require.NoError(t, err)
	require.NoError(t, b.Update(math.Copysign(0, -1)))
	assert.Equal(t, a.MinValue(), b.MinValue())
	assert.Equal(t, a.MaxValue(), b.MaxValue())
}

func TestRankErrorBoundOnUniformStream(t *testing.T) {
	const n = 20000
	const k = 128
	s, err := NewBuilder().SetK(k).SetCoinFlipper(NewSeededCoinFlipper(99)).Build()
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, s.Update(float64(i)))
	}
	for _, phi := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		q, err := s.GetQuantile(phi)
		require.NoError(t, err)
		trueRank := phi * n
		assert.InDelta(t, trueRank, q, 2.0/k*n, "phi=%v", phi)
	}
}

func TestCapacityExceededOnDirectGrowth(t *testing.T) {
	region := memory.NewHeap(dataStartOffset + 2*32*8) // room for base buffer + exactly one level (twoK=32)
	s, err := NewBuilder().SetK(16).BuildDirect(region)
	require.NoError(t, err)
	var lastErr error
	for i := 0; i < 5000 && lastErr == nil; i++ {
		lastErr = s.Update(float64(i))
	}
	assert.Error(t, lastErr)
}

func TestIsSameResource(t *testing.T) {
	region := memory.NewHeap(10000)
	s, err := NewBuilder().SetK(16).BuildDirect(region)
	require.NoError(t, err)
	assert.True(t, s.IsSameResource(region))

	other := memory.NewHeap(10000)
	assert.False(t, s.IsSameResource(other))
}

func TestReset(t *testing.T) {
	s, err := NewBuilder().SetK(16).Build()
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		require.NoError(t, s.Update(float64(i)))
	}
	require.NoError(t, s.Reset())
	assert.True(t, s.IsEmpty())
	assert.Equal(t, uint16(16), s.K())
}
