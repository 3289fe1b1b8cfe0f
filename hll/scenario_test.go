/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package hll

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// H1: lgConfigK=12 transitions LIST -> SET -> HLL as distinct items accumulate
// (the list holds up to 8 coupons before promoting, and the set promotes to
// HLL once its backing array saturates at its maximum size for this lgK),
// and the final estimate falls within +/-3 sigma (sigma = 1.04*trueCount/sqrt(K)) of
// the true unique count.
func TestScenarioH1(t *testing.T) {
	const lgConfigK = 12
	const k = 1 << lgConfigK

	sketch, err := NewHllSketch(lgConfigK, TgtHllTypeHll8)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, sketch.UpdateInt64(int64(i)))
	}
	assert.Equal(t, curModeList, sketch.GetCurMode())

	for i := 5; i < 200; i++ {
		require.NoError(t, sketch.UpdateInt64(int64(i)))
	}
	assert.Equal(t, curModeSet, sketch.GetCurMode())

	trueCount := k/8 + 10
	for i := 200; i < trueCount; i++ {
		require.NoError(t, sketch.UpdateInt64(int64(i)))
	}
	assert.Equal(t, curModeHll, sketch.GetCurMode())

	estimate, err := sketch.GetEstimate()
	require.NoError(t, err)

	sigma := 1.04 * float64(trueCount) / math.Sqrt(float64(k))
	assert.InDelta(t, float64(trueCount), estimate, 3*sigma)
}

// H2: -0.0 and 0.0 coupon identically, and every NaN bit pattern collapses
// onto a single representative coupon, matching theta's canonicalDouble rule.
func TestScenarioH2(t *testing.T) {
	zero, err := NewHllSketch(12, TgtHllTypeHll8)
	require.NoError(t, err)
	require.NoError(t, zero.UpdateFloat64(0.0))

	negZero, err := NewHllSketch(12, TgtHllTypeHll8)
	require.NoError(t, err)
	require.NoError(t, negZero.UpdateFloat64(math.Copysign(0, -1)))

	zeroBytes, err := zero.ToCompactSlice()
	require.NoError(t, err)
	negZeroBytes, err := negZero.ToCompactSlice()
	require.NoError(t, err)
	assert.Equal(t, zeroBytes, negZeroBytes)

	nan1 := math.Float64frombits(0x7ff8000000000001)
	nan2 := math.Float64frombits(0xfff0000000000001)
	require.True(t, math.IsNaN(nan1))
	require.True(t, math.IsNaN(nan2))

	nanSketch, err := NewHllSketch(12, TgtHllTypeHll8)
	require.NoError(t, err)
	require.NoError(t, nanSketch.UpdateFloat64(nan1))
	require.NoError(t, nanSketch.UpdateFloat64(nan2))

	nanEstimate, err := nanSketch.GetEstimate()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, nanEstimate, 0.1)
}
