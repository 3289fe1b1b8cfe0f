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

package theta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// T1: an empty theta sketch reports estimate 0, IsEmpty true, and a
// minimal 8-byte compact serialized image.
func TestScenarioT1(t *testing.T) {
	source, err := NewQuickSelectUpdateSketch()
	require.NoError(t, err)

	sketch := NewCompactSketch(source, true)
	assert.True(t, sketch.IsEmpty())
	assert.Equal(t, 0.0, sketch.Estimate())

	bytes, err := sketch.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, bytes, 8)
}
