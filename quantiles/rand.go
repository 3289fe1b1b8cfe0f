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

import "math/rand"

// CoinFlipper is the seam for the compactor's fair coin flips. Production
// code can leave it unset to get an OS-seeded generator; tests inject a
// seeded one to make compaction (and therefore serialized output)
// reproducible, per the package's determinism requirement.
type CoinFlipper interface {
	// NextBool returns true or false with equal probability.
	NextBool() bool
}

type mathRandCoinFlipper struct {
	r *rand.Rand
}

func (c *mathRandCoinFlipper) NextBool() bool { return c.r.Int63()&1 == 0 }

// NewSeededCoinFlipper returns a CoinFlipper producing a deterministic
// sequence from seed, suitable for reproducible tests and for keeping a
// heap and a direct sketch byte-identical under property 5.
func NewSeededCoinFlipper(seed int64) CoinFlipper {
	return &mathRandCoinFlipper{r: rand.New(rand.NewSource(seed))}
}

func defaultCoinFlipper() CoinFlipper {
	return &mathRandCoinFlipper{r: rand.New(rand.NewSource(rand.Int63()))}
}
