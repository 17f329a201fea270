/*
 * Safemath - Checked fixed-width unsigned integer arithmetic
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package safemath

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestConcurrentUse exercises shared values from many goroutines.
// Operations never mutate their operands, so no synchronization is needed.
func TestConcurrentUse(t *testing.T) {

	t.Parallel()

	const goroutines = 16
	const iterations = 1000

	shared, err := ParseUInt256Value("340282366920938463463374607431768211455")
	require.NoError(t, err)

	expectedSum, err := shared.Plus(NewUInt256ValueFromUint64(1))
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for range goroutines {
		go func() {
			defer wg.Done()

			for range iterations {
				sum, err := shared.Plus(NewUInt256ValueFromUint64(1))
				assert.NoError(t, err)
				assert.True(t, sum.Equal(expectedSum))

				product, err := shared.Mul(shared)
				assert.NoError(t, err)
				assert.True(t, product.Greater(shared))

				_, err = NewUInt256ValueFromUint64(0).Minus(shared)
				assert.Error(t, err)
			}
		}()
	}

	wg.Wait()

	// the shared operand is unchanged
	assert.Equal(t,
		"340282366920938463463374607431768211455",
		shared.String(),
	)
}
