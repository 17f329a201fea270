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

package format

import (
	"fmt"
	"math/big"
	"strconv"
)

const UFix64Scale = 8
const UFix64Factor = 100_000_000

func Uint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func BigInt(v *big.Int) string {
	return v.String()
}

// UFix64 returns the decimal representation of the given
// raw fixed-point value, e.g. 150000000 is formatted as "1.50000000".
func UFix64(v uint64) string {
	integer := v / UFix64Factor
	fraction := v % UFix64Factor
	return fmt.Sprintf(
		"%d.%08d",
		integer,
		fraction,
	)
}
