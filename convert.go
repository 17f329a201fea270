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
	"math/big"
	"strconv"
)

// ConvertUnsigned converts the given arbitrary-precision integer
// to the native unsigned type T.
// Values above the given maximum result in an OverflowError,
// negative values in an UnderflowError.
func ConvertUnsigned[T Unsigned](value *big.Int, max *big.Int) (T, error) {
	if value.Cmp(max) > 0 {
		return 0, OverflowError{}
	}
	if value.Sign() < 0 {
		return 0, UnderflowError{}
	}
	return T(value.Uint64()), nil
}

// parseUnsigned parses the given decimal literal as the native unsigned type T
// with the given bit size.
func parseUnsigned[T Unsigned](literal string, bitSize int) (T, error) {
	parsed, err := strconv.ParseUint(literal, 10, bitSize)
	if err != nil {
		return 0, InvalidNumberError{
			Literal: literal,
			Message: "expected a decimal unsigned integer",
		}
	}
	return T(parsed), nil
}

// parseBigInt parses the given decimal literal as an arbitrary-precision
// integer in the range [0, max].
func parseBigInt(literal string, max *big.Int) (*big.Int, error) {
	value, ok := new(big.Int).SetString(literal, 10)
	if !ok {
		return nil, InvalidNumberError{
			Literal: literal,
			Message: "expected a decimal unsigned integer",
		}
	}
	if value.Sign() < 0 {
		return nil, UnderflowError{}
	}
	if value.Cmp(max) > 0 {
		return nil, OverflowError{}
	}
	return value, nil
}
