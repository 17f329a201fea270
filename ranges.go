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
	"math"
	"math/big"
)

// UInt8

const UInt8TypeMinInt = 0
const UInt8TypeMaxInt = math.MaxUint8

var UInt8TypeMaxIntBig = new(big.Int).SetUint64(UInt8TypeMaxInt)

// UInt16

const UInt16TypeMinInt = 0
const UInt16TypeMaxInt = math.MaxUint16

var UInt16TypeMaxIntBig = new(big.Int).SetUint64(UInt16TypeMaxInt)

// UInt32

const UInt32TypeMinInt = 0
const UInt32TypeMaxInt = math.MaxUint32

var UInt32TypeMaxIntBig = new(big.Int).SetUint64(UInt32TypeMaxInt)

// UInt64

const UInt64TypeMinInt = 0
const UInt64TypeMaxInt = math.MaxUint64

var UInt64TypeMaxIntBig = new(big.Int).SetUint64(UInt64TypeMaxInt)

// UInt128

var UInt128TypeMinIntBig = new(big.Int)
var UInt128TypeMaxIntBig = maxIntBig(128)

// UInt256

var UInt256TypeMinIntBig = new(big.Int)
var UInt256TypeMaxIntBig = maxIntBig(256)

// maxIntBig returns 2^bits - 1
func maxIntBig(bits uint) *big.Int {
	max := new(big.Int).Lsh(big.NewInt(1), bits)
	return max.Sub(max, big.NewInt(1))
}
