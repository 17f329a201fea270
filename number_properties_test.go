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
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestUInt64ValueProperties(t *testing.T) {

	t.Parallel()

	properties := gopter.NewProperties(nil)

	properties.Property("addition is commutative", prop.ForAll(
		func(a, b uint64) bool {
			x, errX := NewUInt64Value(a).Plus(NewUInt64Value(b))
			y, errY := NewUInt64Value(b).Plus(NewUInt64Value(a))
			if errX != nil || errY != nil {
				return errX == errY
			}
			return x == y
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.Property("multiplication is commutative", prop.ForAll(
		func(a, b uint64) bool {
			x, errX := NewUInt64Value(a).Mul(NewUInt64Value(b))
			y, errY := NewUInt64Value(b).Mul(NewUInt64Value(a))
			if errX != nil || errY != nil {
				return errX == errY
			}
			return x == y
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.Property("zero is the additive identity", prop.ForAll(
		func(a uint64) bool {
			sum, err := NewUInt64Value(a).Plus(NewUInt64Value(0))
			return err == nil && sum == NewUInt64Value(a)
		},
		gen.UInt64(),
	))

	properties.Property("one is the multiplicative identity", prop.ForAll(
		func(a uint64) bool {
			product, err := NewUInt64Value(a).Mul(NewUInt64Value(1))
			return err == nil && product == NewUInt64Value(a)
		},
		gen.UInt64(),
	))

	properties.Property("subtraction reverses addition", prop.ForAll(
		func(a, b uint64) bool {
			sum, err := NewUInt64Value(a).Plus(NewUInt64Value(b))
			if err != nil {
				return true
			}
			diff, err := sum.Minus(NewUInt64Value(b))
			return err == nil && diff == NewUInt64Value(a)
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.Property("successful results match exact arithmetic", prop.ForAll(
		func(a, b uint64) bool {
			bigA := new(big.Int).SetUint64(a)
			bigB := new(big.Int).SetUint64(b)
			exact := new(big.Int).Mul(bigA, bigB)

			product, err := NewUInt64Value(a).Mul(NewUInt64Value(b))
			if exact.Cmp(UInt64TypeMaxIntBig) > 0 {
				return err == (OverflowError{Operation: OperationMultiply})
			}
			return err == nil && product.ToBigInt().Cmp(exact) == 0
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func genUInt256Value() gopter.Gen {
	return gen.UInt64().Map(func(v uint64) UInt256Value {
		// spread the 64 random bits across the full 256-bit range
		b := new(big.Int).SetUint64(v)
		b.Mul(b, b)
		b.Mul(b, b)
		b.Mod(b, UInt256TypeMaxIntBig)
		value, err := NewUInt256ValueFromBigInt(b)
		if err != nil {
			panic(err)
		}
		return value
	})
}

func TestUInt256ValueProperties(t *testing.T) {

	t.Parallel()

	properties := gopter.NewProperties(nil)

	properties.Property("addition is commutative", prop.ForAll(
		func(a, b UInt256Value) bool {
			x, errX := a.Plus(b)
			y, errY := b.Plus(a)
			if errX != nil || errY != nil {
				return errX == errY
			}
			return x.Equal(y)
		},
		genUInt256Value(),
		genUInt256Value(),
	))

	properties.Property("multiplication is commutative", prop.ForAll(
		func(a, b UInt256Value) bool {
			x, errX := a.Mul(b)
			y, errY := b.Mul(a)
			if errX != nil || errY != nil {
				return errX == errY
			}
			return x.Equal(y)
		},
		genUInt256Value(),
		genUInt256Value(),
	))

	properties.Property("subtraction reverses addition", prop.ForAll(
		func(a, b UInt256Value) bool {
			sum, err := a.Plus(b)
			if err != nil {
				return true
			}
			diff, err := sum.Minus(b)
			return err == nil && diff.Equal(a)
		},
		genUInt256Value(),
		genUInt256Value(),
	))

	properties.Property("successful results match exact arithmetic", prop.ForAll(
		func(a, b UInt256Value) bool {
			exact := new(big.Int).Mul(a.BigInt, b.BigInt)

			product, err := a.Mul(b)
			if exact.Cmp(UInt256TypeMaxIntBig) > 0 {
				return err == (OverflowError{Operation: OperationMultiply})
			}
			return err == nil && product.BigInt.Cmp(exact) == 0
		},
		genUInt256Value(),
		genUInt256Value(),
	))

	properties.TestingRun(t)
}
