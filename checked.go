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

// Unsigned is the constraint of the native integer types
// backing the fixed-width value types up to 64 bits.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// AddUnsigned returns the exact sum of a and b,
// or an OverflowError if the sum exceeds the maximum of T.
func AddUnsigned[T Unsigned](a, b T) (T, error) {
	sum := a + b
	// INT30-C
	if sum < a {
		return 0, OverflowError{Operation: OperationAdd}
	}
	return sum, nil
}

// SubUnsigned returns the exact difference of a and b,
// or an UnderflowError if b is greater than a.
func SubUnsigned[T Unsigned](a, b T) (T, error) {
	diff := a - b
	// INT30-C
	if diff > a {
		return 0, UnderflowError{Operation: OperationSubtract}
	}
	return diff, nil
}

// MulUnsigned returns the exact product of a and b,
// or an OverflowError if the product exceeds the maximum of T.
//
// The guard divides the maximum of T by one factor before multiplying,
// so the overflow is detected without the fixed-width product
// ever being computed. Comparing a wrapped product after the fact
// can never observe the overflow.
func MulUnsigned[T Unsigned](a, b T) (T, error) {
	// INT30-C
	if b != 0 && a > ^T(0)/b {
		return 0, OverflowError{Operation: OperationMultiply}
	}
	return a * b, nil
}

// DivUnsigned returns the quotient of a and b,
// or a DivisionByZeroError if b is zero.
func DivUnsigned[T Unsigned](a, b T) (T, error) {
	if b == 0 {
		return 0, DivisionByZeroError{Operation: OperationDivide}
	}
	return a / b, nil
}

// ModUnsigned returns the remainder of a and b,
// or a DivisionByZeroError if b is zero.
func ModUnsigned[T Unsigned](a, b T) (T, error) {
	if b == 0 {
		return 0, DivisionByZeroError{Operation: OperationMod}
	}
	return a % b, nil
}
