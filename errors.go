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
	"fmt"
)

// OverflowError

// OverflowError is returned when the exact result of an operation
// exceeds the maximum representable value of the type.
type OverflowError struct {
	Operation Operation
}

var _ error = OverflowError{}

func (e OverflowError) Error() string {
	return fmt.Sprintf("overflow in %s", e.Operation)
}

// UnderflowError

// UnderflowError is returned when the exact result of an operation
// is below the minimum representable value of the type.
type UnderflowError struct {
	Operation Operation
}

var _ error = UnderflowError{}

func (e UnderflowError) Error() string {
	return fmt.Sprintf("underflow in %s", e.Operation)
}

// DivisionByZeroError

type DivisionByZeroError struct {
	Operation Operation
}

var _ error = DivisionByZeroError{}

func (e DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero in %s", e.Operation)
}

// InvalidNumberError

// InvalidNumberError is returned when a string or byte representation
// cannot be interpreted as a value of the requested type.
type InvalidNumberError struct {
	Literal string
	Message string
}

var _ error = InvalidNumberError{}

func (e InvalidNumberError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("invalid number: %q", e.Literal)
	}
	return fmt.Sprintf("invalid number: %q: %s", e.Literal, e.Message)
}
