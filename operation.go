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
	"github.com/onflow/safemath/errors"
)

// Operation identifies the arithmetic operation an error originated from.
type Operation uint8

const (
	OperationUnknown Operation = iota
	OperationAdd
	OperationSubtract
	OperationMultiply
	OperationDivide
	OperationMod
)

func (op Operation) String() string {
	switch op {
	case OperationUnknown:
		return "unknown"
	case OperationAdd:
		return "addition"
	case OperationSubtract:
		return "subtraction"
	case OperationMultiply:
		return "multiplication"
	case OperationDivide:
		return "division"
	case OperationMod:
		return "remainder"
	}

	panic(errors.NewUnreachableError())
}
