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

// Package safemath provides fixed-width unsigned integer value types
// whose arithmetic operations detect overflow and underflow
// instead of silently wrapping.
//
// Every operation either returns the exact mathematical result,
// or an error naming the operation and the direction of the failure.
// Results are never truncated, clamped, or substituted:
// a caller that receives an error must treat the enclosing operation as failed.
//
// The UInt8Value, UInt16Value, UInt32Value, and UInt64Value types
// are backed by native integers and guard each operation before wraparound
// can be observed. The UInt128Value and UInt256Value types are backed by
// arbitrary-precision integers: operations compute the exact result
// and range-check it, so multiplication overflow is detected
// from the exact product, never from an already-wrapped fixed-width product.
//
// UFix64Value provides the same checked semantics
// for unsigned 64-bit fixed-point values with a decimal scale of 8.
//
// Saturating variants of the arithmetic operations are provided
// for callers that explicitly want clamping to the type's bounds.
// The checked operations never clamp.
package safemath
