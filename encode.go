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
	"math/big"

	"github.com/fxamacker/cbor/v2"

	"github.com/onflow/safemath/errors"
)

// The value types are encoded in CBOR with custom tags.
//
// !!! *WARNING* !!!
//
// Only add new types by appending to the tag space.
// DO *NOT* REPLACE OR REORDER EXISTING TYPES!

const CBORTagBase = 208

const (
	CBORTagUInt8Value = CBORTagBase + iota
	CBORTagUInt16Value
	CBORTagUInt32Value
	CBORTagUInt64Value
	CBORTagUInt128Value
	CBORTagUInt256Value
	CBORTagUFix64Value
)

var encMode = func() cbor.EncMode {
	mode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return mode
}()

var decMode = func() cbor.DecMode {
	mode, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(err)
	}
	return mode
}()

// UnknownTagError is returned when decoding data
// with a CBOR tag outside of this package's tag space.
type UnknownTagError struct {
	Tag uint64
}

var _ error = UnknownTagError{}

func (e UnknownTagError) Error() string {
	return fmt.Sprintf("unknown CBOR tag: %d", e.Tag)
}

// Encode returns the CBOR representation of the given value.
func Encode(value Value) ([]byte, error) {
	switch v := value.(type) {
	case UInt8Value:
		return encodeTagged(CBORTagUInt8Value, uint8(v))

	case UInt16Value:
		return encodeTagged(CBORTagUInt16Value, uint16(v))

	case UInt32Value:
		return encodeTagged(CBORTagUInt32Value, uint32(v))

	case UInt64Value:
		return encodeTagged(CBORTagUInt64Value, uint64(v))

	case UInt128Value:
		return encodeTagged(CBORTagUInt128Value, v.BigInt.Bytes())

	case UInt256Value:
		return encodeTagged(CBORTagUInt256Value, v.BigInt.Bytes())

	case UFix64Value:
		return encodeTagged(CBORTagUFix64Value, uint64(v))
	}

	panic(errors.NewUnreachableError())
}

func encodeTagged(tag uint64, content any) ([]byte, error) {
	return encMode.Marshal(cbor.Tag{
		Number:  tag,
		Content: content,
	})
}

// Decode returns the value for the given CBOR representation.
// Decoded values are range-checked:
// a payload outside of the range of the tagged type is rejected.
func Decode(data []byte) (Value, error) {
	var tag cbor.RawTag
	err := decMode.Unmarshal(data, &tag)
	if err != nil {
		return nil, err
	}

	switch tag.Number {
	case CBORTagUInt8Value:
		var content uint8
		err := decMode.Unmarshal(tag.Content, &content)
		if err != nil {
			return nil, err
		}
		return UInt8Value(content), nil

	case CBORTagUInt16Value:
		var content uint16
		err := decMode.Unmarshal(tag.Content, &content)
		if err != nil {
			return nil, err
		}
		return UInt16Value(content), nil

	case CBORTagUInt32Value:
		var content uint32
		err := decMode.Unmarshal(tag.Content, &content)
		if err != nil {
			return nil, err
		}
		return UInt32Value(content), nil

	case CBORTagUInt64Value:
		var content uint64
		err := decMode.Unmarshal(tag.Content, &content)
		if err != nil {
			return nil, err
		}
		return UInt64Value(content), nil

	case CBORTagUInt128Value:
		content, err := decodeBigEndianBytes(tag.Content)
		if err != nil {
			return nil, err
		}
		value, err := NewUInt128ValueFromBigInt(content)
		if err != nil {
			return nil, err
		}
		return value, nil

	case CBORTagUInt256Value:
		content, err := decodeBigEndianBytes(tag.Content)
		if err != nil {
			return nil, err
		}
		value, err := NewUInt256ValueFromBigInt(content)
		if err != nil {
			return nil, err
		}
		return value, nil

	case CBORTagUFix64Value:
		var content uint64
		err := decMode.Unmarshal(tag.Content, &content)
		if err != nil {
			return nil, err
		}
		return UFix64Value(content), nil
	}

	return nil, UnknownTagError{Tag: tag.Number}
}

func decodeBigEndianBytes(content cbor.RawMessage) (*big.Int, error) {
	var b []byte
	err := decMode.Unmarshal(content, &b)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}
