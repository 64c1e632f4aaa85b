// Copyright (c) 2020-2021 The cfxaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package types

import "errors"

// AddressType classifies a raw account id by the high nibble of its first
// byte. The classification is embedded in the text form of an address as a
// redundant consistency check against the raw bytes.
type AddressType byte

const (
	UserAddress     AddressType = 0x10
	ContractAddress AddressType = 0x80
	BuiltinAddress  AddressType = 0x01
	NullAddress     AddressType = 0x00
)

// ErrEmptyAddress indicates a zero-length raw address.
var ErrEmptyAddress = errors.New("empty address")

// ErrInvalidAddressType indicates a first byte whose high nibble matches no
// known address space.
var ErrInvalidAddressType = errors.New("invalid address type")

// Classify derives the address type of a raw account id. The 0x00 space
// distinguishes builtin accounts from the null address by scanning for any
// nonzero byte.
func Classify(raw []byte) (AddressType, error) {
	if len(raw) == 0 {
		return 0, ErrEmptyAddress
	}
	switch raw[0] & 0xf0 {
	case 0x10:
		return UserAddress, nil
	case 0x80:
		return ContractAddress, nil
	case 0x00:
		for _, b := range raw {
			if b != 0 {
				return BuiltinAddress, nil
			}
		}
		return NullAddress, nil
	}
	return 0, ErrInvalidAddressType
}

// String returns the lowercase tag of the type as it appears in encoded
// addresses.
func (t AddressType) String() string {
	switch t {
	case UserAddress:
		return "user"
	case ContractAddress:
		return "contract"
	case BuiltinAddress:
		return "builtin"
	case NullAddress:
		return "null"
	}
	return "unknown"
}
