// Copyright (c) 2020-2021 The cfxaddr developers
// Copyright (c) 2017 The Bitcoin ABC developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base32

import (
	"errors"
	"fmt"
)

// The base32 variant used by the address scheme. The alphabet drops the
// easily confused characters i, l, o and q; it is not interchangeable with
// RFC 4648 base32 nor with the bech32/cashaddr charsets.

// Charset holds the 32 characters of the alphabet, indexed by symbol value.
const Charset = "abcdefghjkmnprstuvwxyz0123456789"

// charsetRev maps an ASCII code to its symbol value, or -1 when the
// character is not part of the alphabet. Both cases are accepted.
var charsetRev = [128]int8{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	22, 23, 24, 25, 26, 27, 28, 29, 30, 31, -1, -1, -1, -1, -1, -1,
	-1, 0, 1, 2, 3, 4, 5, 6, 7, -1, 8, 9, -1, 10, 11, -1,
	12, -1, 13, 14, 15, 16, 17, 18, 19, 20, 21, -1, -1, -1, -1, -1,
	-1, 0, 1, 2, 3, 4, 5, 6, 7, -1, 8, 9, -1, 10, 11, -1,
	12, -1, 13, 14, 15, 16, 17, 18, 19, 20, 21, -1, -1, -1, -1, -1,
}

// generator is the BCH generator table of the 40-bit checksum. The constants
// are an interoperability contract shared with every other implementation of
// the scheme and must never change.
var generator = [5]uint64{0x98f2bc8e61, 0x79b76d99e2, 0xf33e5fb3c4, 0xae2eabe2a8, 0x1e4f43e470}

// ErrInvalidChar indicates a character outside the 32-symbol alphabet.
var ErrInvalidChar = errors.New("invalid base32 character")

// ErrBadPadding indicates nonzero leftover bits after bit regrouping.
var ErrBadPadding = errors.New("invalid padding bits")

// PolyMod reduces the symbol sequence through the generator polynomial over
// GF(32) and returns the 40-bit residue. A sequence that carries a correct
// embedded checksum reduces to zero.
func PolyMod(values []byte) uint64 {
	c := uint64(1)
	for _, v := range values {
		c0 := c >> 35
		c = (c&0x07ffffffff)<<5 ^ uint64(v)
		for i := 0; i < 5; i++ {
			if (c0>>uint(i))&1 == 1 {
				c ^= generator[i]
			}
		}
	}
	return c ^ 1
}

// ExpandPrefix maps the network-name prefix into the 5-bit checksum domain:
// the low five bits of each character, followed by a zero separator. The
// mask makes the expansion case-insensitive.
func ExpandPrefix(prefix string) []byte {
	ret := make([]byte, len(prefix)+1)
	for i := 0; i < len(prefix); i++ {
		ret[i] = prefix[i] & 0x1f
	}
	ret[len(prefix)] = 0
	return ret
}

// CreateChecksum computes the eight checksum symbols for the given prefix
// and payload symbols, higher 5-bit groups first.
func CreateChecksum(prefix string, payload []byte) []byte {
	values := append(ExpandPrefix(prefix), payload...)
	values = append(values, 0, 0, 0, 0, 0, 0, 0, 0)
	mod := PolyMod(values)
	ret := make([]byte, 8)
	for i := 0; i < 8; i++ {
		ret[i] = byte(mod >> uint(5*(7-i)) & 0x1f)
	}
	return ret
}

// VerifyChecksum reports whether payload, which must include the embedded
// checksum symbols, reduces to zero under the given prefix.
func VerifyChecksum(prefix string, payload []byte) bool {
	return PolyMod(append(ExpandPrefix(prefix), payload...)) == 0
}

// ConvertBits regroups data from fromBits-wide values to toBits-wide values,
// concatenating bits in order. With pad set, a final incomplete group is
// right-padded with zero bits; without it, nonzero leftover bits are
// rejected and all-zero leftover bits are dropped. Every input value must
// fit in fromBits bits, which the alphabet and byte domains guarantee at
// the call sites.
func ConvertBits(data []byte, fromBits, toBits uint, pad bool) ([]byte, error) {
	var acc, bits uint
	maxv := uint(1)<<toBits - 1
	ret := make([]byte, 0, (uint(len(data))*fromBits+toBits-1)/toBits)
	for _, v := range data {
		acc = acc<<fromBits | uint(v)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			ret = append(ret, byte(acc>>bits&maxv))
		}
	}
	if pad {
		if bits > 0 {
			ret = append(ret, byte(acc<<(toBits-bits)&maxv))
		}
	} else if bits > 0 && acc<<(toBits-bits)&maxv != 0 {
		return nil, ErrBadPadding
	}
	return ret, nil
}

// CharToSymbol returns the 5-bit value of c in either case.
func CharToSymbol(c byte) (byte, error) {
	if c >= 128 || charsetRev[c] == -1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChar, string(c))
	}
	return byte(charsetRev[c]), nil
}

// SymbolToChar returns the lowercase character of symbol v. v must be below
// 32.
func SymbolToChar(v byte) byte {
	return Charset[v]
}

// EncodeToString renders a symbol sequence as lowercase alphabet characters.
func EncodeToString(symbols []byte) string {
	ret := make([]byte, len(symbols))
	for i, v := range symbols {
		ret[i] = Charset[v]
	}
	return string(ret)
}

// DecodeString converts alphabet characters of either case back to symbols.
func DecodeString(s string) ([]byte, error) {
	ret := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		v, err := CharToSymbol(s[i])
		if err != nil {
			return nil, err
		}
		ret[i] = v
	}
	return ret, nil
}
