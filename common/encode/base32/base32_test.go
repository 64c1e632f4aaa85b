// Copyright (c) 2020-2021 The cfxaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertBitsPad(t *testing.T) {
	got, err := ConvertBits([]byte{0xff}, 8, 5, true)
	assert.NoError(t, err)
	assert.Equal(t, []byte{31, 28}, got)

	got, err = ConvertBits([]byte{0x00, 0x01}, 8, 5, true)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 16}, got)
}

func TestConvertBitsStrict(t *testing.T) {
	// nonzero leftover bits are malformed padding
	_, err := ConvertBits([]byte{31}, 5, 8, false)
	assert.Equal(t, ErrBadPadding, err)

	// all-zero leftover bits are dropped
	got, err := ConvertBits([]byte{0}, 5, 8, false)
	assert.NoError(t, err)
	assert.Equal(t, []byte{}, got)
}

func TestConvertBitsRoundTrip(t *testing.T) {
	in := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	syms, err := ConvertBits(in, 8, 5, true)
	assert.NoError(t, err)
	out, err := ConvertBits(syms, 5, 8, false)
	assert.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCharToSymbol(t *testing.T) {
	for _, tc := range []struct {
		c byte
		v byte
	}{
		{'a', 0}, {'A', 0}, {'z', 21}, {'Z', 21}, {'0', 22}, {'9', 31},
	} {
		v, err := CharToSymbol(tc.c)
		assert.NoError(t, err)
		assert.Equal(t, tc.v, v)
	}
	for _, c := range []byte{'i', 'l', 'o', 'q', 'O', ':', '%'} {
		_, err := CharToSymbol(c)
		assert.Error(t, err)
	}
	_, err := CharToSymbol('o')
	assert.EqualError(t, err, `invalid base32 character: "o"`)
}

func TestSymbolCharRoundTrip(t *testing.T) {
	for v := byte(0); v < 32; v++ {
		c := SymbolToChar(v)
		got, err := CharToSymbol(c)
		assert.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestDecodeString(t *testing.T) {
	syms, err := DecodeString("aBc9")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 2, 31}, syms)
	assert.Equal(t, "abc9", EncodeToString(syms))

	_, err = DecodeString("abio")
	assert.EqualError(t, err, `invalid base32 character: "i"`)
}

func TestChecksum(t *testing.T) {
	// payload of the scheme's reference mainnet address
	payload, err := DecodeString("acc7uawf5ubtnmezvhu9dhc6sghea0403y")
	assert.NoError(t, err)

	check := CreateChecksum("cfx", payload)
	assert.Equal(t, "2dgpyfjp", EncodeToString(check))
	assert.True(t, VerifyChecksum("cfx", append(payload, check...)))

	// any single-symbol corruption must break the residue
	bad := append(append([]byte{}, payload...), check...)
	bad[len(bad)-1] ^= 1
	assert.False(t, VerifyChecksum("cfx", bad))
	bad = append(append([]byte{}, payload...), check...)
	bad[0] ^= 2
	assert.False(t, VerifyChecksum("cfx", bad))
}

func TestPolyModEmpty(t *testing.T) {
	// residue of the empty sequence is the folded initial state
	assert.Equal(t, uint64(0), PolyMod(nil))
}
