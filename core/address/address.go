// Copyright (c) 2020-2021 The cfxaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address implements the checksummed base32 text encoding of raw
// account ids. An encoded address carries the network-name prefix, an
// address-type tag, the bit-regrouped payload and an embedded 40-bit
// checksum: NETNAME:TYPE.KIND:PAYLOAD||CHECKSUM.
package address

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/conflux-fans/cfxaddr/common/encode/base32"
	"github.com/conflux-fans/cfxaddr/core/types"
	"github.com/conflux-fans/cfxaddr/params"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

const (
	// versionByte prefixes the raw bytes before bit regrouping. Only the
	// zero version is defined.
	versionByte = 0x00

	// MinRawLength is the shortest accepted raw account id. 20 bytes is
	// the common case; the text form fixes the payload at 34 symbols,
	// which only a 20-byte id produces.
	MinRawLength = 20

	payloadLength  = 34
	checksumLength = 8
)

// addrPattern pulls apart an uppercased address. The fixed-length tail
// always classifies the rightmost 34+8 characters as payload and checksum;
// everything before them is the network name plus the optional type tag.
var addrPattern = regexp.MustCompile(fmt.Sprintf(
	`^([A-Z0-9]+):(?:TYPE\.([A-Z]+):)?([0-9A-Z]{%d})([0-9A-Z]{%d})$`,
	payloadLength, checksumLength))

var (
	// ErrMixedCase indicates an address that is neither all-lowercase
	// nor all-uppercase.
	ErrMixedCase = errors.New("mixed case address")

	// ErrMalformed indicates an address that does not match the
	// NETNAME:[TYPE.KIND:]PAYLOAD||CHECKSUM shape.
	ErrMalformed = errors.New("malformed address")

	// ErrUnsupportedVersion indicates a payload whose leading version
	// byte is not zero.
	ErrUnsupportedVersion = errors.New("unsupported address version")

	// ErrTypeMismatch indicates a type tag that disagrees with the type
	// derived from the decoded bytes.
	ErrTypeMismatch = errors.New("address type mismatch")

	// ErrChecksum indicates that the embedded checksum does not verify.
	ErrChecksum = errors.New("checksum error")

	// ErrShortAddress indicates a raw account id under MinRawLength.
	ErrShortAddress = errors.New("address too short")
)

// Address is a decoded account address: the raw bytes, the network they
// belong to and the derived address type. Values are immutable once built.
type Address struct {
	raw       []byte
	networkID uint64
	typ       types.AddressType
	encoded   string
}

// New builds an Address from a raw account id and a network id, deriving
// the address type and the canonical text encoding.
func New(raw []byte, networkID uint64) (*Address, error) {
	if len(raw) < MinRawLength {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortAddress, len(raw))
	}
	typ, err := types.Classify(raw)
	if err != nil {
		return nil, err
	}
	name, err := params.NetworkName(networkID)
	if err != nil {
		return nil, err
	}
	payload, err := base32.ConvertBits(append([]byte{versionByte}, raw...), 8, 5, true)
	if err != nil {
		return nil, err
	}
	check := base32.CreateChecksum(name, payload)
	a := &Address{
		raw:       append([]byte{}, raw...),
		networkID: networkID,
		typ:       typ,
		encoded:   assemble(name, typ, payload, check),
	}
	return a, nil
}

// Encode returns the canonical text form of a raw account id on the given
// network.
func Encode(raw []byte, networkID uint64) (string, error) {
	a, err := New(raw, networkID)
	if err != nil {
		return "", err
	}
	return a.encoded, nil
}

// Decode validates an encoded address and inverts the encoding. The checks
// run in a fixed order so that the first violated rule is the one reported:
// case, structure, alphabet, padding, version, network, type tag, checksum.
func Decode(encoded string) (*Address, error) {
	if strings.ToLower(encoded) != encoded && strings.ToUpper(encoded) != encoded {
		return nil, ErrMixedCase
	}
	m := addrPattern.FindStringSubmatch(strings.ToUpper(encoded))
	if m == nil {
		return nil, ErrMalformed
	}
	name, tag, payloadStr, checkStr := strings.ToLower(m[1]), m[2], m[3], m[4]

	payload, err := base32.DecodeString(payloadStr)
	if err != nil {
		return nil, err
	}
	check, err := base32.DecodeString(checkStr)
	if err != nil {
		return nil, err
	}
	decoded, err := base32.ConvertBits(payload, 5, 8, false)
	if err != nil {
		return nil, err
	}
	if decoded[0] != versionByte {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, decoded[0])
	}
	raw := decoded[1:]
	typ, err := types.Classify(raw)
	if err != nil {
		return nil, err
	}
	networkID, err := params.NetworkID(name)
	if err != nil {
		return nil, err
	}
	if tag != "" && !strings.EqualFold(tag, typ.String()) {
		return nil, fmt.Errorf("%w: declared type.%s, derived type.%s",
			ErrTypeMismatch, strings.ToLower(tag), typ)
	}
	if !base32.VerifyChecksum(name, append(payload, check...)) {
		return nil, ErrChecksum
	}
	return &Address{
		raw:       raw,
		networkID: networkID,
		typ:       typ,
		encoded:   assemble(name, typ, payload, check),
	}, nil
}

// Normalize strips an embedded numeric chain-id segment left by older
// clients (NAME:CHAINID:PAYLOAD becomes NAME:PAYLOAD) and forces uppercase.
// It is a compatibility shim over Decode and validates nothing else.
func Normalize(encoded string) string {
	parts := strings.Split(encoded, ":")
	if len(parts) == 3 && isDigits(parts[1]) {
		parts = []string{parts[0], parts[2]}
	}
	return strings.ToUpper(strings.Join(parts, ":"))
}

// FromCommon builds an Address from an eth-format 20-byte account id.
func FromCommon(addr ethcommon.Address, networkID uint64) (*Address, error) {
	return New(addr[:], networkID)
}

// CommonAddress returns the raw account id in eth-format. Raw ids longer
// than 20 bytes are truncated to their low 20 bytes.
func (a *Address) CommonAddress() ethcommon.Address {
	return ethcommon.BytesToAddress(a.raw)
}

// Bytes returns a copy of the raw account id.
func (a *Address) Bytes() []byte {
	return append([]byte{}, a.raw...)
}

// NetworkID returns the id of the network the address belongs to.
func (a *Address) NetworkID() uint64 {
	return a.networkID
}

// Type returns the derived address type.
func (a *Address) Type() types.AddressType {
	return a.typ
}

// String returns the canonical uppercase text form with the type tag.
func (a *Address) String() string {
	return a.encoded
}

func assemble(name string, typ types.AddressType, payload, check []byte) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString(":type.")
	b.WriteString(typ.String())
	b.WriteString(":")
	b.WriteString(base32.EncodeToString(payload))
	b.WriteString(base32.EncodeToString(check))
	return strings.ToUpper(b.String())
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
