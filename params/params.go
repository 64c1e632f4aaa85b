// Copyright (c) 2020-2021 The cfxaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package params holds the network registry of the address scheme: the
// bidirectional mapping between numeric network ids and the network-name
// prefix carried by encoded addresses.
package params

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// MainNetID and TestNetID are the two reserved network ids. They
	// travel under their canonical names only; the generic net<N> form
	// must never be used for them.
	MainNetID = 1029
	TestNetID = 1

	// MainNetName and TestNetName are the canonical prefixes of the
	// reserved ids.
	MainNetName = "cfx"
	TestNetName = "cfxtest"

	// MaxNetworkID is the largest assignable network id.
	MaxNetworkID = 0xffffffff
)

// ErrInvalidNetworkID indicates a network id outside [1, MaxNetworkID].
var ErrInvalidNetworkID = errors.New("invalid network id")

// ErrUnknownNetwork indicates a prefix that is neither a canonical name nor
// a well-formed net<N> name.
var ErrUnknownNetwork = errors.New("unknown network name")

// ErrReservedNetworkID indicates a net<N> name whose id is reserved for a
// canonical name.
var ErrReservedNetworkID = errors.New("reserved network id")

// NetworkName returns the textual prefix of a network id: the canonical
// name for the reserved ids, net<id> for everything else in range.
func NetworkName(id uint64) (string, error) {
	if id < 1 || id > MaxNetworkID {
		return "", fmt.Errorf("%w: %d", ErrInvalidNetworkID, id)
	}
	switch id {
	case MainNetID:
		return MainNetName, nil
	case TestNetID:
		return TestNetName, nil
	}
	return "net" + strconv.FormatUint(id, 10), nil
}

// NetworkID resolves a lowercase network-name prefix back to its id. The
// generic form requires one or more digits with no leading zero, a value
// within range, and a non-reserved id.
func NetworkID(name string) (uint64, error) {
	switch name {
	case MainNetName:
		return MainNetID, nil
	case TestNetName:
		return TestNetID, nil
	}
	digits := strings.TrimPrefix(name, "net")
	if digits == name || digits == "" || digits[0] == '0' {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
	}
	id, err := strconv.ParseUint(digits, 10, 64)
	if err != nil || id > MaxNetworkID {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
	}
	if id == MainNetID || id == TestNetID {
		return 0, fmt.Errorf("%w: %q", ErrReservedNetworkID, name)
	}
	return id, nil
}
