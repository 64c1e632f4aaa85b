// Copyright (c) 2020-2021 The cfxaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetworkName(t *testing.T) {
	name, err := NetworkName(TestNetID)
	assert.NoError(t, err)
	assert.Equal(t, "cfxtest", name)

	name, err = NetworkName(MainNetID)
	assert.NoError(t, err)
	assert.Equal(t, "cfx", name)

	name, err = NetworkName(4294967295)
	assert.NoError(t, err)
	assert.Equal(t, "net4294967295", name)

	_, err = NetworkName(0)
	assert.EqualError(t, err, "invalid network id: 0")

	_, err = NetworkName(4294967296)
	assert.EqualError(t, err, "invalid network id: 4294967296")
}

func TestNetworkID(t *testing.T) {
	id, err := NetworkID("cfx")
	assert.NoError(t, err)
	assert.Equal(t, uint64(MainNetID), id)

	id, err = NetworkID("cfxtest")
	assert.NoError(t, err)
	assert.Equal(t, uint64(TestNetID), id)

	id, err = NetworkID("net7")
	assert.NoError(t, err)
	assert.Equal(t, uint64(7), id)

	id, err = NetworkID("net4294967295")
	assert.NoError(t, err)
	assert.Equal(t, uint64(4294967295), id)
}

func TestNetworkIDReserved(t *testing.T) {
	// the reserved ids round-trip through their canonical names only
	_, err := NetworkID("net1")
	assert.EqualError(t, err, `reserved network id: "net1"`)

	_, err = NetworkID("net1029")
	assert.EqualError(t, err, `reserved network id: "net1029"`)
}

func TestNetworkIDMalformed(t *testing.T) {
	for _, name := range []string{
		"", "net", "net0", "net01", "net-7", "net+7", "net7x",
		"net4294967296", "net99999999999999999999", "cfxmain", "CFX",
	} {
		_, err := NetworkID(name)
		assert.Error(t, err, name)
	}
}
