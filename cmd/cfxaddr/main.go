// Copyright (c) 2020-2021 The cfxaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// cfxaddr converts between hex account ids and their checksummed base32
// address form.
//
// Usage:
//
//	cfxaddr [-n netid] <hex account id>      encode
//	cfxaddr -d <base32 address>              decode
//	cfxaddr --normalize <base32 address>     strip chain-id segment
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/conflux-fans/cfxaddr/core/address"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

const Version = "0.1.0"

func errExit(err error) {
	fmt.Fprintf(os.Stderr, "cfxaddr error : %q\n", err)
	os.Exit(1)
}

func main() {
	cfg, args, err := LoadConfig()
	if err != nil {
		errExit(err)
	}
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: cfxaddr [-d] [-n netid] [--normalize] <address>")
		os.Exit(1)
	}
	operand := args[0]

	switch {
	case cfg.Normalize:
		fmt.Println(address.Normalize(operand))
	case cfg.Decode:
		a, err := address.Decode(operand)
		if err != nil {
			errExit(errors.Wrap(err, "decode"))
		}
		fmt.Printf("%s %d type.%s\n", hexutil.Encode(a.Bytes()), a.NetworkID(), a.Type())
	default:
		if !strings.HasPrefix(operand, "0x") && !strings.HasPrefix(operand, "0X") {
			operand = "0x" + operand
		}
		raw, err := hexutil.Decode(operand)
		if err != nil {
			errExit(errors.Wrap(err, "parse hex account id"))
		}
		encoded, err := address.Encode(raw, cfg.NetworkID)
		if err != nil {
			errExit(errors.Wrap(err, "encode"))
		}
		fmt.Println(encoded)
	}
}
