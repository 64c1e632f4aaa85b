// Copyright (c) 2020-2021 The cfxaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/conflux-fans/cfxaddr/params"
	"github.com/jessevdk/go-flags"
)

type Config struct {
	Decode      bool   `short:"d" long:"decode" description:"Decode a base32 address to its hex account id"`
	Normalize   bool   `long:"normalize" description:"Strip an embedded chain-id segment and force uppercase"`
	NetworkID   uint64 `short:"n" long:"netid" description:"Network id used for encoding"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
}

// LoadConfig parses the command line options and returns the remaining
// non-option arguments.
func LoadConfig() (*Config, []string, error) {
	cfg := Config{
		NetworkID: params.MainNetID,
	}
	parser := flags.NewParser(&cfg, flags.HelpFlag)
	remainingArgs, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
		return nil, nil, err
	}
	if cfg.ShowVersion {
		fmt.Printf("cfxaddr version %s\n", Version)
		os.Exit(0)
	}
	return &cfg, remainingArgs, nil
}
