//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"errors"

	"github.com/ezrec/dnacipher"
)

// Each file name on the command line may be followed by the options of
// its format; the options end at the next non-option argument.

func nextCiphertext(args []string) (format *dnacipher.CiphertextFormat, rest []string, err error) {
	if len(args) == 0 {
		err = errors.New("ciphertext file missing")
		return
	}

	format, err = dnacipher.NewCiphertextFormat(args[0], args[1:])
	if err != nil {
		return
	}

	rest = format.Args()

	return
}

func nextKey(args []string) (format *dnacipher.KeyFormat, rest []string, err error) {
	if len(args) == 0 {
		err = errors.New("key file missing")
		return
	}

	format, err = dnacipher.NewKeyFormat(args[0], args[1:])
	if err != nil {
		return
	}

	rest = format.Args()

	return
}

func nextPlain(args []string, what string) (filename string, rest []string, err error) {
	if len(args) == 0 {
		err = errors.New(what + " file missing")
		return
	}

	filename = args[0]
	rest = args[1:]

	return
}

func noMore(args []string) (err error) {
	if len(args) != 0 {
		err = errors.New("unexpected arguments: " + args[0] + "...")
	}

	return
}
