//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ezrec/dnacipher"
)

type ConvertCommand struct {
	*pflag.FlagSet
}

func NewConvertCommand() (cmd *ConvertCommand) {
	flagSet := pflag.NewFlagSet("convert", pflag.ContinueOnError)
	flagSet.SetInterspersed(false)

	cmd = &ConvertCommand{
		FlagSet: flagSet,
	}

	return
}

func (cmd *ConvertCommand) Run() (err error) {
	args := cmd.Args()
	if len(args) == 0 {
		err = fmt.Errorf("source file missing")
		return
	}

	if dnacipher.IsKeyFile(args[0]) {
		err = convertKey(args)
	} else {
		err = convertCiphertext(args)
	}

	return
}

func convertKey(args []string) (err error) {
	source, args, err := nextKey(args)
	if err != nil {
		return
	}

	dest, args, err := nextKey(args)
	if err != nil {
		return
	}

	err = noMore(args)
	if err != nil {
		return
	}

	km, err := source.KeyMaterial()
	if err != nil {
		return
	}

	TraceVerbosef(VerbosityNotice, "Converting key %s (%s) to %s (%s)", source.Filename, source.Suffix, dest.Filename, dest.Suffix)

	err = dest.SetKeyMaterial(km)

	return
}

func convertCiphertext(args []string) (err error) {
	source, args, err := nextCiphertext(args)
	if err != nil {
		return
	}

	dest, args, err := nextCiphertext(args)
	if err != nil {
		return
	}

	err = noMore(args)
	if err != nil {
		return
	}

	ciphertext, err := source.Ciphertext()
	if err != nil {
		return
	}

	TraceVerbosef(VerbosityNotice, "Converting ciphertext %s (%s) to %s (%s)", source.Filename, source.Suffix, dest.Filename, dest.Suffix)

	err = dest.SetCiphertext(ciphertext)

	return
}
