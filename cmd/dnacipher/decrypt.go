//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"github.com/spf13/pflag"

	"github.com/ezrec/dnacipher"
)

type DecryptCommand struct {
	*pflag.FlagSet

	Raw bool
}

func NewDecryptCommand() (cmd *DecryptCommand) {
	flagSet := pflag.NewFlagSet("decrypt", pflag.ContinueOnError)
	flagSet.SetInterspersed(false)

	cmd = &DecryptCommand{
		FlagSet: flagSet,
	}

	cmd.BoolVarP(&cmd.Raw, "raw", "R", false, "Write the plaintext as raw bytes, not 8-bit text")

	return
}

func (cmd *DecryptCommand) Run() (err error) {
	input, args, err := nextCiphertext(cmd.Args())
	if err != nil {
		return
	}

	key, args, err := nextKey(args)
	if err != nil {
		return
	}

	plain, args, err := nextPlain(args, "plaintext")
	if err != nil {
		return
	}

	err = noMore(args)
	if err != nil {
		return
	}

	session := &dnacipher.Session{
		Raw:      cmd.Raw,
		Progress: newProgress(),
	}

	TraceVerbosef(VerbosityNotice, "Decrypting %s with %s", input.Filename, key.Filename)

	err = session.DecryptFile(input, key, plain)
	if err != nil {
		return
	}

	TraceVerbosef(VerbosityNotice, "  Plaintext saved to %s", plain)

	return
}
