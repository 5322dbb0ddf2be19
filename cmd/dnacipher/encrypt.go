//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ezrec/dnacipher"
)

type EncryptCommand struct {
	*pflag.FlagSet

	Rounds         int
	SequenceLength int
	Seed           int64
	Raw            bool
}

func NewEncryptCommand() (cmd *EncryptCommand) {
	flagSet := pflag.NewFlagSet("encrypt", pflag.ContinueOnError)
	flagSet.SetInterspersed(false)

	cmd = &EncryptCommand{
		FlagSet: flagSet,
	}

	cmd.IntVarP(&cmd.Rounds, "rounds", "r", dnacipher.DefaultRounds, "Number of substitution/transposition rounds")
	cmd.IntVarP(&cmd.SequenceLength, "dna-length", "l", dnacipher.DefaultSequenceLength, "Length of the generated reference sequence")
	cmd.Int64VarP(&cmd.Seed, "seed", "s", 0, "Seed for a reproducible reference sequence and round keys")
	cmd.BoolVarP(&cmd.Raw, "raw", "R", false, "Treat the plaintext as raw bytes, not 8-bit text")

	return
}

func (cmd *EncryptCommand) Run() (err error) {
	if cmd.Rounds < 0 {
		err = fmt.Errorf("--rounds %d must not be negative", cmd.Rounds)
		return
	}

	if cmd.SequenceLength < 0 {
		err = fmt.Errorf("--dna-length %d must not be negative", cmd.SequenceLength)
		return
	}

	plain, args, err := nextPlain(cmd.Args(), "plaintext")
	if err != nil {
		return
	}

	output, args, err := nextCiphertext(args)
	if err != nil {
		return
	}

	key, args, err := nextKey(args)
	if err != nil {
		return
	}

	err = noMore(args)
	if err != nil {
		return
	}

	session := dnacipher.NewSession()
	session.Rounds = cmd.Rounds
	session.SequenceLength = cmd.SequenceLength
	session.Raw = cmd.Raw
	session.Progress = newProgress()

	if cmd.Changed("seed") {
		TraceVerbosef(VerbosityNotice, "  Using seed %v", cmd.Seed)
		session.Source = dnacipher.NewSource(cmd.Seed)
	}

	TraceVerbosef(VerbosityNotice, "Encrypting %s: %d rounds, %d base reference sequence", plain, session.Rounds, session.SequenceLength)

	err = session.EncryptFile(plain, output, key)
	if err != nil {
		return
	}

	TraceVerbosef(VerbosityNotice, "  Ciphertext saved to %s", output.Filename)
	TraceVerbosef(VerbosityNotice, "  Key material saved to %s", key.Filename)

	return
}
