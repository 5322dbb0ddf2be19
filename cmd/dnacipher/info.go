//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/ezrec/dnacipher"
)

type InfoCommand struct {
	*pflag.FlagSet

	Stdout io.Writer

	SequenceSummary bool
	RoundDetail     bool
	ShowSequence    bool
}

func NewInfoCommand() (info *InfoCommand) {
	flagSet := pflag.NewFlagSet("info", pflag.ContinueOnError)

	info = &InfoCommand{
		FlagSet: flagSet,
		Stdout:  os.Stdout,
	}

	info.SetInterspersed(false)
	info.BoolVarP(&info.SequenceSummary, "summary", "s", true, "Show reference sequence summary")
	info.BoolVarP(&info.RoundDetail, "rounds", "r", false, "Show each round key")
	info.BoolVarP(&info.ShowSequence, "dna", "d", false, "Show the reference sequence")

	return
}

func (info *InfoCommand) Run() (err error) {
	key, args, err := nextKey(info.Args())
	if err != nil {
		return
	}

	err = noMore(args)
	if err != nil {
		return
	}

	km, err := key.KeyMaterial()
	if err != nil {
		return
	}

	out := info.Stdout

	if info.SequenceSummary {
		counts := make([]int, len(dnacipher.Bases))
		for _, sym := range km.Sequence {
			counts[sym]++
		}

		fmt.Fprintf(out, "Sequence: %d bases", len(km.Sequence))
		for n, c := range dnacipher.Bases {
			fmt.Fprintf(out, ", %c %d", c, counts[n])
		}
		fmt.Fprintln(out)

		fmt.Fprintf(out, "Rounds: %d\n", len(km.Rounds))

		if len(km.Check) > 0 {
			fmt.Fprintf(out, "Check: %x\n", km.Check)
		} else {
			fmt.Fprintln(out, "Check: none")
		}
	}

	if info.RoundDetail {
		for n, rk := range km.Rounds {
			fmt.Fprintf(out, "%d: sindex %d, tindex %d\n", n+1, rk.SIndex, rk.TIndex)
		}
	}

	if info.ShowSequence {
		fmt.Fprintln(out, km.Sequence.String())
	}

	return
}
