//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package dectext

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/ezrec/dnacipher"
)

type Formatter struct {
	*pflag.FlagSet

	Columns int // Symbols per line; 0 for a single line
}

func NewFormatter(suffix string) (df *Formatter) {
	flagSet := pflag.NewFlagSet(suffix, pflag.ContinueOnError)
	flagSet.SetInterspersed(false)

	df = &Formatter{
		FlagSet: flagSet,
	}

	df.IntVarP(&df.Columns, "columns", "c", 0, "Symbols per line (0 for a single line)")

	return
}

// EncodeCiphertext writes the symbols as decimal digits separated by spaces
func (df *Formatter) EncodeCiphertext(writer dnacipher.Writer, ciphertext dnacipher.Symbols) (err error) {
	if df.Columns < 0 {
		err = fmt.Errorf("--columns %d is negative", df.Columns)
		return
	}

	out := bufio.NewWriter(writer)

	for n, sym := range ciphertext {
		if n > 0 {
			sep := byte(' ')
			if df.Columns > 0 && n%df.Columns == 0 {
				sep = '\n'
			}
			out.WriteByte(sep)
		}
		out.WriteString(strconv.Itoa(int(sym)))
	}

	if df.Columns > 0 && len(ciphertext) > 0 {
		out.WriteByte('\n')
	}

	err = out.Flush()

	return
}

// DecodeCiphertext reads decimal symbols separated by any whitespace
func (df *Formatter) DecodeCiphertext(reader dnacipher.Reader, filesize int64) (ciphertext dnacipher.Symbols, err error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanWords)

	ciphertext = dnacipher.Symbols{}
	for scanner.Scan() {
		var value int
		value, err = strconv.Atoi(scanner.Text())
		if err == nil && (value < 0 || value > dnacipher.SymbolMask) {
			err = dnacipher.ErrSymbolRange(value)
		}

		if err != nil {
			err = fmt.Errorf("symbol %d: %w", len(ciphertext)+1, err)
			ciphertext = nil
			return
		}

		ciphertext = append(ciphertext, dnacipher.Symbol(value))
	}

	err = scanner.Err()
	if err != nil {
		ciphertext = nil
		return
	}

	return
}
