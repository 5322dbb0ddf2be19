//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package dectext handles ciphertexts stored as whitespace separated decimal symbols
package dectext

import (
	"github.com/ezrec/dnacipher"
)

func init() {
	newFormatter := func(suffix string) dnacipher.CiphertextFormatter { return NewFormatter(suffix) }

	dnacipher.RegisterCiphertextFormatter(".txt", newFormatter)
}
