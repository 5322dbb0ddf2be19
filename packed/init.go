//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package packed handles binary ciphertexts, four symbols to a byte
package packed

import (
	"github.com/ezrec/dnacipher"
)

func init() {
	newFormatter := func(suffix string) dnacipher.CiphertextFormatter { return NewFormatter(suffix) }

	dnacipher.RegisterCiphertextFormatter(".dnab", newFormatter)
}
