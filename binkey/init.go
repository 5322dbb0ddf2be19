//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package binkey handles key material in a compact binary layout
package binkey

import (
	"github.com/ezrec/dnacipher"
)

func init() {
	newFormatter := func(suffix string) dnacipher.KeyFormatter { return NewFormatter(suffix) }

	dnacipher.RegisterKeyFormatter(".dnak", newFormatter)
}
