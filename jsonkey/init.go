//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package jsonkey handles key material stored as JSON
package jsonkey

import (
	"github.com/ezrec/dnacipher"
)

func init() {
	newFormatter := func(suffix string) dnacipher.KeyFormatter { return NewFormatter(suffix) }

	dnacipher.RegisterKeyFormatter(".json", newFormatter)
}
