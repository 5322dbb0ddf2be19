//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package dnacipher

import (
	"errors"
	"fmt"
)

// ErrInsufficientSequence is returned when the reference sequence is
// shorter than the data it must key.
type ErrInsufficientSequence struct {
	Need int // Symbols of data
	Have int // Symbols of reference sequence
}

func (e ErrInsufficientSequence) Error() string {
	return fmt.Sprintf("insufficient reference sequence: need %d bases, have %d", e.Need, e.Have)
}

// ErrSymbolLength is returned when a symbol count does not regroup into bytes
type ErrSymbolLength int

func (e ErrSymbolLength) Error() string {
	return fmt.Sprintf("symbol count %d is not a multiple of %d", int(e), SymbolsPerByte)
}

// ErrSymbolRange is returned for a symbol value outside 0..3
type ErrSymbolRange int

func (e ErrSymbolRange) Error() string {
	return fmt.Sprintf("symbol value %d out of range", int(e))
}

// ErrCharacterRange is returned for text characters wider than 8 bits
type ErrCharacterRange rune

func (e ErrCharacterRange) Error() string {
	return fmt.Sprintf("character %q (U+%04X) does not fit in 8 bits", rune(e), rune(e))
}

// ErrInvalidBase is returned for a reference sequence character outside ATCG
type ErrInvalidBase rune

func (e ErrInvalidBase) Error() string {
	return fmt.Sprintf("invalid base %q in reference sequence", rune(e))
}

// ErrKeyMismatch is returned when key material cannot belong to a ciphertext
type ErrKeyMismatch string

func (e ErrKeyMismatch) Error() string {
	return fmt.Sprintf("key material mismatch: %s", string(e))
}

// ErrCheckFailed is returned when the key material check tag does not
// match the ciphertext.
var ErrCheckFailed = errors.New("key material check failed")
