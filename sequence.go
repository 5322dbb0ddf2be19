//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package dnacipher

import (
	"fmt"
	"strings"
)

const (
	BaseA = Symbol(iota)
	BaseT
	BaseC
	BaseG
)

// Bases is the reference sequence alphabet, in symbol order
const Bases = "ATCG"

// Sequence is a reference sequence of bases, held in numeric form
type Sequence Symbols

// GenerateSequence draws length uniformly random bases
func GenerateSequence(src Source, length int) (seq Sequence, err error) {
	if length < 0 {
		err = fmt.Errorf("sequence length %d is negative", length)
		return
	}

	seq = make(Sequence, length)
	for n := range seq {
		seq[n] = Symbol(src.Intn(len(Bases)))
	}

	return
}

// ParseSequence maps an ATCG string to its numeric form
func ParseSequence(text string) (seq Sequence, err error) {
	seq = make(Sequence, 0, len(text))

	for _, c := range text {
		index := strings.IndexRune(Bases, c)
		if index < 0 {
			seq = nil
			err = ErrInvalidBase(c)
			return
		}
		seq = append(seq, Symbol(index))
	}

	return
}

func (seq Sequence) String() string {
	var sb strings.Builder

	sb.Grow(len(seq))
	for _, sym := range seq {
		sb.WriteByte(Bases[sym&SymbolMask])
	}

	return sb.String()
}

// Window slices length symbols starting at offset
func (seq Sequence) Window(offset int, length int) (window Symbols, err error) {
	if offset < 0 || length < 0 || offset > len(seq)-length {
		err = ErrKeyMismatch(fmt.Sprintf("window of %d at %d outside %d base sequence", length, offset, len(seq)))
		return
	}

	window = Symbols(seq[offset : offset+length])

	return
}
