//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package dnacipher

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

const (
	SymbolBits     = 2
	SymbolsPerByte = 8 / SymbolBits
	SymbolMask     = (1 << SymbolBits) - 1
)

// Symbol is a 2-bit quarter of a byte, valued 0..3
type Symbol uint8

// Symbols is a vector of quaternary symbols
type Symbols []Symbol

// Valid checks that every symbol is in range
func (s Symbols) Valid() (err error) {
	for _, sym := range s {
		if sym > SymbolMask {
			err = ErrSymbolRange(sym)
			return
		}
	}

	return
}

// Equal compares two symbol vectors
func (s Symbols) Equal(other Symbols) bool {
	if len(s) != len(other) {
		return false
	}

	for n := range s {
		if s[n] != other[n] {
			return false
		}
	}

	return true
}

// EncodeBytes splits each byte, most significant bits first, into four symbols
func EncodeBytes(data []byte) (symbols Symbols) {
	symbols = make(Symbols, 0, len(data)*SymbolsPerByte)

	for _, c := range data {
		for shift := 8 - SymbolBits; shift >= 0; shift -= SymbolBits {
			symbols = append(symbols, Symbol((c>>uint(shift))&SymbolMask))
		}
	}

	return
}

// DecodeBytes regroups symbols into bytes; the inverse of EncodeBytes
func DecodeBytes(symbols Symbols) (data []byte, err error) {
	if len(symbols)%SymbolsPerByte != 0 {
		err = ErrSymbolLength(len(symbols))
		return
	}

	err = symbols.Valid()
	if err != nil {
		return
	}

	data = PackSymbols(symbols)

	return
}

// EncodeText encodes text whose characters all fit in 8 bits.
func EncodeText(text string) (symbols Symbols, err error) {
	for _, r := range text {
		if r > 0xff {
			err = ErrCharacterRange(r)
			return
		}
	}

	data, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return
	}

	symbols = EncodeBytes(data)

	return
}

// DecodeText decodes symbols into text, one character per 8 bits.
func DecodeText(symbols Symbols) (text string, err error) {
	data, err := DecodeBytes(symbols)
	if err != nil {
		return
	}

	utf, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return
	}

	text = string(utf)

	return
}

// PackSymbols packs symbols four to a byte. A trailing partial byte
// is padded with zero symbols.
func PackSymbols(symbols Symbols) (data []byte) {
	data = make([]byte, (len(symbols)+SymbolsPerByte-1)/SymbolsPerByte)

	for n, sym := range symbols {
		shift := uint(8 - SymbolBits*(1+n%SymbolsPerByte))
		data[n/SymbolsPerByte] |= byte(sym&SymbolMask) << shift
	}

	return
}

// UnpackSymbols recovers count symbols from packed data
func UnpackSymbols(data []byte, count int) (symbols Symbols, err error) {
	if count < 0 || (count+SymbolsPerByte-1)/SymbolsPerByte > len(data) {
		err = fmt.Errorf("%d symbols do not fit in %d packed bytes", count, len(data))
		return
	}

	symbols = EncodeBytes(data)[:count]

	return
}
