//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package dnacipher

import (
	"fmt"
)

// Substitute adds the key to the data, element-wise, modulo 4
func Substitute(data Symbols, key Symbols) (out Symbols) {
	out = make(Symbols, len(data))
	for n := range data {
		out[n] = (data[n] + key[n]) & SymbolMask
	}

	return
}

// ReverseSubstitute subtracts the key from the data, element-wise, modulo 4
func ReverseSubstitute(data Symbols, key Symbols) (out Symbols) {
	out = make(Symbols, len(data))
	for n := range data {
		out[n] = (data[n] + (SymbolMask + 1) - key[n]) & SymbolMask
	}

	return
}

// Transpose reorders data by ascending key value, stable on ties
func Transpose(data Symbols, key Symbols) Symbols {
	return NewPermutation(key).Apply(data)
}

// ReverseTranspose undoes Transpose for the same key
func ReverseTranspose(data Symbols, key Symbols) Symbols {
	return NewPermutation(key).Invert(data)
}

// Cipher runs the substitution/transposition rounds against one
// reference sequence.
type Cipher struct {
	Sequence Sequence
	Progress Progressor // Optional round display
}

func NewCipher(seq Sequence) (c *Cipher) {
	c = &Cipher{
		Sequence: seq,
	}

	return
}

// round is a fully sliced round key
type round struct {
	RoundKey
	sub   Symbols
	trans Symbols
}

// Encrypt runs rounds of substitution then transposition. Every round
// key is drawn and sliced before the data is touched.
func (c *Cipher) Encrypt(data Symbols, rounds int, src Source) (out Symbols, keys []RoundKey, err error) {
	if rounds < 0 {
		err = fmt.Errorf("round count %d is negative", rounds)
		return
	}

	err = data.Valid()
	if err != nil {
		return
	}

	kr := NewKeyring(c.Sequence, src)
	err = kr.Fits(len(data))
	if err != nil {
		return
	}

	schedule := make([]round, rounds)
	for n := range schedule {
		var rk RoundKey
		rk, err = kr.Next(len(data))
		if err != nil {
			return
		}

		schedule[n], err = c.slice(kr, rk, len(data))
		if err != nil {
			return
		}
	}

	prog := newRoundProgress(c.Progress, rounds)
	defer prog.Close()

	out = append(Symbols{}, data...)
	keys = make([]RoundKey, 0, rounds)
	for _, r := range schedule {
		out = Substitute(out, r.sub)
		out = Transpose(out, r.trans)
		keys = append(keys, r.RoundKey)
		prog.Indicate()
	}

	return
}

// Decrypt replays the round keys in reverse order, undoing the
// transposition and then the substitution of each round.
func (c *Cipher) Decrypt(data Symbols, keys []RoundKey) (out Symbols, err error) {
	err = data.Valid()
	if err != nil {
		return
	}

	kr := NewKeyring(c.Sequence, nil)
	if len(data) > len(c.Sequence) {
		err = ErrKeyMismatch(fmt.Sprintf("%d symbol ciphertext is longer than the %d base sequence", len(data), len(c.Sequence)))
		return
	}

	schedule := make([]round, len(keys))
	for n, rk := range keys {
		schedule[n], err = c.slice(kr, rk, len(data))
		if err != nil {
			err = fmt.Errorf("round %d: %w", n+1, err)
			return
		}
	}

	prog := newRoundProgress(c.Progress, len(keys))
	defer prog.Close()

	out = append(Symbols{}, data...)
	for n := len(schedule) - 1; n >= 0; n-- {
		r := &schedule[n]
		out = ReverseTranspose(out, r.trans)
		out = ReverseSubstitute(out, r.sub)
		prog.Indicate()
	}

	return
}

func (c *Cipher) slice(kr *Keyring, rk RoundKey, length int) (r round, err error) {
	sub, trans, err := kr.Keys(rk, length)
	if err != nil {
		return
	}

	r = round{
		RoundKey: rk,
		sub:      sub,
		trans:    trans,
	}

	return
}

// Encrypt is a convenience wrapper of Cipher.Encrypt
func Encrypt(data Symbols, seq Sequence, rounds int, src Source) (out Symbols, keys []RoundKey, err error) {
	return NewCipher(seq).Encrypt(data, rounds, src)
}

// Decrypt is a convenience wrapper of Cipher.Decrypt
func Decrypt(data Symbols, seq Sequence, keys []RoundKey) (out Symbols, err error) {
	return NewCipher(seq).Decrypt(data, keys)
}
