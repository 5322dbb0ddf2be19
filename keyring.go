//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package dnacipher

// RoundKey locates one round's substitution and transposition windows
type RoundKey struct {
	SIndex int // Substitution window offset
	TIndex int // Transposition window offset
}

// Keyring slices round keys out of a reference sequence
type Keyring struct {
	Sequence Sequence
	source   Source
}

func NewKeyring(seq Sequence, src Source) (kr *Keyring) {
	kr = &Keyring{
		Sequence: seq,
		source:   src,
	}

	return
}

// Fits checks that a length symbol window can be sliced at all
func (kr *Keyring) Fits(length int) (err error) {
	if length > len(kr.Sequence) {
		err = ErrInsufficientSequence{Need: length, Have: len(kr.Sequence)}
	}

	return
}

// Next draws a fresh round key for length symbols of data.
// The substitution offset is drawn before the transposition offset.
func (kr *Keyring) Next(length int) (rk RoundKey, err error) {
	err = kr.Fits(length)
	if err != nil {
		return
	}

	span := len(kr.Sequence) - length + 1
	rk.SIndex = kr.source.Intn(span)
	rk.TIndex = kr.source.Intn(span)

	return
}

// Keys slices the substitution and transposition keys of a round key
func (kr *Keyring) Keys(rk RoundKey, length int) (sub Symbols, trans Symbols, err error) {
	sub, err = kr.Sequence.Window(rk.SIndex, length)
	if err != nil {
		return
	}

	trans, err = kr.Sequence.Window(rk.TIndex, length)
	if err != nil {
		sub = nil
		return
	}

	return
}
