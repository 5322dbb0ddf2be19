//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package dnacipher

import (
	"fmt"
	"io/ioutil"
)

const (
	DefaultRounds         = 5
	DefaultSequenceLength = 1000
)

// Session ties the codec, reference sequence and cipher together
type Session struct {
	Rounds         int    // Substitution/transposition rounds
	SequenceLength int    // Length of the generated reference sequence
	Source         Source // Randomness for the sequence and round keys
	Raw            bool   // Treat plaintext as raw bytes instead of 8-bit text

	Progress Progressor // Optional round display
}

func NewSession() (s *Session) {
	s = &Session{
		Rounds:         DefaultRounds,
		SequenceLength: DefaultSequenceLength,
		Source:         NewTimeSource(),
	}

	return
}

func (s *Session) encrypt(symbols Symbols) (ciphertext Symbols, km *KeyMaterial, err error) {
	if s.Rounds < 0 {
		err = fmt.Errorf("round count %d is negative", s.Rounds)
		return
	}

	if s.SequenceLength < len(symbols) {
		err = ErrInsufficientSequence{Need: len(symbols), Have: s.SequenceLength}
		return
	}

	seq, err := GenerateSequence(s.Source, s.SequenceLength)
	if err != nil {
		return
	}

	c := &Cipher{Sequence: seq, Progress: s.Progress}
	ciphertext, rounds, err := c.Encrypt(symbols, s.Rounds, s.Source)
	if err != nil {
		return
	}

	km = &KeyMaterial{
		Sequence: seq,
		Rounds:   rounds,
	}

	err = km.Seal(ciphertext)
	if err != nil {
		ciphertext = nil
		km = nil
		return
	}

	return
}

func (s *Session) decrypt(ciphertext Symbols, km *KeyMaterial) (symbols Symbols, err error) {
	if km == nil {
		err = ErrKeyMismatch("no key material")
		return
	}

	err = km.Validate(len(ciphertext))
	if err != nil {
		return
	}

	err = km.Verify(ciphertext)
	if err != nil {
		return
	}

	c := &Cipher{Sequence: km.Sequence, Progress: s.Progress}
	symbols, err = c.Decrypt(ciphertext, km.Rounds)

	return
}

// Encrypt encrypts plaintext bytes, returning the ciphertext and
// the key material needed to reverse it.
func (s *Session) Encrypt(plaintext []byte) (ciphertext Symbols, km *KeyMaterial, err error) {
	return s.encrypt(EncodeBytes(plaintext))
}

// Decrypt reverses Encrypt
func (s *Session) Decrypt(ciphertext Symbols, km *KeyMaterial) (plaintext []byte, err error) {
	symbols, err := s.decrypt(ciphertext, km)
	if err != nil {
		return
	}

	plaintext, err = DecodeBytes(symbols)

	return
}

// EncryptText encrypts text whose characters all fit in 8 bits
func (s *Session) EncryptText(text string) (ciphertext Symbols, km *KeyMaterial, err error) {
	symbols, err := EncodeText(text)
	if err != nil {
		return
	}

	return s.encrypt(symbols)
}

// DecryptText reverses EncryptText
func (s *Session) DecryptText(ciphertext Symbols, km *KeyMaterial) (text string, err error) {
	symbols, err := s.decrypt(ciphertext, km)
	if err != nil {
		return
	}

	text, err = DecodeText(symbols)

	return
}

// EncryptFile encrypts the input file, saving the ciphertext and key material
func (s *Session) EncryptFile(input string, output *CiphertextFormat, key *KeyFormat) (err error) {
	data, err := ioutil.ReadFile(input)
	if err != nil {
		return
	}

	var ciphertext Symbols
	var km *KeyMaterial
	if s.Raw {
		ciphertext, km, err = s.Encrypt(data)
	} else {
		ciphertext, km, err = s.EncryptText(string(data))
	}
	if err != nil {
		err = fmt.Errorf("%s: %w", input, err)
		return
	}

	err = output.SetCiphertext(ciphertext)
	if err != nil {
		return
	}

	err = key.SetKeyMaterial(km)
	if err != nil {
		return
	}

	return
}

// DecryptFile decrypts a saved ciphertext into the output file
func (s *Session) DecryptFile(input *CiphertextFormat, key *KeyFormat, output string) (err error) {
	ciphertext, err := input.Ciphertext()
	if err != nil {
		return
	}

	km, err := key.KeyMaterial()
	if err != nil {
		return
	}

	var data []byte
	if s.Raw {
		data, err = s.Decrypt(ciphertext, km)
	} else {
		var text string
		text, err = s.DecryptText(ciphertext, km)
		data = []byte(text)
	}
	if err != nil {
		err = fmt.Errorf("%s: %w", input.Filename, err)
		return
	}

	err = ioutil.WriteFile(output, data, 0644)
	if err != nil {
		return
	}

	return
}
