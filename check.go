//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package dnacipher

import (
	"crypto/aes"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/binary"

	"github.com/aead/cmac"
)

const CheckSize = 16

// checkMAC computes an AES-CMAC over the round keys, the ciphertext
// length and the packed ciphertext. The AES key is the first 16 bytes of
// SHA-256 over the reference sequence.
func (km *KeyMaterial) checkMAC(ciphertext Symbols) (tag []byte, err error) {
	digest := sha256.Sum256([]byte(km.Sequence.String()))

	block, err := aes.NewCipher(digest[:16])
	if err != nil {
		return
	}

	h, err := cmac.NewWithTagSize(block, CheckSize)
	if err != nil {
		return
	}

	var word [8]byte
	for _, rk := range km.Rounds {
		binary.BigEndian.PutUint32(word[:4], uint32(rk.SIndex))
		binary.BigEndian.PutUint32(word[4:], uint32(rk.TIndex))
		h.Write(word[:])
	}

	binary.BigEndian.PutUint64(word[:], uint64(len(ciphertext)))
	h.Write(word[:])
	h.Write(PackSymbols(ciphertext))

	tag = h.Sum(nil)

	return
}

// Seal records a check tag for the ciphertext in the key material
func (km *KeyMaterial) Seal(ciphertext Symbols) (err error) {
	tag, err := km.checkMAC(ciphertext)
	if err != nil {
		return
	}

	km.Check = tag

	return
}

// Verify compares the ciphertext against the recorded check tag.
// Key material without a tag always verifies.
func (km *KeyMaterial) Verify(ciphertext Symbols) (err error) {
	if len(km.Check) == 0 {
		return
	}

	tag, err := km.checkMAC(ciphertext)
	if err != nil {
		return
	}

	if subtle.ConstantTimeCompare(tag, km.Check) != 1 {
		err = ErrCheckFailed
	}

	return
}
