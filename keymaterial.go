//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package dnacipher

import (
	"fmt"
)

// KeyMaterial is everything needed to reverse an encryption
type KeyMaterial struct {
	Sequence Sequence
	Rounds   []RoundKey
	Check    []byte // Optional check tag over the ciphertext
}

// Validate checks that the key material can key a ciphertext of length symbols
func (km *KeyMaterial) Validate(length int) (err error) {
	if length > len(km.Sequence) {
		err = ErrKeyMismatch(fmt.Sprintf("%d symbol ciphertext is longer than the %d base sequence", length, len(km.Sequence)))
		return
	}

	kr := NewKeyring(km.Sequence, nil)
	for n, rk := range km.Rounds {
		_, _, err = kr.Keys(rk, length)
		if err != nil {
			err = fmt.Errorf("round %d: %w", n+1, err)
			return
		}
	}

	return
}
