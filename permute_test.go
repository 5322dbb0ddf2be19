//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package dnacipher

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPermutationStable(t *testing.T) {
	table := map[string]struct {
		Key  Symbols
		Perm Permutation
	}{
		"empty":    {Symbols{}, Permutation{}},
		"sorted":   {Symbols{0, 1, 2, 3}, Permutation{0, 1, 2, 3}},
		"reversed": {Symbols{3, 2, 1, 0}, Permutation{3, 2, 1, 0}},
		"ties":     {Symbols{1, 0, 1, 0}, Permutation{1, 3, 0, 2}},
		"all same": {Symbols{2, 2, 2, 2, 2}, Permutation{0, 1, 2, 3, 4}},
		"mirror":   {Symbols{0, 1, 2, 3, 3, 2, 1, 0}, Permutation{0, 7, 1, 6, 2, 5, 3, 4}},
	}

	for key, item := range table {
		perm := NewPermutation(item.Key)
		if diff := cmp.Diff(item.Perm, perm); diff != "" {
			t.Errorf("%v: mismatch (-want +got):\n%s", key, diff)
		}
	}
}

// Every key of length 5, including every tie pattern
func TestTransposeInverse(t *testing.T) {
	data := Symbols{3, 1, 0, 2, 1}

	for code := 0; code < 1<<10; code++ {
		key := make(Symbols, 5)
		for n := range key {
			key[n] = Symbol(code>>uint(2*n)) & SymbolMask
		}

		out := ReverseTranspose(Transpose(data, key), key)
		if !out.Equal(data) {
			t.Fatalf("key %v: expected %v, got %v", key, data, out)
		}

		out = Transpose(ReverseTranspose(data, key), key)
		if !out.Equal(data) {
			t.Fatalf("key %v (inverse first): expected %v, got %v", key, data, out)
		}
	}
}

func TestTransposeIsPermutation(t *testing.T) {
	// Distinct values make the element mapping visible
	data := Symbols{0, 1, 2, 3}
	key := Symbols{2, 0, 3, 0}

	out := Transpose(data, key)
	if diff := cmp.Diff(Symbols{1, 3, 0, 2}, out); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSubstituteInverse(t *testing.T) {
	for d := Symbol(0); d <= SymbolMask; d++ {
		for k := Symbol(0); k <= SymbolMask; k++ {
			sub := Substitute(Symbols{d}, Symbols{k})
			if sub[0] != (d+k)%4 {
				t.Errorf("Substitute(%v, %v): expected %v, got %v", d, k, (d+k)%4, sub[0])
			}

			out := ReverseSubstitute(sub, Symbols{k})
			if out[0] != d {
				t.Errorf("ReverseSubstitute(%v, %v): expected %v, got %v", sub[0], k, d, out[0])
			}
		}
	}
}
