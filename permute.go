//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package dnacipher

import (
	"sort"
)

// Permutation lists, in sorted order, the original index of each element.
type Permutation []int

// NewPermutation stably sorts indices by key value; equal keys keep
// their original index order.
func NewPermutation(key Symbols) (perm Permutation) {
	perm = make(Permutation, len(key))
	for n := range perm {
		perm[n] = n
	}

	sort.SliceStable(perm, func(i, j int) bool {
		return key[perm[i]] < key[perm[j]]
	})

	return
}

// Apply gathers data into sorted order
func (perm Permutation) Apply(data Symbols) (out Symbols) {
	out = make(Symbols, len(perm))
	for rank, index := range perm {
		out[rank] = data[index]
	}

	return
}

// Invert scatters sorted data back to original order
func (perm Permutation) Invert(data Symbols) (out Symbols) {
	out = make(Symbols, len(perm))
	for rank, index := range perm {
		out[index] = data[rank]
	}

	return
}
