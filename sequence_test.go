//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package dnacipher

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSequence(t *testing.T) {
	seq, err := ParseSequence("ATCGGCTA")
	if err != nil {
		t.Fatal(err)
	}

	expected := Sequence{BaseA, BaseT, BaseC, BaseG, BaseG, BaseC, BaseT, BaseA}
	if diff := cmp.Diff(expected, seq); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	if seq.String() != "ATCGGCTA" {
		t.Errorf("expected %v, got %v", "ATCGGCTA", seq.String())
	}
}

func TestParseSequenceInvalid(t *testing.T) {
	table := map[string]rune{
		"lower": 'a',
		"U":     'U',
		"space": ' ',
	}

	for key, base := range table {
		_, err := ParseSequence("ATC" + string(base) + "G")

		var invalid ErrInvalidBase
		if !errors.As(err, &invalid) {
			t.Errorf("%v: expected ErrInvalidBase, got %v", key, err)
			continue
		}

		if rune(invalid) != base {
			t.Errorf("%v: expected %q, got %q", key, base, rune(invalid))
		}
	}
}

func TestGenerateSequence(t *testing.T) {
	seq, err := GenerateSequence(NewSource(1), DefaultSequenceLength)
	if err != nil {
		t.Fatal(err)
	}

	if len(seq) != DefaultSequenceLength {
		t.Fatalf("expected %v bases, got %v", DefaultSequenceLength, len(seq))
	}

	counts := make([]int, len(Bases))
	for _, sym := range seq {
		if sym > SymbolMask {
			t.Fatalf("base %v out of range", sym)
		}
		counts[sym]++
	}

	for n, count := range counts {
		if count == 0 {
			t.Errorf("base %c never generated", Bases[n])
		}
	}

	again, _ := GenerateSequence(NewSource(1), DefaultSequenceLength)
	if diff := cmp.Diff(seq, again); diff != "" {
		t.Errorf("same seed gave different sequences:\n%s", diff)
	}

	_, err = GenerateSequence(NewSource(1), -1)
	if err == nil {
		t.Errorf("expected an error for a negative length")
	}
}

const maxInt = int(^uint(0) >> 1)

func TestSequenceWindow(t *testing.T) {
	seq, _ := ParseSequence("ATCGGCTA")

	window, err := seq.Window(2, 3)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(Symbols{BaseC, BaseG, BaseG}, window); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	table := map[string]struct {
		Offset, Length int
	}{
		"past end": {6, 3},
		"negative": {-1, 2},
		"too long": {0, 9},
		"huge":     {maxInt, 3},
		"wraps":    {maxInt - 1, 3},
	}

	for key, item := range table {
		_, err := seq.Window(item.Offset, item.Length)

		var mismatch ErrKeyMismatch
		if !errors.As(err, &mismatch) {
			t.Errorf("%v: expected ErrKeyMismatch, got %v", key, err)
		}
	}
}
