//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package packed

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ezrec/dnacipher"
)

func TestEncodePacked(t *testing.T) {
	pf := NewFormatter(".dnab")

	buff := &bytes.Buffer{}
	err := pf.EncodeCiphertext(buff, dnacipher.Symbols{1, 0, 2, 0, 1, 2, 2, 1, 3})
	if err != nil {
		t.Fatal(err)
	}

	expected := []byte{
		'D', 'N', 'A', 'B', // Magic
		0x01, 0x00, 0x00, 0x00, // Version
		0x09, 0x00, 0x00, 0x00, // Count
		0x48, 0x69, 0xc0,
	}

	if diff := cmp.Diff(expected, buff.Bytes()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPackedRoundTrip(t *testing.T) {
	for count := 0; count < 13; count++ {
		ciphertext := make(dnacipher.Symbols, count)
		for n := range ciphertext {
			ciphertext[n] = dnacipher.Symbol(n*7) & dnacipher.SymbolMask
		}

		pf := NewFormatter(".dnab")

		buff := &bytes.Buffer{}
		err := pf.EncodeCiphertext(buff, ciphertext)
		if err != nil {
			t.Fatalf("%d: %v", count, err)
		}

		data := buff.Bytes()
		out, err := pf.DecodeCiphertext(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			t.Fatalf("%d: %v", count, err)
		}

		if diff := cmp.Diff(ciphertext, out); diff != "" {
			t.Errorf("%d: mismatch (-want +got):\n%s", count, diff)
		}
	}
}

func TestDecodePackedInvalid(t *testing.T) {
	table := map[string][]byte{
		"short":     {'D', 'N', 'A'},
		"magic":     {'D', 'N', 'A', 'K', 1, 0, 0, 0, 0, 0, 0, 0},
		"version":   {'D', 'N', 'A', 'B', 2, 0, 0, 0, 0, 0, 0, 0},
		"truncated": {'D', 'N', 'A', 'B', 1, 0, 0, 0, 9, 0, 0, 0, 0x48, 0x69},
	}

	for key, data := range table {
		pf := NewFormatter(".dnab")

		_, err := pf.DecodeCiphertext(bytes.NewReader(data), int64(len(data)))
		if err == nil {
			t.Errorf("%v: expected an error", key)
		}
	}
}
