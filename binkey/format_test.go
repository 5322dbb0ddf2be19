//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package binkey

import (
	"bytes"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ezrec/dnacipher"
)

var testKeyMaterial = &dnacipher.KeyMaterial{
	Sequence: dnacipher.Sequence{0, 1, 2, 3, 3, 2, 1, 0, 2},
	Rounds:   []dnacipher.RoundKey{{SIndex: 1, TIndex: 0}, {SIndex: 0, TIndex: 0x10203}},
	Check:    []byte{0xaa, 0x55},
}

func TestEncodeBinkey(t *testing.T) {
	bf := NewFormatter(".dnak")

	buff := &bytes.Buffer{}
	err := bf.EncodeKey(buff, testKeyMaterial)
	if err != nil {
		t.Fatal(err)
	}

	expected := []byte{
		'D', 'N', 'A', 'K', // Magic
		0x01, 0x00, // Version
		0x02, 0x00, // CheckSize
		0x09, 0x00, 0x00, 0x00, // SequenceLength
		0x02, 0x00, 0x00, 0x00, // RoundCount
		0x1b, 0xe4, 0x80, // Sequence
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // Round 1
		0x00, 0x00, 0x00, 0x00, 0x03, 0x02, 0x01, 0x00, // Round 2
		0xaa, 0x55, // Check
	}

	if diff := cmp.Diff(expected, buff.Bytes()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBinkeyRoundTrip(t *testing.T) {
	table := map[string][]string{
		"checked":   nil,
		"unchecked": {"--no-check"},
	}

	for key, args := range table {
		bf := NewFormatter(".dnak")
		err := bf.Parse(args)
		if err != nil {
			t.Fatal(err)
		}

		buff := &bytes.Buffer{}
		err = bf.EncodeKey(buff, testKeyMaterial)
		if err != nil {
			t.Fatalf("%v: %v", key, err)
		}

		data := buff.Bytes()
		out, err := bf.DecodeKey(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			t.Fatalf("%v: %v", key, err)
		}

		expected := *testKeyMaterial
		if bf.NoCheck {
			expected.Check = nil
		}

		if diff := cmp.Diff(&expected, out, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%v: mismatch (-want +got):\n%s", key, diff)
		}
	}
}

func TestDecodeBinkeyInvalid(t *testing.T) {
	bf := NewFormatter(".dnak")

	buff := &bytes.Buffer{}
	err := bf.EncodeKey(buff, testKeyMaterial)
	if err != nil {
		t.Fatal(err)
	}
	good := buff.Bytes()

	table := map[string][]byte{
		"short":     good[:10],
		"magic":     append([]byte{'D', 'N', 'A', 'B'}, good[4:]...),
		"version":   append(append([]byte{}, good[:4]...), append([]byte{9, 0}, good[6:]...)...),
		"truncated": good[:len(good)-1],
	}

	for key, data := range table {
		_, err := bf.DecodeKey(bytes.NewReader(data), int64(len(data)))
		if err == nil {
			t.Errorf("%v: expected an error", key)
		}
	}

	err = bf.EncodeKey(&bytes.Buffer{}, &dnacipher.KeyMaterial{
		Sequence: testKeyMaterial.Sequence,
		Rounds:   []dnacipher.RoundKey{{SIndex: -1}},
	})
	if err == nil {
		t.Errorf("expected an error for a negative offset")
	}

	wide := int64(math.MaxUint32) + 1
	for _, rk := range []dnacipher.RoundKey{{SIndex: int(wide)}, {TIndex: int(wide)}} {
		err = bf.EncodeKey(&bytes.Buffer{}, &dnacipher.KeyMaterial{
			Sequence: testKeyMaterial.Sequence,
			Rounds:   []dnacipher.RoundKey{rk},
		})
		if err == nil {
			t.Errorf("%+v: expected an error for an offset wider than 32 bits", rk)
		}
	}
}
