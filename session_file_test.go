//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package dnacipher_test

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/ezrec/dnacipher"
	_ "github.com/ezrec/dnacipher/binkey"
	_ "github.com/ezrec/dnacipher/dectext"
	_ "github.com/ezrec/dnacipher/jsonkey"
	_ "github.com/ezrec/dnacipher/packed"
)

func TestSessionFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "dnacipher")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	table := map[string]struct {
		Ciphertext string
		Key        string
		Raw        bool
		Plaintext  []byte
	}{
		"text":   {"cipher.txt", "key.json", false, []byte("Hi there\n")},
		"binary": {"cipher.dnab", "key.dnak", true, []byte{0x00, 0xff, 0xc3, 0xa9, 0x10}},
		"empty":  {"empty.txt", "empty.dnak", false, []byte{}},
	}

	for key, item := range table {
		input := filepath.Join(dir, key+".in")
		output := filepath.Join(dir, key+".out")

		err = ioutil.WriteFile(input, item.Plaintext, 0644)
		if err != nil {
			t.Fatal(err)
		}

		ciphertext, err := dnacipher.NewCiphertextFormat(filepath.Join(dir, key+item.Ciphertext), nil)
		if err != nil {
			t.Fatalf("%v: %v", key, err)
		}

		keyfile, err := dnacipher.NewKeyFormat(filepath.Join(dir, key+item.Key), nil)
		if err != nil {
			t.Fatalf("%v: %v", key, err)
		}

		session := dnacipher.NewSession()
		session.Source = dnacipher.NewSource(1)
		session.SequenceLength = 200
		session.Raw = item.Raw

		err = session.EncryptFile(input, ciphertext, keyfile)
		if err != nil {
			t.Fatalf("%v: %v", key, err)
		}

		err = session.DecryptFile(ciphertext, keyfile, output)
		if err != nil {
			t.Fatalf("%v: %v", key, err)
		}

		data, err := ioutil.ReadFile(output)
		if err != nil {
			t.Fatal(err)
		}

		if !bytes.Equal(item.Plaintext, data) {
			t.Errorf("%v: expected %q, got %q", key, item.Plaintext, data)
		}
	}
}

func TestFormatSuffixes(t *testing.T) {
	for _, name := range []string{"a.txt", "a.dnab"} {
		if !dnacipher.IsCiphertextFile(name) || dnacipher.IsKeyFile(name) {
			t.Errorf("%v: expected a ciphertext file", name)
		}
	}

	for _, name := range []string{"a.json", "a.dnak"} {
		if !dnacipher.IsKeyFile(name) || dnacipher.IsCiphertextFile(name) {
			t.Errorf("%v: expected a key file", name)
		}
	}
}
