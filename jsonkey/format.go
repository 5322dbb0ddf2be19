//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package jsonkey

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ezrec/dnacipher"
)

type ErrFieldMissing string

func (e ErrFieldMissing) Error() string {
	return fmt.Sprintf("keyfile: Field '%s' missing", string(e))
}

type jsonRound struct {
	SIndex int `json:"sindex"`
	TIndex int `json:"tindex"`
}

type jsonKey struct {
	DNA    *string     `json:"dna"`
	Rounds []jsonRound `json:"rounds"`
	Check  string      `json:"check,omitempty"`
}

type Formatter struct {
	*pflag.FlagSet

	Indent bool
}

func NewFormatter(suffix string) (jf *Formatter) {
	flagSet := pflag.NewFlagSet(suffix, pflag.ContinueOnError)
	flagSet.SetInterspersed(false)

	jf = &Formatter{
		FlagSet: flagSet,
	}

	jf.BoolVarP(&jf.Indent, "indent", "i", false, "Indent the JSON output")

	return
}

func (jf *Formatter) EncodeKey(writer dnacipher.Writer, km *dnacipher.KeyMaterial) (err error) {
	dna := km.Sequence.String()
	key := jsonKey{
		DNA:    &dna,
		Rounds: make([]jsonRound, len(km.Rounds)),
		Check:  hex.EncodeToString(km.Check),
	}

	for n, rk := range km.Rounds {
		key.Rounds[n] = jsonRound{SIndex: rk.SIndex, TIndex: rk.TIndex}
	}

	var data []byte
	if jf.Indent {
		data, err = json.MarshalIndent(key, "", "  ")
	} else {
		data, err = json.Marshal(key)
	}
	if err != nil {
		return
	}

	_, err = writer.Write(data)

	return
}

func (jf *Formatter) DecodeKey(reader dnacipher.Reader, filesize int64) (km *dnacipher.KeyMaterial, err error) {
	key := jsonKey{}

	err = json.NewDecoder(reader).Decode(&key)
	if err != nil {
		return
	}

	if key.DNA == nil {
		err = ErrFieldMissing("dna")
		return
	}

	if key.Rounds == nil {
		err = ErrFieldMissing("rounds")
		return
	}

	seq, err := dnacipher.ParseSequence(*key.DNA)
	if err != nil {
		return
	}

	check, err := hex.DecodeString(key.Check)
	if err != nil {
		err = errors.New("keyfile: Field 'check' is not hexadecimal")
		return
	}

	rounds := make([]dnacipher.RoundKey, len(key.Rounds))
	for n, r := range key.Rounds {
		rounds[n] = dnacipher.RoundKey{SIndex: r.SIndex, TIndex: r.TIndex}
	}

	km = &dnacipher.KeyMaterial{
		Sequence: seq,
		Rounds:   rounds,
		Check:    check,
	}

	return
}
