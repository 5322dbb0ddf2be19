//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package binkey

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io/ioutil"
	"math"

	"github.com/go-restruct/restruct"
	"github.com/spf13/pflag"

	"github.com/ezrec/dnacipher"
)

const (
	defaultHeaderMagic   = uint32(0x4b414e44) // "DNAK"
	defaultHeaderVersion = uint16(1)
)

// Layout:
//   binkeyHeader
//   packed sequence, (SequenceLength+3)/4 bytes
//   RoundCount * binkeyRound
//   CheckSize bytes of check tag
type binkeyHeader struct {
	Magic          uint32 // 00:
	Version        uint16 // 04:
	CheckSize      uint16 // 06: Check tag length, 0 for none
	SequenceLength uint32 // 08: Bases in the reference sequence
	RoundCount     uint32 // 0c:
}

type binkeyRound struct {
	SIndex uint32 // 00:
	TIndex uint32 // 04:
}

type Formatter struct {
	*pflag.FlagSet

	NoCheck bool
}

func NewFormatter(suffix string) (bf *Formatter) {
	flagSet := pflag.NewFlagSet(suffix, pflag.ContinueOnError)
	flagSet.SetInterspersed(false)

	bf = &Formatter{
		FlagSet: flagSet,
	}

	bf.BoolVarP(&bf.NoCheck, "no-check", "n", false, "Omit the check tag")

	return
}

func (bf *Formatter) EncodeKey(writer dnacipher.Writer, km *dnacipher.KeyMaterial) (err error) {
	check := km.Check
	if bf.NoCheck {
		check = nil
	}

	if len(check) > 0xffff {
		err = fmt.Errorf("check tag of %d bytes is too long", len(check))
		return
	}

	header := binkeyHeader{
		Magic:          defaultHeaderMagic,
		Version:        defaultHeaderVersion,
		CheckSize:      uint16(len(check)),
		SequenceLength: uint32(len(km.Sequence)),
		RoundCount:     uint32(len(km.Rounds)),
	}

	var buff bytes.Buffer

	data, err := restruct.Pack(binary.LittleEndian, &header)
	if err != nil {
		return
	}
	buff.Write(data)

	buff.Write(dnacipher.PackSymbols(dnacipher.Symbols(km.Sequence)))

	for _, rk := range km.Rounds {
		if rk.SIndex < 0 || rk.TIndex < 0 {
			err = fmt.Errorf("round key %+v has a negative offset", rk)
			return
		}

		if uint64(rk.SIndex) > math.MaxUint32 || uint64(rk.TIndex) > math.MaxUint32 {
			err = fmt.Errorf("round key %+v has an offset wider than 32 bits", rk)
			return
		}

		round := binkeyRound{
			SIndex: uint32(rk.SIndex),
			TIndex: uint32(rk.TIndex),
		}

		data, err = restruct.Pack(binary.LittleEndian, &round)
		if err != nil {
			return
		}
		buff.Write(data)
	}

	buff.Write(check)

	_, err = writer.Write(buff.Bytes())

	return
}

func (bf *Formatter) DecodeKey(reader dnacipher.Reader, filesize int64) (km *dnacipher.KeyMaterial, err error) {
	data, err := ioutil.ReadAll(reader)
	if err != nil {
		return
	}

	header := binkeyHeader{}
	headerSize, _ := restruct.SizeOf(&header)
	if len(data) < headerSize {
		err = fmt.Errorf("file too short for header: %d bytes", len(data))
		return
	}

	err = restruct.Unpack(data, binary.LittleEndian, &header)
	if err != nil {
		return
	}

	if header.Magic != defaultHeaderMagic {
		err = fmt.Errorf("Unknown header magic: 0x%08x", header.Magic)
		return
	}

	if header.Version != defaultHeaderVersion {
		err = fmt.Errorf("Unknown header version: %d", header.Version)
		return
	}

	round := binkeyRound{}
	roundSize, _ := restruct.SizeOf(&round)

	seqBytes := (int(header.SequenceLength) + dnacipher.SymbolsPerByte - 1) / dnacipher.SymbolsPerByte
	roundBase := headerSize + seqBytes
	checkBase := roundBase + roundSize*int(header.RoundCount)
	if len(data) < checkBase+int(header.CheckSize) {
		err = fmt.Errorf("file truncated: %d bytes, expected %d", len(data), checkBase+int(header.CheckSize))
		return
	}

	symbols, err := dnacipher.UnpackSymbols(data[headerSize:roundBase], int(header.SequenceLength))
	if err != nil {
		return
	}

	rounds := make([]dnacipher.RoundKey, header.RoundCount)
	for n := range rounds {
		offset := roundBase + roundSize*n
		err = restruct.Unpack(data[offset:offset+roundSize], binary.LittleEndian, &round)
		if err != nil {
			return
		}

		rounds[n] = dnacipher.RoundKey{
			SIndex: int(round.SIndex),
			TIndex: int(round.TIndex),
		}
	}

	var check []byte
	if header.CheckSize > 0 {
		check = append(check, data[checkBase:checkBase+int(header.CheckSize)]...)
	}

	km = &dnacipher.KeyMaterial{
		Sequence: dnacipher.Sequence(symbols),
		Rounds:   rounds,
		Check:    check,
	}

	return
}
