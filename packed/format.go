//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package packed

import (
	"encoding/binary"
	"fmt"
	"io/ioutil"

	"github.com/go-restruct/restruct"
	"github.com/spf13/pflag"

	"github.com/ezrec/dnacipher"
)

const (
	defaultHeaderMagic   = uint32(0x42414e44) // "DNAB"
	defaultHeaderVersion = uint16(1)
)

type packedHeader struct {
	Magic   uint32 // 00:
	Version uint16 // 04:
	_       uint16 // 06:
	Count   uint32 // 08: Symbol count
}

type Formatter struct {
	*pflag.FlagSet
}

func NewFormatter(suffix string) (pf *Formatter) {
	flagSet := pflag.NewFlagSet(suffix, pflag.ContinueOnError)
	flagSet.SetInterspersed(false)

	pf = &Formatter{
		FlagSet: flagSet,
	}

	return
}

// EncodeCiphertext writes the header, then the symbols packed four to a byte
func (pf *Formatter) EncodeCiphertext(writer dnacipher.Writer, ciphertext dnacipher.Symbols) (err error) {
	header := packedHeader{
		Magic:   defaultHeaderMagic,
		Version: defaultHeaderVersion,
		Count:   uint32(len(ciphertext)),
	}

	data, err := restruct.Pack(binary.LittleEndian, &header)
	if err != nil {
		return
	}

	_, err = writer.Write(data)
	if err != nil {
		return
	}

	_, err = writer.Write(dnacipher.PackSymbols(ciphertext))

	return
}

func (pf *Formatter) DecodeCiphertext(reader dnacipher.Reader, filesize int64) (ciphertext dnacipher.Symbols, err error) {
	data, err := ioutil.ReadAll(reader)
	if err != nil {
		return
	}

	header := packedHeader{}
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

	ciphertext, err = dnacipher.UnpackSymbols(data[headerSize:], int(header.Count))

	return
}
