//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package dnacipher

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Reader needs io.ReaderAt for the binary formats
type Reader interface {
	io.Reader
	io.ReaderAt
}

// Writer
type Writer interface {
	io.Writer
}

// Options parsing common to all formatters
type FormatOptions interface {
	Parse(args []string) (err error)
	Parsed() bool
	Args() (args []string)
	NArg() int
	SetOutput(output io.Writer)
	PrintDefaults()
}

// Ciphertext file format
type CiphertextFormatter interface {
	FormatOptions

	DecodeCiphertext(reader Reader, size int64) (ciphertext Symbols, err error)
	EncodeCiphertext(writer Writer, ciphertext Symbols) (err error)
}

// Key material file format
type KeyFormatter interface {
	FormatOptions

	DecodeKey(reader Reader, size int64) (km *KeyMaterial, err error)
	EncodeKey(writer Writer, km *KeyMaterial) (err error)
}

type NewCiphertextFormatter func(suffix string) (formatter CiphertextFormatter)
type NewKeyFormatter func(suffix string) (formatter KeyFormatter)

var (
	ciphertextFormatterMap map[string]NewCiphertextFormatter
	keyFormatterMap        map[string]NewKeyFormatter
)

func RegisterCiphertextFormatter(suffix string, newFormatter NewCiphertextFormatter) {
	if ciphertextFormatterMap == nil {
		ciphertextFormatterMap = make(map[string]NewCiphertextFormatter)
	}

	ciphertextFormatterMap[suffix] = newFormatter
}

func RegisterKeyFormatter(suffix string, newFormatter NewKeyFormatter) {
	if keyFormatterMap == nil {
		keyFormatterMap = make(map[string]NewKeyFormatter)
	}

	keyFormatterMap[suffix] = newFormatter
}

func ciphertextSuffixes() (list []string) {
	for suffix := range ciphertextFormatterMap {
		list = append(list, suffix)
	}
	sort.Strings(list)

	return
}

func keySuffixes() (list []string) {
	for suffix := range keyFormatterMap {
		list = append(list, suffix)
	}
	sort.Strings(list)

	return
}

// matchSuffix picks the longest registered suffix of filename
func matchSuffix(filename string, suffixes []string) (match string, found bool) {
	for _, suffix := range suffixes {
		if strings.HasSuffix(filename, suffix) && len(suffix) > len(match) {
			match = suffix
			found = true
		}
	}

	return
}

// FormatterUsage prints the options of every registered formatter
func FormatterUsage(w io.Writer) {
	for _, suffix := range ciphertextSuffixes() {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Ciphertext options for '%s':\n", suffix)
		fmt.Fprintln(w)
		formatter := ciphertextFormatterMap[suffix](suffix)
		formatter.SetOutput(w)
		formatter.PrintDefaults()
	}

	for _, suffix := range keySuffixes() {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Key file options for '%s':\n", suffix)
		fmt.Fprintln(w)
		formatter := keyFormatterMap[suffix](suffix)
		formatter.SetOutput(w)
		formatter.PrintDefaults()
	}
}

// IsCiphertextFile reports whether a ciphertext formatter handles filename
func IsCiphertextFile(filename string) bool {
	_, found := matchSuffix(filename, ciphertextSuffixes())
	return found
}

// IsKeyFile reports whether a key formatter handles filename
func IsKeyFile(filename string) bool {
	_, found := matchSuffix(filename, keySuffixes())
	return found
}

// openFile opens a file for decoding, and reports its size
func openFile(filename string) (reader *os.File, filesize int64, err error) {
	reader, err = os.Open(filename)
	if err != nil {
		return
	}

	filesize, err = reader.Seek(0, io.SeekEnd)
	if err == nil {
		_, err = reader.Seek(0, io.SeekStart)
	}

	if err != nil {
		reader.Close()
		reader = nil
	}

	return
}

type CiphertextFormat struct {
	CiphertextFormatter
	Suffix   string
	Filename string
}

func NewCiphertextFormat(filename string, args []string) (format *CiphertextFormat, err error) {
	suffix, found := matchSuffix(filename, ciphertextSuffixes())
	if !found {
		err = fmt.Errorf("%s: Ciphertext file extension unknown", filename)
		return
	}

	// Get formatter, and parse arguments
	formatter := ciphertextFormatterMap[suffix](suffix)

	err = formatter.Parse(args)
	if err != nil {
		return
	}

	format = &CiphertextFormat{
		CiphertextFormatter: formatter,
		Suffix:              suffix,
		Filename:            filename,
	}
	return
}

// Ciphertext reads the ciphertext from the file
func (format *CiphertextFormat) Ciphertext() (ciphertext Symbols, err error) {
	reader, filesize, err := openFile(format.Filename)
	if err != nil {
		return
	}
	defer func() { reader.Close() }()

	ciphertext, err = format.DecodeCiphertext(reader, filesize)
	if err != nil {
		err = fmt.Errorf("%s: %w", format.Filename, err)
		return
	}

	return
}

// SetCiphertext writes the ciphertext to the file
func (format *CiphertextFormat) SetCiphertext(ciphertext Symbols) (err error) {
	writer, err := os.Create(format.Filename)
	if err != nil {
		return
	}

	err = format.EncodeCiphertext(writer, ciphertext)
	if err != nil {
		writer.Close()
		err = fmt.Errorf("%s: %w", format.Filename, err)
		return
	}

	err = writer.Close()

	return
}

type KeyFormat struct {
	KeyFormatter
	Suffix   string
	Filename string
}

func NewKeyFormat(filename string, args []string) (format *KeyFormat, err error) {
	suffix, found := matchSuffix(filename, keySuffixes())
	if !found {
		err = fmt.Errorf("%s: Key file extension unknown", filename)
		return
	}

	formatter := keyFormatterMap[suffix](suffix)

	err = formatter.Parse(args)
	if err != nil {
		return
	}

	format = &KeyFormat{
		KeyFormatter: formatter,
		Suffix:       suffix,
		Filename:     filename,
	}
	return
}

// KeyMaterial reads the key material from the file
func (format *KeyFormat) KeyMaterial() (km *KeyMaterial, err error) {
	reader, filesize, err := openFile(format.Filename)
	if err != nil {
		return
	}
	defer func() { reader.Close() }()

	km, err = format.DecodeKey(reader, filesize)
	if err != nil {
		err = fmt.Errorf("%s: %w", format.Filename, err)
		return
	}

	return
}

// SetKeyMaterial writes the key material to the file
func (format *KeyFormat) SetKeyMaterial(km *KeyMaterial) (err error) {
	writer, err := os.Create(format.Filename)
	if err != nil {
		return
	}

	err = format.EncodeKey(writer, km)
	if err != nil {
		writer.Close()
		err = fmt.Errorf("%s: %w", format.Filename, err)
		return
	}

	err = writer.Close()

	return
}
