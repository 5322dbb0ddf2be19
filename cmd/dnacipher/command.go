//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }

var escapeMap = map[byte]byte{
	'b':  '\b',
	't':  '\t',
	'n':  '\n',
	'r':  '\r',
	'e':  '\033',
	'"':  '"',
	'\'': '\'',
	' ':  ' ',
	'\\': '\\',
}

// ScanArgs splits shell-like arguments, honouring quotes, backslash
// escapes and three digit octal escapes.
func ScanArgs(data []byte, atEOF bool) (advance int, token []byte, err error) {
	skip := 0
	for ; skip < len(data) && isSpace(data[skip]); skip++ {
	}

	data = data[skip:]
	if len(data) == 0 {
		advance = skip
		return
	}

	var arg []byte

	inQuote := false
	inDquote := false
	inEscape := false
	oct := 0
	inOct := 0

	flushOct := func() {
		if inOct > 0 {
			arg = append(arg, byte(oct))
			oct = 0
			inOct = 0
		}
	}

	for here, c := range data {
		if inEscape {
			switch {
			case c >= '0' && c <= '7':
				oct = (oct * 8) + int(c-'0')
				inOct++
				if inOct == 3 {
					flushOct()
				}
			default:
				flushOct()
				if mapped, ok := escapeMap[c]; ok {
					c = mapped
				}
				arg = append(arg, c)
			}
			inEscape = (inOct != 0)
			continue
		}

		switch {
		case c == '"' && !inQuote:
			inDquote = !inDquote
		case c == '\'' && !inDquote:
			inQuote = !inQuote
		case c == '\\':
			inEscape = true
		case isSpace(c) && !inDquote && !inQuote:
			advance = skip + here
			token = arg
			return
		default:
			arg = append(arg, c)
		}
	}

	if inEscape && inOct > 0 {
		flushOct()
		inEscape = false
	}

	if !inDquote && !inEscape && !inQuote {
		advance = skip + len(data)
		if len(arg) > 0 {
			token = arg
		}
		return
	}

	if atEOF {
		err = fmt.Errorf("incomplete line: '%v' => '%v'", string(data), string(arg))
	}

	return
}

// CommandExpand splits a reader into arguments, expanding ${ENV} references
func CommandExpand(reader io.Reader) (out []string, err error) {
	var lines []string
	scanner := bufio.NewScanner(reader)
	scanner.Split(ScanArgs)
	for scanner.Scan() {
		text := scanner.Text()
		expanded := os.ExpandEnv(text)
		lines = append(lines, expanded)
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	out = lines

	return
}

// ExpandArgs replaces every '@file' argument with the arguments in that file
func ExpandArgs(args []string) (out []string, err error) {
	for _, arg := range args {
		if !strings.HasPrefix(arg, "@") || len(arg) == 1 {
			out = append(out, arg)
			continue
		}

		var reader *os.File
		reader, err = os.Open(arg[1:])
		if err != nil {
			return
		}

		var expanded []string
		expanded, err = CommandExpand(reader)
		reader.Close()
		if err != nil {
			err = fmt.Errorf("%s: %w", arg[1:], err)
			return
		}

		TraceVerbosef(VerbosityDebug, "%s: %v", arg, expanded)

		out = append(out, expanded...)
	}

	return
}
