//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/pflag"

	"github.com/ezrec/dnacipher"
	_ "github.com/ezrec/dnacipher/binkey"
	_ "github.com/ezrec/dnacipher/dectext"
	_ "github.com/ezrec/dnacipher/jsonkey"
	_ "github.com/ezrec/dnacipher/packed"
)

const (
	VerbosityWarning = iota
	VerbosityNotice
	VerbosityInfo
	VerbosityDebug
)

var param struct {
	Verbosity int // Verbose tracing
}

func init() {
	pflag.CountVarP(&param.Verbosity, "verbose", "v", "Verbosity, repeat for more detail")
	pflag.CommandLine.SetInterspersed(false)
	pflag.Usage = Usage
}

func TraceVerbosef(level int, format string, args ...interface{}) {
	if param.Verbosity >= level {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// Command is one sub-command, with its own options
type Command interface {
	Parse(args []string) (err error)
	SetOutput(output io.Writer)
	PrintDefaults()
	Run() (err error)
}

type commandInfo struct {
	NewCommand  func() Command
	Description string
	Usage       string
}

var commandMap = map[string]commandInfo{
	"encrypt": {
		NewCommand:  func() Command { return NewEncryptCommand() },
		Description: "Encrypt a plaintext file",
		Usage:       "PLAINTEXT CIPHERTEXT [options...] KEYFILE [options...]",
	},
	"decrypt": {
		NewCommand:  func() Command { return NewDecryptCommand() },
		Description: "Decrypt a ciphertext file",
		Usage:       "CIPHERTEXT [options...] KEYFILE [options...] PLAINTEXT",
	},
	"info": {
		NewCommand:  func() Command { return NewInfoCommand() },
		Description: "Describe a key file",
		Usage:       "KEYFILE [options...]",
	},
	"convert": {
		NewCommand:  func() Command { return NewConvertCommand() },
		Description: "Convert a key or ciphertext file to another format",
		Usage:       "SOURCE [options...] DEST [options...]",
	},
}

func Usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "  dnacipher [options] COMMAND [options...] FILES...")
	fmt.Fprintln(os.Stderr, "  dnacipher [options] @cmdfile.txt")
	fmt.Fprintln(os.Stderr)
	pflag.PrintDefaults()

	keys := []string{}
	for key := range commandMap {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		item := commandMap[key]
		fmt.Fprintln(os.Stderr)
		fmt.Fprintf(os.Stderr, "  %s %s\n", key, item.Usage)
		fmt.Fprintf(os.Stderr, "    %s\n", item.Description)
		fmt.Fprintln(os.Stderr)
		cmd := item.NewCommand()
		cmd.SetOutput(os.Stderr)
		cmd.PrintDefaults()
	}

	dnacipher.FormatterUsage(os.Stderr)
}

// progressBar draws round completion on stderr
type progressBar struct {
	last int
}

func (pb *progressBar) Show(percent float32) {
	if int(percent) != pb.last {
		pb.last = int(percent)
		fmt.Fprintf(os.Stderr, "\rRounds: %3d%%", pb.last)
	}
}

func (pb *progressBar) Stop() {
	fmt.Fprintln(os.Stderr)
	pb.last = -1
}

// newProgress returns a progress bar when verbose enough, or nil
func newProgress() (prog dnacipher.Progressor) {
	if param.Verbosity >= VerbosityInfo {
		prog = &progressBar{last: -1}
	}

	return
}

func evaluate(args []string) (err error) {
	args, err = ExpandArgs(args)
	if err != nil {
		return
	}

	if len(args) == 0 {
		err = fmt.Errorf("no command given")
		return
	}

	item, found := commandMap[args[0]]
	if !found {
		err = fmt.Errorf("%s: unknown command", args[0])
		return
	}

	cmd := item.NewCommand()
	err = cmd.Parse(args[1:])
	if err != nil {
		err = fmt.Errorf("%s: %w", args[0], err)
		return
	}

	TraceVerbosef(VerbosityDebug, "%s: %v", args[0], args[1:])

	err = cmd.Run()
	if err != nil {
		err = fmt.Errorf("%s: %w", args[0], err)
		return
	}

	return
}

func main() {
	pflag.Parse()

	if pflag.NArg() == 0 {
		pflag.Usage()
		os.Exit(1)
	}

	err := evaluate(pflag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
