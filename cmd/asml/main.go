// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/ezrec/asml/asm"
	"github.com/ezrec/asml/debugger"
	"github.com/ezrec/asml/emulator"
	"github.com/ezrec/asml/srec"
	"github.com/ezrec/asml/translate"
)

const usage = `usage:
  asml [-config file] [-v] compile [-o out.srec] [-l] file.asml
  asml [-config file] [-v] [-d] run file.asml
  asml [-config file] [-v] [-d] file.srec`

// compile assembles source into an SRecord file, optionally writing the
// program listing to listing.
func compile(cfg Config, source string, output string, listing io.Writer) (err error) {
	inf, err := os.Open(source)
	if err != nil {
		return
	}
	defer inf.Close()

	asm := &asm.Assembler{Verbose: cfg.Verbose}
	prog, err := asm.Parse(inf)
	if err != nil {
		return
	}

	if listing != nil {
		for line := range prog.Listing() {
			fmt.Fprintln(listing, line)
		}
	}

	ouf, err := os.Create(output)
	if err != nil {
		return
	}

	err = srec.Encode(ouf, prog.Rom, cfg.Header)
	if err != nil {
		ouf.Close()
		return
	}

	return ouf.Close()
}

// load prepares an emulator from assembly source or an SRecord image.
func load(cfg Config, path string, assemble bool) (emu *emulator.Emulator, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	emu = emulator.NewEmulator()
	emu.Verbose = cfg.Verbose

	if assemble {
		err = emu.Assemble(inf)
		return
	}

	rom, err := srec.Decode(inf)
	if err != nil {
		return
	}

	err = emu.Load(rom)
	return
}

// execute runs the emulator to completion, or hands it to the debugger.
func execute(cfg Config, emu *emulator.Emulator, echo io.Writer) (err error) {
	if cfg.Echo {
		emu.Cpu.Printer.Output = echo
	}

	if !cfg.Debug {
		return emu.Run()
	}

	emu.Enable()

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		var state *term.State
		state, err = term.MakeRaw(fd)
		if err != nil {
			return
		}
		defer term.Restore(fd, state)
	}

	dbg := debugger.NewDebugger(emu, struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout})
	dbg.Verbose = cfg.Verbose

	if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		dbg.SetSize(width, height)
	}

	return dbg.Run()
}

func main() {
	var config string
	var verbose bool
	var debug bool

	log.SetFlags(0)
	log.SetPrefix(filepath.Base(os.Args[0]) + ": ")

	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}

	flag.StringVar(&config, "config", "", "TOML configuration file")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&debug, "d", false, "Run in the debugger")

	flag.Parse()

	cfg := DefaultConfig()
	if len(config) != 0 {
		err := LoadConfig(config, &cfg)
		if err != nil {
			log.Fatalf("%v: %v", config, err)
		}
	}

	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "v":
			cfg.Verbose = verbose
		case "d":
			cfg.Debug = debug
		}
	})

	if len(cfg.Language) != 0 {
		err := translate.SetLanguage(cfg.Language)
		if err != nil {
			log.Fatalf("%v", err)
		}
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	switch args[0] {
	case "compile":
		var output string
		var list bool

		cmd := flag.NewFlagSet("compile", flag.ExitOnError)
		cmd.StringVar(&output, "o", cfg.Output, "SRecord output file")
		cmd.BoolVar(&list, "l", false, "Print the program listing")
		cmd.Parse(args[1:])

		if cmd.NArg() != 1 {
			log.Fatalf("compile: expected one source file, got %v", cmd.Args())
		}
		source := cmd.Arg(0)

		if len(output) == 0 {
			output = strings.TrimSuffix(source, filepath.Ext(source)) + ".srec"
		}

		var listing io.Writer
		if list {
			listing = os.Stdout
		}

		err := compile(cfg, source, output, listing)
		if err != nil {
			log.Fatalf("%v: %v", source, err)
		}
	case "run":
		if len(args) != 2 {
			log.Fatalf("run: expected one source file, got %v", args[1:])
		}

		emu, err := load(cfg, args[1], true)
		if err != nil {
			log.Fatalf("%v: %v", args[1], err)
		}

		err = execute(cfg, emu, os.Stdout)
		if err != nil {
			log.Fatalf("%v: %v", args[1], err)
		}
	default:
		if len(args) != 1 {
			log.Fatalf("Unknown arguments: %v", args[1:])
		}

		emu, err := load(cfg, args[0], false)
		if err != nil {
			log.Fatalf("%v: %v", args[0], err)
		}

		err = execute(cfg, emu, os.Stdout)
		if err != nil {
			log.Fatalf("%v: %v", args[0], err)
		}
	}
}
