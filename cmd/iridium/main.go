// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/iridium/emulator"
	"github.com/ezrec/iridium/loader"
	"github.com/ezrec/iridium/repl"
)

func main() {
	var binary string
	var expr string
	var verbose bool

	flag.StringVar(&binary, "p", "", "Binary program to run ('-' for stdin)")
	flag.StringVar(&expr, "e", "", "Starlark byte list program to run")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(binary) != 0 && len(expr) != 0 {
		log.Fatalf("%v: -p and -e are exclusive", os.Args[0])
	}

	// No program, so start the shell.
	if len(binary) == 0 && len(expr) == 0 {
		rp := repl.NewRepl(os.Stdin, os.Stdout)
		rp.Verbose = verbose
		_, err := rp.Run()
		if err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}

	var program []byte
	var err error

	switch {
	case len(expr) != 0:
		program, err = loader.Eval(expr)
		if err != nil {
			log.Fatalf("-e: %v", err)
		}
	case binary == "-":
		program, err = loader.Read(os.Stdin)
		if err != nil {
			log.Fatalf("stdin: %v", err)
		}
	default:
		inf, err := os.Open(binary)
		if err != nil {
			log.Fatalf("%v: %v", binary, err)
		}
		defer inf.Close()

		program, err = loader.Read(inf)
		if err != nil {
			log.Fatalf("%v: %v", binary, err)
		}
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Load(program)

	err = emu.Run()
	fmt.Print(emu.String())
	if err != nil {
		log.Fatal(err)
	}
}
