// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package repl implements the interactive line shell of the Iridium system.
package repl

import (
	"bufio"
	"io"
	"log"
	"strings"

	"github.com/ezrec/iridium/translate"
)

const (
	PROMPT  = ">>> "     // Printed before every line read.
	QUIT    = ".quit"    // Leave the shell.
	HISTORY = ".history" // Print every line entered so far.
)

// Repl is a read-evaluate-print loop over a line oriented input.
type Repl struct {
	Verbose bool // If set, logs every command line.

	Input  io.Reader // Command input.
	Output io.Writer // Responses and prompts.

	History []string // Every line entered, oldest first, trimmed.
}

// NewRepl creates a new shell.
func NewRepl(input io.Reader, output io.Writer) (rp *Repl) {
	rp = &Repl{
		Input:  input,
		Output: output,
	}

	return
}

// Run the shell until QUIT is entered, or the input ends.
// quit is set if the shell was left with QUIT.
func (rp *Repl) Run() (quit bool, err error) {
	scanner := bufio.NewScanner(rp.Input)

	translate.Fprintf(rp.Output, "Welcome to Iridium! Let's be productive!\n")

	for {
		_, err = io.WriteString(rp.Output, PROMPT)
		if err != nil {
			return
		}

		if !scanner.Scan() {
			err = scanner.Err()
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if rp.Verbose {
			log.Printf("repl: %q", line)
		}

		quit = rp.Execute(line)
		if quit {
			return
		}
	}
}

// Execute records a single trimmed line in the history, and acts on it.
// Returns true if the line was QUIT.
func (rp *Repl) Execute(line string) (quit bool) {
	rp.History = append(rp.History, line)

	switch line {
	case QUIT:
		translate.Fprintf(rp.Output, "Goodbyte!\n")
		quit = true
	case HISTORY:
		for _, command := range rp.History {
			translate.Fprintf(rp.Output, "%v\n", command)
		}
	default:
		translate.Fprintf(rp.Output, "Invalid input!\n")
	}

	return
}
