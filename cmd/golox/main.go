// Command golox is the driver for the language's core (scanner, parser,
// environment, interpreter) implemented in internal/lox. Grounded on
// the teacher's main.go, reworked from the codecrafters
// "tokenize|parse|evaluate|run" subcommand dispatch into the plain
// file-or-prompt CLI §6.2 specifies.
package main

import (
	"fmt"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	switch len(args) {
	case 0:
		return runPrompt()
	case 1:
		return runFile(args[0])
	default:
		fmt.Fprintln(os.Stderr, "Usage: golox [script]")
		return 1
	}
}

func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		return 1
	}

	interp := newInterpreter(os.Stdout)
	if hadError := execute(interp, string(source), os.Stderr); hadError {
		return 1
	}
	return 0
}
