package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
)

// runPrompt implements the interactive prompt of §6.2: prompt string
// "> ", EOF to exit, one Interpreter instance shared across lines so
// state (variables, functions) persists, and a parse/runtime error on
// one line never kills the session. Grounded on go-mix's repl/repl.go
// (readline for history/line-editing) and rslox's lox.rs run_prompt
// (per-line isolation, shared interpreter).
func runPrompt() int {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: "",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting prompt: %v\n", err)
		return 1
	}
	defer rl.Close()

	interp := newInterpreter(os.Stdout)

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				return 0
			}
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			return 1
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		// Errors on one line are reported but don't end the session.
		execute(interp, line, os.Stderr)
	}
}
