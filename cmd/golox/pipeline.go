package main

import (
	"io"

	"github.com/fatih/color"

	"github.com/sdecook/golox/internal/lox"
)

var errColor = color.New(color.FgRed)

func newInterpreter(stdout io.Writer) *lox.Interpreter {
	return lox.NewInterpreter(stdout)
}

// execute runs the scan → parse → interpret pipeline once (§2 "Data
// flows one direction"). It reports every diagnostic to stderr in the
// §6.3 wire format and returns whether any stage failed, so the file
// driver can choose the process exit code and the REPL driver can
// choose to keep the session alive.
func execute(interp *lox.Interpreter, source string, stderr io.Writer) bool {
	scanner := lox.NewScanner(source)
	tokens, scanErrs := scanner.ScanTokens()
	for _, e := range scanErrs {
		reportDiagnostic(stderr, e.Error())
	}
	if len(scanErrs) > 0 {
		return true
	}

	parser := lox.NewParser(tokens)
	stmts, parseErrs := parser.Parse()
	for _, e := range parseErrs {
		reportDiagnostic(stderr, e.Error())
	}
	if len(parseErrs) > 0 {
		return true
	}

	if err := interp.Run(stmts); err != nil {
		reportDiagnostic(stderr, err.Error())
		return true
	}

	return false
}

func reportDiagnostic(w io.Writer, message string) {
	errColor.Fprintln(w, message)
}
