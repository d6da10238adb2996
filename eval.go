package main

import (
	"fmt"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// evaluator runs committed lines through an embedded Go interpreter.
// Interpreter state (declared variables, imports) persists across
// lines, so the editor behaves like a small Go REPL.
type evaluator struct {
	i *interp.Interpreter
}

func newEvaluator() *evaluator {
	i := interp.New(interp.Options{})
	i.Use(stdlib.Symbols)
	return &evaluator{i: i}
}

// Eval evaluates one committed line and returns its printable result,
// or "" when the line produced no value.
func (e *evaluator) Eval(line string) (string, error) {
	v, err := e.i.Eval(line)
	if err != nil {
		return "", err
	}
	if !v.IsValid() {
		return "", nil
	}
	return fmt.Sprintf("%v", v), nil
}
