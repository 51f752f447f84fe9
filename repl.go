package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/pontaoski/lox/interp"
	"github.com/pontaoski/lox/lexer"
	"github.com/pontaoski/lox/parser"
	"github.com/pontaoski/lox/types"
)

const banner = "Lox REPL. Ctrl+C cancels input, Ctrl+D exits. Type :quit to exit."

func (d *driver) repl() error {
	fmt.Fprintln(d.stdout, banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := d.settings.historyPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	in := d.interpreter()
	for {
		line, err := ln.Prompt(d.settings.Prompt)
		if stderrors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if stderrors.Is(err, io.EOF) {
			fmt.Fprintln(d.stdout)
			return nil
		}
		if err != nil {
			return err
		}

		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		if strings.HasPrefix(code, ":") {
			if code == ":quit" {
				return nil
			}
			fmt.Fprintln(d.stdout, "unknown command. Type :quit to exit.")
			continue
		}

		ln.AppendHistory(line)
		d.evalLine(in, line)
	}
}

// evalLine runs one line of input against the session's interpreter.
// Errors are reported and the session carries on with whatever state
// the line left behind.
func (d *driver) evalLine(in *interp.Interpreter, line string) {
	if d.settings.ShowTokens {
		tokens, _ := lexer.Scan("<repl>", line)
		for _, tok := range tokens {
			fmt.Fprintln(d.stdout, tok)
		}
	}

	stmts, err := parser.ParseString("<repl>", line, d.parserOptions()...)
	if err != nil {
		d.report(err)
		return
	}

	v, err := in.Evaluate(stmts)
	if err != nil {
		d.report(err)
		return
	}
	if _, ok := v.(types.NoValue); !ok {
		fmt.Fprintln(d.stdout, v)
	}
}
