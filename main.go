package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"time"

	"github.com/alecthomas/repr"
	"github.com/fatih/color"
	"github.com/pontaoski/lox/ast"
	"github.com/pontaoski/lox/errors"
	"github.com/pontaoski/lox/interp"
	"github.com/pontaoski/lox/lexer"
	"github.com/pontaoski/lox/parser"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
)

// Exit statuses follow sysexits.h.
const (
	exitUsage    = 64
	exitDataErr  = 65
	exitNoInput  = 66
	exitSoftware = 70
)

type driver struct {
	settings loxSettings
	stdout   io.Writer
	stderr   io.Writer
	trace    bool
	log      *log.Logger
}

func newDriver(stdout, stderr io.Writer) *driver {
	return &driver{
		settings: defaultSettings(),
		stdout:   stdout,
		stderr:   stderr,
		log:      log.New(ioutil.Discard, "lox: ", 0),
	}
}

func (d *driver) parserOptions() []parser.Option {
	return []parser.Option{parser.MaxDepth(d.settings.MaxDepth)}
}

func (d *driver) interpreter() *interp.Interpreter {
	return interp.NewInterpreter(
		interp.Output(d.stdout),
		interp.MaxDepth(d.settings.MaxEvalDepth),
	)
}

// report writes every diagnostic carried by err to stderr, one per line.
func (d *driver) report(err error) {
	red := color.New(color.FgRed)
	if !d.settings.Color {
		red.DisableColor()
	}

	var list errors.List
	if stderrors.As(tracerr.Unwrap(err), &list) {
		for _, e := range list {
			red.Fprintln(d.stderr, e.Error())
		}
	} else {
		red.Fprintln(d.stderr, tracerr.Unwrap(err).Error())
	}

	if d.trace {
		if d.settings.Color {
			fmt.Fprint(d.stderr, tracerr.SprintSourceColor(err))
		} else {
			fmt.Fprint(d.stderr, tracerr.SprintSource(err))
		}
	}
}

func (d *driver) readSource(path string) (string, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return "", cli.Exit(fmt.Sprintf("could not read %s: %s", path, err), exitNoInput)
	}
	return string(data), nil
}

// run parses and executes src against in. Nothing executes when the
// source has a lexical or syntactic error.
func (d *driver) run(filename, src string, in *interp.Interpreter) error {
	start := time.Now()
	stmts, err := parser.ParseString(filename, src, d.parserOptions()...)
	d.log.Printf("parsed %s (%d statements) in %s", filename, len(stmts), time.Since(start))
	if err != nil {
		d.report(err)
		return cli.Exit("", exitDataErr)
	}

	start = time.Now()
	err = in.Interpret(stmts)
	d.log.Printf("ran %s in %s", filename, time.Since(start))
	if err != nil {
		d.report(err)
		return cli.Exit("", exitSoftware)
	}
	return nil
}

func (d *driver) runFile(path string) error {
	src, err := d.readSource(path)
	if err != nil {
		return err
	}
	return d.run(path, src, d.interpreter())
}

func (d *driver) dumpTokens(path string) error {
	src, err := d.readSource(path)
	if err != nil {
		return err
	}

	tokens, err := lexer.Scan(path, src)
	for _, tok := range tokens {
		fmt.Fprintf(d.stdout, "%4d %s\n", tok.Line(), tok)
	}
	if err != nil {
		d.report(err)
		return cli.Exit("", exitDataErr)
	}
	return nil
}

func (d *driver) dumpAST(path string, raw bool) error {
	src, err := d.readSource(path)
	if err != nil {
		return err
	}

	stmts, err := parser.ParseString(path, src, d.parserOptions()...)
	if raw {
		fmt.Fprintln(d.stdout, repr.String(stmts, repr.Indent("  ")))
	} else if len(stmts) > 0 {
		fmt.Fprintln(d.stdout, ast.Print(stmts))
	}
	if err != nil {
		d.report(err)
		return cli.Exit("", exitDataErr)
	}
	return nil
}

func (d *driver) newApp() *cli.App {
	return &cli.App{
		Name:      "lox",
		Usage:     "tree-walking interpreter for the Lox scripting language",
		ArgsUsage: "[script]",
		Writer:    d.stdout,
		ErrWriter: d.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: defaultSettingsFile,
				Usage: "settings file",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable coloured diagnostics",
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "print the interpreter's stack trace with diagnostics",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log pipeline timings to stderr",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				d.log.SetOutput(d.stderr)
				d.log.SetFlags(log.Ltime | log.Lmicroseconds)
			}

			s, found, err := loadSettings(c.String("config"))
			if err != nil {
				return cli.Exit(tracerr.Unwrap(err).Error(), exitUsage)
			}
			if found {
				d.log.Printf("settings loaded from %s", c.String("config"))
			}
			if c.Bool("no-color") {
				s.Color = false
			}
			d.settings = s
			d.trace = c.Bool("trace")
			return nil
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			d.log.Printf("exiting: %v", err)
		},
		Action: func(c *cli.Context) error {
			switch c.NArg() {
			case 0:
				return d.repl()
			case 1:
				return d.runFile(c.Args().First())
			}
			return cli.Exit("Usage: lox [script]", exitUsage)
		},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "run a script",
				ArgsUsage: "<script>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("Usage: lox run <script>", exitUsage)
					}
					return d.runFile(c.Args().First())
				},
			},
			{
				Name:  "repl",
				Usage: "start an interactive session",
				Action: func(c *cli.Context) error {
					return d.repl()
				},
			},
			{
				Name:      "tokens",
				Usage:     "print the tokens of a script",
				ArgsUsage: "<script>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("Usage: lox tokens <script>", exitUsage)
					}
					return d.dumpTokens(c.Args().First())
				},
			},
			{
				Name:      "ast",
				Usage:     "print the syntax tree of a script",
				ArgsUsage: "<script>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "dump",
						Value: false,
						Usage: "print the raw node structure",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("Usage: lox ast [--dump] <script>", exitUsage)
					}
					return d.dumpAST(c.Args().First(), c.Bool("dump"))
				},
			},
			{
				Name:  "init",
				Usage: "write a default settings file",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "overwrite an existing file",
					},
				},
				Action: func(c *cli.Context) error {
					path := c.String("config")
					if _, err := os.Stat(path); err == nil && !c.Bool("force") {
						return cli.Exit(fmt.Sprintf("%s already exists", path), exitUsage)
					}
					if err := defaultSettings().save(path); err != nil {
						return cli.Exit(fmt.Sprintf("error creating %s: %s", path, tracerr.Unwrap(err)), 1)
					}
					return nil
				},
			},
		},
	}
}

// exitCode turns the error returned by App.Run into a process status,
// printing any message the error carries.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}

	var coder cli.ExitCoder
	if stderrors.As(err, &coder) {
		if msg := coder.Error(); msg != "" {
			fmt.Fprintln(stderr, msg)
		}
		return coder.ExitCode()
	}

	fmt.Fprintln(stderr, err)
	return exitUsage
}

func runMain(args []string, stdout, stderr io.Writer) int {
	d := newDriver(stdout, stderr)
	return exitCode(d.newApp().Run(args), stderr)
}

func main() {
	os.Exit(runMain(os.Args, os.Stdout, os.Stderr))
}
