/*
Awesome runs programs written in the Awesome language.

Usage:

	awesome [flags]

The flags are:

	-i/--input FILE
		Run FILE. Without it an interactive prompt is started.

	-t/--tokens
		Print the token stream of the input instead of running it.

	-a/--ast
		Print the syntax tree of the input instead of running it.

	-c/--config FILE
		Read settings from FILE instead of awesome/config.toml in the XDG
		config directories.

In the prompt, a line ending with ':' opens a block; keep typing the indented
body and finish it with an empty line.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/pflag"
	"github.com/takoeight0821/awesome/internal/config"
	"github.com/takoeight0821/awesome/internal/driver"
	"github.com/takoeight0821/awesome/internal/lexer"
)

var (
	flagInput  = pflag.StringP("input", "i", "", "input file path")
	flagTokens = pflag.BoolP("tokens", "t", false, "print tokens instead of running")
	flagAST    = pflag.BoolP("ast", "a", false, "print the syntax tree instead of running")
	flagConfig = pflag.StringP("config", "c", "", "config file path")
)

func main() {
	pflag.Parse()

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *flagInput == "" {
		err = RunPrompt(cfg)
	} else {
		err = RunFile(*flagInput, os.Stdout)
	}
	if err != nil {
		printError(err)
		os.Exit(1)
	}
}

func printError(err error) {
	if errs, ok := err.(interface{ Unwrap() []error }); ok {
		for _, err := range errs.Unwrap() {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

func RunPrompt(cfg config.Config) error {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer func() {
		if err := os.MkdirAll(filepath.Dir(cfg.History), os.ModePerm); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if f, err := os.Create(cfg.History); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(cfg.History); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	r := driver.NewRunner(os.Stdout)
	for {
		input, err := readInput(line, cfg.Prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		line.AppendHistory(input)

		if err := run(r, input, os.Stdout); err != nil {
			printError(err)
		}
	}
}

// readInput reads one statement. A line ending with ':' starts a block that
// continues until an empty line.
func readInput(line *liner.State, prompt string) (string, error) {
	input, err := line.Prompt(prompt)
	if err != nil || !strings.HasSuffix(input, ":") {
		return input, err
	}

	var b strings.Builder
	b.WriteString(input)
	for {
		more, err := line.Prompt(strings.Repeat(".", len(strings.TrimRight(prompt, " "))) + " ")
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(more) == "" {
			return b.String(), nil
		}
		b.WriteString("\n")
		b.WriteString(more)
	}
}

func RunFile(path string, out io.Writer) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return run(driver.NewRunner(out), string(bytes), out)
}

func run(r *driver.Runner, source string, out io.Writer) error {
	switch {
	case *flagTokens:
		tokens, err := lexer.Lex(source)
		if err != nil {
			return err
		}
		for _, t := range tokens {
			fmt.Fprintln(out, t)
		}
		return nil
	case *flagAST:
		program, err := driver.Parse(source)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, program)
		return nil
	}
	_, err := r.RunSource(source)
	return err
}
