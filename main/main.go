/*
File    : interp/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package main is the interp CLI entry point: `interp -f <path>` runs
// one source file to completion; `interp repl` starts an interactive
// session. Both share the same lex/parse/eval pipeline and config
// limits.
package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akashmaji946/interp/config"
	"github.com/akashmaji946/interp/eval"
	"github.com/akashmaji946/interp/ierrors"
	"github.com/akashmaji946/interp/lexer"
	"github.com/akashmaji946/interp/parser"
	"github.com/akashmaji946/interp/repl"
	"github.com/akashmaji946/interp/source"
)

// VERSION is the interp CLI version string.
var VERSION = "v1.0.0"

var (
	errorColor = color.New(color.FgRed)
)

var filePath string

var rootCmd = &cobra.Command{
	Use:           "interp",
	Short:         "interp runs the scripting language described in this repository",
	Version:       VERSION,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if filePath == "" {
			return cmd.Usage()
		}
		return runFile(filePath, os.Stdout)
	},
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "start an interactive read-eval-print session",
	RunE: func(cmd *cobra.Command, args []string) error {
		limits, err := config.Load(".")
		if err != nil {
			return err
		}
		repl.New(limits).Start(os.Stdin, os.Stdout)
		return nil
	},
}

func main() {
	rootCmd.Flags().StringVarP(&filePath, "file", "f", "", "path to a source file to run")
	rootCmd.AddCommand(replCmd)
	if err := rootCmd.Execute(); err != nil {
		reportAndExit(err)
	}
}

// runFile implements spec §6's CLI contract: a missing path exits
// quietly with success; otherwise the file is lexed, parsed and
// evaluated to completion, writing print output to out. The caller
// (main) is responsible for reporting a returned error and setting
// the process exit code, so this function never calls os.Exit itself
// and can be driven directly from a test.
func runFile(path string, out io.Writer) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	limits, err := config.Load(".")
	if err != nil {
		return err
	}

	src, err := source.NewFileSource(path)
	if err != nil {
		return err
	}
	defer src.Close()

	lex := lexer.NewLexer(src)
	lex.MaxIdentifierLength = limits.MaxIdentifierLength
	lex.MaxStringLength = limits.MaxStringLength

	p, err := parser.NewParser(lex)
	if err != nil {
		return err
	}
	program, err := p.ParseProgram()
	if err != nil {
		return err
	}

	ev := eval.New(limits.MaxRecursionDepth, out)
	return ev.Run(program)
}

// reportAndExit prints a one-line diagnostic for any staged error and
// exits with code 1.
func reportAndExit(err error) {
	if ierr, ok := err.(*ierrors.Error); ok {
		errorColor.Fprintf(os.Stderr, "%s\n", ierr.Error())
	} else {
		errorColor.Fprintf(os.Stderr, "%s\n", err)
	}
	os.Exit(1)
}
