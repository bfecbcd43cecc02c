// Package main is the sscript command line driver: it reads a SimpleScript
// program, runs it through the tokenize/parse/interpret pipeline, and renders
// results and errors for a human.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"simplescript/interpreter-go/pkg/interpreter"
	"simplescript/interpreter-go/pkg/lexer"
	"simplescript/interpreter-go/pkg/parser"
)

// Set via -ldflags at build time.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "sscript [file]",
	Short: "SimpleScript interpreter",
	Long: `sscript runs a SimpleScript program from a file or from an inline
source string passed with --eval.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("sscript version {{.Version}}\n")

	rootCmd.Flags().StringP("eval", "e", "", "run an inline source string instead of a file")
	rootCmd.Flags().Bool("vars", false, "print the final variable bindings after the run")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	source, err := loadSource(cmd, args)
	if err != nil {
		return err
	}

	program, err := parser.New(lexer.New(source)).Parse()
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	interp := interpreter.New()
	if err := interp.Interpret(program); err != nil {
		return fmt.Errorf("runtime error: %w", err)
	}

	if dump, _ := cmd.Flags().GetBool("vars"); dump {
		env := interp.Environment()
		for _, name := range env.Keys() {
			value, _ := env.Lookup(name)
			fmt.Fprintf(os.Stdout, "%s = %s\n", name, value.Display())
		}
	}
	return nil
}

// loadSource resolves the program text from --eval or the file argument.
func loadSource(cmd *cobra.Command, args []string) (string, error) {
	inline, _ := cmd.Flags().GetString("eval")
	if inline != "" {
		if len(args) > 0 {
			return "", fmt.Errorf("pass a file or --eval, not both")
		}
		return inline, nil
	}
	if len(args) == 0 {
		return "", fmt.Errorf("no program: pass a file or --eval")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}
