package main

import (
	"os"
	"path/filepath"
	"testing"
)

// execute runs the root command with fresh flag state; cobra keeps flag
// values between Execute calls otherwise.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	if err := rootCmd.Flags().Set("eval", ""); err != nil {
		t.Fatal(err)
	}
	if err := rootCmd.Flags().Set("vars", "false"); err != nil {
		t.Fatal(err)
	}
	rootCmd.SetArgs(append([]string{}, args...))
	return rootCmd.Execute()
}

func TestRunInlineSource(t *testing.T) {
	if err := execute(t, "--eval", "var a = 1 + 2;"); err != nil {
		t.Fatalf("execute: %v", err)
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program.ss")
	if err := os.WriteFile(path, []byte(`var greeting = "Hi " + "there";`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := execute(t, path); err != nil {
		t.Fatalf("execute: %v", err)
	}
}

func TestParseErrorSurfaces(t *testing.T) {
	if err := execute(t, "--eval", "var a = ;"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestRuntimeErrorSurfaces(t *testing.T) {
	if err := execute(t, "--eval", "var y = x;"); err == nil {
		t.Fatal("expected runtime error")
	}
}

func TestMissingProgram(t *testing.T) {
	if err := execute(t); err == nil {
		t.Fatal("expected error when no file or --eval is given")
	}
}
