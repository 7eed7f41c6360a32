package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunCLINoArgsPrintsUsage(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := runCLI(nil, &out, &errOut); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Fatalf("expected usage banner, got %q", out.String())
	}
}

func TestRunCLIHelpFlag(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := runCLI([]string{"--help"}, &out, &errOut); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Fatalf("expected usage banner, got %q", out.String())
	}
}

func TestRunCLISelfTestPasses(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := runCLI([]string{"--test"}, &out, &errOut); err != nil {
		t.Fatalf("self-test failed: %v (stderr: %s)", err, errOut.String())
	}
	if strings.Count(out.String(), "ok   ") != len(selfTestCases) {
		t.Fatalf("expected every scenario to report ok, got %q", out.String())
	}
}

func TestRunFileModeWritesConfirmationAndOutput(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "in.my")
	outputPath := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(inputPath, []byte("print 1+2\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	var out bytes.Buffer
	if err := runFileMode([]string{inputPath, outputPath}, &out); err != nil {
		t.Fatalf("runFileMode failed: %v", err)
	}
	if !strings.Contains(out.String(), "Mython output was written to file: "+outputPath) {
		t.Fatalf("unexpected confirmation: %q", out.String())
	}

	written, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(written) != "3\n" {
		t.Fatalf("unexpected script output: %q", written)
	}
}

func TestRunFileModeRequiresTwoArgs(t *testing.T) {
	var out bytes.Buffer
	if err := runFileMode([]string{"only-one"}, &out); err == nil {
		t.Fatal("expected an error when only one path is given")
	}
}

func TestRunFileModeReportsCompileErrors(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "bad.my")
	outputPath := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(inputPath, []byte("x = = 1\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	var out bytes.Buffer
	if err := runFileMode([]string{inputPath, outputPath}, &out); err == nil {
		t.Fatal("expected a compile error")
	}
}
