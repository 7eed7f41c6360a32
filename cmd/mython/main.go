package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bogaev/cpp-mython/mython"
)

func main() {
	if err := runCLI(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stdout)
		return nil
	}
	switch args[0] {
	case "--help", "-h":
		printUsage(stdout)
		return nil
	case "--test", "-t":
		return runSelfTest(stdout, stderr)
	case "repl":
		return runREPL()
	default:
		return runFileMode(args, stdout)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Mython - a small dynamically typed scripting language")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  mython --help | -h              show this message")
	fmt.Fprintln(w, "  mython --test | -t              run the built-in self-test suite")
	fmt.Fprintln(w, "  mython <input-file> <output-file>")
	fmt.Fprintln(w, "                                   run a script, writing its output to a file")
	fmt.Fprintln(w, "  mython repl                     start an interactive session")
}

func runFileMode(args []string, stdout io.Writer) error {
	if len(args) != 2 {
		printUsage(stdout)
		return fmt.Errorf("expected exactly an <input-file> and an <output-file>")
	}
	inputPath, outputPath := args[0], args[1]

	source, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer outFile.Close()

	engine := mython.NewEngine(mython.Config{Stdout: outFile})
	script, err := engine.Compile(source)
	if err != nil {
		return err
	}
	if err := script.Run(context.Background()); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Mython output was written to file: %s\n", outputPath)
	return nil
}
