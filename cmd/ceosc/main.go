package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ceos-lang/ceos/internal/ast"
	"github.com/ceos-lang/ceos/internal/compiler"
)

const usage = `ceosc - The ceos language front-end

Usage:
  ceosc parse <file.ceos>              Parse and print the typed AST
  ceosc check <file.ceos>              Parse and type-check only
  ceosc dump [-o out.yaml] <file.ceos> Write the typed AST as YAML
  ceosc repl                           Start an interactive session

Options:
  -o <path>    Write the dump to <path> instead of stdout

Examples:
  ceosc check double.ceos
  ceosc dump -o double.yaml double.ceos
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "parse":
		handleParse(os.Args[2:])
	case "check":
		handleCheck(os.Args[2:])
	case "dump":
		handleDump(os.Args[2:])
	case "repl":
		os.Exit(runRepl())
	case "help", "--help", "-h":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func readSource(args []string) (string, string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		os.Exit(1)
	}
	filePath := args[0]
	source, err := os.ReadFile(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %s\n", err)
		os.Exit(1)
	}
	return filePath, string(source)
}

func handleParse(args []string) {
	filePath, source := readSource(args)

	res := compiler.Compile(source)
	if res.Failed() {
		fmt.Fprintln(os.Stderr, res.Diagnostics.Format(filePath))
		os.Exit(1)
	}
	fmt.Print(ast.PrintProgram(res.Program, res.Registry))
}

func handleCheck(args []string) {
	filePath, source := readSource(args)

	diag := compiler.Check(source)
	if diag.HasErrors() {
		fmt.Fprintln(os.Stderr, diag.Format(filePath))
		os.Exit(1)
	}
	fmt.Println("No errors found.")
}

func handleDump(args []string) {
	var outPath, filePath string

	for i := 0; i < len(args); i++ {
		switch arg := args[i]; {
		case arg == "-o":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "Error: -o needs a path")
				os.Exit(1)
			}
			i++
			outPath = args[i]
		case strings.HasPrefix(arg, "-"):
			fmt.Fprintf(os.Stderr, "Unknown option: %s\n", arg)
			os.Exit(1)
		default:
			filePath = arg
		}
	}

	if filePath == "" {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		os.Exit(1)
	}
	_, source := readSource([]string{filePath})

	if outPath == "" {
		if err := compiler.WriteYAML(source, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
		return
	}
	if err := compiler.EmitYAML(source, outPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", filepath.Clean(outPath))
}
