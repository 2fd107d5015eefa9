package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/ceos-lang/ceos/internal/ast"
	"github.com/ceos-lang/ceos/internal/compiler"
	"github.com/ceos-lang/ceos/internal/diagnostic"
)

const (
	historyFile = ".ceos_history"
	promptMain  = "ceos> "
	promptCont  = "....> "
)

// session accumulates accepted input so later lines can call functions
// and use signatures declared earlier. Every submission recompiles the
// whole session as a fresh compilation.
type session struct {
	source string
	nodes  int // top-level nodes already shown
}

// submit compiles the session plus input. incomplete is true when the
// input ends before the grammar does, so the caller should read more.
func (s *session) submit(input string) (out string, incomplete bool, err error) {
	source := s.source + input + "\n"
	res := compiler.Compile(source)
	if res.Failed() {
		if atEnd(res.Err, source) {
			return "", true, nil
		}
		return "", false, errors.New(res.Diagnostics.Format("repl"))
	}

	s.source = source
	nodes := res.Program.Body.Nodes
	var sb strings.Builder
	for _, node := range nodes[s.nodes:] {
		sb.WriteString(ast.Print(node, res.Registry))
	}
	s.nodes = len(nodes)
	if sb.Len() == 0 {
		return "ok\n", false, nil
	}
	return sb.String(), false, nil
}

// atEnd reports whether the parser stopped on the END token of source
func atEnd(err error, source string) bool {
	var de *diagnostic.Error
	return errors.As(err, &de) && de.Kind == diagnostic.UnexpectedToken && de.Start == len(source)
}

func runRepl() int {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

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

	var s session
	var pending strings.Builder
	for {
		prompt := promptMain
		if pending.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return 0
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			return 1
		}

		if pending.Len() == 0 {
			switch strings.TrimSpace(line) {
			case "":
				continue
			case ":quit":
				return 0
			case ":reset":
				s = session{}
				fmt.Println("session cleared")
				continue
			}
		}

		pending.WriteString(line)
		pending.WriteString("\n")

		out, incomplete, err := s.submit(pending.String())
		if incomplete {
			continue
		}
		ln.AppendHistory(strings.TrimSpace(strings.ReplaceAll(pending.String(), "\n", " ")))
		pending.Reset()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Print(out)
	}
}
