package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/jotlang/jot/internal/config"
	"github.com/jotlang/jot/internal/evaluator"
	"github.com/jotlang/jot/internal/modules"
	"github.com/jotlang/jot/internal/parser"
)

const (
	promptMain = "jot> "
	promptCont = "...> "
)

const replHelp = `commands:
  :help          show this help
  :load <file>   run a script in the current session
  :reset         discard the session and start fresh
  :quit          exit (also Ctrl+D)
`

// RunREPL starts an interactive session. Input history persists across
// sessions in the user's home directory.
func RunREPL(opts Options) int {
	opts.fill()

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetMultiLineMode(true)

	histPath := historyPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	fmt.Fprintf(opts.Stdout, "jot %s (type :help for help)\n", Version)

	session := newReplSession(opts)

	for {
		code, ok := readInput(ln)
		if !ok {
			fmt.Fprintln(opts.Stdout)
			break
		}
		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, ":") {
			if done := session.command(ln, trimmed, opts); done {
				break
			}
			continue
		}

		session.eval(code, opts)
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}
	return ExitOK
}

type replSession struct {
	ev     *evaluator.Evaluator
	loader *modules.Loader
	seq    int
}

func newReplSession(opts Options) *replSession {
	eval, loader, _ := newSession("", opts)
	eval.Out = opts.Stdout
	return &replSession{ev: eval, loader: loader}
}

func (s *replSession) eval(code string, opts Options) {
	s.seq++
	file := fmt.Sprintf("<repl:%d>", s.seq)

	program, pctx := parser.Parse(code, file)
	if pctx.HasErrors() {
		reportSyntax(pctx, opts)
		return
	}

	result, err := s.ev.Execute(program, nil, evaluator.Options{
		AutoDetect: true,
		Loader:     s.loader,
		File:       file,
	})
	if err != nil {
		reportRuntime(err, opts)
		return
	}
	if result != evaluator.UNDEFINED {
		fmt.Fprintln(opts.Stdout, evaluator.FormatValue(result))
	}
}

func (s *replSession) command(ln *liner.State, line string, opts Options) (done bool) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":help":
		fmt.Fprint(opts.Stdout, replHelp)

	case ":quit", ":exit":
		return true

	case ":reset":
		*s = *newReplSession(opts)
		fmt.Fprintln(opts.Stdout, "session reset")

	case ":load":
		if len(fields) < 2 {
			fmt.Fprintln(opts.Stderr, "usage: :load <file>")
			return false
		}
		src, err := os.ReadFile(fields[1])
		if err != nil {
			fmt.Fprintf(opts.Stderr, "cannot read %s: %v\n", fields[1], err)
			return false
		}
		s.eval(string(src), opts)
		ln.AppendHistory(line)

	default:
		fmt.Fprintln(opts.Stderr, "unknown command, type :help for help")
	}
	return false
}

// readInput collects one logical input, prompting for continuation
// lines while braces, brackets or parens remain open.
func readInput(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			// Ctrl+C discards the current input.
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if openDelimiters(b.String()) == 0 {
			return b.String(), true
		}
	}
}

// openDelimiters counts unclosed (, [ and { outside string and
// template literals. A best-effort scan: it does not track template
// interpolation nesting.
func openDelimiters(src string) int {
	depth := 0
	var quote byte
	escaped := false
	for i := 0; i < len(src); i++ {
		c := src[i]
		if quote != 0 {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"', '`':
			quote = c
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case '/':
			if i+1 < len(src) && src[i+1] == '/' {
				for i < len(src) && src[i] != '\n' {
					i++
				}
			}
		}
	}
	if depth < 0 {
		return 0
	}
	return depth
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, config.HistoryFileName)
}
