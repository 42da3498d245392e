// Package cli wires the parser, module loader and evaluator into the
// entry points the jot binary exposes: run a file, evaluate a
// one-liner, or start the REPL.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/jotlang/jot/internal/evaluator"
	"github.com/jotlang/jot/internal/modules"
	"github.com/jotlang/jot/internal/parser"
	"github.com/jotlang/jot/internal/pipeline"
)

// Version is stamped at build time via -ldflags "-X ...cli.Version=".
var Version = "dev"

// Exit codes. ExitSyntax follows the sysexits EX_DATAERR convention so
// scripts can tell a bad program from a program that failed.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
	ExitSyntax  = 65
)

// Options carry per-invocation settings from the command line.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader

	// Timeout bounds total execution; zero means no limit.
	Timeout time.Duration

	// NoColor disables ANSI coloring of diagnostics regardless of TTY
	// detection.
	NoColor bool

	// PrintResult echoes the final value of a -e expression.
	PrintResult bool
}

func (o *Options) fill() {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
}

// RunFile executes a script from disk. The module loader resolves
// imports relative to the file and to the roots of a jot.yaml manifest
// found above it, when one exists.
func RunFile(path string, opts Options) int {
	opts.fill()

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(opts.Stderr, "jot: %v\n", err)
		return ExitUsage
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return run(string(data), abs, opts)
}

// RunEval executes a -e one-liner. When stdin is piped, its contents
// are exposed to the expression as the `stdin` string.
func RunEval(expr string, opts Options) int {
	opts.fill()

	program, pctx := parser.Parse(expr, "<eval>")
	pctx.IsEvalMode = true
	if f, ok := opts.Stdin.(*os.File); ok && !isatty.IsTerminal(f.Fd()) {
		if data, err := io.ReadAll(opts.Stdin); err == nil {
			piped := string(data)
			pctx.StdinData = &piped
		}
	}
	if pctx.HasErrors() {
		reportSyntax(pctx, opts)
		return ExitSyntax
	}

	eval, loader, cancel := newSession("", opts)
	defer cancel()

	if pctx.StdinData != nil {
		eval.GlobalEnv.Define("stdin", &evaluator.String{Value: *pctx.StdinData}, true)
	}

	result, err := eval.Execute(program, nil, evaluator.Options{
		AutoDetect: true,
		Loader:     loader,
		File:       "<eval>",
	})
	if err != nil {
		reportRuntime(err, opts)
		return ExitFailure
	}
	if opts.PrintResult && result != evaluator.UNDEFINED {
		fmt.Fprintln(opts.Stdout, evaluator.FormatValue(result))
	}
	return ExitOK
}

// RunSource parses and executes source attributed to file.
func RunSource(source, file string, opts Options) int {
	opts.fill()
	return run(source, file, opts)
}

// run parses and executes source attributed to file.
func run(source, file string, opts Options) int {
	program, pctx := parser.Parse(source, file)
	if pctx.HasErrors() {
		reportSyntax(pctx, opts)
		return ExitSyntax
	}

	eval, loader, cancel := newSession(file, opts)
	defer cancel()

	_, err := eval.Execute(program, nil, evaluator.Options{
		AutoDetect: true,
		Loader:     loader,
		File:       file,
	})
	if err != nil {
		reportRuntime(err, opts)
		return ExitFailure
	}
	return ExitOK
}

// newSession builds an evaluator and module loader rooted at file's
// project. The returned cancel releases the timeout context.
func newSession(file string, opts Options) (*evaluator.Evaluator, *modules.Loader, context.CancelFunc) {
	eval := evaluator.New()
	eval.Out = opts.Stdout

	ctx := context.Background()
	cancel := func() {}
	if opts.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
	}
	eval.Ctx = ctx

	dir, _ := os.Getwd()
	if file != "" {
		dir = filepath.Dir(file)
	}

	var resolver modules.Resolver
	manifest, err := modules.FindManifest(dir)
	if err != nil {
		fmt.Fprintf(opts.Stderr, "jot: warning: %v\n", err)
	}
	if manifest != nil {
		resolver = &aliasResolver{
			inner:    modules.NewFSResolver(manifest.ResolverRoots()...),
			manifest: manifest,
		}
	} else {
		resolver = modules.NewFSResolver(dir)
	}

	return eval, modules.NewLoader(resolver), cancel
}

// aliasResolver applies the manifest's import aliases before
// delegating to the filesystem resolver.
type aliasResolver struct {
	inner    modules.Resolver
	manifest *modules.Manifest
}

func (r *aliasResolver) Resolve(ctx context.Context, path, from string) (*modules.Source, error) {
	return r.inner.Resolve(ctx, r.manifest.Rewrite(path), from)
}

func (r *aliasResolver) Exists(ctx context.Context, path, from string) (bool, error) {
	return r.inner.Exists(ctx, r.manifest.Rewrite(path), from)
}

func (r *aliasResolver) List(ctx context.Context, prefix string) ([]string, error) {
	return r.inner.List(ctx, prefix)
}

func reportSyntax(pctx *pipeline.PipelineContext, opts Options) {
	for _, diag := range pctx.Errors {
		fmt.Fprintln(opts.Stderr, colorize(diag.Error(), opts))
	}
}

func reportRuntime(err error, opts Options) {
	fmt.Fprintln(opts.Stderr, colorize(err.Error(), opts))
}

// colorize wraps msg in red when stderr is a terminal and coloring is
// not suppressed (NO_COLOR convention, https://no-color.org/).
func colorize(msg string, opts Options) string {
	if opts.NoColor {
		return msg
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return msg
	}
	f, ok := opts.Stderr.(*os.File)
	if !ok {
		return msg
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return msg
	}
	return "\x1b[31m" + msg + "\x1b[0m"
}
