package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/jotlang/jot/pkg/cli"
)

const usage = `usage: jot [options] [command] [file]

commands:
  run <file>    execute a script
  repl          start an interactive session (default on a terminal)

options:
  -e <code>     evaluate code and exit
  -p            with -e, print the resulting value
  -timeout <d>  abort execution after the given duration (e.g. 5s)
  -no-color     disable colored diagnostics
  -version      print version and exit
`

func main() {
	var (
		evalExpr    = flag.String("e", "", "evaluate code and exit")
		printResult = flag.Bool("p", false, "with -e, print the resulting value")
		timeout     = flag.Duration("timeout", 0, "abort execution after the given duration")
		noColor     = flag.Bool("no-color", false, "disable colored diagnostics")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if *showVersion {
		fmt.Printf("jot %s\n", cli.Version)
		os.Exit(cli.ExitOK)
	}

	opts := cli.Options{
		Timeout:     *timeout,
		NoColor:     *noColor,
		PrintResult: *printResult,
	}

	if *evalExpr != "" {
		os.Exit(cli.RunEval(*evalExpr, opts))
	}

	args := flag.Args()
	switch {
	case len(args) == 0:
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			os.Exit(cli.RunREPL(opts))
		}
		os.Exit(runStdin(opts))

	case args[0] == "repl":
		os.Exit(cli.RunREPL(opts))

	case args[0] == "run":
		if len(args) != 2 {
			flag.Usage()
			os.Exit(cli.ExitUsage)
		}
		os.Exit(cli.RunFile(args[1], opts))

	case len(args) == 1:
		os.Exit(cli.RunFile(args[0], opts))

	default:
		flag.Usage()
		os.Exit(cli.ExitUsage)
	}
}

// runStdin executes a script piped into the process.
func runStdin(opts cli.Options) int {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jot: %v\n", err)
		return cli.ExitUsage
	}
	return cli.RunSource(string(data), "<stdin>", opts)
}
