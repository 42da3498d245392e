package evaluator

import "fmt"

func consoleNamespace() *PlainObject {
	write := func(prefix string) BuiltinFn {
		return func(e *Evaluator, this Object, args []Object) Object {
			line := FormatArgs(args)
			if prefix != "" {
				line = prefix + " " + line
			}
			fmt.Fprintln(e.Out, line)
			return UNDEFINED
		}
	}
	return namespace([]namespaceEntry{
		{name: "log", fn: write("")},
		{name: "info", fn: write("")},
		{name: "debug", fn: write("")},
		{name: "warn", fn: write("[warn]")},
		{name: "error", fn: write("[error]")},
	})
}
