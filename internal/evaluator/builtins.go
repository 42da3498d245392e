package evaluator

import (
	"github.com/jotlang/jot/internal/config"
)

// RegisterBuiltins populates the root environment before user code
// runs. The evaluator core never special-cases any of these: they are
// ordinary callables and namespace objects.
func RegisterBuiltins(e *Evaluator, env *Environment) {
	env.Define(config.ConsoleGlobalName, consoleNamespace(), false)
	env.Define(config.MathGlobalName, mathNamespace(), false)
	env.Define(config.JSONGlobalName, jsonNamespace(), false)
	env.Define(config.YAMLGlobalName, yamlNamespace(), false)
	env.Define(config.ObjectGlobalName, objectNamespace(), false)
	env.Define(config.ArrayGlobalName, arrayNamespace(), false)
	env.Define(config.CryptoGlobalName, cryptoNamespace(), false)
	env.Define(config.DBGlobalName, dbNamespace(), false)
	env.Define(config.TimeGlobalName, timeNamespace(), false)
	registerGlobals(env)
}

// namespace builds a plain object of host functions, the common shape
// of the builtin groups.
func namespace(entries []namespaceEntry) *PlainObject {
	ns := NewPlainObject()
	for _, entry := range entries {
		if entry.value != nil {
			ns.Set(entry.name, entry.value)
			continue
		}
		ns.Set(entry.name, &Builtin{Name: entry.name, Fn: entry.fn})
	}
	return ns
}

type namespaceEntry struct {
	name  string
	fn    BuiltinFn
	value Object
}
