package evaluator

import (
	"fmt"

	"github.com/jotlang/jot/internal/ast"
	"github.com/jotlang/jot/internal/config"
	"github.com/jotlang/jot/internal/modules"
	"github.com/jotlang/jot/internal/parser"
)

func (e *Evaluator) evalImportDeclaration(n *ast.ImportDeclaration, env *Environment) Object {
	exports, sig := e.importModule(n.Source.Value)
	if sig != nil {
		return sig
	}

	for _, spec := range n.Specifiers {
		var value Object
		switch spec.Kind {
		case "default":
			v, ok := exports.Get(config.DefaultExportName)
			if !ok {
				return typeError("module '%s' has no default export", n.Source.Value)
			}
			value = v.(Object)
		case "namespace":
			ns := NewModuleNamespace(n.Source.Value)
			for _, key := range exports.Keys() {
				v, _ := exports.Get(key)
				ns.define(key, v.(Object))
			}
			value = ns
		case "named":
			v, ok := exports.Get(spec.Imported.Value)
			if !ok {
				return typeError("module '%s' does not export '%s'", n.Source.Value, spec.Imported.Value)
			}
			value = v.(Object)
		default:
			return typeError("unknown import specifier kind %q", spec.Kind)
		}
		if !env.Define(spec.Local.Value, value, true) {
			return newError("DuplicateDeclaration", "name '%s' is already declared in this scope", spec.Local.Value)
		}
	}
	return UNDEFINED
}

// importModule resolves, evaluates and memoizes a module through the
// shared loader. Cycles are caught before Load so the loader's
// in-flight dedup cannot block on this strand's own import.
func (e *Evaluator) importModule(spec string) (*modules.ExportTable, Object) {
	if e.Loader == nil {
		return nil, typeError("cannot import '%s': no module loader configured", spec)
	}

	path, err := e.Loader.ResolvePath(e.Ctx, spec, e.CurrentFile)
	if err != nil {
		return nil, typeError("%s", err.Error())
	}
	for _, active := range e.loading {
		if active == path {
			return nil, typeError("circular import of module '%s'", spec)
		}
	}

	rec, err := e.Loader.Load(e.Ctx, spec, e.CurrentFile, func(src *modules.Source) (*modules.ExportTable, error) {
		return e.evaluateModuleSource(src, path)
	})
	if err != nil {
		return nil, typeError("%s", err.Error())
	}
	return rec.Exports, nil
}

// evaluateModuleSource parses and runs one module body in a fresh
// child of the root environment, on a sub-evaluator that collects the
// module's exports.
func (e *Evaluator) evaluateModuleSource(src *modules.Source, path string) (*modules.ExportTable, error) {
	program, pctx := parser.Parse(src.Code, src.Path)
	if pctx.HasErrors() {
		return nil, pctx.FirstError()
	}

	sub := e.forStrand()
	sub.CurrentFile = src.Path
	sub.exports = modules.NewExportTable()
	sub.loading = append(sub.loading, path)

	moduleEnv := e.GlobalEnv.Root().Extend()
	result := sub.EvalAsync(program, moduleEnv)
	if thrown, ok := result.(*ThrowSignal); ok {
		return nil, fmt.Errorf("%s", thrown.Value.Inspect())
	}
	return sub.exports, nil
}

func (e *Evaluator) evalExportDeclaration(n *ast.ExportDeclaration, env *Environment, ev evalFn) Object {
	switch {
	case n.Default:
		var value Object
		if n.Expression != nil {
			value = ev(n.Expression, env)
		} else if n.Declaration != nil {
			if sig := ev(n.Declaration, env); isSignal(sig) {
				return sig
			}
			value = e.declaredValue(n.Declaration, env)
		} else {
			return syntaxErrorObj("export default requires a value")
		}
		if isSignal(value) {
			return value
		}
		e.exports.Set(config.DefaultExportName, value)
		return UNDEFINED

	case n.Declaration != nil:
		// Function declarations were hoisted already; re-evaluating is
		// a no-op for them and required for var/class declarations.
		if _, hoisted := n.Declaration.(*ast.FunctionDeclaration); !hoisted {
			if sig := ev(n.Declaration, env); isSignal(sig) {
				return sig
			}
		}
		for _, name := range declaredNames(n.Declaration) {
			value, ok := env.Get(name)
			if !ok {
				return newError("UnboundName", "exported name '%s' is not defined", name)
			}
			e.exports.Set(name, value)
		}
		return UNDEFINED

	default:
		for _, spec := range n.Specifiers {
			value, ok := env.Get(spec.Local.Value)
			if !ok {
				return newError("UnboundName", "exported name '%s' is not defined", spec.Local.Value)
			}
			e.exports.Set(spec.Exported.Value, value)
		}
		return UNDEFINED
	}
}

// declaredValue fetches the binding a declaration statement created,
// for `export default function f() {}` style forms.
func (e *Evaluator) declaredValue(decl ast.Statement, env *Environment) Object {
	names := declaredNames(decl)
	if len(names) == 0 {
		return UNDEFINED
	}
	if value, ok := env.Get(names[0]); ok {
		return value
	}
	return UNDEFINED
}

// declaredNames lists the top-level bindings a declaration introduces.
func declaredNames(decl ast.Statement) []string {
	switch d := decl.(type) {
	case *ast.FunctionDeclaration:
		return []string{d.Name.Value}
	case *ast.ClassDeclaration:
		return []string{d.Name.Value}
	case *ast.VariableDeclaration:
		var names []string
		for _, declarator := range d.Declarations {
			names = append(names, patternNames(declarator.Name)...)
		}
		return names
	}
	return nil
}

// patternNames lists every identifier a binding pattern introduces.
func patternNames(target ast.Expression) []string {
	switch t := target.(type) {
	case *ast.Identifier:
		return []string{t.Value}
	case *ast.AssignmentPattern:
		return patternNames(t.Left)
	case *ast.ObjectPattern:
		var names []string
		for _, prop := range t.Properties {
			names = append(names, patternNames(prop.Value)...)
		}
		if t.Rest != nil {
			names = append(names, patternNames(t.Rest)...)
		}
		return names
	case *ast.ArrayPattern:
		var names []string
		for _, elem := range t.Elements {
			if elem != nil {
				names = append(names, patternNames(elem)...)
			}
		}
		if t.Rest != nil {
			names = append(names, patternNames(t.Rest)...)
		}
		return names
	}
	return nil
}
