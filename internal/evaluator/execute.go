package evaluator

import (
	"context"

	"github.com/jotlang/jot/internal/ast"
	"github.com/jotlang/jot/internal/diagnostics"
	"github.com/jotlang/jot/internal/modules"
)

// Options configure one top-level execution.
type Options struct {
	// Async forces the suspend-capable path. AutoDetect turns it on
	// when the tree contains await, import or export nodes.
	Async      bool
	AutoDetect bool

	Context    context.Context
	Controller *Controller
	Loader     *modules.Loader
	File       string
}

// Execute runs a parsed program against env (the evaluator's global
// environment when nil) and converts an uncaught throw into a
// *diagnostics.RuntimeError at this boundary only.
func (e *Evaluator) Execute(program *ast.Program, env *Environment, opts Options) (Object, error) {
	if env == nil {
		env = e.GlobalEnv
	}
	if opts.Context != nil {
		e.Ctx = opts.Context
	}
	if e.Ctx == nil {
		e.Ctx = context.Background()
	}
	if opts.Controller != nil {
		e.Controller = opts.Controller
	}
	if opts.Loader != nil {
		e.Loader = opts.Loader
	}
	if opts.File != "" {
		e.CurrentFile = opts.File
	} else if program.File != "" {
		e.CurrentFile = program.File
	}

	async := opts.Async
	if !async && opts.AutoDetect {
		async = needsAsyncPath(program)
	}

	var result Object
	if async {
		result = e.EvalAsync(program, env)
	} else {
		result = e.Eval(program, env)
	}

	if thrown, ok := result.(*ThrowSignal); ok {
		return UNDEFINED, e.runtimeError(thrown)
	}
	return result, nil
}

// Exports returns the export table the last execution populated.
func (e *Evaluator) Exports() *modules.ExportTable {
	return e.exports
}

func (e *Evaluator) runtimeError(thrown *ThrowSignal) *diagnostics.RuntimeError {
	if errObj, ok := thrown.Value.(*ErrorObject); ok {
		return diagnostics.NewRuntimeError(errObj.Kind, errObj.Message, e.CurrentFile, e.lastToken.Line)
	}
	return diagnostics.NewRuntimeError("", thrown.Value.Inspect(), e.CurrentFile, e.lastToken.Line)
}

// needsAsyncPath reports whether the tree contains a node kind that
// only the suspend-capable path handles.
func needsAsyncPath(node ast.Node) bool {
	found := false
	walk(node, func(n ast.Node) bool {
		switch n.(type) {
		case *ast.AwaitExpression, *ast.ImportDeclaration, *ast.ExportDeclaration:
			found = true
		}
		return !found
	})
	return found
}

// walk visits every node depth-first until fn returns false.
func walk(node ast.Node, fn func(ast.Node) bool) bool {
	if node == nil {
		return true
	}
	if !fn(node) {
		return false
	}
	cont := true
	visit := func(children ...ast.Node) {
		for _, child := range children {
			if child == nil || !cont {
				continue
			}
			if !walk(child, fn) {
				cont = false
			}
		}
	}

	switch n := node.(type) {
	case *ast.Program:
		for _, s := range n.Statements {
			visit(s)
		}
	case *ast.BlockStatement:
		if n == nil {
			break
		}
		for _, s := range n.Statements {
			visit(s)
		}
	case *ast.ExpressionStatement:
		visit(n.Expression)
	case *ast.VariableDeclaration:
		for _, d := range n.Declarations {
			visit(d.Name, d.Value)
		}
	case *ast.FunctionDeclaration:
		visit(n.Body)
	case *ast.ClassDeclaration:
		visit(n.SuperClass)
		for _, m := range n.Body.Methods {
			visit(m.Key, m.Value)
		}
	case *ast.ClassExpression:
		visit(n.SuperClass)
		for _, m := range n.Body.Methods {
			visit(m.Key, m.Value)
		}
	case *ast.IfStatement:
		visit(n.Condition, n.Consequence, n.Alternative)
	case *ast.WhileStatement:
		visit(n.Condition, n.Body)
	case *ast.DoWhileStatement:
		visit(n.Body, n.Condition)
	case *ast.ForStatement:
		visit(n.Init, n.Test, n.Update, n.Body)
	case *ast.ForInStatement:
		visit(n.Left, n.Right, n.Body)
	case *ast.ForOfStatement:
		visit(n.Left, n.Right, n.Body)
	case *ast.SwitchStatement:
		visit(n.Discriminant)
		for _, c := range n.Cases {
			visit(c.Test)
			for _, s := range c.Consequent {
				visit(s)
			}
		}
	case *ast.TryStatement:
		visit(n.Block)
		if n.Handler != nil {
			visit(n.Handler.Param, n.Handler.Body)
		}
		visit(n.Finalizer)
	case *ast.ThrowStatement:
		visit(n.Argument)
	case *ast.ReturnStatement:
		visit(n.Value)
	case *ast.TemplateLiteral:
		for _, expr := range n.Expressions {
			visit(expr)
		}
	case *ast.ArrayLiteral:
		for _, el := range n.Elements {
			visit(el)
		}
	case *ast.ObjectLiteral:
		for _, p := range n.Properties {
			visit(p.Key, p.Value, p.Spread)
		}
	case *ast.FunctionExpression:
		visit(n.Body)
	case *ast.ArrowFunctionExpression:
		visit(n.Body)
	case *ast.CallExpression:
		visit(n.Callee)
		for _, a := range n.Arguments {
			visit(a)
		}
	case *ast.NewExpression:
		visit(n.Callee)
		for _, a := range n.Arguments {
			visit(a)
		}
	case *ast.MemberExpression:
		visit(n.Object, n.Property)
	case *ast.BinaryExpression:
		visit(n.Left, n.Right)
	case *ast.LogicalExpression:
		visit(n.Left, n.Right)
	case *ast.UnaryExpression:
		visit(n.Operand)
	case *ast.UpdateExpression:
		visit(n.Operand)
	case *ast.AssignmentExpression:
		visit(n.Left, n.Right)
	case *ast.ConditionalExpression:
		visit(n.Test, n.Consequent, n.Alternate)
	case *ast.SequenceExpression:
		for _, expr := range n.Expressions {
			visit(expr)
		}
	case *ast.SpreadElement:
		visit(n.Argument)
	case *ast.AwaitExpression:
		visit(n.Argument)
	case *ast.ExportDeclaration:
		visit(n.Declaration, n.Expression)
	}
	return cont
}
