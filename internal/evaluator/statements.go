package evaluator

import (
	"github.com/jotlang/jot/internal/ast"
)

// hoistFunctions pre-defines function declarations so mutual recursion
// works regardless of source order. Later duplicate declarations still
// fail in the main pass.
func (e *Evaluator) hoistFunctions(statements []ast.Statement, env *Environment) Object {
	for _, stmt := range statements {
		var fd *ast.FunctionDeclaration
		switch s := stmt.(type) {
		case *ast.FunctionDeclaration:
			fd = s
		case *ast.ExportDeclaration:
			if inner, ok := s.Declaration.(*ast.FunctionDeclaration); ok {
				fd = inner
			}
		}
		if fd == nil {
			continue
		}
		if result := e.evalFunctionDeclaration(fd, env); isThrow(result) {
			return result
		}
	}
	return nil
}

func (e *Evaluator) evalProgram(program *ast.Program, env *Environment, ev evalFn) Object {
	if sig := e.hoistFunctions(program.Statements, env); sig != nil {
		return sig
	}
	var result Object = UNDEFINED
	for _, stmt := range program.Statements {
		if _, ok := stmt.(*ast.FunctionDeclaration); ok {
			continue
		}
		result = ev(stmt, env)
		switch sig := result.(type) {
		case *ReturnValue:
			return sig.Value
		case *ThrowSignal:
			return sig
		case *BreakSignal:
			return syntaxErrorObj("'break' outside of a loop")
		case *ContinueSignal:
			return syntaxErrorObj("'continue' outside of a loop")
		}
	}
	return result
}

// evalBlock runs a statement list in the given scope. The caller
// decides whether the scope is fresh; function bodies reuse the call
// frame, plain blocks extend.
func (e *Evaluator) evalBlock(block *ast.BlockStatement, env *Environment, ev evalFn) Object {
	if sig := e.hoistFunctions(block.Statements, env); sig != nil {
		return sig
	}
	var result Object = UNDEFINED
	for _, stmt := range block.Statements {
		if _, ok := stmt.(*ast.FunctionDeclaration); ok {
			continue
		}
		result = ev(stmt, env)
		if isSignal(result) {
			return result
		}
	}
	return result
}

func (e *Evaluator) evalReturnStatement(n *ast.ReturnStatement, env *Environment, ev evalFn) Object {
	if n.Value == nil {
		return &ReturnValue{Value: UNDEFINED}
	}
	value := ev(n.Value, env)
	if isSignal(value) {
		return value
	}
	return &ReturnValue{Value: value}
}

func (e *Evaluator) evalThrowStatement(n *ast.ThrowStatement, env *Environment, ev evalFn) Object {
	value := ev(n.Argument, env)
	if isSignal(value) {
		return value
	}
	return &ThrowSignal{Value: value}
}
