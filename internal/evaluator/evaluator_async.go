package evaluator

import (
	"github.com/jotlang/jot/internal/ast"
)

// EvalAsync is the suspend-capable dispatcher. It overrides only node
// kinds that can contain an await somewhere below them, passing itself
// as the strategy so the shared helpers recurse on the async path, and
// delegates every other kind to Eval. The sole suspend point is the
// await expression itself.
func (e *Evaluator) EvalAsync(node ast.Node, env *Environment) Object {
	switch n := node.(type) {

	case *ast.AwaitExpression:
		if sig := e.checkpoint(n, env); sig != nil {
			return sig
		}
		return e.evalAwait(n, env)

	case *ast.Program:
		if sig := e.checkpoint(n, env); sig != nil {
			return sig
		}
		return e.evalProgram(n, env, e.EvalAsync)
	case *ast.ExpressionStatement:
		return e.EvalAsync(n.Expression, env)
	case *ast.BlockStatement:
		if sig := e.checkpoint(n, env); sig != nil {
			return sig
		}
		return e.evalBlock(n, env.Extend(), e.EvalAsync)
	case *ast.VariableDeclaration:
		if sig := e.checkpoint(n, env); sig != nil {
			return sig
		}
		return e.evalVariableDeclaration(n, env, e.EvalAsync)
	case *ast.ClassDeclaration:
		return e.evalClassDeclaration(n, env, e.EvalAsync)
	case *ast.IfStatement:
		if sig := e.checkpoint(n, env); sig != nil {
			return sig
		}
		return e.evalIfStatement(n, env, e.EvalAsync)
	case *ast.WhileStatement:
		if sig := e.checkpoint(n, env); sig != nil {
			return sig
		}
		return e.evalWhileStatement(n, env, e.EvalAsync)
	case *ast.DoWhileStatement:
		if sig := e.checkpoint(n, env); sig != nil {
			return sig
		}
		return e.evalDoWhileStatement(n, env, e.EvalAsync)
	case *ast.ForStatement:
		if sig := e.checkpoint(n, env); sig != nil {
			return sig
		}
		return e.evalForStatement(n, env, e.EvalAsync)
	case *ast.ForInStatement:
		if sig := e.checkpoint(n, env); sig != nil {
			return sig
		}
		return e.evalForInStatement(n, env, e.EvalAsync)
	case *ast.ForOfStatement:
		if sig := e.checkpoint(n, env); sig != nil {
			return sig
		}
		return e.evalForOfStatement(n, env, e.EvalAsync)
	case *ast.SwitchStatement:
		if sig := e.checkpoint(n, env); sig != nil {
			return sig
		}
		return e.evalSwitchStatement(n, env, e.EvalAsync)
	case *ast.TryStatement:
		if sig := e.checkpoint(n, env); sig != nil {
			return sig
		}
		return e.evalTryStatement(n, env, e.EvalAsync)
	case *ast.ThrowStatement:
		return e.evalThrowStatement(n, env, e.EvalAsync)
	case *ast.ReturnStatement:
		return e.evalReturnStatement(n, env, e.EvalAsync)
	case *ast.ImportDeclaration:
		return e.evalImportDeclaration(n, env)
	case *ast.ExportDeclaration:
		return e.evalExportDeclaration(n, env, e.EvalAsync)

	case *ast.TemplateLiteral:
		return e.evalTemplateLiteral(n, env, e.EvalAsync)
	case *ast.ArrayLiteral:
		return e.evalArrayLiteral(n, env, e.EvalAsync)
	case *ast.ObjectLiteral:
		return e.evalObjectLiteral(n, env, e.EvalAsync)
	case *ast.ClassExpression:
		return e.evalClassExpression(n, env, e.EvalAsync)
	case *ast.CallExpression:
		if sig := e.checkpoint(n, env); sig != nil {
			return sig
		}
		return e.evalCallExpression(n, env, e.EvalAsync)
	case *ast.NewExpression:
		return e.evalNewExpression(n, env, e.EvalAsync)
	case *ast.MemberExpression:
		return e.evalMemberExpression(n, env, e.EvalAsync)
	case *ast.BinaryExpression:
		return e.evalBinaryExpression(n, env, e.EvalAsync)
	case *ast.LogicalExpression:
		return e.evalLogicalExpression(n, env, e.EvalAsync)
	case *ast.UnaryExpression:
		return e.evalUnaryExpression(n, env, e.EvalAsync)
	case *ast.UpdateExpression:
		return e.evalUpdateExpression(n, env, e.EvalAsync)
	case *ast.AssignmentExpression:
		return e.evalAssignmentExpression(n, env, e.EvalAsync)
	case *ast.ConditionalExpression:
		return e.evalConditionalExpression(n, env, e.EvalAsync)
	case *ast.SequenceExpression:
		return e.evalSequenceExpression(n, env, e.EvalAsync)
	}

	// Leaves and definition-only nodes have identical semantics on
	// both paths.
	return e.Eval(node, env)
}

// evalAwait evaluates the operand and, when it is a promise, blocks
// the current strand until it settles. Non-promise operands pass
// through unchanged.
func (e *Evaluator) evalAwait(n *ast.AwaitExpression, env *Environment) Object {
	value := e.EvalAsync(n.Argument, env)
	if isSignal(value) {
		return value
	}
	promise, ok := value.(*Promise)
	if !ok {
		return value
	}
	return promise.Await(e.Ctx)
}
