package evaluator

import (
	"context"
	"io"
	"os"

	"github.com/jotlang/jot/internal/ast"
	"github.com/jotlang/jot/internal/config"
	"github.com/jotlang/jot/internal/diagnostics"
	"github.com/jotlang/jot/internal/modules"
	"github.com/jotlang/jot/internal/token"
)

// evalFn selects the execution strategy threaded through the shared
// per-node helpers. The synchronous path passes Eval, the
// suspend-capable path passes EvalAsync, so each helper exists once.
type evalFn func(node ast.Node, env *Environment) Object

const maxCallDepth = config.MaxCallDepth

// Evaluator walks the AST and produces values. One Evaluator serves
// one strand; async calls clone it via forStrand so call depth and the
// module loading stack stay strand-local while the environment graph,
// loader cache and output writer stay shared.
type Evaluator struct {
	Ctx         context.Context
	Out         io.Writer
	GlobalEnv   *Environment
	Loader      *modules.Loader
	Controller  *Controller
	CurrentFile string

	// Enhance turns a failed name lookup into a suggestion string
	// appended to the error message. Defaults to diagnostics.Suggest.
	Enhance func(name string, candidates []string) string

	exports   *modules.ExportTable
	callDepth int
	loading   []string // resolved module paths currently evaluating on this strand
	frames    []frame
	lastToken token.Token
}

type frame struct {
	name string
	tok  token.Token
}

func New() *Evaluator {
	env := NewEnvironment()
	e := &Evaluator{
		Ctx:       context.Background(),
		Out:       os.Stdout,
		GlobalEnv: env,
		Enhance:   diagnostics.Suggest,
		exports:   modules.NewExportTable(),
	}
	RegisterBuiltins(e, env)
	return e
}

// forStrand returns a copy of e for a freshly started strand. Shared
// state (environments, loader, output) stays shared; per-strand state
// starts clean.
func (e *Evaluator) forStrand() *Evaluator {
	clone := *e
	clone.callDepth = 0
	clone.loading = append([]string(nil), e.loading...)
	clone.frames = nil
	return &clone
}

// checkpoint runs once per node visit on every strand: cancellation
// poll, controller pause point, position tracking.
func (e *Evaluator) checkpoint(node ast.Node, env *Environment) Object {
	if tp, ok := node.(ast.TokenProvider); ok {
		if tok := tp.GetToken(); tok.Lexeme != "" || tok.Line > 0 {
			e.lastToken = tok
		}
	}
	if err := e.Ctx.Err(); err != nil {
		return newError("Aborted", "execution aborted: %s", err)
	}
	if e.Controller != nil {
		if sig := e.Controller.checkpoint(e, node, env); sig != nil {
			return sig
		}
	}
	return nil
}

// Eval is the synchronous dispatcher and the single source of truth
// for all non-suspending semantics.
func (e *Evaluator) Eval(node ast.Node, env *Environment) Object {
	if sig := e.checkpoint(node, env); sig != nil {
		return sig
	}

	switch n := node.(type) {

	// Statements
	case *ast.Program:
		return e.evalProgram(n, env, e.Eval)
	case *ast.ExpressionStatement:
		return e.Eval(n.Expression, env)
	case *ast.BlockStatement:
		return e.evalBlock(n, env.Extend(), e.Eval)
	case *ast.VariableDeclaration:
		return e.evalVariableDeclaration(n, env, e.Eval)
	case *ast.FunctionDeclaration:
		return e.evalFunctionDeclaration(n, env)
	case *ast.ClassDeclaration:
		return e.evalClassDeclaration(n, env, e.Eval)
	case *ast.IfStatement:
		return e.evalIfStatement(n, env, e.Eval)
	case *ast.WhileStatement:
		return e.evalWhileStatement(n, env, e.Eval)
	case *ast.DoWhileStatement:
		return e.evalDoWhileStatement(n, env, e.Eval)
	case *ast.ForStatement:
		return e.evalForStatement(n, env, e.Eval)
	case *ast.ForInStatement:
		return e.evalForInStatement(n, env, e.Eval)
	case *ast.ForOfStatement:
		return e.evalForOfStatement(n, env, e.Eval)
	case *ast.SwitchStatement:
		return e.evalSwitchStatement(n, env, e.Eval)
	case *ast.TryStatement:
		return e.evalTryStatement(n, env, e.Eval)
	case *ast.ThrowStatement:
		return e.evalThrowStatement(n, env, e.Eval)
	case *ast.ReturnStatement:
		return e.evalReturnStatement(n, env, e.Eval)
	case *ast.BreakStatement:
		return &BreakSignal{}
	case *ast.ContinueStatement:
		return &ContinueSignal{}
	case *ast.ImportDeclaration:
		return e.evalImportDeclaration(n, env)
	case *ast.ExportDeclaration:
		return e.evalExportDeclaration(n, env, e.Eval)

	// Expressions
	case *ast.Identifier:
		return e.evalIdentifier(n, env)
	case *ast.NumberLiteral:
		return &Number{Value: n.Value}
	case *ast.StringLiteral:
		return &String{Value: n.Value}
	case *ast.BooleanLiteral:
		return nativeBool(n.Value)
	case *ast.NullLiteral:
		return NULL
	case *ast.UndefinedLiteral:
		return UNDEFINED
	case *ast.TemplateLiteral:
		return e.evalTemplateLiteral(n, env, e.Eval)
	case *ast.ArrayLiteral:
		return e.evalArrayLiteral(n, env, e.Eval)
	case *ast.ObjectLiteral:
		return e.evalObjectLiteral(n, env, e.Eval)
	case *ast.FunctionExpression:
		return e.evalFunctionExpression(n, env)
	case *ast.ArrowFunctionExpression:
		return e.evalArrowExpression(n, env)
	case *ast.ClassExpression:
		return e.evalClassExpression(n, env, e.Eval)
	case *ast.CallExpression:
		return e.evalCallExpression(n, env, e.Eval)
	case *ast.NewExpression:
		return e.evalNewExpression(n, env, e.Eval)
	case *ast.MemberExpression:
		return e.evalMemberExpression(n, env, e.Eval)
	case *ast.BinaryExpression:
		return e.evalBinaryExpression(n, env, e.Eval)
	case *ast.LogicalExpression:
		return e.evalLogicalExpression(n, env, e.Eval)
	case *ast.UnaryExpression:
		return e.evalUnaryExpression(n, env, e.Eval)
	case *ast.UpdateExpression:
		return e.evalUpdateExpression(n, env, e.Eval)
	case *ast.AssignmentExpression:
		return e.evalAssignmentExpression(n, env, e.Eval)
	case *ast.ConditionalExpression:
		return e.evalConditionalExpression(n, env, e.Eval)
	case *ast.SequenceExpression:
		return e.evalSequenceExpression(n, env, e.Eval)
	case *ast.ThisExpression:
		return e.evalThisExpression(env)
	case *ast.SuperExpression:
		return syntaxErrorObj("'super' is only valid inside class methods")
	case *ast.AwaitExpression:
		return syntaxErrorObj("'await' is only valid in async context")
	case *ast.SpreadElement:
		return syntaxErrorObj("unexpected spread element")

	case nil:
		return UNDEFINED
	}

	return typeError("unknown node type %T", node)
}

func (e *Evaluator) evalIdentifier(n *ast.Identifier, env *Environment) Object {
	if value, ok := env.Get(n.Value); ok {
		return value
	}
	msg := "name '" + n.Value + "' is not defined"
	if e.Enhance != nil {
		if hint := e.Enhance(n.Value, envNames(env)); hint != "" {
			msg += " (did you mean '" + hint + "'?)"
		}
	}
	return newError("UnboundName", "%s", msg)
}

func (e *Evaluator) evalThisExpression(env *Environment) Object {
	if value, ok := env.Get("this"); ok {
		return value
	}
	return UNDEFINED
}

// envNames flattens the scope chain for suggestion candidates.
func envNames(env *Environment) []string {
	seen := make(map[string]bool)
	var names []string
	for scope := env; scope != nil; scope = scope.parent {
		for _, name := range scope.Names() {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

func (e *Evaluator) pushFrame(name string, tok token.Token) Object {
	if e.callDepth >= maxCallDepth {
		return rangeError("maximum call depth exceeded (%d)", maxCallDepth)
	}
	e.callDepth++
	e.frames = append(e.frames, frame{name: name, tok: tok})
	return nil
}

func (e *Evaluator) popFrame() {
	e.callDepth--
	e.frames = e.frames[:len(e.frames)-1]
}
