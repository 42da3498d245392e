package evaluator

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jotlang/jot/internal/ast"
)

// Controller adds cooperative pause/resume and introspection on top of
// the node-boundary checkpoints. Strands block at the next checkpoint
// after Pause and proceed on Resume. Evaluation works identically with
// no controller attached.
type Controller struct {
	engaged atomic.Bool

	mu      sync.Mutex
	paused  bool
	resumed chan struct{}
	status  Status
}

// Status is a point-in-time view of one strand captured at its most
// recent checkpoint.
type Status struct {
	State     string // "running" or "paused"
	Node      string
	File      string
	Line      int
	CallStack []string
	Variables map[string]string
}

func NewController() *Controller {
	return &Controller{resumed: make(chan struct{})}
}

// Pause blocks every strand at its next node boundary.
func (c *Controller) Pause() {
	c.engaged.Store(true)
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		c.paused = true
		c.resumed = make(chan struct{})
	}
	c.status.State = "paused"
}

// Resume releases paused strands.
func (c *Controller) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		c.paused = false
		close(c.resumed)
	}
	c.status.State = "running"
}

// Status returns the most recently captured snapshot. Capture starts
// at the first Pause or Status call; before any checkpoint has run the
// snapshot is zero-valued.
func (c *Controller) Status() Status {
	c.engaged.Store(true)
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// checkpoint is called by the evaluator at every node visit. The fast
// path is a single atomic load.
func (c *Controller) checkpoint(e *Evaluator, node ast.Node, env *Environment) Object {
	if !c.engaged.Load() {
		return nil
	}

	c.mu.Lock()
	c.capture(e, node, env)
	for c.paused {
		ch := c.resumed
		c.mu.Unlock()
		select {
		case <-ch:
		case <-e.Ctx.Done():
			return newError("Aborted", "execution aborted while paused: %s", e.Ctx.Err())
		}
		c.mu.Lock()
	}
	c.mu.Unlock()
	return nil
}

func (c *Controller) capture(e *Evaluator, node ast.Node, env *Environment) {
	state := "running"
	if c.paused {
		state = "paused"
	}

	stack := make([]string, len(e.frames))
	for i, f := range e.frames {
		stack[i] = fmt.Sprintf("%s (line %d)", f.name, f.tok.Line)
	}

	variables := make(map[string]string)
	for scope := env; scope != nil; scope = scope.parent {
		for _, name := range scope.Names() {
			if strings.HasPrefix(name, "%") {
				continue
			}
			if _, seen := variables[name]; seen {
				continue
			}
			if value, ok := scope.Get(name); ok {
				variables[name] = value.Inspect()
			}
		}
	}

	c.status = Status{
		State:     state,
		Node:      describeNode(node),
		File:      e.CurrentFile,
		Line:      e.lastToken.Line,
		CallStack: stack,
		Variables: variables,
	}
}

func describeNode(node ast.Node) string {
	if node == nil {
		return ""
	}
	desc := fmt.Sprintf("%T", node)
	if tp, ok := node.(ast.TokenProvider); ok {
		if lex := tp.GetToken().Lexeme; lex != "" {
			desc += " " + lex
		}
	}
	return desc
}
