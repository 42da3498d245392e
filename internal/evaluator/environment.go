package evaluator

import "sync"

// AssignStatus is the outcome of Environment.Assign.
type AssignStatus int

const (
	AssignOK AssignStatus = iota
	AssignConst
	AssignUnbound
)

// Environment is a mutable name table with a parent chain. Lookups
// walk outward; declarations always land in the receiver. Const
// bindings are tracked per scope and refuse reassignment. Access is
// mutex-guarded because async strands share closed-over scopes.
type Environment struct {
	mu     sync.RWMutex
	store  map[string]Object
	consts map[string]bool
	parent *Environment
}

func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object)}
}

// Extend returns a child scope whose lookups fall through to e.
func (e *Environment) Extend() *Environment {
	return &Environment{store: make(map[string]Object), parent: e}
}

// Root returns the outermost environment of the chain.
func (e *Environment) Root() *Environment {
	env := e
	for env.parent != nil {
		env = env.parent
	}
	return env
}

// Define introduces a new binding in this scope. Redeclaring a name
// already present in the same scope fails; shadowing an outer binding
// is fine.
func (e *Environment) Define(name string, value Object, isConst bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, exists := e.store[name]; exists {
		return false
	}
	e.store[name] = value
	if isConst {
		if e.consts == nil {
			e.consts = make(map[string]bool)
		}
		e.consts[name] = true
	}
	return true
}

// set writes without any declaration check. Used for call-frame
// internals (`this`, parameters already validated by the binder).
func (e *Environment) set(name string, value Object) {
	e.mu.Lock()
	e.store[name] = value
	e.mu.Unlock()
}

// Get resolves a name through the scope chain.
func (e *Environment) Get(name string) (Object, bool) {
	for env := e; env != nil; env = env.parent {
		env.mu.RLock()
		value, ok := env.store[name]
		env.mu.RUnlock()
		if ok {
			return value, true
		}
	}
	return nil, false
}

// Has reports whether name resolves anywhere in the chain.
func (e *Environment) Has(name string) bool {
	_, ok := e.Get(name)
	return ok
}

// HasLocal reports whether name is bound in this scope only.
func (e *Environment) HasLocal(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.store[name]
	return ok
}

// Assign updates the nearest existing binding. A const binding is
// never written; an entirely unbound name is reported so the caller
// can decide between implicit global definition and an error.
func (e *Environment) Assign(name string, value Object) AssignStatus {
	for env := e; env != nil; env = env.parent {
		env.mu.Lock()
		if _, ok := env.store[name]; ok {
			if env.consts[name] {
				env.mu.Unlock()
				return AssignConst
			}
			env.store[name] = value
			env.mu.Unlock()
			return AssignOK
		}
		env.mu.Unlock()
	}
	return AssignUnbound
}

// Names returns the bindings of this scope, without the parents.
func (e *Environment) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, 0, len(e.store))
	for name := range e.store {
		names = append(names, name)
	}
	return names
}
