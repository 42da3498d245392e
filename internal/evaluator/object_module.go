package evaluator

// ModuleNamespace is the frozen view of another module's exports,
// produced by `import * as ns`. Writes to it are rejected by the
// member-assignment path.
type ModuleNamespace struct {
	Path    string
	exports *PlainObject
}

func NewModuleNamespace(path string) *ModuleNamespace {
	return &ModuleNamespace{Path: path, exports: NewPlainObject()}
}

func (m *ModuleNamespace) Type() ObjectType { return MODULE_OBJ }

func (m *ModuleNamespace) Inspect() string {
	return "[module " + m.Path + "]"
}

func (m *ModuleNamespace) Get(key string) (Object, bool) { return m.exports.Get(key) }
func (m *ModuleNamespace) Keys() []string                { return m.exports.Keys() }

// define is used only while constructing the namespace.
func (m *ModuleNamespace) define(key string, value Object) { m.exports.Set(key, value) }
