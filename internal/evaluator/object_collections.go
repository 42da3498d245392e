package evaluator

import (
	"strings"
)

type Array struct {
	Elements []Object
}

func (a *Array) Type() ObjectType { return ARRAY_OBJ }
func (a *Array) Inspect() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, el := range a.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(inspectNested(el))
	}
	sb.WriteString("]")
	return sb.String()
}

// PlainObject is the dialect's object value: ordered string-keyed
// properties. Class instances are plain objects too, carrying their
// class for method dispatch and instanceof checks, or, for `new` on a
// bare function, the constructing function.
type PlainObject struct {
	keys  []string
	props map[string]Object

	Class *Class
	Ctor  Object
}

func NewPlainObject() *PlainObject {
	return &PlainObject{props: make(map[string]Object)}
}

func (o *PlainObject) Type() ObjectType { return OBJECT_OBJ }

func (o *PlainObject) Inspect() string {
	var sb strings.Builder
	if o.Class != nil {
		sb.WriteString(o.Class.Name)
		sb.WriteString(" ")
	}
	if len(o.keys) == 0 {
		sb.WriteString("{}")
		return sb.String()
	}
	sb.WriteString("{ ")
	for i, k := range o.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(inspectNested(o.props[k]))
	}
	sb.WriteString(" }")
	return sb.String()
}

func (o *PlainObject) Get(name string) (Object, bool) {
	v, ok := o.props[name]
	return v, ok
}

func (o *PlainObject) Set(name string, value Object) {
	if _, ok := o.props[name]; !ok {
		o.keys = append(o.keys, name)
	}
	o.props[name] = value
}

func (o *PlainObject) Delete(name string) bool {
	if _, ok := o.props[name]; !ok {
		return false
	}
	delete(o.props, name)
	for i, k := range o.keys {
		if k == name {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

func (o *PlainObject) Has(name string) bool {
	_, ok := o.props[name]
	return ok
}

// Keys preserves insertion order.
func (o *PlainObject) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

func inspectNested(obj Object) string {
	if obj == nil {
		return "<empty>"
	}
	if s, ok := obj.(*String); ok {
		return "'" + s.Value + "'"
	}
	return obj.Inspect()
}
