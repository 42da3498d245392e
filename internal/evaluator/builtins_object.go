package evaluator

// objectNamespace is the Object global: introspection and merging over
// plain property objects.
func objectNamespace() *PlainObject {
	return namespace([]namespaceEntry{
		{name: "keys", fn: func(e *Evaluator, this Object, args []Object) Object {
			keys, sig := enumerableKeys(argAt(args, 0))
			if sig != nil {
				return sig
			}
			out := make([]Object, len(keys))
			for i, key := range keys {
				out[i] = &String{Value: key}
			}
			return &Array{Elements: out}
		}},
		{name: "values", fn: func(e *Evaluator, this Object, args []Object) Object {
			source := argAt(args, 0)
			keys, sig := enumerableKeys(source)
			if sig != nil {
				return sig
			}
			out := make([]Object, len(keys))
			for i, key := range keys {
				out[i] = propertyOf(source, key)
			}
			return &Array{Elements: out}
		}},
		{name: "entries", fn: func(e *Evaluator, this Object, args []Object) Object {
			source := argAt(args, 0)
			keys, sig := enumerableKeys(source)
			if sig != nil {
				return sig
			}
			out := make([]Object, len(keys))
			for i, key := range keys {
				out[i] = &Array{Elements: []Object{&String{Value: key}, propertyOf(source, key)}}
			}
			return &Array{Elements: out}
		}},
		{name: "fromEntries", fn: func(e *Evaluator, this Object, args []Object) Object {
			entries, ok := iterableElements(argAt(args, 0))
			if !ok {
				return newError("NotIterable", "Object.fromEntries source is not iterable")
			}
			obj := NewPlainObject()
			for _, entry := range entries {
				pair, ok := entry.(*Array)
				if !ok || len(pair.Elements) < 1 {
					return typeError("Object.fromEntries entry is not a [key, value] pair")
				}
				value := Object(UNDEFINED)
				if len(pair.Elements) > 1 {
					value = pair.Elements[1]
				}
				obj.Set(ToString(pair.Elements[0]), value)
			}
			return obj
		}},
		{name: "assign", fn: func(e *Evaluator, this Object, args []Object) Object {
			if len(args) == 0 {
				return typeError("Object.assign requires a target")
			}
			target, ok := args[0].(*PlainObject)
			if !ok {
				return typeError("Object.assign target must be an object")
			}
			for _, source := range args[1:] {
				if sig := spreadInto(target, source); sig != nil {
					return sig
				}
			}
			return target
		}},
	})
}

func arrayNamespace() *PlainObject {
	return namespace([]namespaceEntry{
		{name: "isArray", fn: func(e *Evaluator, this Object, args []Object) Object {
			_, ok := argAt(args, 0).(*Array)
			return nativeBool(ok)
		}},
		{name: "of", fn: func(e *Evaluator, this Object, args []Object) Object {
			return &Array{Elements: append([]Object(nil), args...)}
		}},
		{name: "from", fn: func(e *Evaluator, this Object, args []Object) Object {
			elements, ok := iterableElements(argAt(args, 0))
			if !ok {
				return newError("NotIterable", "Array.from source is not iterable")
			}
			out := append([]Object(nil), elements...)
			if mapper := argAt(args, 1); mapper != UNDEFINED {
				for i, el := range out {
					mapped := e.Apply(mapper, UNDEFINED, []Object{el, &Number{Value: float64(i)}})
					if isSignal(mapped) {
						return mapped
					}
					out[i] = mapped
				}
			}
			return &Array{Elements: out}
		}},
	})
}
