package evaluator

import "github.com/google/uuid"

func cryptoNamespace() *PlainObject {
	return namespace([]namespaceEntry{
		{name: "randomUUID", fn: func(e *Evaluator, this Object, args []Object) Object {
			return &String{Value: uuid.NewString()}
		}},
	})
}
