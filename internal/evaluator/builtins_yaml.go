package evaluator

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func yamlNamespace() *PlainObject {
	return namespace([]namespaceEntry{
		{name: "parse", fn: func(e *Evaluator, this Object, args []Object) Object {
			var root yaml.Node
			if err := yaml.Unmarshal([]byte(ToString(argAt(args, 0))), &root); err != nil {
				return syntaxErrorObj("yaml.parse: %s", err)
			}
			if len(root.Content) == 0 {
				return NULL
			}
			value, err := yamlNodeToValue(root.Content[0])
			if err != nil {
				return syntaxErrorObj("yaml.parse: %s", err)
			}
			return value
		}},
		{name: "stringify", fn: func(e *Evaluator, this Object, args []Object) Object {
			node, err := valueToYAMLNode(argAt(args, 0))
			if err != nil {
				return typeError("yaml.stringify: %s", err)
			}
			out, err := yaml.Marshal(node)
			if err != nil {
				return typeError("yaml.stringify: %s", err)
			}
			return &String{Value: string(out)}
		}},
	})
}

// yamlNodeToValue maps the yaml.v3 node tree onto Jot values; mapping
// key order is the document order.
func yamlNodeToValue(node *yaml.Node) (Object, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return yamlScalar(node), nil
	case yaml.SequenceNode:
		arr := &Array{Elements: make([]Object, 0, len(node.Content))}
		for _, item := range node.Content {
			value, err := yamlNodeToValue(item)
			if err != nil {
				return nil, err
			}
			arr.Elements = append(arr.Elements, value)
		}
		return arr, nil
	case yaml.MappingNode:
		obj := NewPlainObject()
		for i := 0; i+1 < len(node.Content); i += 2 {
			value, err := yamlNodeToValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj.Set(node.Content[i].Value, value)
		}
		return obj, nil
	case yaml.AliasNode:
		return yamlNodeToValue(node.Alias)
	}
	return nil, fmt.Errorf("unsupported node kind %d", node.Kind)
}

func yamlScalar(node *yaml.Node) Object {
	switch node.Tag {
	case "!!null":
		return NULL
	case "!!bool":
		return nativeBool(strings.EqualFold(node.Value, "true"))
	case "!!int", "!!float":
		if n, err := strconv.ParseFloat(node.Value, 64); err == nil {
			return &Number{Value: n}
		}
	}
	return &String{Value: node.Value}
}

func valueToYAMLNode(obj Object) (*yaml.Node, error) {
	switch v := obj.(type) {
	case *Null, *Undefined:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case *Boolean:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: ToString(v)}, nil
	case *Number:
		return &yaml.Node{Kind: yaml.ScalarNode, Value: FormatNumber(v.Value)}, nil
	case *String:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Value}, nil
	case *Array:
		node := &yaml.Node{Kind: yaml.SequenceNode}
		for _, el := range v.Elements {
			child, err := valueToYAMLNode(el)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case *PlainObject:
		node := &yaml.Node{Kind: yaml.MappingNode}
		for _, key := range v.Keys() {
			value, _ := v.Get(key)
			child, err := valueToYAMLNode(value)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, child)
		}
		return node, nil
	}
	return nil, fmt.Errorf("cannot serialize %s", describeValue(obj))
}
