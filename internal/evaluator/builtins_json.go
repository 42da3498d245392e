package evaluator

import (
	"encoding/json"
	"fmt"
	"strings"
)

func jsonNamespace() *PlainObject {
	return namespace([]namespaceEntry{
		{name: "parse", fn: func(e *Evaluator, this Object, args []Object) Object {
			dec := json.NewDecoder(strings.NewReader(ToString(argAt(args, 0))))
			dec.UseNumber()
			value, err := decodeJSONValue(dec)
			if err != nil {
				return syntaxErrorObj("JSON.parse: %s", err)
			}
			return value
		}},
		{name: "stringify", fn: func(e *Evaluator, this Object, args []Object) Object {
			indent := ""
			if arg := argAt(args, 2); arg != UNDEFINED {
				if n, ok := arg.(*Number); ok {
					indent = strings.Repeat(" ", toInt(n))
				} else {
					indent = ToString(arg)
				}
			}
			var sb strings.Builder
			if !encodeJSONValue(&sb, argAt(args, 0), indent, "") {
				return UNDEFINED
			}
			return &String{Value: sb.String()}
		}},
	})
}

// decodeJSONValue builds Jot values token by token so object key
// order survives the round trip; encoding/json's map decoding would
// lose it.
func decodeJSONValue(dec *json.Decoder) (Object, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeFromToken(dec, tok)
}

func decodeFromToken(dec *json.Decoder, tok json.Token) (Object, error) {
	switch t := tok.(type) {
	case nil:
		return NULL, nil
	case bool:
		return nativeBool(t), nil
	case string:
		return &String{Value: t}, nil
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return &Number{Value: n}, nil
	case json.Delim:
		switch t {
		case '[':
			arr := &Array{}
			for dec.More() {
				el, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				arr.Elements = append(arr.Elements, el)
			}
			if _, err := dec.Token(); err != nil { // closing ']'
				return nil, err
			}
			return arr, nil
		case '{':
			obj := NewPlainObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string")
				}
				value, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, value)
			}
			if _, err := dec.Token(); err != nil { // closing '}'
				return nil, err
			}
			return obj, nil
		}
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// encodeJSONValue writes obj as JSON. Functions and undefined are
// omitted, matching the dialect's stringify contract; the bool result
// reports whether anything was written.
func encodeJSONValue(sb *strings.Builder, obj Object, indent, prefix string) bool {
	switch v := obj.(type) {
	case *Undefined, *Function, *Builtin, *BoundMethod, *Class:
		return false
	case *Null:
		sb.WriteString("null")
	case *Boolean:
		if v.Value {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case *Number:
		sb.WriteString(FormatNumber(v.Value))
	case *String:
		quoted, _ := json.Marshal(v.Value)
		sb.Write(quoted)
	case *Array:
		encodeJSONArray(sb, v, indent, prefix)
	case *PlainObject:
		encodeJSONObject(sb, v, indent, prefix)
	case *ErrorObject:
		obj := NewPlainObject()
		name, _ := v.Get("name")
		message, _ := v.Get("message")
		obj.Set("name", name)
		obj.Set("message", message)
		encodeJSONObject(sb, obj, indent, prefix)
	default:
		quoted, _ := json.Marshal(ToString(obj))
		sb.Write(quoted)
	}
	return true
}

func encodeJSONArray(sb *strings.Builder, arr *Array, indent, prefix string) {
	if len(arr.Elements) == 0 {
		sb.WriteString("[]")
		return
	}
	inner := prefix + indent
	sb.WriteString("[")
	for i, el := range arr.Elements {
		if i > 0 {
			sb.WriteString(",")
		}
		writeIndent(sb, indent, inner)
		if !encodeJSONValue(sb, el, indent, inner) {
			sb.WriteString("null") // unserializable array entries become null
		}
	}
	writeIndent(sb, indent, prefix)
	sb.WriteString("]")
}

func encodeJSONObject(sb *strings.Builder, obj *PlainObject, indent, prefix string) {
	keys := obj.Keys()
	inner := prefix + indent
	sb.WriteString("{")
	wrote := false
	for _, key := range keys {
		value, _ := obj.Get(key)
		var valueText strings.Builder
		if !encodeJSONValue(&valueText, value, indent, inner) {
			continue // unserializable object entries are dropped
		}
		if wrote {
			sb.WriteString(",")
		}
		wrote = true
		writeIndent(sb, indent, inner)
		quoted, _ := json.Marshal(key)
		sb.Write(quoted)
		sb.WriteString(":")
		if indent != "" {
			sb.WriteString(" ")
		}
		sb.WriteString(valueText.String())
	}
	if wrote {
		writeIndent(sb, indent, prefix)
	}
	sb.WriteString("}")
}

func writeIndent(sb *strings.Builder, indent, prefix string) {
	if indent == "" {
		return
	}
	sb.WriteString("\n")
	sb.WriteString(prefix)
}
