package evaluator

import (
	"database/sql"
	"fmt"
	"math"

	_ "modernc.org/sqlite"
)

// dbNamespace exposes sqlite access: db.open(path) returns a handle
// object with exec/query/close methods bound to one connection pool.
func dbNamespace() *PlainObject {
	return namespace([]namespaceEntry{
		{name: "open", fn: func(e *Evaluator, this Object, args []Object) Object {
			path := ToString(argAt(args, 0))
			conn, err := sql.Open("sqlite", path)
			if err != nil {
				return newError("Error", "db.open: %s", err)
			}
			return dbHandle(conn, path)
		}},
	})
}

func dbHandle(conn *sql.DB, path string) *PlainObject {
	handle := NewPlainObject()
	handle.Set("path", &String{Value: path})
	handle.Set("exec", &Builtin{Name: "exec", Fn: func(e *Evaluator, this Object, args []Object) Object {
		result, err := conn.ExecContext(e.Ctx, ToString(argAt(args, 0)), sqlArgs(restArgs(args))...)
		if err != nil {
			return newError("Error", "db.exec: %s", err)
		}
		affected, _ := result.RowsAffected()
		lastID, _ := result.LastInsertId()
		out := NewPlainObject()
		out.Set("rowsAffected", &Number{Value: float64(affected)})
		out.Set("lastInsertId", &Number{Value: float64(lastID)})
		return out
	}})
	handle.Set("query", &Builtin{Name: "query", Fn: func(e *Evaluator, this Object, args []Object) Object {
		rows, err := conn.QueryContext(e.Ctx, ToString(argAt(args, 0)), sqlArgs(restArgs(args))...)
		if err != nil {
			return newError("Error", "db.query: %s", err)
		}
		defer rows.Close()
		out, err := scanRows(rows)
		if err != nil {
			return newError("Error", "db.query: %s", err)
		}
		return out
	}})
	handle.Set("close", &Builtin{Name: "close", Fn: func(e *Evaluator, this Object, args []Object) Object {
		if err := conn.Close(); err != nil {
			return newError("Error", "db.close: %s", err)
		}
		return UNDEFINED
	}})
	return handle
}

// restArgs drops the SQL text argument, leaving the bind parameters.
func restArgs(args []Object) []Object {
	if len(args) <= 1 {
		return nil
	}
	return args[1:]
}

// sqlArgs converts positional Jot arguments into driver values.
func sqlArgs(args []Object) []interface{} {
	out := make([]interface{}, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case *Number:
			if v.Value == math.Trunc(v.Value) && !math.IsInf(v.Value, 0) {
				out[i] = int64(v.Value)
				continue
			}
			out[i] = v.Value
		case *Boolean:
			out[i] = v.Value
		case *Null, *Undefined:
			out[i] = nil
		default:
			out[i] = ToString(arg)
		}
	}
	return out
}

// scanRows materializes a result set as an array of plain objects in
// column order.
func scanRows(rows *sql.Rows) (Object, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	result := &Array{}
	for rows.Next() {
		holders := make([]interface{}, len(columns))
		for i := range holders {
			holders[i] = new(interface{})
		}
		if err := rows.Scan(holders...); err != nil {
			return nil, err
		}
		record := NewPlainObject()
		for i, col := range columns {
			record.Set(col, sqlValueToObject(*holders[i].(*interface{})))
		}
		result.Elements = append(result.Elements, record)
	}
	return result, rows.Err()
}

func sqlValueToObject(value interface{}) Object {
	switch v := value.(type) {
	case nil:
		return NULL
	case int64:
		return &Number{Value: float64(v)}
	case float64:
		return &Number{Value: v}
	case bool:
		return nativeBool(v)
	case []byte:
		return &String{Value: string(v)}
	case string:
		return &String{Value: v}
	}
	return &String{Value: fmt.Sprintf("%v", value)}
}
