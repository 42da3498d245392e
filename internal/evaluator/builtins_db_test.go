package evaluator

import (
	"fmt"
	"path/filepath"
	"testing"
)

func dbScript(path, rest string) string {
	return fmt.Sprintf(`
const conn = db.open(%q);
%s
`, path, rest)
}

func TestDBExecAndQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	wantString(t, mustEval(t, dbScript(path, `
conn.exec("CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT)");
conn.exec("INSERT INTO users (name) VALUES (?)", "ann");
conn.exec("INSERT INTO users (name) VALUES (?)", "bo");
const rows = conn.query("SELECT name FROM users ORDER BY id");
const names = rows.map(r => r.name);
conn.close();
"" + names;`)), "ann,bo")
}

func TestDBQueryTypes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.db")
	wantString(t, mustEval(t, dbScript(path, `
conn.exec("CREATE TABLE t (n INTEGER, f REAL, s TEXT, nothing TEXT)");
conn.exec("INSERT INTO t VALUES (?, ?, ?, NULL)", 7, 2.5, "txt");
const row = conn.query("SELECT * FROM t")[0];
conn.close();
typeof row.n + "," + row.n + "|" + row.f + "|" + row.s + "|" + (row.nothing === null);`)),
		"number,7|2.5|txt|true")
}

func TestDBExecReportsAffectedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "affected.db")
	wantNumber(t, mustEval(t, dbScript(path, `
conn.exec("CREATE TABLE t (n INTEGER)");
conn.exec("INSERT INTO t VALUES (1), (2), (3)");
const changed = conn.exec("UPDATE t SET n = 0 WHERE n > 1");
conn.close();
changed;`)), 2)
}

func TestDBBadSQL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.db")
	if kind := evalKind(t, dbScript(path, `conn.exec("NOT REAL SQL");`)); kind != "Error" {
		t.Errorf("kind = %q, want Error", kind)
	}
}
