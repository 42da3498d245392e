package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testOpts() (Options, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return Options{
		Stdout:  &stdout,
		Stderr:  &stderr,
		Stdin:   strings.NewReader(""),
		NoColor: true,
	}, &stdout, &stderr
}

func TestRunSource(t *testing.T) {
	opts, stdout, _ := testOpts()
	code := RunSource(`console.log("hello from source");`, "inline.jot", opts)
	if code != ExitOK {
		t.Fatalf("exit = %d, want %d", code, ExitOK)
	}
	if got := stdout.String(); got != "hello from source\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestRunSourceSyntaxError(t *testing.T) {
	opts, _, stderr := testOpts()
	code := RunSource("let x = ;", "broken.jot", opts)
	if code != ExitSyntax {
		t.Fatalf("exit = %d, want %d", code, ExitSyntax)
	}
	if !strings.Contains(stderr.String(), "broken.jot") {
		t.Errorf("stderr %q should name the file", stderr.String())
	}
}

func TestRunSourceRuntimeError(t *testing.T) {
	opts, _, stderr := testOpts()
	code := RunSource(`throw new Error("script exploded");`, "boom.jot", opts)
	if code != ExitFailure {
		t.Fatalf("exit = %d, want %d", code, ExitFailure)
	}
	if !strings.Contains(stderr.String(), "script exploded") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "main.jot")
	if err := os.WriteFile(script, []byte(`console.log(1 + 2);`), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, stdout, _ := testOpts()
	if code := RunFile(script, opts); code != ExitOK {
		t.Fatalf("exit = %d, want %d", code, ExitOK)
	}
	if got := stdout.String(); got != "3\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestRunFileMissing(t *testing.T) {
	opts, _, stderr := testOpts()
	if code := RunFile(filepath.Join(t.TempDir(), "absent.jot"), opts); code != ExitUsage {
		t.Fatalf("exit = %d, want %d", code, ExitUsage)
	}
	if stderr.Len() == 0 {
		t.Error("expected an error message")
	}
}

func TestRunFileWithImports(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "util.jot"),
		[]byte("export function twice(n) { return n * 2; }"), 0o644); err != nil {
		t.Fatal(err)
	}
	main := filepath.Join(dir, "main.jot")
	if err := os.WriteFile(main,
		[]byte("import { twice } from \"./util\";\nconsole.log(twice(21));"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, stdout, _ := testOpts()
	if code := RunFile(main, opts); code != ExitOK {
		t.Fatalf("exit = %d, want %d", code, ExitOK)
	}
	if got := stdout.String(); got != "42\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestRunFileUsesManifestAliases(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"jot.yaml":     "roots:\n  - .\naliases:\n  \"@util\": lib/util\n",
		"lib/util.jot": "export const tag = \"aliased\";",
		"main.jot":     "import { tag } from \"@util\";\nconsole.log(tag);",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	opts, stdout, _ := testOpts()
	if code := RunFile(filepath.Join(dir, "main.jot"), opts); code != ExitOK {
		t.Fatalf("exit = %d, want %d", code, ExitOK)
	}
	if got := stdout.String(); got != "aliased\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestRunEvalPrintsResult(t *testing.T) {
	opts, stdout, _ := testOpts()
	opts.PrintResult = true
	if code := RunEval("6 * 7", opts); code != ExitOK {
		t.Fatalf("exit = %d, want %d", code, ExitOK)
	}
	if got := stdout.String(); got != "42\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestRunEvalSilentWithoutPrintFlag(t *testing.T) {
	opts, stdout, _ := testOpts()
	if code := RunEval("6 * 7", opts); code != ExitOK {
		t.Fatalf("exit = %d, want %d", code, ExitOK)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
}

func TestTimeoutAbortsRun(t *testing.T) {
	opts, _, stderr := testOpts()
	opts.Timeout = 50 * time.Millisecond

	done := make(chan int, 1)
	go func() { done <- RunSource("while (true) {}", "spin.jot", opts) }()
	select {
	case code := <-done:
		if code != ExitFailure {
			t.Fatalf("exit = %d, want %d", code, ExitFailure)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timeout did not stop the script")
	}
	if stderr.Len() == 0 {
		t.Error("expected an abort message")
	}
}

func TestAsyncScriptsRun(t *testing.T) {
	opts, stdout, _ := testOpts()
	code := RunSource(`
async function v(n) { return n; }
console.log("" + await Promise.all([v(1), v(2)]));`, "async.jot", opts)
	if code != ExitOK {
		t.Fatalf("exit = %d, want %d", code, ExitOK)
	}
	if got := stdout.String(); got != "1,2\n" {
		t.Errorf("stdout = %q", got)
	}
}
