package evaluator

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestAwaitInAsyncFunction(t *testing.T) {
	wantNumber(t, mustEval(t, `
async function f() { return 5; }
await f();`), 5)
}

func TestAwaitNonPromisePassesThrough(t *testing.T) {
	wantNumber(t, mustEval(t, "async function f() { return await 7; } await f()"), 7)
}

func TestAsyncLoopAwaitsInOrder(t *testing.T) {
	wantString(t, mustEval(t, `
async function tenTimes(n) { return n * 10; }
async function collect() {
  const out = [];
  for (let i = 0; i < 3; i++) {
    out.push(await tenTimes(i));
  }
  return out;
}
"" + await collect();`), "0,10,20")
}

func TestAsyncFunctionReturnsPromise(t *testing.T) {
	result := mustEval(t, "async function f() { return 1; } f()")
	if _, ok := result.(*Promise); !ok {
		t.Fatalf("value is %s, want promise", result.Type())
	}
}

func TestAsyncRejectionBecomesThrow(t *testing.T) {
	wantString(t, mustEval(t, `
async function boom() { throw new Error("async fail"); }
let msg = "";
try { await boom(); } catch (e) { msg = e.message; }
msg;`), "async fail")
}

func TestUncaughtAsyncRejection(t *testing.T) {
	_, err := testEval(t, `
async function boom() { throw new Error("lost"); }
await boom();`)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "lost") {
		t.Errorf("error %q should carry the rejection message", err.Error())
	}
}

func TestPromiseConstructor(t *testing.T) {
	wantNumber(t, mustEval(t, `
const p = new Promise((resolve, reject) => { resolve(9); });
await p;`), 9)
	wantString(t, mustEval(t, `
const p = new Promise((resolve, reject) => { reject(new Error("no")); });
let msg = "";
try { await p; } catch (e) { msg = e.message; }
msg;`), "no")
}

func TestPromiseRequiresNew(t *testing.T) {
	if kind := evalKind(t, "Promise(() => {})"); kind != "TypeError" {
		t.Errorf("kind = %q, want TypeError", kind)
	}
}

func TestPromiseResolveReject(t *testing.T) {
	wantNumber(t, mustEval(t, "await Promise.resolve(3)"), 3)
	wantString(t, mustEval(t, `
let msg = "";
try { await Promise.reject(new Error("down")); } catch (e) { msg = e.message; }
msg;`), "down")
	// resolve of a promise does not nest.
	wantNumber(t, mustEval(t, "await Promise.resolve(Promise.resolve(4))"), 4)
}

func TestPromiseAll(t *testing.T) {
	wantString(t, mustEval(t, `
async function v(n) { return n; }
"" + await Promise.all([v(1), v(2), 3]);`), "1,2,3")

	wantString(t, mustEval(t, `
async function bad() { throw new Error("first failure"); }
let msg = "";
try { await Promise.all([Promise.resolve(1), bad()]); } catch (e) { msg = e.message; }
msg;`), "first failure")
}

func TestThenCatchChaining(t *testing.T) {
	wantNumber(t, mustEval(t, `
await Promise.resolve(2).then(n => n * 10).then(n => n + 1);`), 21)

	wantString(t, mustEval(t, `
await Promise.reject(new Error("nope")).catch(e => "caught " + e.message);`), "caught nope")
}

func TestFinallyCallbackRuns(t *testing.T) {
	wantString(t, mustEval(t, `
let log = "";
await Promise.resolve(1).finally(() => { log += "f"; });
log;`), "f")
}

func TestConcurrentStrands(t *testing.T) {
	// Two sleeping strands overlap rather than serialize.
	start := time.Now()
	wantString(t, mustEval(t, `
async function slow(tag) { await time.sleep(30); return tag; }
"" + await Promise.all([slow("a"), slow("b"), slow("c")]);`), "a,b,c")
	if elapsed := time.Since(start); elapsed > 80*time.Millisecond {
		t.Errorf("strands appear serialized: took %v", elapsed)
	}
}

func TestSleepResolves(t *testing.T) {
	start := time.Now()
	mustEval(t, "await time.sleep(10)")
	if time.Since(start) < 10*time.Millisecond {
		t.Error("sleep returned early")
	}
}

func TestAwaitOutsideAsyncPathFails(t *testing.T) {
	// The sync path rejects await; Execute only picks it when forced.
	program, pctx := parseForTest(t, "await 1")
	_ = pctx
	e := New()
	result := e.Eval(program, e.GlobalEnv)
	thrown, ok := result.(*ThrowSignal)
	if !ok {
		t.Fatalf("result is %T, want throw signal", result)
	}
	errObj, ok := thrown.Value.(*ErrorObject)
	if !ok || errObj.Kind != "SyntaxError" {
		t.Errorf("kind = %v, want SyntaxError", thrown.Value)
	}
}

func TestCancellationAbortsSleep(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	e := New()
	program, _ := parseForTest(t, "await time.sleep(10000)")
	_, err := e.Execute(program, nil, Options{Async: true, Context: ctx})
	if err == nil {
		t.Fatal("expected cancellation error")
	}
	if !strings.Contains(strings.ToLower(err.Error()), "abort") {
		t.Errorf("error %q should mention abort", err.Error())
	}
}

func TestAwaitCancellationKind(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pending := NewPromise()
	result := pending.Await(ctx)
	sig, ok := result.(*ThrowSignal)
	if !ok {
		t.Fatalf("Await on cancelled context = %T, want *ThrowSignal", result)
	}
	errObj, ok := sig.Value.(*ErrorObject)
	if !ok {
		t.Fatalf("signal carries %T, want *ErrorObject", sig.Value)
	}
	if errObj.Kind != "Aborted" {
		t.Errorf("kind = %q, want Aborted", errObj.Kind)
	}
}

func TestCancellationStopsLoops(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	e := New()
	program, _ := parseForTest(t, "while (true) {}")
	done := make(chan error, 1)
	go func() {
		_, err := e.Execute(program, nil, Options{Context: ctx})
		done <- err
	}()
	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected cancellation error")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop after cancellation")
	}
}
