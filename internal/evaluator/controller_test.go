package evaluator

import (
	"context"
	"io"
	"testing"
	"time"
)

func startControlled(t *testing.T, source string, ctrl *Controller) chan error {
	t.Helper()
	program, _ := parseForTest(t, source)
	e := New()
	e.Out = io.Discard
	done := make(chan error, 1)
	go func() {
		_, err := e.Execute(program, nil, Options{Controller: ctrl})
		done <- err
	}()
	return done
}

func TestPauseAndResume(t *testing.T) {
	ctrl := NewController()
	done := startControlled(t, `
let i = 0;
while (i < 2000000) { i++; }
i;`, ctrl)

	ctrl.Pause()
	time.Sleep(10 * time.Millisecond)

	select {
	case <-done:
		t.Fatal("program finished while paused")
	default:
	}
	if st := ctrl.Status(); st.State != "paused" {
		t.Errorf("state = %q, want paused", st.State)
	}

	ctrl.Resume()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run failed after resume: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("program did not finish after resume")
	}
}

func TestStatusSnapshotVariables(t *testing.T) {
	ctrl := NewController()
	done := startControlled(t, `
let counter = 0;
while (counter < 3000000) { counter++; }
counter;`, ctrl)

	ctrl.Pause()
	time.Sleep(20 * time.Millisecond)

	st := ctrl.Status()
	if _, ok := st.Variables["counter"]; !ok {
		t.Errorf("snapshot lacks counter: %v", st.Variables)
	}
	if st.Line == 0 {
		t.Error("snapshot has no line")
	}

	ctrl.Resume()
	<-done
}

func TestStatusCallStack(t *testing.T) {
	ctrl := NewController()
	done := startControlled(t, `
function inner() {
  let spin = 0;
  while (spin < 3000000) { spin++; }
  return spin;
}
function outer() { return inner(); }
outer();`, ctrl)

	ctrl.Pause()
	time.Sleep(20 * time.Millisecond)

	st := ctrl.Status()
	if len(st.CallStack) < 2 {
		t.Errorf("call stack = %v, want outer and inner frames", st.CallStack)
	}

	ctrl.Resume()
	<-done
}

func TestCancelWhilePaused(t *testing.T) {
	ctrl := NewController()
	ctx, cancel := context.WithCancel(context.Background())

	program, _ := parseForTest(t, "while (true) {}")
	e := New()
	done := make(chan error, 1)
	go func() {
		_, err := e.Execute(program, nil, Options{Controller: ctrl, Context: ctx})
		done <- err
	}()

	ctrl.Pause()
	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected abort error")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("paused strand ignored cancellation")
	}
}

func TestUncontrolledRunIsUnaffected(t *testing.T) {
	wantNumber(t, mustEval(t, "let i = 0; while (i < 1000) { i++; } i"), 1000)
}
