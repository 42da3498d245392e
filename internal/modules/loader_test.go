package modules

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func countingEval(n *atomic.Int32) EvalFunc {
	return func(src *Source) (*ExportTable, error) {
		n.Add(1)
		t := NewExportTable()
		t.Set("path", src.Path)
		return t, nil
	}
}

func TestLoadCachesByPath(t *testing.T) {
	resolver := NewMemoryResolver(map[string]string{"util": "code"})
	loader := NewLoader(resolver)
	ctx := context.Background()

	var evals atomic.Int32
	first, err := loader.Load(ctx, "util", "a.jot", countingEval(&evals))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	second, err := loader.Load(ctx, "util", "b.jot", countingEval(&evals))
	if err != nil {
		t.Fatalf("second load failed: %v", err)
	}
	if first != second {
		t.Error("loads returned distinct records")
	}
	if evals.Load() != 1 {
		t.Errorf("module evaluated %d times, want 1", evals.Load())
	}
}

func TestResolveMemoization(t *testing.T) {
	resolver := NewMemoryResolver(map[string]string{"util": "code"})
	loader := NewLoader(resolver)
	ctx := context.Background()

	var evals atomic.Int32
	for i := 0; i < 3; i++ {
		if _, err := loader.Load(ctx, "util", "main.jot", countingEval(&evals)); err != nil {
			t.Fatalf("load %d failed: %v", i, err)
		}
	}
	if got := resolver.ResolveCount("util"); got != 1 {
		t.Errorf("resolved %d times for one importer, want 1", got)
	}
}

func TestResolvePathThenLoadResolvesOnce(t *testing.T) {
	resolver := NewMemoryResolver(map[string]string{"util": "code"})
	loader := NewLoader(resolver)
	ctx := context.Background()

	path, err := loader.ResolvePath(ctx, "util", "main.jot")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if path != "util" {
		t.Errorf("path = %q, want util", path)
	}

	var evals atomic.Int32
	if _, err := loader.Load(ctx, "util", "main.jot", countingEval(&evals)); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got := resolver.ResolveCount("util"); got != 1 {
		t.Errorf("resolved %d times, want 1", got)
	}
}

func TestMissingModule(t *testing.T) {
	loader := NewLoader(NewMemoryResolver(nil))
	_, err := loader.Load(context.Background(), "ghost", "main.jot", countingEval(new(atomic.Int32)))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestEvalErrorIsNotCached(t *testing.T) {
	resolver := NewMemoryResolver(map[string]string{"flaky": "code"})
	loader := NewLoader(resolver)
	ctx := context.Background()

	attempts := 0
	eval := func(src *Source) (*ExportTable, error) {
		attempts++
		if attempts == 1 {
			return nil, fmt.Errorf("transient failure")
		}
		return NewExportTable(), nil
	}

	if _, err := loader.Load(ctx, "flaky", "main.jot", eval); err == nil {
		t.Fatal("first load should fail")
	}
	if _, err := loader.Load(ctx, "flaky", "main.jot", eval); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}

func TestConcurrentLoadEvaluatesOnce(t *testing.T) {
	resolver := NewMemoryResolver(map[string]string{"shared": "code"})
	loader := NewLoader(resolver)
	ctx := context.Background()

	var evals atomic.Int32
	slowEval := func(src *Source) (*ExportTable, error) {
		evals.Add(1)
		time.Sleep(20 * time.Millisecond)
		return NewExportTable(), nil
	}

	var wg sync.WaitGroup
	records := make([]*Record, 8)
	for i := range records {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec, err := loader.Load(ctx, "shared", fmt.Sprintf("s%d.jot", i), slowEval)
			if err != nil {
				t.Errorf("load %d failed: %v", i, err)
				return
			}
			records[i] = rec
		}(i)
	}
	wg.Wait()

	if evals.Load() != 1 {
		t.Errorf("module evaluated %d times under concurrency, want 1", evals.Load())
	}
	for i := 1; i < len(records); i++ {
		if records[i] != records[0] {
			t.Fatal("concurrent loads returned distinct records")
		}
	}
}

func TestLoadHonorsContextWhileWaiting(t *testing.T) {
	resolver := NewMemoryResolver(map[string]string{"slow": "code"})
	loader := NewLoader(resolver)

	started := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_, _ = loader.Load(context.Background(), "slow", "a.jot", func(src *Source) (*ExportTable, error) {
			close(started)
			<-release
			return NewExportTable(), nil
		})
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := loader.Load(ctx, "slow", "b.jot", countingEval(new(atomic.Int32)))
	if err == nil {
		t.Fatal("waiter should fail once its context expires")
	}
	close(release)
}

func TestExportTableOrder(t *testing.T) {
	table := NewExportTable()
	table.Set("z", 1)
	table.Set("a", 2)
	table.Set("z", 3) // overwrite keeps original position

	keys := table.Keys()
	if len(keys) != 2 || keys[0] != "z" || keys[1] != "a" {
		t.Errorf("keys = %v, want [z a]", keys)
	}
	v, ok := table.Get("z")
	if !ok || v.(int) != 3 {
		t.Errorf("z = %v, want 3", v)
	}
	if table.Len() != 2 {
		t.Errorf("len = %d, want 2", table.Len())
	}
}

func TestCached(t *testing.T) {
	resolver := NewMemoryResolver(map[string]string{"m": "code"})
	loader := NewLoader(resolver)
	if _, ok := loader.Cached("m"); ok {
		t.Fatal("nothing should be cached yet")
	}
	if _, err := loader.Load(context.Background(), "m", "main.jot", countingEval(new(atomic.Int32))); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if _, ok := loader.Cached("m"); !ok {
		t.Fatal("record should be cached after load")
	}
}
