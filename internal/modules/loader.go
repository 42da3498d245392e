package modules

import (
	"context"
	"fmt"
	"sync"
)

// ExportTable is a module's ordered name→value export map. Values are
// untyped here so this package stays free of evaluator types; the
// evaluator is the only writer and reader.
type ExportTable struct {
	keys   []string
	values map[string]interface{}
}

func NewExportTable() *ExportTable {
	return &ExportTable{values: make(map[string]interface{})}
}

func (t *ExportTable) Set(name string, value interface{}) {
	if _, ok := t.values[name]; !ok {
		t.keys = append(t.keys, name)
	}
	t.values[name] = value
}

func (t *ExportTable) Get(name string) (interface{}, bool) {
	v, ok := t.values[name]
	return v, ok
}

func (t *ExportTable) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

func (t *ExportTable) Len() int { return len(t.keys) }

// Record is one loaded module: its canonical path and export table,
// created at most once per path per loader.
type Record struct {
	Path    string
	Exports *ExportTable
}

// EvalFunc parses and evaluates one resolved source, returning its
// export table. Supplied by the evaluator so the loader stays free of
// evaluation concerns.
type EvalFunc func(src *Source) (*ExportTable, error)

type inflight struct {
	done chan struct{}
	rec  *Record
	err  error
}

// Loader resolves, evaluates and caches modules for one evaluation
// session. The cache is keyed by the resolver's canonical path and
// guarantees at-most-one resolve-and-evaluate per distinct path, also
// when imports interleave across suspended strands: a second importer
// of an in-flight path blocks on the first evaluation instead of
// starting its own.
type Loader struct {
	Resolver Resolver

	mu       sync.Mutex
	cache    map[string]*Record
	pending  map[string]*inflight
	resolved map[string]string  // (from, spec) → canonical path
	sources  map[string]*Source // canonical path → pre-resolved source
}

func NewLoader(resolver Resolver) *Loader {
	return &Loader{
		Resolver: resolver,
		cache:    make(map[string]*Record),
		pending:  make(map[string]*inflight),
		resolved: make(map[string]string),
		sources:  make(map[string]*Source),
	}
}

// ResolvePath maps an import specifier to its canonical path without
// evaluating, caching the source so a following Load does not resolve
// twice. Callers use it to detect import cycles before Load would
// block on the in-flight entry.
func (l *Loader) ResolvePath(ctx context.Context, spec, from string) (string, error) {
	aliasKey := from + "\x00" + spec

	l.mu.Lock()
	if path, ok := l.resolved[aliasKey]; ok {
		l.mu.Unlock()
		return path, nil
	}
	l.mu.Unlock()

	src, err := l.Resolver.Resolve(ctx, spec, from)
	if err != nil {
		return "", fmt.Errorf("resolving module %q: %w", spec, err)
	}
	if src == nil {
		return "", fmt.Errorf("module not found: %q", spec)
	}

	l.mu.Lock()
	l.resolved[aliasKey] = src.Path
	l.sources[src.Path] = src
	l.mu.Unlock()
	return src.Path, nil
}

// Load returns the module record for spec imported from `from`,
// resolving and evaluating it on first use.
func (l *Loader) Load(ctx context.Context, spec, from string, eval EvalFunc) (*Record, error) {
	aliasKey := from + "\x00" + spec

	l.mu.Lock()
	var src *Source
	if path, ok := l.resolved[aliasKey]; ok {
		if rec, ok := l.cache[path]; ok {
			l.mu.Unlock()
			return rec, nil
		}
		src = l.sources[path]
	}
	l.mu.Unlock()

	if src == nil {
		var err error
		src, err = l.Resolver.Resolve(ctx, spec, from)
		if err != nil {
			return nil, fmt.Errorf("resolving module %q: %w", spec, err)
		}
		if src == nil {
			return nil, fmt.Errorf("module not found: %q", spec)
		}
	}

	l.mu.Lock()
	l.resolved[aliasKey] = src.Path
	l.sources[src.Path] = src
	if rec, ok := l.cache[src.Path]; ok {
		l.mu.Unlock()
		return rec, nil
	}
	if fl, ok := l.pending[src.Path]; ok {
		l.mu.Unlock()
		select {
		case <-fl.done:
			return fl.rec, fl.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	fl := &inflight{done: make(chan struct{})}
	l.pending[src.Path] = fl
	l.mu.Unlock()

	exports, err := eval(src)
	if err != nil {
		fl.err = fmt.Errorf("evaluating module %q: %w", src.Path, err)
	} else {
		fl.rec = &Record{Path: src.Path, Exports: exports}
	}

	l.mu.Lock()
	if fl.rec != nil {
		l.cache[src.Path] = fl.rec
	}
	delete(l.pending, src.Path)
	l.mu.Unlock()
	close(fl.done)

	return fl.rec, fl.err
}

// Cached returns the already-loaded record for a canonical path.
func (l *Loader) Cached(path string) (*Record, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, ok := l.cache[path]
	return rec, ok
}
