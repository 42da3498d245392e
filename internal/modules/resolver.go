package modules

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/jotlang/jot/internal/config"
)

// Source is one resolved module: its code, the canonical path it was
// found under (the cache key), and optional resolver metadata.
type Source struct {
	Code string
	Path string
	Meta map[string]string
}

// Resolver locates module source text for import paths. A nil Source
// with a nil error means "not found"; implementations reserve errors
// for I/O-level failures.
type Resolver interface {
	Resolve(ctx context.Context, path, from string) (*Source, error)
	Exists(ctx context.Context, path, from string) (bool, error)
	List(ctx context.Context, prefix string) ([]string, error)
}

// FSResolver resolves module paths against the filesystem: relative
// paths against the importing file's directory, everything else
// against the configured search roots, probing the recognized source
// extensions when the path carries none.
type FSResolver struct {
	Roots []string
}

func NewFSResolver(roots ...string) *FSResolver {
	if len(roots) == 0 {
		roots = []string{"."}
	}
	return &FSResolver{Roots: roots}
}

func (r *FSResolver) Resolve(ctx context.Context, path, from string) (*Source, error) {
	resolved := r.locate(path, from)
	if resolved == "" {
		return nil, nil
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, err
	}
	return &Source{Code: string(data), Path: resolved}, nil
}

func (r *FSResolver) Exists(ctx context.Context, path, from string) (bool, error) {
	return r.locate(path, from) != "", nil
}

func (r *FSResolver) List(ctx context.Context, prefix string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, root := range r.Roots {
		_ = filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			if !isSourceFile(p) {
				return nil
			}
			rel, relErr := filepath.Rel(root, p)
			if relErr != nil {
				rel = p
			}
			rel = filepath.ToSlash(rel)
			if prefix != "" && !strings.HasPrefix(rel, prefix) {
				return nil
			}
			if !seen[rel] {
				seen[rel] = true
				out = append(out, rel)
			}
			return nil
		})
	}
	sort.Strings(out)
	return out, nil
}

func (r *FSResolver) locate(path, from string) string {
	var bases []string
	if strings.HasPrefix(path, "./") || strings.HasPrefix(path, "../") {
		if from != "" {
			bases = []string{filepath.Dir(from)}
		} else {
			bases = []string{"."}
		}
	} else if filepath.IsAbs(path) {
		bases = []string{""}
	} else {
		bases = r.Roots
	}

	for _, base := range bases {
		candidate := path
		if base != "" {
			candidate = filepath.Join(base, path)
		}
		if found := probeExtensions(candidate); found != "" {
			abs, err := filepath.Abs(found)
			if err != nil {
				return found
			}
			return abs
		}
	}
	return ""
}

// probeExtensions tries the path as given, then with each recognized
// source extension appended.
func probeExtensions(candidate string) string {
	if isSourceFile(candidate) && fileExists(candidate) {
		return candidate
	}
	for _, ext := range config.SourceFileExtensions {
		if fileExists(candidate + ext) {
			return candidate + ext
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// MemoryResolver serves modules from an in-memory map. Used by tests
// and embedders; Calls counts Resolve invocations per path so module
// memoization is observable.
type MemoryResolver struct {
	mu      sync.Mutex
	Modules map[string]string
	Calls   map[string]int
}

func NewMemoryResolver(modules map[string]string) *MemoryResolver {
	if modules == nil {
		modules = make(map[string]string)
	}
	return &MemoryResolver{Modules: modules, Calls: make(map[string]int)}
}

func (r *MemoryResolver) Resolve(ctx context.Context, path, from string) (*Source, error) {
	r.mu.Lock()
	r.Calls[path]++
	code, ok := r.Modules[path]
	r.mu.Unlock()
	if !ok {
		return nil, nil
	}
	return &Source{Code: code, Path: path}, nil
}

func (r *MemoryResolver) Exists(ctx context.Context, path, from string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.Modules[path]
	return ok, nil
}

func (r *MemoryResolver) List(ctx context.Context, prefix string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for path := range r.Modules {
		if strings.HasPrefix(path, prefix) {
			out = append(out, path)
		}
	}
	sort.Strings(out)
	return out, nil
}

// ResolveCount reports how many times path has been resolved.
func (r *MemoryResolver) ResolveCount(path string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Calls[path]
}
