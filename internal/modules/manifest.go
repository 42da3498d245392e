package modules

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jotlang/jot/internal/config"
)

// Manifest is the optional jot.yaml project file: the entry point,
// module search roots, and import aliases.
type Manifest struct {
	Entry   string            `yaml:"entry"`
	Roots   []string          `yaml:"roots"`
	Aliases map[string]string `yaml:"aliases"`

	// Dir is where the manifest was found; relative roots resolve
	// against it.
	Dir string `yaml:"-"`
}

// LoadManifest reads jot.yaml from dir. A missing manifest is not an
// error; it returns (nil, nil).
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, config.ManifestFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	m.Dir = dir
	return &m, nil
}

// FindManifest walks from dir toward the filesystem root looking for a
// jot.yaml.
func FindManifest(dir string) (*Manifest, error) {
	for {
		m, err := LoadManifest(dir)
		if err != nil || m != nil {
			return m, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// ResolverRoots returns the module search roots as absolute paths,
// defaulting to the manifest's own directory.
func (m *Manifest) ResolverRoots() []string {
	if len(m.Roots) == 0 {
		return []string{m.Dir}
	}
	roots := make([]string, 0, len(m.Roots))
	for _, r := range m.Roots {
		if !filepath.IsAbs(r) {
			r = filepath.Join(m.Dir, r)
		}
		roots = append(roots, r)
	}
	return roots
}

// Rewrite applies the manifest's import aliases to a module path.
func (m *Manifest) Rewrite(path string) string {
	if alias, ok := m.Aliases[path]; ok {
		return alias
	}
	return path
}
