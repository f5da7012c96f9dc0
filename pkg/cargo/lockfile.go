package cargo

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cargodeps/pkg/deps"
	"github.com/matzehuels/cargodeps/pkg/errors"
)

const (
	manifestName = "Cargo.toml"
	lockName     = "Cargo.lock"
)

type lockFile struct {
	Version int           `toml:"version"`
	Package []lockPackage `toml:"package"`
}

type lockPackage struct {
	Name         string   `toml:"name"`
	Version      string   `toml:"version"`
	Source       string   `toml:"source"`
	Dependencies []string `toml:"dependencies"`
}

func (p lockPackage) id() string { return p.Name + " " + p.Version }

// Lockfile loads the graph from Cargo.toml and Cargo.lock without running
// cargo. Resolved packages carry no feature declarations.
type Lockfile struct {
	ManifestPath string // path to Cargo.toml
	LockPath     string // path to Cargo.lock; found by walking up from the manifest when empty
}

// NewLockfile creates an offline provider for the manifest at path. An
// empty path means ./Cargo.toml.
func NewLockfile(manifestPath string) *Lockfile {
	if manifestPath == "" {
		manifestPath = manifestName
	}
	return &Lockfile{ManifestPath: manifestPath}
}

func (l *Lockfile) Source() string { return lockName }

func (l *Lockfile) Graph(context.Context) (*deps.Graph, error) {
	root, err := readManifest(l.ManifestPath)
	if err != nil {
		return nil, err
	}

	lockPath := l.LockPath
	if lockPath == "" {
		lockPath, err = findLockfile(filepath.Dir(l.ManifestPath))
		if err != nil {
			return nil, err
		}
	}
	lock, err := readLockfile(lockPath)
	if err != nil {
		return nil, err
	}

	return lockGraph(root, lock), nil
}

// findLockfile walks up from dir; workspace members share the lockfile of
// the workspace root.
func findLockfile(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "resolve %s", dir)
	}
	for d := abs; ; d = filepath.Dir(d) {
		path := filepath.Join(d, lockName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		if parent := filepath.Dir(d); parent == d {
			break
		}
	}
	return "", errors.New(errors.ErrCodeFileNotFound, "no %s found above %s; run `cargo generate-lockfile`", lockName, abs)
}

func readLockfile(path string) (*lockFile, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "lockfile %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLockfile, err, "read lockfile %s", path)
	}
	return parseLockfile(data)
}

func parseLockfile(data []byte) (*lockFile, error) {
	var lock lockFile
	if err := toml.Unmarshal(data, &lock); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLockfile, err, "decode Cargo.lock")
	}
	return &lock, nil
}

// lockGraph combines the manifest's root package with the lockfile's
// resolved packages. A nil root yields a graph without a root.
func lockGraph(root *deps.Package, lock *lockFile) *deps.Graph {
	g := &deps.Graph{Packages: make([]deps.Package, 0, len(lock.Package))}
	for _, p := range lock.Package {
		g.Packages = append(g.Packages, deps.Package{ID: p.id(), Name: p.Name, Version: p.Version})
	}
	if root == nil {
		return g
	}

	root.ID = root.Name + " " + root.Version
	g.Root = root
	for _, p := range lock.Package {
		if p.Name == root.Name && p.Source == "" {
			g.Linked = linkedIDs(p.Dependencies, lock.Package)
			break
		}
	}
	return g
}

// linkedIDs converts lock dependency entries ("name", "name version" or
// "name version (source)") into package IDs. A bare name refers to the
// only package with that name.
func linkedIDs(entries []string, packages []lockPackage) []string {
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		fields := strings.Fields(entry)
		switch {
		case len(fields) >= 2:
			ids = append(ids, fields[0]+" "+fields[1])
		case len(fields) == 1:
			for _, p := range packages {
				if p.Name == fields[0] {
					ids = append(ids, p.id())
					break
				}
			}
		}
	}
	return ids
}
