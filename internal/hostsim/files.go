package hostsim

import (
	"os"
	"path/filepath"
	"sync"
)

// FileStore is a FileChecker the simulated installer can write to.
type FileStore interface {
	Exists(path string) bool
	Add(path string) error
}

// DirFiles resolves paths relative to a host root on the real filesystem.
type DirFiles struct {
	Root string
}

func (f DirFiles) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(f.Root, path)
}

func (f DirFiles) Exists(path string) bool {
	_, err := os.Stat(f.resolve(path))
	return err == nil
}

// Add creates an empty file at path unless one already exists.
func (f DirFiles) Add(path string) error {
	full := f.resolve(path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	file, err := os.OpenFile(full, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	return file.Close()
}

// MemFiles is an in-memory set of existing paths.
type MemFiles struct {
	mu    sync.RWMutex
	paths map[string]struct{}
}

func NewMemFiles(paths ...string) *MemFiles {
	f := &MemFiles{paths: make(map[string]struct{})}
	for _, p := range paths {
		_ = f.Add(p)
	}
	return f
}

func (f *MemFiles) Add(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paths[filepath.Clean(path)] = struct{}{}
	return nil
}

func (f *MemFiles) Exists(path string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.paths[filepath.Clean(path)]
	return ok
}
