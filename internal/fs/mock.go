package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MockSystem implements System for testing purposes.
type MockSystem struct {
	Files    map[string][]byte
	Dirs     map[string]bool
	Env      map[string]string
	Commands map[string]string // command name -> resolved path
	HomeDir  string

	// WriteErr, when set, is returned by WriteFile for matching paths.
	WriteErr map[string]error
}

// NewMock returns a new MockSystem.
func NewMock() *MockSystem {
	return &MockSystem{
		Files:    make(map[string][]byte),
		Dirs:     make(map[string]bool),
		Env:      make(map[string]string),
		Commands: make(map[string]string),
		WriteErr: make(map[string]error),
		HomeDir:  "/home/test",
	}
}

func (m *MockSystem) ReadFile(path string) ([]byte, error) {
	path = m.normalizePath(path)
	if data, ok := m.Files[path]; ok {
		return data, nil
	}
	return nil, os.ErrNotExist
}

func (m *MockSystem) WriteFile(path string, data []byte, _ os.FileMode) error {
	path = m.normalizePath(path)
	if err, ok := m.WriteErr[path]; ok {
		return err
	}
	m.Files[path] = data
	return nil
}

func (m *MockSystem) Remove(path string) error {
	path = m.normalizePath(path)
	delete(m.Files, path)
	delete(m.Dirs, path)
	return nil
}

func (m *MockSystem) RemoveAll(path string) error {
	path = m.normalizePath(path)
	delete(m.Files, path)
	delete(m.Dirs, path)

	prefix := path + "/"
	for k := range m.Files {
		if strings.HasPrefix(k, prefix) {
			delete(m.Files, k)
		}
	}
	for k := range m.Dirs {
		if strings.HasPrefix(k, prefix) {
			delete(m.Dirs, k)
		}
	}
	return nil
}

func (m *MockSystem) Rename(oldpath, newpath string) error {
	oldpath = m.normalizePath(oldpath)
	newpath = m.normalizePath(newpath)

	if data, ok := m.Files[oldpath]; ok {
		m.Files[newpath] = data
		delete(m.Files, oldpath)
		return nil
	}
	if m.Dirs[oldpath] {
		m.Dirs[newpath] = true
		delete(m.Dirs, oldpath)
		return nil
	}
	return os.ErrNotExist
}

func (m *MockSystem) MkdirAll(path string, _ os.FileMode) error {
	path = m.normalizePath(path)
	m.Dirs[path] = true

	// Also create parent directories
	parts := strings.Split(path, "/")
	for i := 1; i < len(parts); i++ {
		parent := strings.Join(parts[:i+1], "/")
		if parent != "" {
			m.Dirs[parent] = true
		}
	}
	return nil
}

func (m *MockSystem) Exists(path string) bool {
	path = m.normalizePath(path)
	if _, ok := m.Files[path]; ok {
		return true
	}
	return m.Dirs[path]
}

func (m *MockSystem) IsDir(path string) bool {
	path = m.normalizePath(path)
	return m.Dirs[path]
}

func (m *MockSystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}

func (m *MockSystem) Dir(path string) string {
	return filepath.Dir(path)
}

func (m *MockSystem) UserHomeDir() (string, error) {
	return m.HomeDir, nil
}

func (m *MockSystem) Getenv(key string) string {
	return m.Env[key]
}

func (m *MockSystem) LookPath(name string) (string, error) {
	if path, ok := m.Commands[name]; ok {
		return path, nil
	}
	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
}

func (m *MockSystem) normalizePath(path string) string {
	// Replace ~ with home directory
	if strings.HasPrefix(path, "~") {
		path = m.HomeDir + path[1:]
	}
	return filepath.Clean(path)
}
