package fs

import (
	"os"
	"os/exec"
	"path/filepath"
)

// System provides an abstraction over file system and host lookups.
// This allows for easy mocking in tests.
type System interface {
	// File operations
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	Remove(path string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error

	// Directory operations
	MkdirAll(path string, perm os.FileMode) error

	// Path predicates
	Exists(path string) bool
	IsDir(path string) bool

	// Path utilities
	Join(elem ...string) string
	Dir(path string) string

	// Host environment
	UserHomeDir() (string, error)
	Getenv(key string) string
	LookPath(name string) (string, error)
}

// RealSystem implements System using the real file system and process
// environment.
type RealSystem struct{}

// New returns a new RealSystem.
func New() *RealSystem {
	return &RealSystem{}
}

func (r *RealSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (r *RealSystem) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (r *RealSystem) Remove(path string) error {
	return os.Remove(path)
}

func (r *RealSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

func (r *RealSystem) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (r *RealSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (r *RealSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (r *RealSystem) IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func (r *RealSystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}

func (r *RealSystem) Dir(path string) string {
	return filepath.Dir(path)
}

func (r *RealSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (r *RealSystem) Getenv(key string) string {
	return os.Getenv(key)
}

func (r *RealSystem) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
