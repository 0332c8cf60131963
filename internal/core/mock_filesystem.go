package core

import (
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests.
// Paths are cleaned with filepath.ToSlash so tests can use forward slashes.
type MockFileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]bool

	// ReadFileErr, when set, is returned by every ReadFile call.
	ReadFileErr error
	// AppendErr, when set, is returned by every AppendFile call.
	AppendErr error
}

// NewMockFileSystem returns an empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files: make(map[string][]byte),
		dirs:  map[string]bool{"/": true},
	}
}

var _ FileSystem = (*MockFileSystem)(nil)

func mockKey(p string) string {
	return path.Clean(filepath.ToSlash(p))
}

// SetFile stores content at p and registers its parent directories.
func (m *MockFileSystem) SetFile(p string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := mockKey(p)
	m.files[key] = slices.Clone(content)
	for dir := path.Dir(key); ; dir = path.Dir(dir) {
		m.dirs[dir] = true
		if dir == "/" || dir == "." {
			break
		}
	}
}

// SetDir registers an empty directory.
func (m *MockFileSystem) SetDir(p string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[mockKey(p)] = true
}

// File returns the stored content at p.
func (m *MockFileSystem) File(p string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[mockKey(p)]
	return slices.Clone(data), ok
}

func (m *MockFileSystem) ReadFile(ctx context.Context, p string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.ReadFileErr != nil {
		return nil, m.ReadFileErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[mockKey(p)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	return slices.Clone(data), nil
}

func (m *MockFileSystem) Stat(ctx context.Context, p string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	key := mockKey(p)
	if data, ok := m.files[key]; ok {
		return mockFileInfo{name: path.Base(key), size: int64(len(data))}, nil
	}
	if m.dirs[key] {
		return mockFileInfo{name: path.Base(key), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
}

func (m *MockFileSystem) ReadDir(ctx context.Context, p string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	key := mockKey(p)
	if !m.dirs[key] {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}

	seen := map[string]bool{}
	var entries []os.DirEntry
	add := func(child string, info mockFileInfo) {
		if path.Dir(child) != key || child == key || seen[child] {
			return
		}
		seen[child] = true
		entries = append(entries, fs.FileInfoToDirEntry(info))
	}
	for name, data := range m.files {
		add(name, mockFileInfo{name: path.Base(name), size: int64(len(data))})
	}
	for name := range m.dirs {
		add(name, mockFileInfo{name: path.Base(name), dir: true})
	}
	slices.SortFunc(entries, func(a, b os.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return entries, nil
}

func (m *MockFileSystem) AppendFile(ctx context.Context, p string, data []byte, _ os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := mockKey(p)
	m.files[key] = append(m.files[key], data...)
	return nil
}

type mockFileInfo struct {
	name string
	size int64
	dir  bool
}

func (i mockFileInfo) Name() string { return i.name }
func (i mockFileInfo) Size() int64  { return i.size }
func (i mockFileInfo) Mode() os.FileMode {
	if i.dir {
		return fs.ModeDir | 0o755
	}
	return PermOwnerRWGroupR
}
func (i mockFileInfo) ModTime() time.Time { return time.Time{} }
func (i mockFileInfo) IsDir() bool        { return i.dir }
func (i mockFileInfo) Sys() any           { return nil }
