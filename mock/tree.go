package mock

import (
	"io"
	"sort"
)

// Tree is an in-memory file tree implementing both archive.TreeReader
// and archive.TreeWriter. Reading yields files in insertion order;
// NewTree sorts its input map for determinism.
type Tree struct {
	paths []string
	files map[string][]byte
	next  int
}

// NewTree creates a tree holding the given files, enumerated in sorted
// path order.
func NewTree(files map[string][]byte) *Tree {
	t := &Tree{files: make(map[string][]byte, len(files))}
	for path, data := range files {
		t.paths = append(t.paths, path)
		t.files[path] = data
	}
	sort.Strings(t.paths)
	return t
}

// Add appends a file to the enumeration order.
func (t *Tree) Add(path string, data []byte) {
	if _, ok := t.files[path]; !ok {
		t.paths = append(t.paths, path)
	}
	if t.files == nil {
		t.files = make(map[string][]byte)
	}
	t.files[path] = data
}

// Next implements archive.TreeReader.
func (t *Tree) Next() (string, io.ReadCloser, error) {
	if t.next >= len(t.paths) {
		return "", nil, io.EOF
	}
	path := t.paths[t.next]
	t.next++
	return path, NewFile(t.files[path], path), nil
}

// Size implements archive.TreeReader.
func (t *Tree) Size() int64 {
	var size int64
	for _, data := range t.files {
		size += int64(len(data))
	}
	return size
}

// Create implements archive.TreeWriter. The written file becomes
// visible in the tree once the returned writer is closed.
func (t *Tree) Create(path string) (io.WriteCloser, error) {
	return &treeFile{tree: t, path: path}, nil
}

// Paths returns the tree's file paths in enumeration order.
func (t *Tree) Paths() []string {
	return append([]string(nil), t.paths...)
}

// Get returns the contents of path and whether it exists.
func (t *Tree) Get(path string) ([]byte, bool) {
	data, ok := t.files[path]
	return data, ok
}

type treeFile struct {
	tree *Tree
	path string
	data []byte
}

func (f *treeFile) Write(p []byte) (int, error) {
	f.data = append(f.data, p...)
	return len(p), nil
}

func (f *treeFile) Close() error {
	f.tree.Add(f.path, f.data)
	return nil
}
