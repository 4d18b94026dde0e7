package archive

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTestTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for path, data := range files {
		full := filepath.Join(root, filepath.FromSlash(path))
		assert.Nil(t, os.MkdirAll(filepath.Dir(full), 0o755))
		assert.Nil(t, os.WriteFile(full, []byte(data), 0o644))
	}
}

func TestDirReader(t *testing.T) {
	t.Run("depth_first_sorted_walk", func(t *testing.T) {
		root := t.TempDir()
		writeTestTree(t, root, map[string]string{
			"b.txt":     "top",
			"a/one.txt": "1",
			"a/two.txt": "2",
			"a/z/deep":  "d",
		})

		tree, err := NewDirReader(root)
		assert.Nil(t, err)
		assert.Equal(t, int64(6), tree.Size())

		var order []string
		for {
			path, rc, err := tree.Next()
			if err == io.EOF {
				break
			}
			assert.Nil(t, err)
			order = append(order, path)
			assert.Nil(t, rc.Close())
		}
		assert.Equal(t, []string{"a/one.txt", "a/two.txt", "a/z/deep", "b.txt"}, order)
	})

	t.Run("empty_directories_skipped", func(t *testing.T) {
		root := t.TempDir()
		assert.Nil(t, os.MkdirAll(filepath.Join(root, "empty/nested"), 0o755))

		tree, err := NewDirReader(root)
		assert.Nil(t, err)
		_, _, err = tree.Next()
		assert.Equal(t, io.EOF, err)
	})

	t.Run("missing_root", func(t *testing.T) {
		_, err := NewDirReader(filepath.Join(t.TempDir(), "absent"))
		assert.NotNil(t, err)
	})
}

func TestDirWriter(t *testing.T) {
	t.Run("creates_parents", func(t *testing.T) {
		root := t.TempDir()
		w := NewDirWriter(root)

		f, err := w.Create("deep/ly/nested.txt")
		assert.Nil(t, err)
		_, err = f.Write([]byte("contents"))
		assert.Nil(t, err)
		assert.Nil(t, f.Close())

		data, err := os.ReadFile(filepath.Join(root, "deep", "ly", "nested.txt"))
		assert.Nil(t, err)
		assert.Equal(t, []byte("contents"), data)
	})
}

func TestDirRoundTrip(t *testing.T) {
	t.Run("encode_decode_tree_on_disk", func(t *testing.T) {
		src := t.TempDir()
		writeTestTree(t, src, map[string]string{
			"a/x.txt":  "hi",
			"b/y.bin":  string(bytes.Repeat([]byte{0xaa}, 1024)),
			"root.txt": "top level",
		})

		tree, err := NewDirReader(src)
		assert.Nil(t, err)

		var archived bytes.Buffer
		assert.Nil(t, NewWriter(testCipher("pw")).EncodeTree(tree, &archived))

		out := t.TempDir()
		assert.Nil(t, NewReader(testCipher("pw")).DecodeTree(&archived, NewDirWriter(out)))

		for path, want := range map[string]string{
			"a/x.txt":  "hi",
			"b/y.bin":  string(bytes.Repeat([]byte{0xaa}, 1024)),
			"root.txt": "top level",
		} {
			data, err := os.ReadFile(filepath.Join(out, filepath.FromSlash(path)))
			assert.Nil(t, err)
			assert.Equal(t, want, string(data))
		}
	})
}
