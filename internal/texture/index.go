package texture

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Index maps lowercase image stems to filesystem paths. When two files
// share a stem, PNG beats TGA beats JPEG.
type Index struct {
	entries map[string]string // stem → full path
}

// BuildIndex scans dir and its subdirectories for images. A missing or
// empty dir gives an empty index.
func BuildIndex(dir string) *Index {
	idx := &Index{entries: make(map[string]string)}
	if dir == "" {
		return idx
	}

	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !Supported(path) {
			return nil
		}
		stem := stemOf(path)
		existing, exists := idx.entries[stem]
		if !exists || rank(path) < rank(existing) {
			idx.entries[stem] = path
		}
		return nil
	})
	return idx
}

func stemOf(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	base := filepath.Base(name)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}

func rank(path string) int {
	return extRank[strings.ToLower(filepath.Ext(path))]
}

// ResolvePath returns the filesystem path for an image name, or ("", false).
// Directory prefixes and extensions in name are ignored.
func (idx *Index) ResolvePath(name string) (string, bool) {
	path, ok := idx.entries[stemOf(name)]
	return path, ok
}

// Names returns the indexed stems in sorted order.
func (idx *Index) Names() []string {
	names := make([]string, 0, len(idx.entries))
	for k := range idx.entries {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of indexed images.
func (idx *Index) Len() int {
	return len(idx.entries)
}
