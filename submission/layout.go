package submission

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	PhoneticDir   = "phonetic"
	SubmissionDir = "submission"
	MetaFileName  = "meta.yaml"

	// ReprExt is the only representation format supported.
	ReprExt = ".txt"
)

// Subsets are the evaluation partitions every submission must provide.
var Subsets = []string{"dev-clean", "dev-other", "test-clean", "test-other"}

// Layouts lists, in lookup order, the directories below a submission root
// that may hold the phonetic tree and meta.yaml.
var Layouts = [][]string{
	{},
	{SubmissionDir},
}

type File struct {
	Name string // base name with extension
	Path string
}

func candidates(root string, rel ...string) []string {
	out := make([]string, 0, len(Layouts))
	for _, l := range Layouts {
		parts := append([]string{root}, l...)
		out = append(out, filepath.Join(append(parts, rel...)...))
	}
	return out
}

// ResolveSubset returns the directory of subset under root, trying every
// layout in order.
func ResolveSubset(root, subset string) (string, error) {
	tried := candidates(root, PhoneticDir, subset)
	for _, dir := range tried {
		if st, err := os.Stat(dir); err == nil && st.IsDir() {
			return dir, nil
		}
	}
	return "", &MissingSubsetError{Subset: subset, Tried: tried}
}

// FindMeta returns the path of meta.yaml under root.
func FindMeta(root string) (string, error) {
	for _, p := range candidates(root, MetaFileName) {
		if st, err := os.Stat(p); err == nil && st.Mode().IsRegular() {
			return p, nil
		}
	}
	return "", ErrMetaNotFound
}

// FindFiles walks dir and returns every regular file with extension ext,
// sorted by path.
func FindFiles(dir, ext string) ([]File, error) {
	var out []File
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ext) {
			return nil
		}
		out = append(out, File{Name: d.Name(), Path: path})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

func DirName(root string) string {
	return filepath.Base(filepath.Clean(root))
}
