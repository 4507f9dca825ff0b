package submission

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Meta is the subset of meta.yaml fields worth reporting. Unknown keys are
// ignored; the file itself is always copied verbatim.
type Meta struct {
	Author      string         `yaml:"author"`
	Affiliation string         `yaml:"affiliation"`
	Description string         `yaml:"description"`
	OpenSource  bool           `yaml:"open_source"`
	TrainSet    string         `yaml:"train_set"`
	GPUBudget   float64        `yaml:"gpu_budget"`
	Parameters  map[string]any `yaml:"parameters"`
}

func ReadMeta(path string) (*Meta, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var m Meta
	if err := yaml.NewDecoder(f).Decode(&m); err != nil && err != io.EOF {
		return nil, fmt.Errorf("submission: decode %s: %w", path, err)
	}
	return &m, nil
}

// CopyFile copies src to dst byte for byte, creating dst's parent directories.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
