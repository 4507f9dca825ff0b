package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maastricht-university/zerospeech-convolution/config"
	"github.com/maastricht-university/zerospeech-convolution/convolution"
)

// chdir moves into an empty directory so no candidate config file is found.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "running_mean", cfg.Type)
	assert.Equal(t, 3, cfg.Window)
	assert.False(t, cfg.MaxSharpen)
	assert.True(t, cfg.CopyMeta)
	assert.Equal(t, 1, cfg.Workers)
	assert.False(t, cfg.AppendOutput)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_CandidateFileAndEnv(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config", "dev"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "dev", "config.yaml"), []byte(
		"convolution_type: laplacian\nmax_sharpen: true\nworkers: 2\n"), 0o644))
	t.Setenv("CONVGEN_WORKERS", "8")

	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "laplacian", cfg.Type)
	assert.True(t, cfg.MaxSharpen)
	assert.Equal(t, 8, cfg.Workers, "env overrides file")
}

func TestLoad_ExplicitFileAndOverride(t *testing.T) {
	dir := chdir(t)
	file := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte("window_s_running_mean: 9\ncopy_meta: false\n"), 0o644))

	v := viper.New()
	v.Set(config.KeyWindow, 5)
	cfg, err := config.Load(v, file)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Window, "explicit set overrides file")
	assert.False(t, cfg.CopyMeta)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	chdir(t)
	_, err := config.Load(viper.New(), "does-not-exist.yaml")
	assert.Error(t, err)
}

func TestRoot_FilterSpec(t *testing.T) {
	r := &config.Root{Type: "blur_then_sharpen", Window: 5, MaxSharpen: true}
	s, err := r.FilterSpec()
	require.NoError(t, err)
	assert.Equal(t, convolution.Spec{Kind: convolution.BlurThenSharpen, Window: 5, MaxSharpen: true}, s)

	r.Window = 4
	_, err = r.FilterSpec()
	assert.ErrorIs(t, err, convolution.ErrEvenWindow)

	r.Type = "median"
	_, err = r.FilterSpec()
	assert.ErrorIs(t, err, convolution.ErrUnknownKind)
}

func TestRoot_Validate(t *testing.T) {
	ok := config.Root{SubmissionPath: "in", OutputPath: "out", Type: "running_mean", Window: 3, Workers: 1}
	assert.NoError(t, ok.Validate())

	cases := map[string]func(r *config.Root){
		"no submission": func(r *config.Root) { r.SubmissionPath = "" },
		"no output":     func(r *config.Root) { r.OutputPath = "" },
		"no workers":    func(r *config.Root) { r.Workers = 0 },
		"even window":   func(r *config.Root) { r.Window = 2 },
	}
	for name, mutate := range cases {
		r := ok
		mutate(&r)
		assert.ErrorIs(t, r.Validate(), convolution.ErrConfiguration, name)
	}
}
