package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/maastricht-university/zerospeech-convolution/convolution"
)

// Keys shared by flags, environment variables and config files.
const (
	KeySubmission = "original_submission_path"
	KeyOutput     = "output_path"
	KeyType       = "convolution_type"
	KeyWindow     = "window_s_running_mean"
	KeyMaxSharpen = "max_sharpen"
	KeyCopyMeta   = "copy_meta"
	KeyWorkers    = "workers"
	KeyAppend     = "append_output"
	KeyLogLevel   = "log_level"
	KeyLogFormat  = "log_format"
)

// EnvPrefix prefixes every environment override, e.g. CONVGEN_WORKERS.
const EnvPrefix = "CONVGEN"

type Root struct {
	SubmissionPath string `mapstructure:"original_submission_path"`
	OutputPath     string `mapstructure:"output_path"`
	Type           string `mapstructure:"convolution_type"`
	Window         int    `mapstructure:"window_s_running_mean"`
	MaxSharpen     bool   `mapstructure:"max_sharpen"`
	CopyMeta       bool   `mapstructure:"copy_meta"`
	Workers        int    `mapstructure:"workers"`
	AppendOutput   bool   `mapstructure:"append_output"`
	LogLevel       string `mapstructure:"log_level"`
	LogFormat      string `mapstructure:"log_format"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyType, convolution.RunningMean.String())
	v.SetDefault(KeyWindow, 3)
	v.SetDefault(KeyMaxSharpen, false)
	v.SetDefault(KeyCopyMeta, true)
	v.SetDefault(KeyWorkers, 1)
	v.SetDefault(KeyAppend, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeySubmission, "")
	v.SetDefault(KeyOutput, "")
}

// candidates are the config files tried when none is given explicitly.
func candidates() []string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = "dev"
	}
	return []string{
		filepath.Join("config", env, "config.yaml"),
		"convgen.yaml",
	}
}

// Load merges defaults, an optional YAML config file, CONVGEN_* environment
// variables and whatever v already carries (bound flags, explicit Set calls).
// An explicit file must exist; otherwise the first existing candidate is used
// and none at all is fine.
func Load(v *viper.Viper, file string) (*Root, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file == "" {
		for _, p := range candidates() {
			if st, err := os.Stat(p); err == nil && !st.IsDir() {
				file = p
				break
			}
		}
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (r *Root) FilterSpec() (convolution.Spec, error) {
	kind, err := convolution.ParseKind(r.Type)
	if err != nil {
		return convolution.Spec{}, err
	}
	return convolution.NewSpec(kind, r.Window, r.MaxSharpen)
}

// Validate checks everything a run needs besides the filter itself.
func (r *Root) Validate() error {
	if r.SubmissionPath == "" {
		return fmt.Errorf("%w: %s is required", convolution.ErrConfiguration, KeySubmission)
	}
	if r.OutputPath == "" {
		return fmt.Errorf("%w: %s is required", convolution.ErrConfiguration, KeyOutput)
	}
	if r.Workers < 1 {
		return fmt.Errorf("%w: %s must be at least 1, got %d", convolution.ErrConfiguration, KeyWorkers, r.Workers)
	}
	_, err := r.FilterSpec()
	return err
}
