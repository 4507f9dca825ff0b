// Package cli wires the command line to the convolution pipeline.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cfg "github.com/maastricht-university/zerospeech-convolution/config"
	"github.com/maastricht-university/zerospeech-convolution/convolution"
	"github.com/maastricht-university/zerospeech-convolution/orchestrator"
)

const description = `Generate a modified zerospeech phonetic submission from an existing
submission by running a convolution (e.g. blurring or sharpening) of a given
window size, step 1, over every utterance.

The result is written to
  <output_path>/<convolution_type>/<window tag>/<submission name>/phonetic/<subset>/`

// NewRootCommand builds the command. Logs go to log; its level and format
// are set from the loaded configuration.
func NewRootCommand(log *logrus.Logger) *cobra.Command {
	v := viper.New()
	var configFile string

	kinds := make([]string, 0, 3)
	for _, k := range convolution.Kinds() {
		kinds = append(kinds, k.String())
	}

	cmd := &cobra.Command{
		Use:           "convgen <original_submission_path> <output_path>",
		Short:         "Apply a time-axis convolution to a phonetic submission",
		Long:          description,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v.Set(cfg.KeySubmission, args[0])
			v.Set(cfg.KeyOutput, args[1])
			c, err := cfg.Load(v, configFile)
			if err != nil {
				return err
			}
			if err := configureLogger(log, c); err != nil {
				return err
			}
			p, err := orchestrator.NewPipeline(c, log)
			if err != nil {
				return err
			}
			sum, err := p.Run(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d files, %d frames\n", p.OutputDir(), sum.Files, sum.Frames)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "YAML config file (default: config/$CONVGEN_ENV/config.yaml or ./convgen.yaml if present)")
	f.String(cfg.KeyType, convolution.RunningMean.String(),
		"type of the convolution, one of "+strings.Join(kinds, ", ")+"; running_mean blurs, laplacian sharpens edges")
	f.Int(cfg.KeyWindow, 3, "odd window size for the running mean (laplacian always uses 3)")
	f.Bool(cfg.KeyMaxSharpen, false, "use the (-1, 8, -1) laplacian instead of (-1, 4, -1)")
	f.Bool(cfg.KeyCopyMeta, true, "copy meta.yaml of the original submission")
	f.Int(cfg.KeyWorkers, 1, "number of files converted in parallel")
	f.Bool(cfg.KeyAppend, false, "append to existing output files instead of replacing them")
	f.String(cfg.KeyLogLevel, "info", "log level (debug, info, warn, error)")
	f.String(cfg.KeyLogFormat, "text", "log format (text, json)")
	for _, k := range []string{
		cfg.KeyType, cfg.KeyWindow, cfg.KeyMaxSharpen, cfg.KeyCopyMeta,
		cfg.KeyWorkers, cfg.KeyAppend, cfg.KeyLogLevel, cfg.KeyLogFormat,
	} {
		// a nil flag here is a typo in the key list
		if err := v.BindPFlag(k, f.Lookup(k)); err != nil {
			panic(fmt.Sprintf("cli: bind flag %q: %v", k, err))
		}
	}
	return cmd
}

func configureLogger(log *logrus.Logger, c *cfg.Root) error {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %v", convolution.ErrConfiguration, err)
	}
	log.SetLevel(lvl)
	switch c.LogFormat {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("%w: unknown log format %q", convolution.ErrConfiguration, c.LogFormat)
	}
	return nil
}

func Execute(log *logrus.Logger, args []string, stdout, stderr io.Writer) error {
	cmd := NewRootCommand(log)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return err
	}
	return nil
}
