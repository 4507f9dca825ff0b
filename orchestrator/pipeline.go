package orchestrator

import (
	"context"

	"github.com/sirupsen/logrus"

	cfg "github.com/maastricht-university/zerospeech-convolution/config"
	"github.com/maastricht-university/zerospeech-convolution/convolution"
	"github.com/maastricht-university/zerospeech-convolution/submission"
)

// Pipeline generates a filtered submission from an existing one.
type Pipeline struct {
	cfg  *cfg.Root
	spec convolution.Spec
	base string
	log  logrus.FieldLogger
}

func NewPipeline(c *cfg.Root, log logrus.FieldLogger) (*Pipeline, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	spec, err := c.FilterSpec()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Pipeline{
		cfg:  c,
		spec: spec,
		base: OutputBase(c.OutputPath, spec, c.SubmissionPath),
		log:  log,
	}, nil
}

func (p *Pipeline) Spec() convolution.Spec { return p.spec }

func (p *Pipeline) OutputDir() string { return p.base }

// Run converts all four subsets and optionally copies meta.yaml. A missing
// subset, a malformed file or a write failure stops the run.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	log := p.log.WithFields(logrus.Fields{
		"kind":       p.spec.Kind.String(),
		"window_tag": p.spec.WindowTag(),
	})
	log.WithFields(logrus.Fields{
		"submission": p.cfg.SubmissionPath,
		"out":        p.base,
		"workers":    p.cfg.Workers,
	}).Info("generating submission")

	jobs, err := p.plan()
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{Subsets: len(submission.Subsets)}
	// subsets run one after another so progress is logged per subset
	for _, subset := range submission.Subsets {
		var batch []Job
		for _, j := range jobs {
			if j.Subset == subset {
				batch = append(batch, j)
			}
		}
		frames, err := p.runJobs(ctx, batch, p.cfg.Workers)
		if err != nil {
			return sum, err
		}
		sum.Files += len(batch)
		sum.Frames += frames
		log.WithFields(logrus.Fields{"subset": subset, "files": len(batch)}).Info("subset done")
	}

	if p.cfg.CopyMeta {
		copied, err := p.copyMeta()
		if err != nil {
			return sum, err
		}
		sum.MetaCopied = copied
	}

	log.WithFields(logrus.Fields{
		"files":       sum.Files,
		"frames":      sum.Frames,
		"meta_copied": sum.MetaCopied,
	}).Info("submission generated")
	return sum, nil
}
