package orchestrator

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/maastricht-university/zerospeech-convolution/convolution"
	"github.com/maastricht-university/zerospeech-convolution/submission"
)

// convert loads, filters and writes one file. It returns the frame count.
func (p *Pipeline) convert(j Job) (int, error) {
	m, err := submission.LoadMatrix(j.Source.Path)
	if err != nil {
		return 0, err
	}
	out, err := convolution.Apply(m, p.spec)
	if err != nil {
		return 0, fmt.Errorf("orchestrator: %s: %w", j.Source.Path, err)
	}
	if err := submission.WriteMatrix(j.Out, out, p.cfg.AppendOutput); err != nil {
		return 0, fmt.Errorf("orchestrator: write %s: %w", j.Out, err)
	}
	p.log.WithFields(logrus.Fields{
		"subset": j.Subset,
		"file":   j.Source.Path,
		"out":    j.Out,
		"frames": len(out),
		"dims":   out.Dims(),
	}).Debug("converted")
	return len(out), nil
}

// copyMeta copies meta.yaml into the output tree. A missing or unreadable
// meta.yaml only warns.
func (p *Pipeline) copyMeta() (bool, error) {
	src, err := submission.FindMeta(p.cfg.SubmissionPath)
	if err != nil {
		p.log.WithField("submission", p.cfg.SubmissionPath).Warn(err)
		return false, nil
	}
	if meta, err := submission.ReadMeta(src); err != nil {
		p.log.WithError(err).Warn("meta.yaml is not valid YAML, copying it unchanged")
	} else {
		p.log.WithFields(logrus.Fields{
			"author":      meta.Author,
			"affiliation": meta.Affiliation,
		}).Info("submission metadata")
	}
	dst := MetaOutputPath(p.base)
	if err := submission.CopyFile(src, dst); err != nil {
		return false, fmt.Errorf("orchestrator: copy %s: %w", src, err)
	}
	return true, nil
}
