package orchestrator

import (
	"fmt"
	"path/filepath"

	"github.com/maastricht-university/zerospeech-convolution/convolution"
	"github.com/maastricht-university/zerospeech-convolution/submission"
)

// OutputBase is <output>/<filter_kind>/<window_tag>/<submission_dirname>.
func OutputBase(output string, spec convolution.Spec, submissionRoot string) string {
	return filepath.Join(output, spec.Kind.String(), spec.WindowTag(), submission.DirName(submissionRoot))
}

func OutputPath(base, subset, name string) string {
	return filepath.Join(base, submission.PhoneticDir, subset, name)
}

func MetaOutputPath(base string) string {
	return filepath.Join(base, submission.MetaFileName)
}

// plan resolves every subset and lists every file before anything is
// written, so layout errors abort a run with no output.
func (p *Pipeline) plan() ([]Job, error) {
	dirs := make([]string, len(submission.Subsets))
	for i, subset := range submission.Subsets {
		dir, err := submission.ResolveSubset(p.cfg.SubmissionPath, subset)
		if err != nil {
			return nil, err
		}
		dirs[i] = dir
	}

	var jobs []Job
	owner := map[string]string{}
	for i, subset := range submission.Subsets {
		files, err := submission.FindFiles(dirs[i], submission.ReprExt)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: list %s: %w", dirs[i], err)
		}
		for _, f := range files {
			out := OutputPath(p.base, subset, f.Name)
			if prev, dup := owner[out]; dup {
				return nil, fmt.Errorf("%w: %s and %s -> %s", ErrDuplicateOutput, prev, f.Path, out)
			}
			owner[out] = f.Path
			jobs = append(jobs, Job{Subset: subset, Source: f, Out: out})
		}
	}
	return jobs, nil
}
