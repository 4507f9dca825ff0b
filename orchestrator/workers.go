package orchestrator

import (
	"context"
	"sync"
)

// runJobs converts every job on n workers. Each job owns its output path, so
// workers never share a file. The first error cancels the remaining jobs and
// is returned; the frame total counts completed jobs.
func (p *Pipeline) runJobs(ctx context.Context, jobs []Job, n int) (int, error) {
	if n < 1 {
		n = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	in := make(chan Job, n*2)
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		frames int
		first  error
	)
	fail := func(err error) {
		mu.Lock()
		if first == nil {
			first = err
			cancel()
		}
		mu.Unlock()
	}

	wg.Add(n)
	for w := 0; w < n; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-in:
					if !ok {
						return
					}
					f, err := p.convert(j)
					if err != nil {
						fail(err)
						return
					}
					mu.Lock()
					frames += f
					mu.Unlock()
				}
			}
		}()
	}

dispatch:
	for _, j := range jobs {
		select {
		case <-ctx.Done():
			break dispatch
		case in <- j:
		}
	}
	close(in)
	wg.Wait()

	if first != nil {
		return frames, first
	}
	return frames, ctx.Err()
}
