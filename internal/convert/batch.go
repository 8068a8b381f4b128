package convert

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Summary reports the outcome of a directory run.
type Summary struct {
	Found     int
	Converted int
	Failed    int
}

// Dir converts every *.qhf file directly inside inDir into outDir, one
// output file per input, named after the input with the format extension.
//
// Each file decodes against its own buffer, so files convert concurrently
// up to Options.Jobs workers. A file that fails to decode is logged with
// its reason and counted, never aborting its siblings; the only errors
// returned from Dir itself are directory-level (unreadable input dir,
// uncreatable output dir, canceled context).
func Dir(ctx context.Context, inDir, outDir string, opts Options) (Summary, error) {
	entries, err := os.ReadDir(inDir)
	if err != nil {
		return Summary{}, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Summary{}, err
	}

	log := opts.logger()
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	var mu sync.Mutex
	var sum Summary
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".qhf") {
			continue
		}
		sum.Found++
		name := entry.Name()
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			base := strings.TrimSuffix(name, filepath.Ext(name))
			inPath := filepath.Join(inDir, name)
			outPath := filepath.Join(outDir, base+"."+string(opts.format()))
			if err := File(inPath, outPath, opts); err != nil {
				log.Warn("skipping file", "file", name, "error", err)
				mu.Lock()
				sum.Failed++
				mu.Unlock()
				return nil
			}
			log.Info("converted", "file", name, "output", outPath)
			mu.Lock()
			sum.Converted++
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sum, err
	}
	return sum, nil
}
