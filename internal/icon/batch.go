package icon

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

// BatchItem is a single icon entry in a batch run.
type BatchItem struct {
	Options
	File string // file name relative to the batch output directory
}

// BatchOptions describes a multi-icon generation run.
type BatchOptions struct {
	OutputDir string
	Workers   int // 0 = CPU cores
	Icons     []BatchItem

	// Output control
	Quiet            bool                     // suppress progress output (for TUI integration)
	ProgressCallback func(current, total int) // optional callback for progress updates
}

// iconTask contains everything needed to render one icon, resolved up front.
type iconTask struct {
	index int
	opts  Options
	path  string
	theme Theme
}

// GenerateBatch renders every icon in the batch. Tasks are built sequentially
// so theme and dimension resolution stays deterministic, then rendered on a
// worker pool. Each icon is still generated end-to-end by one worker with
// its own PRNG seeded from its seed text.
func GenerateBatch(opts BatchOptions) ([]GeneratedFile, error) {
	if len(opts.Icons) == 0 {
		return nil, fmt.Errorf("batch contains no icons")
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	// Phase 1: build all tasks sequentially.
	tasks := make([]iconTask, 0, len(opts.Icons))
	for i, item := range opts.Icons {
		if item.SeedText == "" {
			return nil, fmt.Errorf("icon %d: seed text is required", i+1)
		}
		width, height, theme, err := item.Options.resolve()
		if err != nil {
			return nil, fmt.Errorf("icon %d: %w", i+1, err)
		}

		name := item.File
		if name == "" {
			name = fmt.Sprintf("icon_%03d.tga", i+1)
		}

		resolved := item.Options
		resolved.Width = width
		resolved.Height = height
		resolved.Theme = theme

		tasks = append(tasks, iconTask{
			index: i + 1,
			opts:  resolved,
			path:  filepath.Join(opts.OutputDir, name),
			theme: theme,
		})
	}

	// Phase 2: process tasks in parallel.
	numWorkers := opts.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(tasks) {
		numWorkers = len(tasks)
	}

	if !opts.Quiet {
		fmt.Printf("Generating %d icons with %d parallel workers...\n", len(tasks), numWorkers)
	}

	taskChan := make(chan iconTask, len(tasks))
	resultChan := make(chan struct {
		index int
		file  GeneratedFile
		err   error
	}, len(tasks))

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskChan {
				file, err := GenerateFile(task.opts, task.path)
				resultChan <- struct {
					index int
					file  GeneratedFile
					err   error
				}{task.index, file, err}
			}
		}()
	}

	for _, task := range tasks {
		taskChan <- task
	}
	close(taskChan)

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// Collect results keyed by task index so the returned slice stays in
	// batch order regardless of worker scheduling.
	files := make([]GeneratedFile, len(tasks))
	completed := 0
	var firstErr error
	for result := range resultChan {
		if result.err != nil && firstErr == nil {
			firstErr = fmt.Errorf("generate icon %d: %w", result.index, result.err)
		}
		files[result.index-1] = result.file
		completed++
		if opts.ProgressCallback != nil {
			opts.ProgressCallback(completed, len(tasks))
		}
		if !opts.Quiet {
			fmt.Printf("  [%d/%d] %s\n", completed, len(tasks), files[result.index-1].Path)
		}
	}

	if firstErr != nil {
		return nil, firstErr
	}

	if !opts.Quiet {
		fmt.Printf("\n✓ %d icons created in: %s/\n", len(files), opts.OutputDir)
	}

	return files, nil
}
