package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/alnah/go-texweaver"
	"github.com/alnah/go-texweaver/internal/fileutil"
	"github.com/alnah/go-texweaver/internal/hints"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// maxAutoWorkers caps the automatic pool size.
const maxAutoWorkers = 8

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input texweaver.Input) (*texweaver.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*texweaver.Converter)(nil)

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	meta   texweaver.Metadata
	json   bool
	stdin  io.Reader
	stdout io.Writer
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
	Dropped    int // unterminated blocks left out of the output
}

// resolvePoolSize determines the worker count.
// Priority: explicit value > GOMAXPROCS-based calculation.
func resolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers.
	return min(max(runtime.GOMAXPROCS(0), 1), maxAutoWorkers)
}

// convertBatch processes files concurrently. The converter is shared:
// it is safe for concurrent use. Results keep the order of files.
func convertBatch(ctx context.Context, conv CLIConverter, files []FileToConvert, params *conversionParams, workers int) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	workers = min(max(workers, 1), len(files))

	results := make([]ConversionResult, len(files))
	jobs := make(chan int, len(files))
	for i := range files {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for range workers {
		wg.Go(func() {
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       err,
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		})
	}
	wg.Wait()

	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	finish := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := readInput(f.InputPath, params.stdin)
	if err != nil {
		return finish(fmt.Errorf("%w: %v", ErrReadMarkdown, err))
	}

	converted, err := conv.Convert(ctx, texweaver.Input{
		Markdown: string(content),
		Metadata: params.meta,
	})
	if err != nil {
		return finish(err)
	}
	result.Dropped = len(converted.Dropped)

	if f.OutputPath == stdio {
		if _, err := io.WriteString(params.stdout, converted.LaTeX); err != nil {
			return finish(fmt.Errorf("%w: %v", ErrWriteOutput, err))
		}
		return finish(nil)
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return finish(fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory()))
	}

	// #nosec G306 -- LaTeX sources are meant to be readable
	if err := fileutil.WriteFileAtomic(f.OutputPath, []byte(converted.LaTeX), filePermissions); err != nil {
		return finish(fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}

	if params.json {
		if err := writeSnapshot(f.OutputPath, converted.Document); err != nil {
			return finish(err)
		}
	}

	return finish(nil)
}

// readInput reads a Markdown file, or stdin for "-". Stdin is read up to
// one byte past the size limit so the converter can reject it.
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == stdio {
		return io.ReadAll(io.LimitReader(stdin, texweaver.MaxMarkdownSize+1))
	}
	return os.ReadFile(path) // #nosec G304 -- discovered path
}

// writeSnapshot writes the document tree as JSON next to the LaTeX file.
func writeSnapshot(texPath string, doc *texweaver.Document) error {
	data, err := doc.JSON()
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	jsonPath, err := fileutil.ReplaceExt(texPath, "json")
	if err != nil {
		return err
	}

	// #nosec G306 -- snapshots are meant to be readable
	if err := fileutil.WriteFileAtomic(jsonPath, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
	Dropped   int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
			continue
		}
		summary.Succeeded++
		summary.Dropped += r.Dropped
	}
	return summary
}

// reportResults logs one line per file and a summary for batches.
func reportResults(results []ConversionResult, logger *zap.Logger) ResultSummary {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			logger.Error("conversion failed", zap.String("input", r.InputPath), zap.Error(r.Err))
			continue
		}
		if r.Dropped > 0 {
			logger.Warn("unterminated blocks dropped",
				zap.String("input", r.InputPath),
				zap.Int("count", r.Dropped))
		}
		if r.OutputPath == stdio {
			continue
		}
		logger.Info("created", zap.String("output", r.OutputPath))
		logger.Debug("converted",
			zap.String("input", r.InputPath),
			zap.Duration("duration", r.Duration.Round(time.Millisecond)))
	}

	if len(results) > 1 {
		logger.Info("batch finished",
			zap.Int("succeeded", summary.Succeeded),
			zap.Int("failed", summary.Failed))
	}

	return summary
}

// batchError reports how many files failed. It unwraps to every
// per-file error, so errors.Is sees through it.
type batchError struct {
	failed, total int
	err           error
}

func (e *batchError) Error() string {
	if e.total == 1 {
		return e.err.Error()
	}
	return fmt.Sprintf("%d of %d files failed", e.failed, e.total)
}

func (e *batchError) Unwrap() error {
	return e.err
}

// batchErr combines the per-file errors, or returns nil when all passed.
func batchErr(results []ConversionResult, summary ResultSummary) error {
	if summary.Failed == 0 {
		return nil
	}

	var err error
	for _, r := range results {
		if r.Err != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", r.InputPath, r.Err))
		}
	}
	return &batchError{failed: summary.Failed, total: len(results), err: err}
}
