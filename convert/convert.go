// Package convert runs the sln-to-slnx conversion pipeline: resolve
// the input, parse the solution, assemble the output document, and
// write it.
package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/komimoe/GotoSlnx/cmd/goto-slnx/output"
	"github.com/komimoe/GotoSlnx/observability"
	"github.com/komimoe/GotoSlnx/slnx"
	"github.com/komimoe/GotoSlnx/solution"
	"github.com/komimoe/GotoSlnx/watch"
)

// debounceInterval collapses editor save bursts in watch mode.
const debounceInterval = 200 * time.Millisecond

// Options controls a conversion run.
type Options struct {
	// Output is the target .slnx path. Empty means the input path
	// with its extension replaced by .slnx.
	Output string

	// Force overwrites an existing output file.
	Force bool

	// Watch keeps the process running and re-converts whenever the
	// input file changes.
	Watch bool
}

// DefaultOutputPath derives the output path from the input path.
func DefaultOutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".slnx"
}

// Run performs the conversion described by opts. In watch mode it
// returns only when ctx is cancelled or the watcher cannot be set up.
func Run(ctx context.Context, input string, opts *Options, console *output.Console, logger observability.Logger) error {
	inputPath, err := solution.ResolveInput(input)
	if err != nil {
		return err
	}

	outputPath := opts.Output
	if outputPath == "" {
		outputPath = DefaultOutputPath(inputPath)
	}

	if !opts.Force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("output file already exists: %s (use --force to overwrite)", outputPath)
		}
	}

	if err := Once(ctx, inputPath, outputPath, console, logger); err != nil {
		return err
	}

	if !opts.Watch {
		return nil
	}
	return watchLoop(ctx, inputPath, outputPath, console, logger)
}

// Once converts inputPath to outputPath a single time.
func Once(ctx context.Context, inputPath, outputPath string, console *output.Console, logger observability.Logger) error {
	start := time.Now()

	ctx, parseSpan := observability.StartParseSpan(ctx, inputPath)
	sol, err := solution.NewParser().Parse(inputPath)
	if err != nil {
		observability.EndSpanWithError(parseSpan, err)
		return err
	}
	projects, folders := countEntries(sol)
	observability.RecordSolutionStats(parseSpan, projects, folders, len(sol.SolutionConfigs))
	observability.EndSpanWithError(parseSpan, nil)

	logger.Debug("Parsed {Path}: {Projects} projects, {Folders} folders, {Configs} configurations",
		inputPath, projects, folders, len(sol.SolutionConfigs))
	console.Detail("Parsed %s: %d projects, %d folders, %d configurations",
		inputPath, projects, folders, len(sol.SolutionConfigs))

	_, assembleSpan := observability.StartAssembleSpan(ctx)
	doc := slnx.Assemble(sol)
	observability.EndSpanWithError(assembleSpan, nil)

	_, writeSpan := observability.StartWriteSpan(ctx, outputPath)
	err = slnx.WriteFile(outputPath, doc)
	observability.EndSpanWithError(writeSpan, err)
	if err != nil {
		return err
	}

	logger.Info("Converted {Input} to {Output} in {Elapsed}",
		inputPath, outputPath, time.Since(start))
	console.Success("Generated: %s", outputPath)
	return nil
}

// watchLoop re-runs the conversion on every debounced change of the
// input file. Conversion failures are reported and watching continues.
func watchLoop(ctx context.Context, inputPath, outputPath string, console *output.Console, logger observability.Logger) error {
	watcher, err := watch.NewWatcher(inputPath)
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	watcher.Start(ctx, debounceInterval)
	console.Info("Watching %s for changes (Ctrl+C to stop)", inputPath)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-watcher.Events():
			if err := Once(ctx, inputPath, outputPath, console, logger); err != nil {
				console.Warning("%v", err)
				logger.Error("Conversion failed: {Error}", err)
			}
		case err := <-watcher.Errors():
			logger.Error("Watch error: {Error}", err)
		}
	}
}

func countEntries(sol *solution.Solution) (projects, folders int) {
	for _, entry := range sol.Projects {
		if entry.IsSolutionFolder {
			folders++
		} else {
			projects++
		}
	}
	return projects, folders
}
