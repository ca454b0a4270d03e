package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"diro/internal/config"
	"diro/pkg/duplicates"
	"diro/pkg/executor"
	"diro/pkg/usecase"
)

func newService() (*usecase.Service, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	return usecase.New(cfg), nil
}

func printDryRunBanner() {
	if !dryRun {
		return
	}

	fmt.Println("=== DRY RUN - no changes will be made ===")
	fmt.Println()
}

func printCommandHeader(command, targetDir string) {
	fmt.Printf("Command: %s\n", command)
	fmt.Printf("Target directory: %s\n", targetDir)
}

func printScanCounts(fileCount, duplicateCount int, collectDuration time.Duration) {
	fmt.Printf("Found %d files (%d duplicates) in %v\n\n",
		fileCount, duplicateCount, collectDuration.Round(time.Millisecond))
}

func printSummary(lines ...string) {
	fmt.Println("=== Summary ===")
	for _, line := range lines {
		fmt.Println(line)
	}
}

func printDryRunHint() {
	if !dryRun {
		return
	}

	fmt.Println()
	fmt.Println("Run without --dry-run to apply changes.")
}

func printMoveOperation(op executor.MoveOperation) {
	switch {
	case op.Error != nil:
		fmt.Printf("ERROR: %s: %v\n", op.SourcePath, op.Error)
	default:
		fmt.Printf("MOVE: %s\n", op.SourcePath)
		fmt.Printf("  TO: %s\n", op.DestPath)
	}
}

func printDirOperation(op executor.DirOperation) {
	switch {
	case op.Error != nil:
		fmt.Printf("ERROR: %s: %v\n", op.Path, op.Error)
	case op.Deleted:
		fmt.Printf("DELETE DIR: %s\n", op.Path)
	default:
		fmt.Printf("MOVE DIR: %s\n", op.Path)
		fmt.Printf("      TO: %s\n", op.NewPath)
	}
}

func printDuplicateOperation(op duplicates.MoveOperation) {
	switch {
	case op.Error != nil:
		fmt.Printf("ERROR: %s: %v\n", op.SourcePath, op.Error)
	case op.Excluded:
		fmt.Printf("KEEP: %s (%s)\n", op.SourcePath, op.ExcludeReason)
	default:
		fmt.Printf("MOVE: %s\n", op.SourcePath)
		fmt.Printf("  TO: %s\n", op.DestPath)
		if verbose && op.Digest != "" {
			fmt.Printf("HASH: %s\n", op.Digest)
		}
	}
}

type progressReporter struct {
	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

func startProgress(label string) *progressReporter {
	p := &progressReporter{
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}

	startTime := time.Now()
	ticker := time.NewTicker(5 * time.Second)

	go func() {
		defer close(p.doneCh)
		for {
			select {
			case <-ticker.C:
				elapsed := time.Since(startTime).Round(time.Second)
				fmt.Fprintf(os.Stderr, "%s... %s elapsed\n", label, elapsed)
			case <-p.stopCh:
				ticker.Stop()
				return
			}
		}
	}()

	return p
}

func (p *progressReporter) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopCh)
		<-p.doneCh
	})
}
