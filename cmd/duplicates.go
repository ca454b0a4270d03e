package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"diro/pkg/usecase"
)

func buildDuplicatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duplicates [path]",
		Short: "Relocate name-collision duplicates into a Duplicates folder",
		Long: `Scans the directory and moves every file whose base name collides
with an earlier-seen file into a "Duplicates" folder, renamed to
"Dupe<N>_<name>".

With --contents, candidates are first confirmed by content hash: a name
collision whose contents actually differ stays in place, and zero-byte
files are never moved.

Examples:
  diro duplicates --dry-run -r ./downloads   # Preview (recommended!)
  diro duplicates -r ./downloads             # Trust name collisions
  diro duplicates -r --contents ./downloads  # Confirm by content hash`,
		Args: cobra.ExactArgs(1),
		RunE: runDuplicates,
	}

	addScanFlags(cmd)
	addContentsFlag(cmd)

	return cmd
}

func runDuplicates(_ *cobra.Command, args []string) error {
	service, err := newService()
	if err != nil {
		return err
	}

	printDryRunBanner()
	printCommandHeader("DUPLICATES", args[0])

	progress := startProgress("Working")
	execution, err := service.RunDuplicates(usecase.DuplicatesRequest{
		TargetDir:     args[0],
		Recursive:     recursive,
		CheckContents: checkContents,
		DryRun:        dryRun,
	})
	progress.Stop()
	if err != nil {
		return err
	}

	printScanCounts(execution.FileCount, execution.DuplicateCount, execution.CollectDuration)

	result := execution.Result

	if verbose || dryRun {
		for _, op := range result.Operations {
			printDuplicateOperation(op)
		}
		fmt.Println()
	}

	printSummary(
		fmt.Sprintf("Candidates:      %d", result.TotalCandidates),
		fmt.Sprintf("Moved:           %d", result.MovedCount),
		fmt.Sprintf("Kept in place:   %d", result.ExcludedCount),
		fmt.Sprintf("Errors:          %d", result.ErrorCount),
	)
	printDryRunHint()

	return nil
}
