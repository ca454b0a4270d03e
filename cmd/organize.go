package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"diro/pkg/usecase"
)

func buildTypeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "type [path]",
		Short: "Group files into folders by extension",
		Long: `Groups files into "Type <ext>" folders under the target directory:
  - report.pdf and invoice.pdf go into "Type pdf"
  - files without an extension go into "No Extension"
  - in recursive mode an extension with a single file stays in place

Examples:
  diro type --dry-run ./downloads     # Preview changes
  diro type ./downloads               # Apply changes
  diro type -r --cleanup-empty ./downloads`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runOrganize("TYPE", usecase.StrategyType, args[0])
		},
	}

	addScanFlags(cmd)
	addCleanupFlags(cmd)

	return cmd
}

func buildSimilarCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "similar [path]",
		Short: "Group files into folders by name or content similarity",
		Long: `Greedily clusters files whose names (or, with --contents, whose
contents) score as similar, and moves each cluster into a "Similar<N>"
folder. Files without a similar partner stay where they are.

Examples:
  diro similar --dry-run ./downloads
  diro similar -r ./downloads
  diro similar -r --contents ./downloads`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runOrganize("SIMILAR", usecase.StrategySimilarity, args[0])
		},
	}

	addScanFlags(cmd)
	addContentsFlag(cmd)
	addCleanupFlags(cmd)

	return cmd
}

func buildOneFolderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "onefolder [path]",
		Short: "Consolidate every file into a single folder",
		Long: `Moves every scanned file into one "One Folder" directory under the
target. Name collisions get a numeric suffix, nothing is overwritten.

Examples:
  diro onefolder --dry-run ./downloads
  diro onefolder -r --cleanup-empty --delete-empty ./downloads`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runOrganize("ONE FOLDER", usecase.StrategyOneFolder, args[0])
		},
	}

	addScanFlags(cmd)
	addCleanupFlags(cmd)

	return cmd
}

func runOrganize(commandName string, kind usecase.StrategyKind, targetDir string) error {
	service, err := newService()
	if err != nil {
		return err
	}

	printDryRunBanner()
	printCommandHeader(commandName, targetDir)

	progress := startProgress("Working")
	execution, err := service.RunOrganize(usecase.OrganizeRequest{
		TargetDir:     targetDir,
		Strategy:      kind,
		Recursive:     recursive,
		CheckContents: checkContents,
		CleanupEmpty:  cleanupEmpty,
		DeleteEmpty:   deleteEmpty,
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
			printMoveOperation(op)
		}
		for _, op := range result.EmptyDirs {
			printDirOperation(op)
		}
		fmt.Println()
	}

	printSummary(
		fmt.Sprintf("Total files:     %d", result.TotalFiles),
		fmt.Sprintf("Moved:           %d", result.MovedCount),
		fmt.Sprintf("Errors:          %d", result.ErrorCount),
		fmt.Sprintf("Dirs created:    %d", result.CreatedDirsCount),
		fmt.Sprintf("Empty dirs:      %d", result.EmptyDirCount),
	)
	printDryRunHint()

	return nil
}
