package main

import (
	"github.com/spf13/cobra"
)

var (
	dryRun     bool
	verbose    bool
	configPath string

	recursive     bool
	checkContents bool
	cleanupEmpty  bool
	deleteEmpty   bool
)

func buildRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diro",
		Short: "Classify and relocate files within a directory tree",
		Long: `diro suggests and applies file groupings for a directory.

Commands:
  analyze     Scan a directory and preview every grouping strategy
  type        Group files into folders by extension
  similar     Group files into folders by name or content similarity
  onefolder   Consolidate every file into a single folder
  duplicates  Relocate name-collision duplicates into a Duplicates folder

Examples:
  # Preview what would happen (recommended first step)
  diro analyze ./downloads
  diro type --dry-run ./downloads

  # Group by extension, descending into subfolders, relocating emptied dirs
  diro type -r --cleanup-empty ./downloads

  # Group by content similarity and delete emptied directories
  diro similar -r --contents --cleanup-empty --delete-empty ./downloads

  # Move name-collision duplicates, confirmed by content hash
  diro duplicates -r --contents ./downloads

Safety:
  The tool will NEVER modify files outside the specified directory.
  Existing files are never overwritten; colliding names get a numeric
  suffix. All operations are contained within the target path.`,
	}

	cmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without making changes")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML naming configuration file")

	return cmd
}

func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Include subfolders in the scan")
}

func addCleanupFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&cleanupEmpty, "cleanup-empty", false, "Reconcile directories left empty after the moves (recursive only)")
	cmd.Flags().BoolVar(&deleteEmpty, "delete-empty", false, "Delete empty directories instead of relocating them")
}

func addContentsFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&checkContents, "contents", false, "Compare file contents instead of names")
}
