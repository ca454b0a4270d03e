package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"diro/internal/reporter"
	"diro/pkg/usecase"
)

var outputFormat string

func buildAnalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Scan a directory and preview every grouping strategy",
		Long: `Scans the directory and shows, without moving anything:
  - how many files of each extension were found
  - which files are name-collision duplicates
  - what every grouping strategy would produce
  - which strategy looks like the best fit

Examples:
  diro analyze ./downloads
  diro analyze -r --contents ./downloads
  diro analyze --format json ./downloads`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}

	addScanFlags(cmd)
	addContentsFlag(cmd)
	cmd.Flags().StringVar(&outputFormat, "format", string(reporter.FormatSummary), "Output format: summary, json or yaml")

	return cmd
}

func runAnalyze(_ *cobra.Command, args []string) error {
	service, err := newService()
	if err != nil {
		return err
	}

	progress := startProgress("Analyzing")
	execution, err := service.RunAnalyze(usecase.AnalyzeRequest{
		TargetDir:     args[0],
		Recursive:     recursive,
		CheckContents: checkContents,
	})
	progress.Stop()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Scanned %s in %v\n", execution.RootDir, execution.CollectDuration)
	}

	return reporter.New(os.Stdout, reporter.OutputFormat(outputFormat)).Report(execution.Analysis)
}
