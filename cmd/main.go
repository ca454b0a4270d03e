package main

import "os"

func main() {
	rootCmd := buildRootCommand()
	rootCmd.AddCommand(buildAnalyzeCommand())
	rootCmd.AddCommand(buildTypeCommand())
	rootCmd.AddCommand(buildSimilarCommand())
	rootCmd.AddCommand(buildOneFolderCommand())
	rootCmd.AddCommand(buildDuplicatesCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
