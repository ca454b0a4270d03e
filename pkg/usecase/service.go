// Package usecase provides application-level orchestration for CLI
// workflows: it owns the scan-analyze-execute cycle so the engine packages
// stay stateless between calls.
package usecase

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"diro/internal/config"
	"diro/internal/reporter"
	"diro/pkg/duplicates"
	"diro/pkg/executor"
	"diro/pkg/grouping"
	"diro/pkg/progress"
	"diro/pkg/scanner"
)

// StrategyKind selects a grouping strategy.
type StrategyKind string

// Available grouping strategies.
const (
	StrategyType       StrategyKind = "type"
	StrategySimilarity StrategyKind = "similarity"
	StrategyOneFolder  StrategyKind = "onefolder"
)

// Service orchestrates command workflows without Cobra dependencies.
type Service struct {
	naming config.Naming
}

// New creates a use-case service using the given configuration.
func New(cfg *config.Config) *Service {
	return &Service{naming: cfg.Naming}
}

// AnalyzeRequest contains inputs for the analyze workflow.
type AnalyzeRequest struct {
	TargetDir     string
	Recursive     bool
	CheckContents bool
}

// AnalyzeExecution contains analyze workflow outputs.
type AnalyzeExecution struct {
	RootDir         string
	FileCount       int
	DuplicateCount  int
	CollectDuration time.Duration
	Analysis        reporter.Analysis
}

// OrganizeRequest contains inputs for the organize workflows.
type OrganizeRequest struct {
	TargetDir     string
	Strategy      StrategyKind
	Recursive     bool
	CheckContents bool
	CleanupEmpty  bool
	DeleteEmpty   bool
	DryRun        bool
	OnProgress    progress.Callback
}

// OrganizeExecution contains organize workflow outputs.
type OrganizeExecution struct {
	RootDir         string
	FileCount       int
	DuplicateCount  int
	CollectDuration time.Duration
	Suggestion      *grouping.Suggestion
	Result          executor.Result
}

// DuplicatesRequest contains inputs for the duplicate-resolution workflow.
type DuplicatesRequest struct {
	TargetDir     string
	Recursive     bool
	CheckContents bool
	DryRun        bool
	OnProgress    progress.Callback
}

// DuplicatesExecution contains duplicate-resolution workflow outputs.
type DuplicatesExecution struct {
	RootDir         string
	FileCount       int
	DuplicateCount  int
	CollectDuration time.Duration
	Result          duplicates.Result
}

// RunAnalyze scans the target and previews every grouping strategy.
func (s *Service) RunAnalyze(req AnalyzeRequest) (AnalyzeExecution, error) {
	rootDir, files, dups, collectDuration, err := s.collect(req.TargetDir, req.Recursive)
	if err != nil {
		return AnalyzeExecution{}, err
	}

	var previews []reporter.NamedSuggestion
	for _, strategy := range s.allStrategies(rootDir, req.Recursive, req.CheckContents) {
		sug, err := strategy.Group(files)
		if err != nil {
			return AnalyzeExecution{}, fmt.Errorf("%s grouping failed: %w", strategy.Name(), err)
		}
		previews = append(previews, reporter.NamedSuggestion{Name: strategy.Name(), Suggestion: sug})
	}

	return AnalyzeExecution{
		RootDir:         rootDir,
		FileCount:       len(files),
		DuplicateCount:  len(dups),
		CollectDuration: collectDuration,
		Analysis:        reporter.Build(rootDir, req.Recursive, files, dups, previews),
	}, nil
}

// RunOrganize scans the target, applies the selected grouping strategy and
// executes the resulting plan.
func (s *Service) RunOrganize(req OrganizeRequest) (OrganizeExecution, error) {
	rootDir, files, dups, collectDuration, err := s.collect(req.TargetDir, req.Recursive)
	if err != nil {
		return OrganizeExecution{}, err
	}

	strategy, err := s.strategyFor(req.Strategy, rootDir, req.Recursive, req.CheckContents)
	if err != nil {
		return OrganizeExecution{}, err
	}

	sug, err := strategy.Group(files)
	if err != nil {
		return OrganizeExecution{}, fmt.Errorf("%s grouping failed: %w", strategy.Name(), err)
	}

	result, err := executor.Execute(sug, executor.Options{
		Root:              rootDir,
		Recursive:         req.Recursive,
		CleanupEmpty:      req.CleanupEmpty,
		DeleteEmpty:       req.DeleteEmpty,
		DryRun:            req.DryRun,
		EmptyFoldersLabel: s.naming.EmptyFolders,
		OnProgress:        req.OnProgress,
	})
	if err != nil {
		return OrganizeExecution{}, err
	}

	return OrganizeExecution{
		RootDir:         rootDir,
		FileCount:       len(files),
		DuplicateCount:  len(dups),
		CollectDuration: collectDuration,
		Suggestion:      sug,
		Result:          result,
	}, nil
}

// RunDuplicates scans the target and relocates the name-collision
// duplicates the scan reported.
func (s *Service) RunDuplicates(req DuplicatesRequest) (DuplicatesExecution, error) {
	rootDir, files, dups, collectDuration, err := s.collect(req.TargetDir, req.Recursive)
	if err != nil {
		return DuplicatesExecution{}, err
	}

	result, err := duplicates.Resolve(dups, duplicates.Options{
		Root:          rootDir,
		CheckContents: req.CheckContents,
		DryRun:        req.DryRun,
		FolderName:    s.naming.DuplicatesFolder,
		FilePrefix:    s.naming.DuplicatePrefix,
		OnProgress:    req.OnProgress,
	})
	if err != nil {
		return DuplicatesExecution{}, err
	}

	return DuplicatesExecution{
		RootDir:         rootDir,
		FileCount:       len(files),
		DuplicateCount:  len(dups),
		CollectDuration: collectDuration,
		Result:          result,
	}, nil
}

func (s *Service) collect(targetDir string, recursive bool) (string, []scanner.FileInfo, []string, time.Duration, error) {
	rootDir, err := resolveTarget(targetDir)
	if err != nil {
		return "", nil, nil, 0, err
	}

	start := time.Now()
	files, dups, err := scanner.Scan(rootDir, recursive)
	if err != nil {
		return "", nil, nil, 0, fmt.Errorf("failed to scan directory: %w", err)
	}

	return rootDir, files, dups, time.Since(start), nil
}

func (s *Service) strategyFor(kind StrategyKind, rootDir string, recursive, checkContents bool) (grouping.Strategy, error) {
	switch kind {
	case StrategyType:
		return s.byType(rootDir, recursive), nil
	case StrategySimilarity:
		return s.bySimilarity(checkContents), nil
	case StrategyOneFolder:
		return s.consolidate(), nil
	default:
		return nil, fmt.Errorf("unknown strategy: %s", kind)
	}
}

func (s *Service) allStrategies(rootDir string, recursive, checkContents bool) []grouping.Strategy {
	return []grouping.Strategy{
		s.byType(rootDir, recursive),
		s.bySimilarity(checkContents),
		s.consolidate(),
	}
}

func (s *Service) byType(rootDir string, recursive bool) *grouping.ByType {
	return &grouping.ByType{
		Recursive:  recursive,
		Root:       rootDir,
		TypePrefix: s.naming.TypePrefix,
		NoExtLabel: s.naming.NoExtensionFolder,
	}
}

func (s *Service) bySimilarity(checkContents bool) *grouping.BySimilarity {
	return &grouping.BySimilarity{
		CheckContents: checkContents,
		GroupPrefix:   s.naming.SimilarPrefix,
	}
}

func (s *Service) consolidate() *grouping.Consolidate {
	return &grouping.Consolidate{Label: s.naming.OneFolder}
}

// resolveTarget validates that targetDir exists and is a directory, and
// converts it to an absolute path.
func resolveTarget(targetDir string) (string, error) {
	info, err := os.Stat(targetDir)
	if err != nil {
		return "", fmt.Errorf("cannot access directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", targetDir)
	}

	absPath, err := filepath.Abs(targetDir)
	if err != nil {
		return "", fmt.Errorf("cannot resolve path: %w", err)
	}

	return absPath, nil
}
