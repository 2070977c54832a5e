// Package main provides the ttl-cleaner binary entry point.
// The cleaner ingests TTL/SKOS vocabulary files, repairs common authoring
// defects, validates the concept graph, and writes a cleaned document plus
// reports.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/janschachtschabel/skohub-ttl-cleaner/config"
	"github.com/janschachtschabel/skohub-ttl-cleaner/pipeline"
	"github.com/janschachtschabel/skohub-ttl-cleaner/reader"
	"github.com/janschachtschabel/skohub-ttl-cleaner/report"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "ttl-cleaner"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	output              string
	configPath          string
	logLevel            string
	chunkSize           int
	chunkSizeSet        bool
	memoryEfficient     bool
	noValidation        bool
	enableSKOSXL        bool
	autofixBroader      bool
	warnMissingNarrower bool
	noReports           bool
	watch               bool
	verbose             bool
}

func rootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   appName + " <input.ttl | glob>",
		Short: "Clean and validate TTL/SKOS vocabulary files",
		Long: `ttl-cleaner analyzes TTL files for common issues and creates a cleaned
version:

- Removes duplicate concepts (same URI)
- Fixes malformed URIs
- Removes concepts without prefLabel
- Fixes encoding issues
- Validates SKOS structure
- Generates detailed reports

The input may be a single file or a doublestar glob pattern
(e.g. 'vocab/**/*.ttl') to clean a whole directory of vocabularies.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f.chunkSizeSet = cmd.Flags().Changed("chunk-size")
			return run(args[0], &f)
		},
	}

	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file path (default: <input>_cleaned.ttl)")
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().IntVar(&f.chunkSize, "chunk-size", 1000, "Chunk size for processing large files")
	cmd.Flags().BoolVar(&f.memoryEfficient, "memory-efficient", false, "Enable memory-efficient chunked mode for very large files")
	cmd.Flags().BoolVar(&f.noValidation, "no-validation", false, "Disable SKOS validation for faster processing")
	cmd.Flags().BoolVar(&f.enableSKOSXL, "enable-skos-xl", false, "Enable SKOS-XL label validation")
	cmd.Flags().BoolVar(&f.autofixBroader, "autofix-broader", false, "Automatically add missing skos:broader to the nearest prefix parent")
	cmd.Flags().BoolVar(&f.warnMissingNarrower, "warn-missing-narrower", false, "Report info-level messages when a parent lacks an explicit skos:narrower back-link")
	cmd.Flags().BoolVar(&f.noReports, "no-reports", false, "Skip generating validation and change reports")
	cmd.Flags().BoolVar(&f.watch, "watch", false, "Watch the input and re-clean on change")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Verbose output")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func run(input string, f *flags) error {
	logger := newLogger(f.logLevel)
	slog.SetDefault(logger)

	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if f.verbose {
		fmt.Printf("[CONFIG] Chunk size: %d\n", cfg.Cleaner.ChunkSize)
		fmt.Printf("[CONFIG] Memory efficient: %t\n", cfg.Cleaner.MemoryEfficient)
		fmt.Printf("[CONFIG] Validation enabled: %t\n", cfg.Validation.Enabled)
		fmt.Printf("[CONFIG] SKOS-XL enabled: %t\n", cfg.Validation.SKOSXL)
		fmt.Printf("[CONFIG] Autofix broader: %t\n", cfg.Cleaner.AutofixBroader)
		fmt.Printf("[CONFIG] Warn missing narrower (info): %t\n", cfg.Validation.WarnMissingNarrower)
		fmt.Printf("[CONFIG] Reports enabled: %t\n\n", cfg.Reports.Enabled)
	}

	inputs, err := expandInputs(input)
	if err != nil {
		return err
	}
	if len(inputs) > 1 && f.output != "" {
		return fmt.Errorf("-o/--output cannot be combined with a multi-file glob")
	}

	for _, path := range inputs {
		if err := processFile(cfg, path, outputPath(path, f.output), logger); err != nil {
			return err
		}
	}

	if f.watch {
		return watchInputs(cfg, inputs, f.output, logger)
	}
	return nil
}

func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// loadConfig layers CLI flags over the config file over the defaults.
func loadConfig(f *flags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if f.configPath != "" {
		loaded, err := config.LoadFromFile(f.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if f.chunkSizeSet {
		cfg.Cleaner.ChunkSize = f.chunkSize
	}
	if f.memoryEfficient {
		cfg.Cleaner.MemoryEfficient = true
	}
	if f.autofixBroader {
		cfg.Cleaner.AutofixBroader = true
	}
	if f.noValidation {
		cfg.Validation.Enabled = false
	}
	if f.enableSKOSXL {
		cfg.Validation.SKOSXL = true
	}
	if f.warnMissingNarrower {
		cfg.Validation.WarnMissingNarrower = true
	}
	if f.noReports {
		cfg.Reports.Enabled = false
	}
	return cfg, nil
}

// expandInputs resolves a plain path or a doublestar glob pattern into the
// list of files to clean.
func expandInputs(input string) ([]string, error) {
	if !strings.ContainsAny(input, "*?[{") {
		return []string{input}, nil
	}
	matches, err := doublestar.FilepathGlob(input)
	if err != nil {
		return nil, fmt.Errorf("bad input pattern %q: %w", input, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match pattern %q", input)
	}
	return matches, nil
}

// outputPath derives the cleaned-file path: explicit -o wins, otherwise the
// input stem gets a _cleaned suffix.
func outputPath(input, explicit string) string {
	if explicit != "" {
		return explicit
	}
	ext := filepath.Ext(input)
	stem := strings.TrimSuffix(input, ext)
	return stem + "_cleaned" + ext
}

func processFile(cfg *config.Config, input, output string, logger *slog.Logger) error {
	content, encodingName, err := reader.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}
	logger.Info("processing file", "input", input, "encoding", encodingName, "size", len(content))

	p, err := pipeline.New(cfg.Options(), logger)
	if err != nil {
		return err
	}
	result, err := p.Run(content)
	if err != nil {
		return fmt.Errorf("clean %s: %w", input, err)
	}

	if err := os.WriteFile(output, []byte(result.Cleaned), 0644); err != nil {
		return fmt.Errorf("write cleaned file: %w", err)
	}
	logger.Info("cleaned file saved", "output", output)

	fmt.Println(report.CleaningReport(result.State, input, output))
	if result.Validation != nil {
		fmt.Println(report.Console(result.Validation))
	}

	if cfg.Reports.Enabled {
		if err := writeReports(result, input, output); err != nil {
			return err
		}
	}
	return nil
}

func writeReports(result *pipeline.Result, input, output string) error {
	ext := filepath.Ext(output)
	stem := strings.TrimSuffix(output, ext)

	if len(result.State.ChangeLog) > 0 {
		if err := report.WriteFile(stem+"_changes.log", report.ChangeLog(result.State)); err != nil {
			return err
		}
	}
	if result.Validation != nil {
		if err := report.WriteFile(stem+"_validation.log", report.Validation(result.State, result.Validation)); err != nil {
			return err
		}
	}
	return report.WriteFile(stem+"_full.log", report.Full(result.State, result.Validation, input, output))
}

// watchInputs re-runs the pipeline whenever one of the inputs changes.
func watchInputs(cfg *config.Config, inputs []string, explicitOutput string, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	for _, path := range inputs {
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}
	logger.Info("watching for changes", "files", len(inputs))

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Info("input changed, re-cleaning", "file", event.Name)
			if err := processFile(cfg, event.Name, outputPath(event.Name, explicitOutput), logger); err != nil {
				logger.Error("re-clean failed", "file", event.Name, "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "error", err)
		}
	}
}
