package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_plagiarism"
	"github.com/baditaflorin/go_plagiarism/internal/adapters/logger"
	"github.com/baditaflorin/go_plagiarism/internal/adapters/source"
	"github.com/baditaflorin/go_plagiarism/internal/config"
	"github.com/baditaflorin/go_plagiarism/internal/ports"
	"github.com/baditaflorin/go_plagiarism/internal/report"
)

type rootOptions struct {
	configPath    string
	stopWordsPath string
	threshold     float64
	minSequence   int
	workers       int
	format        string
	logFile       string
	verbose       bool
}

func newRootCommand() *cobra.Command {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:           "plagiarism <file1> <file2> [file...]",
		Short:         "Detect potential plagiarism between text documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				fmt.Fprintln(cmd.OutOrStdout(), "Usage: plagiarism <file1> <file2> ...")
				return nil
			}
			return runDetect(cmd, args, &opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Configuration file path (TOML)")
	flags.StringVar(&opts.stopWordsPath, "stop-words", "", "Whitespace-separated stop-word list added to the built-in words")
	flags.Float64Var(&opts.threshold, "threshold", config.Default().Detection.SimilarityThreshold, "Similarity threshold (0.0-1.0)")
	flags.IntVar(&opts.minSequence, "min-sequence", config.Default().Detection.MinSequenceLength, "Minimum matched word sequence length")
	flags.IntVar(&opts.workers, "workers", config.Default().Detection.Workers, "Number of pairs compared concurrently")
	flags.StringVar(&opts.format, "format", string(report.FormatText), "Output format: 'text', 'table', or 'json'")
	flags.StringVar(&opts.logFile, "log-file", "", "Log file path (empty = stderr)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

// resolveConfig loads the config file and applies explicitly set flags on top.
func resolveConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, _, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("threshold") {
		cfg.Detection.SimilarityThreshold = opts.threshold
	}
	if flags.Changed("min-sequence") {
		cfg.Detection.MinSequenceLength = opts.minSequence
	}
	if flags.Changed("workers") {
		cfg.Detection.Workers = max(opts.workers, 1)
	}
	if flags.Changed("stop-words") {
		cfg.StopWords.File = opts.stopWordsPath
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = opts.logFile
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runDetect(cmd *cobra.Command, args []string, opts *rootOptions) error {
	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer log.Close()

	loader := source.NewLoader(log)
	stop := loader.LoadStopWords(cfg.StopWords.File, cfg.StopWords.Extra...)

	loaded := loader.LoadDocuments(args)
	for _, skipped := range loaded.Skipped {
		fmt.Fprintf(cmd.ErrOrStderr(), "File not found: %s\n", skipped.Path)
	}

	detector, err := plagiarism.New(
		plagiarism.WithThreshold(cfg.Detection.SimilarityThreshold),
		plagiarism.WithMinSequenceLength(cfg.Detection.MinSequenceLength),
		plagiarism.WithStopWords(stop),
		plagiarism.WithWorkers(cfg.Detection.Workers),
		plagiarism.WithPortsLogger(log),
	)
	if err != nil {
		return err
	}

	inputs := make([]plagiarism.Input, len(loaded.Documents))
	for i, doc := range loaded.Documents {
		inputs[i] = plagiarism.Input{ID: doc.Path, Text: doc.Text}
	}

	findings, err := detector.Detect(cmd.Context(), inputs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	return report.Render(out, format, findings, report.Options{Color: shouldColorize(out)})
}

func newLogger(cfg config.Logging, stderr io.Writer) (ports.Logger, error) {
	level, err := logger.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	output := stderr
	var file *os.File
	if cfg.File != "" {
		file, err = os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		output = file
	}

	lcfg := logger.DefaultConfig(output, cfg.JSON)
	// Log lines share stderr with user-facing notices, so keep them in order.
	lcfg.AsyncWrite = false
	base, err := logger.NewCustomStdLogger(lcfg)
	if err != nil {
		if file != nil {
			file.Close()
		}
		return nil, fmt.Errorf("create logger: %w", err)
	}
	log := logger.WithLevel(base, level)
	if file != nil {
		return &fileLogger{Logger: log, file: file}, nil
	}
	return log, nil
}

// fileLogger closes the log file after the logger has flushed.
type fileLogger struct {
	ports.Logger
	file *os.File
}

func (f *fileLogger) Close() error {
	err := f.Logger.Close()
	if cerr := f.file.Close(); err == nil {
		err = cerr
	}
	return err
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
