package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/sdejongh/templa/pkg/config"
	"github.com/sdejongh/templa/pkg/logging"
	"github.com/sdejongh/templa/pkg/models"
	"github.com/sdejongh/templa/pkg/output"
	"github.com/sdejongh/templa/pkg/storage"
	"github.com/sdejongh/templa/pkg/templa"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewRootCommand creates the templa command, which copies when given
// positional arguments and hosts the auxiliary subcommands
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templa [flags] SOURCE... DESTINATION",
		Short: "Copy a template tree while substituting strings",
		Long: `templa copies files or folders into a destination folder, replacing
literal strings in file names, folder names and text contents.

Each file keeps its character encoding, byte order mark and line endings.
Binary files are copied unchanged.`,
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			return validateArgs(args)
		},
		RunE: runCopy,
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return syntaxError(err)
	})

	AddGlobalFlags(cmd)
	addCopyFlags(cmd.Flags())

	cmd.AddCommand(NewConfigCommand())
	cmd.AddCommand(NewDetectCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// Execute runs the command line and returns the process exit code
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var reported *reportedError
	if !errors.As(err, &reported) {
		fmt.Fprintln(stderr, output.FormatError(err))
	}
	return models.ResultOf(err).ExitCode()
}

func runCopy(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		return syntaxError(errors.Errorf("failed to load config: %w", err))
	}

	// Override config with command-line flags
	applyFlagsToConfig(cfg, cmd.Flags())
	if err := cfg.Validate(); err != nil {
		return err
	}

	substitutions, err := buildReplaceMap(cfg)
	if err != nil {
		return syntaxError(err)
	}

	// Create output formatter
	formatter, err := createFormatter(cfg, cmd.ErrOrStderr())
	if err != nil {
		return syntaxError(err)
	}

	// Create logger
	logger, err := createLogger(cfg.Logging)
	if err != nil {
		return writeError(cfg.Logging.File, errors.Errorf("failed to create logger: %w", err))
	}
	defer logger.Close()

	backend := storage.NewLocal()
	defer backend.Close()

	sources, dest := args[:len(args)-1], args[len(args)-1]
	for _, source := range sources {
		operation, err := createCopyOperation(cfg, substitutions, source, dest)
		if err != nil {
			return err
		}

		engine := templa.NewEngine(backend, formatter, logger, operation)
		engine.SetOutput(cmd.OutOrStdout())
		engine.CountFirst(cfg.Output.Progress)

		if _, err := engine.Run(ctx); err != nil {
			return &reportedError{err: err}
		}
	}

	return nil
}

// createFormatter builds the entry formatter, wrapped with a progress bar
// when requested
func createFormatter(cfg *config.Config, errWriter io.Writer) (output.Formatter, error) {
	formatter, err := output.New(cfg.Output.Format, errWriter, cfg.Output.Quiet)
	if err != nil {
		return nil, err
	}
	if cfg.Output.Progress {
		formatter = output.NewProgressFormatter(formatter, errWriter)
	}
	return formatter, nil
}

// createLogger creates a logger based on configuration
func createLogger(cfg config.LoggingConfig) (logging.Logger, error) {
	// If no log file specified, return null logger
	if cfg.File == "" {
		return logging.NewNullLogger(), nil
	}

	// Parse log format
	var format logging.Format
	switch cfg.Format {
	case "json":
		format = logging.FormatJSON
	default:
		format = logging.FormatText
	}

	return logging.New(logging.Config{
		Path:   cfg.File,
		Format: format,
		Level:  logging.ParseLevel(cfg.Level),
	})
}
