package cli

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sdejongh/templa/internal/platform"
	"github.com/sdejongh/templa/pkg/config"
	"github.com/sdejongh/templa/pkg/models"
	"github.com/sdejongh/templa/pkg/replace"
	"github.com/spf13/pflag"
	"gitlab.com/tozd/go/errors"
)

// errUsage is the cause of argument count errors
var errUsage = errors.Base("usage: templa [flags] SOURCE... DESTINATION")

// reportedError marks an error the formatter has already printed
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func syntaxError(err error) error {
	return models.NewCopyError(models.ResultSyntaxError, "", err)
}

func writeError(path string, err error) error {
	return models.NewCopyError(models.ResultWriteError, path, err)
}

// validateArgs checks the positional arguments of the copy command
func validateArgs(args []string) error {
	if len(args) < 2 {
		return syntaxError(errUsage)
	}
	for _, arg := range args {
		if err := platform.ValidatePath(arg); err != nil {
			return syntaxError(err)
		}
	}
	return nil
}

// loadConfig loads configuration from file or returns default
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// applyFlagsToConfig overrides config values with the flags set on the
// command line
func applyFlagsToConfig(cfg *config.Config, flags *pflag.FlagSet) {
	if flags.Changed("ignore") {
		cfg.Ignore = splitIgnore(copyFlags.Ignore)
	}

	if flags.Changed("output") {
		cfg.Output.Format = copyFlags.Output
	}
	if flags.Changed("progress") {
		cfg.Output.Progress = copyFlags.Progress
	}
	if globalFlags.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}

	if flags.Changed("log-file") {
		cfg.Logging.File = copyFlags.LogFile
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = copyFlags.LogFormat
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = copyFlags.LogLevel
	}
}

// buildReplaceMap layers the --replace pairs over the configured ones
func buildReplaceMap(cfg *config.Config) (*replace.Map, error) {
	m := cfg.ReplaceMap()
	for _, pair := range copyFlags.Replace {
		if err := m.Parse(pair); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// splitIgnore splits a ';'-separated pattern list, dropping empty items
func splitIgnore(list string) []string {
	patterns := make([]string, 0)
	for _, p := range strings.Split(list, ";") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// createCopyOperation creates a copy operation for one source
func createCopyOperation(cfg *config.Config, substitutions *replace.Map, source, dest string) (*models.CopyOperation, error) {
	operation := &models.CopyOperation{
		ID:         uuid.New().String(),
		SourcePath: platform.NormalizePath(source),
		DestPath:   platform.NormalizePath(dest),
		Replace:    substitutions,
		Ignore:     cfg.Ignore,
		CreatedAt:  time.Now(),
	}

	if err := operation.Validate(); err != nil {
		return nil, err
	}

	return operation, nil
}
