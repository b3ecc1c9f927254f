package cli

import (
	"context"
	"fmt"

	"github.com/sdejongh/templa/pkg/codec"
	"github.com/sdejongh/templa/pkg/models"
	"github.com/sdejongh/templa/pkg/storage"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewDetectCommand creates the detect command
func NewDetectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detect FILE...",
		Short: "Show how files would be classified",
		Long: `Print the character encoding, byte order mark and line ending style
templa detects for each file, without copying anything.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return syntaxError(errors.New("detect requires at least one file"))
			}
			return nil
		},
		RunE: runDetect,
	}
}

func runDetect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	backend := storage.NewLocal()
	defer backend.Close()

	out := cmd.OutOrStdout()
	for _, path := range args {
		raw, err := backend.ReadFile(ctx, path)
		if err != nil {
			return models.NewCopyError(models.ResultReadError, path,
				errors.Errorf("cannot read file '%s': %w", path, err))
		}

		file := codec.Decode(raw)
		if !file.Charset.IsText() {
			fmt.Fprintf(out, "%s: %s\n", path, file.Charset)
			continue
		}

		bom := "no"
		if file.BOM {
			bom = "yes"
		}
		fmt.Fprintf(out, "%s: %s bom=%s newline=%s\n", path, file.Charset, bom, file.Newline)
	}
	return nil
}
