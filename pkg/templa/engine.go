// Package templa instantiates a template tree: it copies a file or directory
// into a destination, renaming entries and rewriting text contents through a
// replacement map while keeping each file's encoding, BOM and line endings.
package templa

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/sdejongh/templa/internal/platform"
	"github.com/sdejongh/templa/pkg/codec"
	"github.com/sdejongh/templa/pkg/logging"
	"github.com/sdejongh/templa/pkg/models"
	"github.com/sdejongh/templa/pkg/output"
	"github.com/sdejongh/templa/pkg/storage"
	"github.com/sdejongh/templa/pkg/wildcard"
	"gitlab.com/tozd/go/errors"
)

// Engine orchestrates one copy operation. Traversal is depth-first and
// single-threaded; every backend call blocks until it completes.
type Engine struct {
	backend   storage.Backend
	formatter output.Formatter
	logger    logging.Logger
	operation *models.CopyOperation

	out        io.Writer
	countFirst bool
}

// NewEngine creates a new copy engine. A nil logger disables logging.
func NewEngine(
	backend storage.Backend,
	formatter output.Formatter,
	logger logging.Logger,
	operation *models.CopyOperation,
) *Engine {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Engine{
		backend:   backend,
		formatter: formatter,
		logger:    logger,
		operation: operation,
	}
}

// SetOutput sets the writer handed to the formatter (stdout when nil)
func (e *Engine) SetOutput(w io.Writer) {
	e.out = w
}

// CountFirst makes Run pre-count entries so the formatter knows the total
func (e *Engine) CountFirst(enabled bool) {
	e.countFirst = enabled
}

// Run executes the copy and returns its report. The returned error, if any,
// is the terminal error also stored in the report; output written before it
// stays in place.
func (e *Engine) Run(ctx context.Context) (*models.CopyReport, error) {
	op := e.operation
	startTime := time.Now()
	op.StartedAt = &startTime

	report := &models.CopyReport{
		OperationID: op.ID,
		SourcePath:  op.SourcePath,
		DestPath:    op.DestPath,
		StartTime:   startTime,
	}

	log := e.logger.WithFields(logging.Fields{"operation_id": op.ID})
	log.Info(ctx, "Starting copy operation", logging.Fields{
		"source":       op.SourcePath,
		"dest":         op.DestPath,
		"replacements": op.Replace.Len(),
		"ignore":       op.Ignore,
	})

	total := 0
	if e.countFirst {
		n, err := Count(ctx, e.backend, op.SourcePath, op.Ignore)
		if err != nil {
			log.Warn(ctx, "Pre-count failed", logging.Fields{"error": err.Error()})
		}
		total = n
	}

	if e.formatter != nil {
		if err := e.formatter.Start(e.out, total); err != nil {
			return nil, errors.Errorf("failed to start formatter: %w", err)
		}
	}

	w := &walker{engine: e, report: report, log: log}
	err := w.run(ctx)

	report.Finish(err)
	completedAt := report.EndTime
	op.CompletedAt = &completedAt

	if err != nil {
		log.Error(ctx, "Copy operation failed", err, logging.Fields{
			"path":   models.PathOf(err),
			"result": report.Result.String(),
		})
		if e.formatter != nil {
			e.formatter.Error(err)
		}
	} else {
		log.Info(ctx, "Copy operation completed", logging.Fields{
			"files":    report.Stats.FilesCopied.Load(),
			"dirs":     report.Stats.DirsCopied.Load(),
			"ignored":  report.Stats.Ignored.Load(),
			"bytes":    report.Stats.BytesWritten.Load(),
			"duration": logging.Since(startTime),
		})
	}

	if e.formatter != nil {
		if ferr := e.formatter.Complete(report); ferr != nil && err == nil {
			return report, errors.Errorf("failed to complete formatter: %w", ferr)
		}
	}

	return report, err
}

// walker holds the per-run traversal state
type walker struct {
	engine *Engine
	report *models.CopyReport
	log    logging.Logger

	destCanon string
	chain     dirChain
}

// run applies the top-level rules and dispatches to the file or directory copy
func (w *walker) run(ctx context.Context) error {
	op := w.engine.operation
	backend := w.engine.backend

	if err := op.Validate(); err != nil {
		return err
	}
	if err := w.checkCanceled(ctx, op.SourcePath); err != nil {
		return err
	}

	source := platform.NormalizePath(op.SourcePath)
	dest := platform.NormalizePath(op.DestPath)

	srcInfo, err := backend.Stat(ctx, source)
	if err != nil {
		return models.NewCopyError(models.ResultReadError, source,
			errors.Errorf("file '%s' not found: %w", source, err))
	}

	destInfo, err := backend.Stat(ctx, dest)
	if err != nil || !destInfo.IsDir {
		return models.NewCopyError(models.ResultWriteError, dest,
			errors.Errorf("'%s' is not a directory", dest))
	}

	srcCanon, err := backend.Canonical(source)
	if err != nil {
		return models.NewCopyError(models.ResultReadError, source, err)
	}
	destCanon, err := backend.Canonical(dest)
	if err != nil {
		return models.NewCopyError(models.ResultWriteError, dest, err)
	}

	if platform.SamePath(srcCanon, destCanon) {
		return models.NewCopyError(models.ResultLogicalError, dest,
			errors.Errorf("destination '%s' is same as source", destCanon))
	}
	if platform.IsWithin(srcCanon, destCanon) {
		return models.NewCopyError(models.ResultLogicalError, dest,
			errors.Errorf("source '%s' contains destination '%s'", srcCanon, destCanon))
	}

	w.destCanon = destCanon

	name := topLevelName(source, srcCanon)
	if w.ignored(name) {
		return w.skip(ctx, source, srcInfo.IsDir)
	}

	target := filepath.Join(dest, op.Replace.Apply(name))

	if srcInfo.IsDir {
		return w.copyDir(ctx, source, target)
	}

	// with an empty map a file copied into its own directory lands on itself
	if targetCanon, err := backend.Canonical(target); err == nil && platform.SamePath(targetCanon, srcCanon) {
		return models.NewCopyError(models.ResultLogicalError, target,
			errors.Errorf("destination '%s' is same as source", targetCanon))
	}
	return w.copyFile(ctx, source, target)
}

// copyDir creates target if needed, reports it and copies every child
func (w *walker) copyDir(ctx context.Context, source, target string) error {
	op := w.engine.operation
	backend := w.engine.backend

	if err := w.checkCanceled(ctx, source); err != nil {
		return err
	}

	canonical, err := backend.Canonical(source)
	if err != nil {
		return models.NewCopyError(models.ResultReadError, source, err)
	}
	if err := w.chain.enter(source, canonical, w.destCanon); err != nil {
		return err
	}
	defer w.chain.leave()

	created, err := backend.Mkdir(ctx, target)
	if err != nil {
		return models.NewCopyError(models.ResultWriteError, target,
			errors.Errorf("cannot create folder '%s': %w", target, err))
	}
	if created {
		w.report.Stats.DirsCreated.Add(1)
	}

	entry := models.CopyEntry{
		SourcePath: source,
		DestPath:   target,
		Kind:       models.KindDir,
		Action:     models.ActionCopy,
	}
	w.emit(entry)
	w.report.Record(entry)

	children, err := backend.ReadDir(ctx, source)
	if err != nil {
		if cerr := w.checkCanceled(ctx, source); cerr != nil {
			return cerr
		}
		return models.NewCopyError(models.ResultReadError, source,
			errors.Errorf("cannot list folder '%s': %w", source, err))
	}

	for _, child := range children {
		if err := w.checkCanceled(ctx, source); err != nil {
			return err
		}
		if child.Name == "." || child.Name == ".." {
			continue
		}

		childSource := filepath.Join(source, child.Name)
		if w.ignored(child.Name) {
			if err := w.skip(ctx, childSource, child.IsDir); err != nil {
				return err
			}
			continue
		}

		childTarget := filepath.Join(target, op.Replace.Apply(child.Name))
		if child.IsDir {
			err = w.copyDir(ctx, childSource, childTarget)
		} else {
			err = w.copyFile(ctx, childSource, childTarget)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// copyFile reads, detects, substitutes, re-encodes and writes one file
func (w *walker) copyFile(ctx context.Context, source, target string) error {
	op := w.engine.operation
	backend := w.engine.backend

	if err := w.checkCanceled(ctx, source); err != nil {
		return err
	}

	raw, err := backend.ReadFile(ctx, source)
	if err != nil {
		if cerr := w.checkCanceled(ctx, source); cerr != nil {
			return cerr
		}
		return models.NewCopyError(models.ResultReadError, source,
			errors.Errorf("cannot read file '%s': %w", source, err))
	}
	w.report.Stats.BytesRead.Add(int64(len(raw)))

	file := codec.Decode(raw)
	if file.Charset.IsText() {
		file.Text = op.Replace.Apply(file.Text)
	}

	if err := w.checkCanceled(ctx, source); err != nil {
		return err
	}

	data := file.Bytes()
	entry := models.CopyEntry{
		SourcePath: source,
		DestPath:   target,
		Kind:       models.KindFile,
		Action:     models.ActionCopy,
		Encoding:   file.Charset.String(),
		BOM:        file.BOM,
		Bytes:      int64(len(data)),
	}
	if file.Charset.IsText() {
		entry.Newline = file.Newline.String()
	}

	fields := logging.Fields{
		"source":   source,
		"dest":     target,
		"encoding": entry.Encoding,
		"bom":      entry.BOM,
		"newline":  entry.Newline,
		"bytes":    entry.Bytes,
	}
	if !file.Charset.IsText() {
		fields["preview"] = preview(file.Display)
	}
	w.log.Debug(ctx, "Copying file", fields)

	w.emit(entry)

	if err := backend.WriteFile(ctx, target, data); err != nil {
		return models.NewCopyError(models.ResultWriteError, target,
			errors.Errorf("cannot write file '%s': %w", target, err))
	}
	w.report.Record(entry)
	return nil
}

// skip reports an excluded entry; directories are not descended into
func (w *walker) skip(ctx context.Context, source string, isDir bool) error {
	kind := models.KindFile
	if isDir {
		kind = models.KindDir
	}
	entry := models.CopyEntry{SourcePath: source, Kind: kind, Action: models.ActionIgnore}
	w.log.Info(ctx, "Ignoring entry", logging.Fields{"source": source, "kind": string(kind)})
	w.emit(entry)
	w.report.Record(entry)
	return nil
}

func (w *walker) ignored(name string) bool {
	return wildcard.MatchAny(name, w.engine.operation.Ignore)
}

func (w *walker) emit(entry models.CopyEntry) {
	if w.engine.formatter == nil {
		return
	}
	if err := w.engine.formatter.Entry(entry); err != nil {
		w.log.Warn(context.Background(), "Failed to print entry", logging.Fields{
			"source": entry.SourcePath,
			"error":  err.Error(),
		})
	}
}

// checkCanceled polls the context and the operation's cancel predicate
func (w *walker) checkCanceled(ctx context.Context, path string) error {
	canceled := ctx.Err() != nil
	if !canceled && w.engine.operation.Canceled != nil {
		canceled = w.engine.operation.Canceled()
	}
	if canceled {
		return models.NewCopyError(models.ResultCanceled, path, models.ErrCanceled)
	}
	return nil
}

// preview shortens binary display text for debug logs
func preview(s string) string {
	const limit = 32
	r := []rune(s)
	if len(r) > limit {
		return string(r[:limit]) + "..."
	}
	return s
}
