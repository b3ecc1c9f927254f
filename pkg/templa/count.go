package templa

import (
	"context"
	"path/filepath"

	"github.com/sdejongh/templa/pkg/storage"
	"github.com/sdejongh/templa/pkg/wildcard"
)

// Count returns the number of entries a run over source will report:
// every copied file and directory plus every ignored entry. Ignored
// directories count once and are not descended into. On a listing error, or
// a directory linking back into its own path, the partial count is returned
// together with the error.
func Count(ctx context.Context, backend storage.Backend, source string, ignore []string) (int, error) {
	info, err := backend.Stat(ctx, source)
	if err != nil {
		return 0, err
	}
	canonical, err := backend.Canonical(source)
	if err != nil {
		return 0, err
	}
	if wildcard.MatchAny(topLevelName(source, canonical), ignore) || !info.IsDir {
		return 1, nil
	}

	var chain dirChain
	return countDir(ctx, backend, source, ignore, &chain)
}

func countDir(ctx context.Context, backend storage.Backend, dir string, ignore []string, chain *dirChain) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	canonical, err := backend.Canonical(dir)
	if err != nil {
		return 0, err
	}
	if err := chain.enter(dir, canonical, ""); err != nil {
		return 0, err
	}
	defer chain.leave()

	children, err := backend.ReadDir(ctx, dir)
	if err != nil {
		return 1, err
	}

	total := 1
	for _, child := range children {
		if child.Name == "." || child.Name == ".." {
			continue
		}
		if !child.IsDir || wildcard.MatchAny(child.Name, ignore) {
			total++
			continue
		}
		n, err := countDir(ctx, backend, filepath.Join(dir, child.Name), ignore, chain)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
