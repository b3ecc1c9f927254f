package templa

import (
	"path/filepath"

	"github.com/sdejongh/templa/internal/platform"
	"github.com/sdejongh/templa/pkg/models"
	"gitlab.com/tozd/go/errors"
)

// topLevelName returns the name the top-level entry is matched and renamed
// by. Sources like "." or "/" take the name of the directory they resolve to.
func topLevelName(source, canonical string) string {
	name := filepath.Base(source)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		name = filepath.Base(canonical)
	}
	return name
}

// dirChain holds the canonical paths of the directories on the current walk
// path, root first. Directory symlinks are followed, so a child resolving to
// one of them would recurse forever.
type dirChain []string

// enter checks canonical against the chain and the destination, then pushes it
func (c *dirChain) enter(source, canonical, destCanon string) error {
	for _, ancestor := range *c {
		if platform.SamePath(ancestor, canonical) {
			return models.NewCopyError(models.ResultLogicalError, source,
				errors.Errorf("folder '%s' links back to '%s'", source, ancestor))
		}
	}
	if destCanon != "" && (platform.SamePath(canonical, destCanon) || platform.IsWithin(canonical, destCanon)) {
		return models.NewCopyError(models.ResultLogicalError, source,
			errors.Errorf("folder '%s' contains destination '%s'", source, destCanon))
	}
	*c = append(*c, canonical)
	return nil
}

func (c *dirChain) leave() {
	*c = (*c)[:len(*c)-1]
}
