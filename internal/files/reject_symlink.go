package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SymlinkError reports a link found on the way to an output path.
type SymlinkError struct {
	Path string
	// At is the first component that is a link.
	At string
}

func (e *SymlinkError) Error() string {
	if e.At == e.Path {
		return fmt.Sprintf("refusing to write through symlink %s", e.Path)
	}
	return fmt.Sprintf("refusing to write to %s: %s is a symlink", e.Path, e.At)
}

// RejectSymlinkPath fails when path, or any existing directory above it,
// is a symlink or Windows reparse point. Components that do not exist yet
// end the walk.
func RejectSymlinkPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("path is empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	vol := filepath.VolumeName(abs)
	current := vol + string(filepath.Separator)
	for _, part := range strings.Split(strings.TrimPrefix(abs[len(vol):], string(filepath.Separator)), string(filepath.Separator)) {
		if part == "" {
			continue
		}
		current = filepath.Join(current, part)
		info, err := os.Lstat(current)
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to inspect %s: %w", current, err)
		}
		link := info.Mode()&os.ModeSymlink != 0
		if !link {
			if link, err = isLinkLike(current); err != nil {
				return fmt.Errorf("failed to inspect %s: %w", current, err)
			}
		}
		if link {
			return &SymlinkError{Path: abs, At: current}
		}
	}
	return nil
}
