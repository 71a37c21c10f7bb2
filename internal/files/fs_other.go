//go:build !windows

package files

import "os"

func replaceFile(src, dst string) error {
	return os.Rename(src, dst)
}

// Symlinks are caught by Lstat.
func isLinkLike(string) (bool, error) {
	return false, nil
}

func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
