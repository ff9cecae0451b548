package composite

import (
	"fmt"
	"os"
	"path/filepath"
)

// BuildFromDisk mirrors the directory at dirPath under a new root.
func BuildFromDisk(dirPath string) (*Dir, error) {
	p := filepath.Clean(dirPath)
	info, err := os.Stat(p)
	if err != nil {
		return nil, &ValidationError{Arg: dirPath, Cause: "not found or not accessible", Err: err}
	}
	if !info.IsDir() {
		return nil, &ValidationError{Arg: dirPath, Cause: "not a directory"}
	}

	root := NewRoot()
	if err := buildDirTree(p, root); err != nil {
		return nil, err
	}
	return root, nil
}

func buildDirTree(dirPath string, dir *Dir) error {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dirPath, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			childDir := NewDir(entry.Name(), dir)
			if err := buildDirTree(filepath.Join(dirPath, entry.Name()), childDir); err != nil {
				return err
			}
			continue
		}
		NewFile(entry.Name(), dir)
	}

	return nil
}
