// Package archive bundles an output directory into a single ZIP file.
//
// The archive is a function of what is on disk under the root at archiving
// time, not of the pack the generator just rendered: every regular file
// under root is included, with its path relative to root as the entry name.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Create walks root in lexical order and writes a deflate-compressed ZIP of
// every regular file to dest. It fails if root does not exist or contains
// no regular files. A partially written dest is removed on error so a
// failed run never leaves a corrupt archive behind.
func Create(root, dest string) (err error) {
	info, statErr := os.Stat(root)
	if statErr != nil {
		return fmt.Errorf("archive root %s: %w", root, statErr)
	}
	if !info.IsDir() {
		return fmt.Errorf("archive root %s is not a directory", root)
	}

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating archive %s: %w", dest, err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(dest)
		}
	}()

	zw := zip.NewWriter(f)
	count := 0

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		w, createErr := zw.Create(filepath.ToSlash(rel))
		if createErr != nil {
			return createErr
		}
		src, openErr := os.Open(path)
		if openErr != nil {
			return openErr
		}
		defer src.Close()
		if _, copyErr := io.Copy(w, src); copyErr != nil {
			return fmt.Errorf("archiving %s: %w", path, copyErr)
		}
		count++
		return nil
	})
	if walkErr != nil {
		err = walkErr
		return err
	}
	if count == 0 {
		err = fmt.Errorf("archive root %s contains no files", root)
		return err
	}

	if err = zw.Close(); err != nil {
		return fmt.Errorf("finalizing archive %s: %w", dest, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("closing archive %s: %w", dest, err)
	}
	return nil
}
