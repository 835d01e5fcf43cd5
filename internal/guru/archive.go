package guru

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ArchiveName is the filename of the build archive, written as a sibling
// of the output directory.
const ArchiveName = "guru.zip"

// Archive zips the entire output directory into ../guru.zip. A pre-existing
// archive is removed first; the build is never incremental. Entry names are
// relative to the output root. Returns the archive path.
func Archive(outDir string) (string, error) {
	archivePath := filepath.Join(filepath.Dir(filepath.Clean(outDir)), ArchiveName)

	if err := os.Remove(archivePath); err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("removing previous archive: %w", err)
	}

	f, err := os.Create(archivePath)
	if err != nil {
		return "", fmt.Errorf("creating archive: %w", err)
	}

	zw := zip.NewWriter(f)
	walkErr := filepath.WalkDir(outDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(outDir, p)
		if err != nil {
			return err
		}

		entry, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}

		src, err := os.Open(p)
		if err != nil {
			return err
		}
		defer src.Close() //nolint:errcheck // best-effort close on read-only file

		_, err = io.Copy(entry, src)
		return err
	})

	if err := zw.Close(); err != nil && walkErr == nil {
		walkErr = err
	}
	if err := f.Close(); err != nil && walkErr == nil {
		walkErr = err
	}
	if walkErr != nil {
		return "", fmt.Errorf("archiving %s: %w", outDir, walkErr)
	}

	return archivePath, nil
}
