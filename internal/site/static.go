package site

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CopyStatic mirrors every regular file under src into dst and returns the
// destination paths. With clean set, dst is removed first. A missing src
// copies nothing.
func CopyStatic(src, dst string, clean bool) ([]string, error) {
	if clean {
		if err := os.RemoveAll(dst); err != nil {
			return nil, fmt.Errorf("failed to clean %s: %w", dst, err)
		}
	}
	if err := os.MkdirAll(dst, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if src == "" {
		return nil, nil
	}
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return nil, nil
	}

	files, err := ScanDirectory(src, "")
	if err != nil {
		return nil, err
	}

	copied := make([]string, 0, len(files))
	for _, file := range files {
		rel, err := filepath.Rel(src, file)
		if err != nil {
			return copied, err
		}
		target := filepath.Join(dst, rel)
		if err := copyFile(file, target); err != nil {
			return copied, fmt.Errorf("failed to copy %s: %w", rel, err)
		}
		copied = append(copied, target)
	}

	return copied, nil
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// ScanDirectory scans a directory for files with given extension.
// An empty ext matches every file.
func ScanDirectory(dir string, ext string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() && (ext == "" || filepath.Ext(path) == ext) {
			files = append(files, path)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}
