package utils

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
)

// ZipFiles nén danh sách file vào w. File không tồn tại thì bỏ qua.
func ZipFiles(w io.Writer, paths []string) error {
	zw := zip.NewWriter(w)
	defer zw.Close()

	for _, path := range paths {
		src, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}

		entry, err := zw.Create(filepath.Base(path))
		if err != nil {
			src.Close()
			return err
		}
		if _, err := io.Copy(entry, src); err != nil {
			src.Close()
			return err
		}
		src.Close()
	}

	return nil
}
