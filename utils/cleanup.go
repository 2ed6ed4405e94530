package utils

import (
	"log"
	"os"
	"path/filepath"
	"time"
)

// ExportRoot: thư mục chứa các thư mục tạm per-request khi xuất chart/zip.
// Mỗi request tạo một thư mục con riêng bằng os.MkdirTemp nên không đụng
// nhau; dọn dẹp ở đây chỉ để vét các thư mục sót lại sau crash.
func ExportRoot() string {
	root := os.Getenv("EXPORT_DIR")
	if root == "" {
		root = filepath.Join(os.TempDir(), "lms-exports")
	}
	os.MkdirAll(root, 0o755)
	return root
}

// CleanupStaleExports xóa thư mục export tạm cũ hơn 1 giờ
func CleanupStaleExports() {
	root := ExportRoot()
	entries, err := os.ReadDir(root)
	if err != nil {
		log.Printf("Lỗi khi đọc thư mục export: %v", err)
		return
	}

	cutoff := time.Now().Add(-1 * time.Hour)
	removed := 0
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.RemoveAll(filepath.Join(root, entry.Name())); err == nil {
			removed++
		}
	}

	if removed > 0 {
		log.Printf("Đã xóa %d thư mục export tạm quá hạn", removed)
	}
}

// StartExportCleanupJob chạy cleanup job định kỳ
func StartExportCleanupJob() {
	// Chạy cleanup ngay lần đầu khi khởi động
	CleanupStaleExports()

	// Thiết lập ticker để chạy mỗi 6 giờ
	ticker := time.NewTicker(6 * time.Hour)

	go func() {
		defer ticker.Stop()
		for range ticker.C {
			CleanupStaleExports()
		}
	}()

	log.Println("Export cleanup job đã được khởi động (chạy mỗi 6 giờ)")
}
