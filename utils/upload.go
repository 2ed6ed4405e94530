package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
)

func uploadRoot() string {
	root := os.Getenv("UPLOAD_DIR")
	if root == "" {
		root = "uploads"
	}
	return root
}

// SaveUploadedFile lưu file multipart vào uploads/<subdir>/ với tên file
// có tiền tố định danh và tiêu đề đã slug hóa, trả về tên file đã lưu.
func SaveUploadedFile(c *gin.Context, file *multipart.FileHeader, subdir, ownerID, title string) (string, error) {
	dir := filepath.Join(uploadRoot(), subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("không tạo được thư mục upload: %v", err)
	}

	fileName := fmt.Sprintf("%s_%s_%s", ownerID, slug.Make(title), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(dir, fileName)); err != nil {
		return "", fmt.Errorf("không lưu được file: %v", err)
	}
	return fileName, nil
}

// UploadPath trả đường dẫn tuyệt đối của một file đã upload
func UploadPath(subdir, fileName string) string {
	return filepath.Join(uploadRoot(), subdir, fileName)
}
