package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Các loại lỗi nghiệp vụ; controller ánh xạ sang status code.
// Thứ tự kiểm tra thống nhất toàn hệ thống: not-found trước, authorization sau.
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("already exists")
	ErrValidation = errors.New("validation failed")
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithError trả envelope lỗi theo loại lỗi nghiệp vụ
func RespondWithError(c *gin.Context, err error) {
	RespondError(c, statusFor(err), err.Error())
}
