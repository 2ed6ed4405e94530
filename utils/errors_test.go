package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondWithError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", fmt.Errorf("%w: không tìm thấy khóa học", ErrNotFound), http.StatusNotFound},
		{"forbidden", fmt.Errorf("%w: không có quyền", ErrForbidden), http.StatusForbidden},
		{"conflict", fmt.Errorf("%w: đã tồn tại", ErrConflict), http.StatusConflict},
		{"validation", fmt.Errorf("%w: dữ liệu sai", ErrValidation), http.StatusBadRequest},
		{"loi khac", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			RespondWithError(c, tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
