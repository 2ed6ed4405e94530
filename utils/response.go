package utils

import "github.com/gin-gonic/gin"

// ApiResponse: mọi endpoint trả về cùng một envelope
type ApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Errors  []string    `json:"errors"`
}

func RespondSuccess(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, ApiResponse{
		Success: true,
		Message: message,
		Data:    data,
		Errors:  []string{},
	})
}

func RespondError(c *gin.Context, status int, message string, errs ...string) {
	if errs == nil {
		errs = []string{}
	}
	c.JSON(status, ApiResponse{
		Success: false,
		Message: message,
		Data:    nil,
		Errors:  errs,
	})
}
