package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Alielsalek1/learning-management-system-LMS/models"
	"github.com/Alielsalek1/learning-management-system-LMS/utils"
)

// ====== INPUT STRUCTS ======
type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ====== HANDLERS ======

// Register: tự đăng ký luôn là sinh viên; admin tạo các vai trò khác
func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	db := getDB(c)

	// Check email tồn tại
	var existing models.User
	if err := db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		utils.RespondError(c, http.StatusConflict, "Email already in use")
		return
	}

	// Hash password
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Không thể mã hoá mật khẩu")
		return
	}

	newUser := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		Role:     models.RoleStudent,
	}

	if err := db.Create(&newUser).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi tạo người dùng")
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, "Đăng ký thành công", newUser)
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	db := getDB(c)

	var user models.User
	if err := db.Where("name = ?", input.Name).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Tên đăng nhập hoặc mật khẩu không đúng")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Tên đăng nhập hoặc mật khẩu không đúng")
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), string(user.Role))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Không thể tạo token")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "Đăng nhập thành công", gin.H{
		"token": token,
		"user":  user,
	})
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// ChangePassword đổi mật khẩu sau khi xác thực mật khẩu cũ
func ChangePassword(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.OldPassword)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Mật khẩu cũ không đúng")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Không thể mã hoá mật khẩu")
		return
	}

	user.Password = string(hashed)
	if err := getDB(c).Save(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi cập nhật mật khẩu")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "Đổi mật khẩu thành công", nil)
}
