package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Alielsalek1/learning-management-system-LMS/models"
	"github.com/Alielsalek1/learning-management-system-LMS/utils"
)

type UpdateUserInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
}

type CreateUserInput struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.UserRole `json:"role" binding:"required,oneof=admin instructor student"`
}

func GetMe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", user)
}

func UpdateMe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	updateUserFields(c, user)
}

func GetUserByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := getDB(c).First(&user, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy người dùng")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", user)
}

func UpdateUserByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := getDB(c).First(&user, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy người dùng")
		return
	}
	updateUserFields(c, user)
}

func updateUserFields(c *gin.Context, user models.User) {
	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user.Name = input.Name
	user.Email = input.Email
	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Không thể mã hoá mật khẩu")
			return
		}
		user.Password = string(hashed)
	}

	if err := getDB(c).Save(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi cập nhật người dùng")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Cập nhật thành công", user)
}

// ==== ADMIN TẠO TÀI KHOẢN VỚI VAI TRÒ BẤT KỲ ====
func AdminCreateUser(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	db := getDB(c)

	// Kiểm tra email trùng
	var existing models.User
	if err := db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		utils.RespondError(c, http.StatusConflict, "Email already in use")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Không thể mã hoá mật khẩu")
		return
	}

	newUser := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		Role:     input.Role,
	}

	if err := db.Create(&newUser).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Không thể tạo tài khoản")
		return
	}

	// Gửi email thông báo (không chặn luồng)
	go func() {
		subject := "Tài khoản LMS của bạn đã được tạo"
		body := `
		<h3>Xin chào ` + input.Name + `,</h3>
		<p>Bạn đã được cấp tài khoản trên hệ thống <b>LMS</b> với vai trò <b>` + string(input.Role) + `</b>.</p>
		<p><b>Tên đăng nhập:</b> ` + input.Name + `</p>
		<p>Vui lòng đăng nhập và đổi mật khẩu sau khi sử dụng lần đầu.</p>
		<hr>
		<p><i>Đây là email tự động, vui lòng không trả lời.</i></p>
		`
		if err := utils.SendEmail(input.Email, subject, body); err != nil {
			// In log lỗi, không ảnh hưởng đến API chính
			println("Lỗi gửi email:", err.Error())
		}
	}()

	utils.RespondSuccess(c, http.StatusCreated, "Tạo tài khoản thành công", newUser)
}
