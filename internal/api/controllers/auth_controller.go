package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"findflow/internal/models/request_models"
	"findflow/pkg/utils"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// TokenHandler exchanges the admin password for a short-lived JWT used on
// the category management endpoints.
func (ac *AuthController) TokenHandler(c *gin.Context) {
	var req request_models.AdminTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	if hash == "" || utils.ComparePasswords(hash, req.Password) != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.CreateToken("admin", "admin")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Token issued")
}
