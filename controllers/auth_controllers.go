package controllers

import (
	"net/http"

	"github.com/coreteam/payroll-app/utils"
	"github.com/gin-gonic/gin"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// IssueToken -> POST /jwt. Mints a one-hour session token for the
// supplied email. Identity is established client-side by the identity
// provider, so this endpoint does not check that the email exists; the
// role gates re-check the user table on every privileged request anyway.
func (ac *AuthController) IssueToken(c *gin.Context) {
	var body struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	token, err := utils.GenerateToken(body.Email)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
