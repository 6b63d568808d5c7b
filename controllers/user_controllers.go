package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/coreteam/payroll-app/models"
	"github.com/coreteam/payroll-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// Register a new user. Duplicate emails never create a second document;
// the response shape for that case is pinned by the frontend.
func (uc *UserController) Register(c *gin.Context) {
	type request struct {
		Name          string  `json:"name" binding:"required"`
		Email         string  `json:"email" binding:"required,email"`
		Role          string  `json:"role" binding:"required"` // admin, HR, employee
		BankAccountNo string  `json:"bank_account_no" binding:"required"`
		Salary        float64 `json:"salary" binding:"required"`
		Designation   string  `json:"designation" binding:"required"`
		Photo         string  `json:"photo" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var existing models.User
	err := uc.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusOK, gin.H{
			"message":    "user already exists",
			"insertedId": nil,
		})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user := models.User{
		Name:          req.Name,
		Email:         req.Email,
		Role:          req.Role,
		BankAccountNo: req.BankAccountNo,
		Salary:        req.Salary,
		Designation:   req.Designation,
		Photo:         req.Photo,
	}

	if err := uc.DB.Create(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New user registered: %s (role=%s)", user.Email, user.Role)

	c.JSON(http.StatusCreated, gin.H{
		"insertedId": user.ID,
	})
}

// GetAllUsers -> HR-only employee list
func (uc *UserController) GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := uc.DB.Find(&users).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "All users", users)
}

// GetUserByID -> point lookup, used for self-lookup so it carries no gate
func (uc *UserController) GetUserByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "User detail", user)
}

// RoleProbe serves GET /user/admin/:email and GET /user/hr/:email. Both
// share one wildcard route, so the first segment picks the probe.
func (uc *UserController) RoleProbe(c *gin.Context) {
	switch c.Param("id") {
	case "admin":
		uc.CheckAdmin(c)
	case "hr":
		uc.CheckHR(c)
	default:
		utils.RespondError(c, http.StatusNotFound, errors.New("not found"))
	}
}

// CheckAdmin -> public role probe, answers {admin: bool}. An unknown
// email is simply not an admin.
func (uc *UserController) CheckAdmin(c *gin.Context) {
	email := c.Param("email")

	var user models.User
	err := uc.DB.Where("email = ?", email).First(&user).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": err == nil && user.Role == models.RoleAdmin})
}

// CheckHR -> public role probe, answers {hr: bool}
func (uc *UserController) CheckHR(c *gin.Context) {
	email := c.Param("email")

	var user models.User
	err := uc.DB.Where("email = ?", email).First(&user).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"hr": err == nil && user.Role == models.RoleHR})
}

// FireUser -> admin marks a user as fired. Fired users keep their
// document; they are never hard-deleted.
func (uc *UserController) FireUser(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}

	if err := uc.DB.Model(&user).Update("fired", true).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("User fired: %s", user.Email)
	utils.RespondJSON(c, http.StatusOK, "User fired", gin.H{
		"id":    user.ID,
		"fired": true,
	})
}

// MakeHR -> admin promotes a user to HR. Takes effect on the user's next
// gated request since the gate re-reads the role every time.
func (uc *UserController) MakeHR(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}

	if err := uc.DB.Model(&user).Update("role", models.RoleHR).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("User promoted to HR: %s", user.Email)
	utils.RespondJSON(c, http.StatusOK, "User promoted to HR", gin.H{
		"id":   user.ID,
		"role": models.RoleHR,
	})
}

// VerifyUser -> HR toggles the verified flag
func (uc *UserController) VerifyUser(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}

	verified := !user.IsVerified
	if err := uc.DB.Model(&user).Update("is_verified", verified).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "User verification updated", gin.H{
		"id":         user.ID,
		"isVerified": verified,
	})
}

// UpdateSalary adjusts a user's salary. Salary can only go up.
//
// NOTE: this route is deliberately left without an auth gate to match
// current product behavior; pending product clarification (see router).
func (uc *UserController) UpdateSalary(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var body struct {
		Salary float64 `json:"salary" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}

	if body.Salary < user.Salary {
		utils.RespondError(c, http.StatusBadRequest, errors.New("salary cannot be decreased"))
		return
	}

	if err := uc.DB.Model(&user).Update("salary", body.Salary).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Salary updated", gin.H{
		"id":     user.ID,
		"salary": body.Salary,
	})
}
