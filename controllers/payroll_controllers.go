package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/coreteam/payroll-app/models"
	"github.com/coreteam/payroll-app/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PayrollController struct {
	DB *gorm.DB
}

func NewPayrollController(db *gorm.DB) *PayrollController {
	return &PayrollController{DB: db}
}

// CreateRequest -> HR raises a payment request for an employee. There is
// no idempotency key; a double submit creates two requests.
func (pc *PayrollController) CreateRequest(c *gin.Context) {
	type reqBody struct {
		Email  string  `json:"email" binding:"required,email"`
		Name   string  `json:"name"`
		Salary float64 `json:"salary" binding:"required"`
		Month  string  `json:"month" binding:"required"`
		Year   int     `json:"year" binding:"required"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	request := models.PayrollRequest{
		Email:  body.Email,
		Name:   body.Name,
		Salary: body.Salary,
		Month:  body.Month,
		Year:   body.Year,
	}

	if err := pc.DB.Create(&request).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Payroll request created for %s (%s %d)", request.Email, request.Month, request.Year)
	utils.RespondJSON(c, http.StatusCreated, "Payroll request created", request)
}

// GetAllRequests -> admin lists payroll requests, optionally filtered by
// employee email
func (pc *PayrollController) GetAllRequests(c *gin.Context) {
	var requests []models.PayrollRequest

	query := pc.DB
	if email := c.Query("email"); email != "" {
		query = query.Where("email = ?", email)
	}

	if err := query.Find(&requests).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Payroll requests", requests)
}

// ApproveRequest -> admin approves a payroll request: stamps the payment
// date and a transaction reference, and records the payment. An unknown
// id updates zero documents and the response says so.
func (pc *PayrollController) ApproveRequest(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	type reqBody struct {
		PaymentDate *time.Time `json:"payment_date"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil && c.Request.ContentLength > 0 {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	paymentDate := time.Now()
	if body.PaymentDate != nil {
		paymentDate = *body.PaymentDate
	}
	transactionID := uuid.NewString()

	result := pc.DB.Model(&models.PayrollRequest{}).Where("id = ?", id).Updates(map[string]interface{}{
		"payment_date":   paymentDate,
		"transaction_id": transactionID,
	})
	if result.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, result.Error)
		return
	}

	if result.RowsAffected > 0 {
		var request models.PayrollRequest
		if err := pc.DB.First(&request, id).Error; err == nil {
			record := models.PaymentRecord{
				Email:       request.Email,
				Amount:      utils.MinorUnits(request.Salary),
				Currency:    "usd",
				ProviderRef: transactionID,
			}
			if err := pc.DB.Create(&record).Error; err != nil {
				utils.ErrorLogger.Printf("failed to record payment for payroll %d: %v", id, err)
			}
		}
		utils.InfoLogger.Printf("Payroll request %d approved (tx=%s)", id, transactionID)
	}

	utils.RespondJSON(c, http.StatusOK, "Payroll request updated", gin.H{
		"matchedCount":  result.RowsAffected,
		"modifiedCount": result.RowsAffected,
	})
}
