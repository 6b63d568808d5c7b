package controllers

import (
	"errors"
	"net/http"

	"github.com/coreteam/payroll-app/models"
	"github.com/coreteam/payroll-app/services"
	"github.com/coreteam/payroll-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PaymentController struct {
	DB     *gorm.DB
	Stripe *services.StripeService
}

func NewPaymentController(db *gorm.DB, stripe *services.StripeService) *PaymentController {
	return &PaymentController{DB: db, Stripe: stripe}
}

// CreatePaymentIntent -> admin starts a salary payment. The salary comes
// in major units and goes to the processor in integer minor units; the
// client secret goes back to the frontend to complete the payment.
func (pc *PaymentController) CreatePaymentIntent(c *gin.Context) {
	var body struct {
		Email  string  `json:"email"`
		Salary float64 `json:"salary" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Salary <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("salary must be positive"))
		return
	}

	amount := utils.MinorUnits(body.Salary)

	intent, err := pc.Stripe.CreatePaymentIntent(amount, "usd")
	if err != nil {
		utils.ErrorLogger.Printf("payment intent failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to create payment intent"))
		return
	}

	record := models.PaymentRecord{
		Email:       body.Email,
		Amount:      amount,
		Currency:    "usd",
		ProviderRef: intent.ID,
	}
	if err := pc.DB.Create(&record).Error; err != nil {
		utils.ErrorLogger.Printf("failed to record payment intent %s: %v", intent.ID, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"clientSecret": intent.ClientSecret,
	})
}
