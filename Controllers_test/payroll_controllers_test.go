package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/coreteam/payroll-app/controllers"
	"github.com/coreteam/payroll-app/models"
	"github.com/coreteam/payroll-app/utils"
)

// Gate behavior is covered by the integration test; these exercise the
// payroll handlers directly.
func setupPayrollRouterForTest(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()

	payrollCtrl := controllers.NewPayrollController(db)
	router.POST("/payroll/request", payrollCtrl.CreateRequest)
	router.GET("/payroll", payrollCtrl.GetAllRequests)
	router.PATCH("/payroll/:id", payrollCtrl.ApproveRequest)

	return router
}

func TestPayrollRequestAndApproval(t *testing.T) {
	utils.InitLogger()

	db := setupTestDB()
	router := setupPayrollRouterForTest(db)

	payload := map[string]interface{}{
		"email":  "employee@example.com",
		"name":   "Test Employee",
		"salary": 420.0,
		"month":  "June",
		"year":   2024,
	}
	payloadBytes, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", "/payroll/request", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Duplicate submissions are not deduplicated
	req, _ = http.NewRequest("POST", "/payroll/request", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var count int64
	db.Model(&models.PayrollRequest{}).Count(&count)
	assert.Equal(t, int64(2), count)

	// --- Approve the first request ---
	req, _ = http.NewRequest("PATCH", "/payroll/1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var approveResp struct {
		Data struct {
			ModifiedCount int64 `json:"modifiedCount"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &approveResp)
	assert.Equal(t, int64(1), approveResp.Data.ModifiedCount)

	var request models.PayrollRequest
	db.First(&request, 1)
	assert.NotNil(t, request.PaymentDate)
	assert.NotEmpty(t, request.TransactionID)

	// Approval writes a payment record in minor units
	var record models.PaymentRecord
	assert.NoError(t, db.Where("provider_ref = ?", request.TransactionID).First(&record).Error)
	assert.Equal(t, int64(42000), record.Amount)
	assert.Equal(t, "usd", record.Currency)

	// --- Approving an unknown id is a reported no-op, not a crash ---
	req, _ = http.NewRequest("PATCH", "/payroll/999", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	json.Unmarshal(w.Body.Bytes(), &approveResp)
	assert.Equal(t, int64(0), approveResp.Data.ModifiedCount)
}

func TestPayrollListFilter(t *testing.T) {
	utils.InitLogger()

	db := setupTestDB()
	router := setupPayrollRouterForTest(db)

	db.Create(&models.PayrollRequest{Email: "a@example.com", Salary: 100, Month: "May", Year: 2024})
	db.Create(&models.PayrollRequest{Email: "b@example.com", Salary: 200, Month: "May", Year: 2024})

	req, _ := http.NewRequest("GET", "/payroll?email=a@example.com", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Data []models.PayrollRequest `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &listResp)
	assert.Len(t, listResp.Data, 1)
	assert.Equal(t, "a@example.com", listResp.Data[0].Email)

	// No filter lists everything
	req, _ = http.NewRequest("GET", "/payroll", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	json.Unmarshal(w.Body.Bytes(), &listResp)
	assert.Len(t, listResp.Data, 2)
}
