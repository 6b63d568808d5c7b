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

func setupTaskRouterForTest(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()

	taskCtrl := controllers.NewTaskController(db)
	router.POST("/tasks", taskCtrl.CreateTask)
	router.GET("/tasks", taskCtrl.GetTasks)
	router.PUT("/tasks/:id", taskCtrl.UpdateTask)
	router.DELETE("/tasks/:id", taskCtrl.DeleteTask)

	return router
}

func TestTaskCRUD(t *testing.T) {
	utils.InitLogger()

	db := setupTestDB()
	router := setupTaskRouterForTest(db)

	// --- Create ---
	payload := map[string]interface{}{
		"email": "employee@example.com",
		"name":  "Test Employee",
		"task":  "Code review",
		"hours": 2.5,
		"date":  "2024-06-03",
	}
	payloadBytes, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", "/tasks", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	// A second task under another email must not show up in the filter
	db.Create(&models.Task{Email: "other@example.com", Task: "Meeting", Hours: 1})

	// --- List filtered by email ---
	req, _ = http.NewRequest("GET", "/tasks?email=employee@example.com", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Status bool          `json:"status"`
		Data   []models.Task `json:"data"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &listResp)
	assert.NoError(t, err)
	assert.Len(t, listResp.Data, 1)
	assert.Equal(t, "Code review", listResp.Data[0].Task)

	// Missing email param matches nothing
	req, _ = http.NewRequest("GET", "/tasks", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	json.Unmarshal(w.Body.Bytes(), &listResp)
	assert.Len(t, listResp.Data, 0)

	// --- Update ---
	update := map[string]interface{}{
		"task":  "Code review round 2",
		"hours": 3.0,
		"date":  "2024-06-04",
	}
	updateBytes, _ := json.Marshal(update)
	req, _ = http.NewRequest("PUT", "/tasks/1", bytes.NewBuffer(updateBytes))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var task models.Task
	db.First(&task, 1)
	assert.Equal(t, "Code review round 2", task.Task)
	assert.Equal(t, 3.0, task.Hours)

	// --- Update of an unknown id is a reported no-op ---
	req, _ = http.NewRequest("PUT", "/tasks/999", bytes.NewBuffer(updateBytes))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var updResp struct {
		Data struct {
			ModifiedCount int64 `json:"modifiedCount"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &updResp)
	assert.Equal(t, int64(0), updResp.Data.ModifiedCount)

	// --- Delete ---
	req, _ = http.NewRequest("DELETE", "/tasks/1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var delResp struct {
		Data struct {
			DeletedCount int64 `json:"deletedCount"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &delResp)
	assert.Equal(t, int64(1), delResp.Data.DeletedCount)

	var count int64
	db.Model(&models.Task{}).Where("email = ?", "employee@example.com").Count(&count)
	assert.Equal(t, int64(0), count)
}
