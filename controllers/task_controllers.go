package controllers

import (
	"net/http"
	"strconv"

	"github.com/coreteam/payroll-app/models"
	"github.com/coreteam/payroll-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Task routes are intentionally unauthenticated: the work-log UI scopes
// everything by the email supplied in the query string.
type TaskController struct {
	DB *gorm.DB
}

func NewTaskController(db *gorm.DB) *TaskController {
	return &TaskController{DB: db}
}

// CreateTask
func (tc *TaskController) CreateTask(c *gin.Context) {
	type reqBody struct {
		Email string  `json:"email" binding:"required,email"`
		Name  string  `json:"name"`
		Task  string  `json:"task" binding:"required"`
		Hours float64 `json:"hours" binding:"required"`
		Date  string  `json:"date"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	task := models.Task{
		Email: body.Email,
		Name:  body.Name,
		Task:  body.Task,
		Hours: body.Hours,
		Date:  body.Date,
	}

	if err := tc.DB.Create(&task).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Task created", task)
}

// GetTasks -> equality filter on the email query param. A missing email
// matches nothing, same as filtering on an absent key.
func (tc *TaskController) GetTasks(c *gin.Context) {
	email := c.Query("email")

	var tasks []models.Task
	if err := tc.DB.Where("email = ?", email).Find(&tasks).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Tasks", tasks)
}

// UpdateTask patches task, hours and date. An unknown id modifies zero
// documents and is reported as such, not as an error.
func (tc *TaskController) UpdateTask(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	type reqBody struct {
		Task  string   `json:"task"`
		Hours *float64 `json:"hours"`
		Date  string   `json:"date"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	updates := map[string]interface{}{}
	if body.Task != "" {
		updates["task"] = body.Task
	}
	if body.Hours != nil {
		updates["hours"] = *body.Hours
	}
	if body.Date != "" {
		updates["date"] = body.Date
	}

	result := tc.DB.Model(&models.Task{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, result.Error)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Task updated", gin.H{
		"matchedCount":  result.RowsAffected,
		"modifiedCount": result.RowsAffected,
	})
}

// DeleteTask
func (tc *TaskController) DeleteTask(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	result := tc.DB.Delete(&models.Task{}, id)
	if result.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, result.Error)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Task deleted", gin.H{
		"deletedCount": result.RowsAffected,
	})
}
