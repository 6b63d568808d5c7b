package router

import (
	"github.com/coreteam/payroll-app/controllers"
	"github.com/coreteam/payroll-app/middlewares"
	"github.com/coreteam/payroll-app/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// Middleware must be attached before any route is registered: gin
	// freezes each route's handler chain at registration time.
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	authCtrl := controllers.NewAuthController()
	userCtrl := controllers.NewUserController(db)
	taskCtrl := controllers.NewTaskController(db)
	payrollCtrl := controllers.NewPayrollController(db)
	paymentCtrl := controllers.NewPaymentController(db, services.GetStripeService())

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "CoreTeam payroll API"})
	})
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Token issuance and registration get the strict limiter
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/jwt", authCtrl.IssueToken)
		public.POST("/user", userCtrl.Register)
	}

	// Self-lookup and role probes (public by design). Gin cannot mix a
	// static segment with a wildcard at the same position, so the
	// /user/admin/:email and /user/hr/:email probes are dispatched off
	// the shared wildcard route.
	r.GET("/user/:id", userCtrl.GetUserByID)
	r.GET("/user/:id/:email", userCtrl.RoleProbe)

	// Ungated in the current product revision; pending clarification
	// whether this should sit behind the HR gate.
	r.PATCH("/user/salary/:id", userCtrl.UpdateSalary)

	// Work-log CRUD, scoped by the email query param (public by design)
	r.POST("/tasks", taskCtrl.CreateTask)
	r.GET("/tasks", taskCtrl.GetTasks)
	r.PUT("/tasks/:id", taskCtrl.UpdateTask)
	r.DELETE("/tasks/:id", taskCtrl.DeleteTask)

	// ----------------------------------------------------------------
	//                      HR ROUTES
	// ----------------------------------------------------------------
	hr := r.Group("/")
	hr.Use(middlewares.AuthMiddleware(), middlewares.RequireHR(db))
	{
		hr.GET("/user", userCtrl.GetAllUsers)
		hr.PATCH("/user/verify/:id", userCtrl.VerifyUser)
		hr.POST("/payroll/request", payrollCtrl.CreateRequest)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireAdmin(db))
	{
		admin.PUT("/user/fire/:id", userCtrl.FireUser)
		admin.PUT("/user/make-hr/:id", userCtrl.MakeHR)
		admin.GET("/payroll", payrollCtrl.GetAllRequests)
		admin.PATCH("/payroll/:id", payrollCtrl.ApproveRequest)
		admin.POST("/create-payment-intent", paymentCtrl.CreatePaymentIntent)
	}

	return r
}
