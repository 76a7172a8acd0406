package routes

import (
	"time"

	"steakz-backend/handlers"
	"steakz-backend/middleware"
	"steakz-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize handlers
	authHandler := &handlers.AuthHandler{DB: db}
	userHandler := &handlers.UserHandler{DB: db}
	orderHandler := &handlers.OrderHandler{DB: db}
	reservationHandler := &handlers.ReservationHandler{DB: db}
	contactHandler := &handlers.ContactHandler{DB: db}
	feedbackHandler := &handlers.FeedbackHandler{DB: db}
	menuHandler := &handlers.MenuHandler{}

	// Credential endpoints get their own bucket
	authLimiter := middleware.NewRateLimiter(10, 1*time.Minute)

	// Public routes
	api := r.Group("/api")
	{
		api.POST("/signup", authLimiter.Middleware(), authHandler.Signup)
		api.POST("/login", authLimiter.Middleware(), authHandler.Login)

		api.GET("/menu", menuHandler.GetMenu)

		api.POST("/contact", contactHandler.CreateContact)
		api.GET("/contacts/status/:status", contactHandler.ListContactsByStatus)

		api.POST("/feedback", feedbackHandler.CreateFeedback)
		api.GET("/feedbacks", feedbackHandler.ListApprovedFeedbacks)
	}

	// Protected routes (require authentication)
	protected := api.Group("")
	protected.Use(middleware.AuthRequired(db))
	{
		protected.GET("/me", authHandler.Me)

		// Orders
		protected.POST("/order", orderHandler.CreateOrder)
		protected.GET("/orders/:userId", middleware.OwnershipOrStaff(), orderHandler.GetUserOrders)
		protected.GET("/orders", middleware.RoleRequired(middleware.StaffRoles...), orderHandler.GetAllOrders)
		protected.PATCH("/orders/:orderId/status", middleware.RoleRequired(middleware.StaffRoles...), orderHandler.UpdateOrderStatus)

		// Reservations
		protected.POST("/reservation", reservationHandler.CreateReservation)
		protected.GET("/reservations", middleware.RoleRequired(middleware.CashierTierRoles...), reservationHandler.ListAllReservations)
		protected.GET("/reservations/:userId", middleware.OwnershipOrStaff(), reservationHandler.GetUserReservations)
		protected.PATCH("/reservations/:reservationId/status", middleware.RoleRequired(middleware.CashierTierRoles...), reservationHandler.UpdateReservationStatus)

		// Contact moderation
		protected.GET("/contacts", middleware.RoleRequired(middleware.StaffRoles...), contactHandler.ListContacts)
		protected.PATCH("/contact/:id/status", middleware.RoleRequired(middleware.StaffRoles...), contactHandler.UpdateContactStatus)

		// Feedback moderation
		protected.GET("/admin/feedbacks", middleware.RoleRequired(middleware.StaffRoles...), feedbackHandler.ListAllFeedbacks)
		protected.PATCH("/admin/feedback/:id/status", middleware.RoleRequired(middleware.StaffRoles...), feedbackHandler.UpdateFeedbackStatus)
	}

	// Admin routes (require admin role)
	admin := api.Group("")
	admin.Use(middleware.AuthRequired(db))
	admin.Use(middleware.RoleRequired(models.RoleAdmin))
	{
		// Staff account creation
		admin.POST("/create-cashier", authHandler.CreateCashier)
		admin.POST("/create-chef", authHandler.CreateChef)
		admin.POST("/create-admin", authHandler.CreateAdmin)

		// User management
		admin.GET("/users", userHandler.ListUsers)
		admin.POST("/users", userHandler.CreateUser)
		admin.PATCH("/user/:id/role", userHandler.UpdateUserRole)
		admin.DELETE("/users/:id", userHandler.DeleteUser)
	}

	// Endpoint index
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Steakz Restaurant API",
			"endpoints": []string{
				"POST /api/signup",
				"POST /api/login",
				"GET /api/menu",
				"POST /api/order",
				"GET /api/orders/:userId",
				"POST /api/reservation",
				"GET /api/reservations",
				"GET /api/reservations/:userId",
				"POST /api/create-cashier",
				"POST /api/create-chef",
				"POST /api/create-admin",
				"POST /api/contact",
				"GET /api/contacts",
				"GET /api/contacts/status/:status",
				"PATCH /api/contact/:id/status",
				"POST /api/feedback",
				"GET /api/feedbacks",
			},
		})
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
