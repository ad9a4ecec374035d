package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"roomstay/internal/container"
	"roomstay/internal/handlers"
	"roomstay/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// API version 1
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "roomstay-api",
			})
		})

		// public routes
		v1.POST("/signup", handlers.Signup(container.UserService))
		v1.POST("/login", handlers.Login(container.UserService))
		v1.POST("/refresh", handlers.Refresh(container.UserService))
		v1.POST("/logout", handlers.Logout())
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(container.UserService, container.Logger))

	roomRoutes := protected.Group("/rooms")
	{
		roomRoutes.GET("/", handlers.ListRooms(container.RoomsService))
		roomRoutes.GET("/:id", handlers.GetRoomByID(container.RoomsService))
		// admin only
		roomRoutes.POST("/", handlers.CreateRoom(container.RoomsService))
		roomRoutes.DELETE("/:id", handlers.DeleteRoom(container.RoomsService))
	}

	bookingRoutes := protected.Group("/bookings")
	{
		bookingRoutes.GET("/", handlers.ListBookings(container.BookingService))
		bookingRoutes.POST("/", handlers.CreateBooking(container.BookingService))
		bookingRoutes.DELETE("/:id", handlers.CancelBooking(container.BookingService))
		bookingRoutes.GET("/:id/receipt", handlers.DownloadReceipt(container.BookingService, container.ReceiptService))
	}

	return r
}
