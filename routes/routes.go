package routes

import (
	"net/http"
	"time"

	"homeserv/handlers"
	"homeserv/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the handlers the router needs.
type HandlerBundle struct {
	Booking          *handlers.BookingHandler
	Chat             *handlers.ChatHandler
	Auth             *handlers.AuthHandler
	ProfessionalAuth *handlers.ProfessionalAuthHandler
}

// RegisterBookingRoutes registers all booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBookingHandler)
		api.GET("", hb.Booking.GetAllBookingsHandler)
		api.GET("/user/:userID", hb.Booking.GetUserBookingsHandler)
		api.GET("/user/:userID/packages", hb.Booking.GetUserPackageBookingsHandler)
		api.GET("/user/:userID/normal", hb.Booking.GetUserNormalBookingsHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.PUT("/:id", hb.Booking.UpdateBookingHandler)
		api.PUT("/:id/complete", hb.Booking.CompleteJobHandler)
		api.PATCH("/:id/status", hb.Booking.ChangeStatusHandler)
		api.DELETE("/:id", hb.Booking.DeleteBookingHandler)
	}
}

// RegisterChatRoutes registers the triage chat endpoint.
func RegisterChatRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.POST("/api/chat", hb.Chat.HandleChat)
}

// RegisterAuthRoutes registers signup/login endpoints for users and
// professionals, plus the authenticated profile route.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/signup", hb.Auth.SignupHandler)
		auth.POST("/login", hb.Auth.LoginHandler)
	}

	r.POST("/api/professionals/login", hb.ProfessionalAuth.LoginHandler)

	users := r.Group("/api/users")
	users.Use(middleware.JWTAuthUserMiddleware())
	users.GET("/me", hb.Auth.MeHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm HomeServ"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterHealthRoute(r)
}
