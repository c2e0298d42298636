package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"frontdesk-backend/controllers"
	"frontdesk-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controller instances into the route tree. Reads stay
// public; everything that mutates sits behind the auth middleware.
func SetupRouter(
	bc *controllers.BookingController,
	ac *controllers.AvailabilityController,
	jwtSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login(jwtSecret))
		}

		categories := api.Group("/categories")
		{
			categories.GET("", controllers.GetCategories)
			categories.GET("/all", controllers.GetCategories)
			categories.POST("", middleware.Auth(jwtSecret), controllers.CreateCategory)
			categories.PUT("/:id", middleware.Auth(jwtSecret), controllers.UpdateCategory)
			categories.DELETE("/:id", middleware.Auth(jwtSecret), controllers.DeleteCategory)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", controllers.GetRooms)
			rooms.GET("/all", controllers.GetRooms)

			// must stay before /:id routes
			rooms.GET("/available", ac.GetAvailableRooms)

			rooms.POST("", middleware.Auth(jwtSecret), controllers.CreateRoom)
			rooms.PATCH("/:id", middleware.Auth(jwtSecret), controllers.UpdateRoom)
			rooms.PUT("/:id", middleware.Auth(jwtSecret), controllers.UpdateRoom)
			rooms.DELETE("/:id", middleware.Auth(jwtSecret), controllers.DeleteRoom)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.GET("/all", bc.GetBookings)
			bookings.POST("/quote", bc.QuoteBooking)

			// fetch-by-grc must stay before /:id
			bookings.GET("/fetch-by-grc/:grcNo", bc.GetBookingByGRC)
			bookings.GET("/:id", bc.GetBookingDetails)

			bookings.POST("/book", middleware.Auth(jwtSecret), bc.CreateBooking)
			bookings.DELETE("/delete/:id", middleware.Auth(jwtSecret), bc.DeleteBooking)
			bookings.POST("/checkout/:id", middleware.Auth(jwtSecret), bc.CheckoutBooking)
			bookings.POST("/amend/:id", middleware.Auth(jwtSecret), bc.AmendBooking)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/hotel", controllers.GetHotelSettings)
			settings.PUT("/hotel", middleware.Auth(jwtSecret), controllers.UpdateHotelSettings)
		}
	}

	return r
}
