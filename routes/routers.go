package routes

import (
	"github.com/gin-gonic/gin"

	"stayhub/constants"
	"stayhub/controllers"
	middlewares "stayhub/middleware"
)

func SetupRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	// Public
	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.POST("/auth/verify", controllers.VerifyEmail)
	v1.POST("/resendCode", controllers.ResendVerificationCode)
	v1.DELETE("/auth/logout", controllers.Logout)

	v1.GET("/properties", controllers.GetProperties)
	v1.GET("/properties/:slug", controllers.GetPropertyBySlug)
	v1.GET("/properties/:slug/rooms", controllers.GetPropertyRoomsBySlug)
	v1.GET("/properties/:slug/reviews", controllers.GetPropertyReviews)

	// Authenticated users
	v1.GET("/profile", middlewares.AuthMiddleware(), controllers.GetProfile)
	v1.POST("/bookings", middlewares.AuthMiddleware(), controllers.CreateBooking)
	v1.GET("/bookings", middlewares.AuthMiddleware(), controllers.GetMyBookings)
	v1.GET("/bookings/:id", middlewares.AuthMiddleware(), controllers.GetBookingDetail)
	v1.POST("/reviews", middlewares.AuthMiddleware(), controllers.CreateReview)
	v1.POST("/partner-applications", middlewares.AuthMiddleware(), controllers.SubmitApplication)
	v1.GET("/partner-applications/me", middlewares.AuthMiddleware(), controllers.GetMyApplication)

	// Partners
	partner := v1.Group("", middlewares.AuthMiddleware(constants.RolePartner, constants.RoleAdmin))
	partner.GET("/partner/properties", controllers.GetPartnerProperties)
	partner.POST("/partner/properties", controllers.CreateProperty)
	partner.PUT("/partner/properties", controllers.UpdateProperty)
	partner.GET("/partner/rooms", controllers.GetPartnerRooms)
	partner.POST("/partner/rooms", controllers.CreateRoom)
	partner.PUT("/partner/rooms", controllers.UpdateRoom)
	partner.GET("/partner/bookings", controllers.GetPartnerBookings)
	partner.PUT("/partner/bookings/status", controllers.ChangeBookingStatus)
	partner.POST("/img/upload", controllers.UploadImage)
	partner.POST("/img/multi-upload", controllers.UploadImages)

	// Admins
	admin := v1.Group("/admin", middlewares.AuthMiddleware(constants.RoleAdmin))
	admin.GET("/partner-applications", controllers.GetApplications)
	admin.PUT("/partner-applications/review", controllers.ReviewApplication)
	admin.GET("/properties", controllers.GetAdminProperties)
	admin.PUT("/properties/status", controllers.ChangePropertyStatus)
	admin.GET("/stats/revenue", controllers.GetRevenueStats)
	admin.GET("/stats/monthly", controllers.GetMonthlyRevenue)
	admin.GET("/stats/top-properties", controllers.GetTopProperties)
	admin.GET("/stats/users", controllers.GetActiveUsers)
	admin.POST("/search/reindex", controllers.ReindexProperties)
}
