package controllers

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/response"
	"stayhub/services"
)

const adminStatsCacheKey = "stats:admin"

// GetRevenueStats reports platform totals for the admin dashboard
func GetRevenueStats(c *gin.Context) {
	var stats dto.RevenueStats

	rdb, redisErr := config.ConnectRedis()
	if redisErr == nil {
		if err := services.GetFromRedis(config.Ctx, rdb, adminStatsCacheKey, &stats); err == nil && stats.BookingCount > 0 {
			response.Success(c, stats)
			return
		}
	}

	stats, err := services.GetRevenueStats(config.DB)
	if err != nil {
		response.ServerError(c)
		return
	}

	if redisErr == nil {
		if err := services.SetToRedis(config.Ctx, rdb, adminStatsCacheKey, stats, 10*time.Minute); err != nil {
			log.Printf("could not cache admin stats: %v", err)
		}
	}

	response.Success(c, stats)
}

// GetMonthlyRevenue reports the trailing six calendar months of revenue
func GetMonthlyRevenue(c *gin.Context) {
	months, err := services.GetMonthlyRevenue(config.DB, 6, time.Now())
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, months)
}

// GetTopProperties reports the four properties with the highest summed revenue
func GetTopProperties(c *gin.Context) {
	top, err := services.GetTopProperties(config.DB, 4)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, top)
}

// GetActiveUsers reports the count of distinct guest emails seen on bookings
func GetActiveUsers(c *gin.Context) {
	count, err := services.CountActiveUsers(config.DB)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.ActiveUserStats{ActiveUsers: count})
}

// ReindexProperties rebuilds the Elasticsearch properties index on demand
func ReindexProperties(c *gin.Context) {
	if !services.ElasticEnabled() {
		response.BadRequest(c, "search indexing is not configured")
		return
	}

	if err := services.IndexPropertiesToES(config.DB); err != nil {
		log.Printf("reindex failed: %v", err)
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "reindex complete", nil)
}
