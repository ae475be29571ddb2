package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"
)

// GetRevenueStats sums booking amounts across all non-cancelled bookings
func GetRevenueStats(db *gorm.DB) (dto.RevenueStats, error) {
	var stats dto.RevenueStats
	err := db.Model(&models.Booking{}).
		Where("status <> ?", constants.BookingStatusCancelled).
		Select("COALESCE(SUM(total_amount), 0) AS total_revenue, COALESCE(AVG(total_amount), 0) AS average_booking_value, COUNT(*) AS booking_count").
		Scan(&stats).Error
	return stats, err
}

// GetMonthlyRevenue buckets revenue per calendar month over a trailing window
// ending with the current month
func GetMonthlyRevenue(db *gorm.DB, months int, now time.Time) ([]dto.MonthRevenue, error) {
	result := make([]dto.MonthRevenue, 0, months)

	year, month, _ := now.Date()
	loc := now.Location()

	for i := months - 1; i >= 0; i-- {
		monthStart := time.Date(year, month, 1, 0, 0, 0, 0, loc).AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0)

		var row struct {
			Revenue float64
			Count   int64
		}
		if err := db.Model(&models.Booking{}).
			Where("status <> ?", constants.BookingStatusCancelled).
			Where("created_at >= ? AND created_at < ?", monthStart, monthEnd).
			Select("COALESCE(SUM(total_amount), 0) AS revenue, COUNT(*) AS count").
			Scan(&row).Error; err != nil {
			return nil, err
		}

		result = append(result, dto.MonthRevenue{
			Month:        fmt.Sprintf("%04d-%02d", monthStart.Year(), int(monthStart.Month())),
			Revenue:      row.Revenue,
			BookingCount: int(row.Count),
		})
	}

	return result, nil
}

// GetTopProperties ranks properties by summed booking revenue
func GetTopProperties(db *gorm.DB, limit int) ([]dto.TopPropertyRevenue, error) {
	var rows []dto.TopPropertyRevenue
	err := db.Model(&models.Booking{}).
		Where("status <> ?", constants.BookingStatusCancelled).
		Select("property_id, property_name, COALESCE(SUM(total_amount), 0) AS revenue, COUNT(*) AS booking_count").
		Group("property_id, property_name").
		Order("revenue DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// CountActiveUsers counts distinct guest emails seen on bookings. There is no
// dedicated user counter; the guest snapshot is the source of truth.
func CountActiveUsers(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Booking{}).
		Where("guest_email <> ''").
		Distinct("guest_email").
		Count(&count).Error
	return count, err
}
