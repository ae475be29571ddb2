package dto

// RevenueStats summarizes booking amounts across the platform
type RevenueStats struct {
	TotalRevenue        float64 `json:"totalRevenue"`
	AverageBookingValue float64 `json:"averageBookingValue"`
	BookingCount        int64   `json:"bookingCount"`
}

type MonthRevenue struct {
	Month        string  `json:"month"`
	Revenue      float64 `json:"revenue"`
	BookingCount int     `json:"bookingCount"`
}

type TopPropertyRevenue struct {
	PropertyID   uint    `json:"propertyId"`
	PropertyName string  `json:"propertyName"`
	Revenue      float64 `json:"revenue"`
	BookingCount int     `json:"bookingCount"`
}

// ActiveUserStats counts distinct guest emails seen on bookings
type ActiveUserStats struct {
	ActiveUsers int64 `json:"activeUsers"`
}
