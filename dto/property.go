package dto

type CreatePropertyRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Street      string   `json:"street"`
	City        string   `json:"city" binding:"required"`
	State       string   `json:"state"`
	Country     string   `json:"country" binding:"required"`
	PostalCode  string   `json:"postalCode"`
	Longitude   float64  `json:"longitude"`
	Latitude    float64  `json:"latitude"`
	Amenities   []string `json:"amenities"`
	Type        string   `json:"type" binding:"required"`
	PriceMin    float64  `json:"priceMin"`
	PriceMax    float64  `json:"priceMax"`
}

type UpdatePropertyRequest struct {
	ID          uint     `json:"id" binding:"required"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Street      string   `json:"street"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Country     string   `json:"country"`
	PostalCode  string   `json:"postalCode"`
	Longitude   float64  `json:"longitude"`
	Latitude    float64  `json:"latitude"`
	Amenities   []string `json:"amenities"`
	Type        string   `json:"type"`
	PriceMin    float64  `json:"priceMin"`
	PriceMax    float64  `json:"priceMax"`
}

// PropertyStatusRequest is the admin action on a property lifecycle
type PropertyStatusRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Action string `json:"action" binding:"required"`
}

type PropertySummary struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Type        string   `json:"type"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	PriceMin    float64  `json:"priceMin"`
	PriceMax    float64  `json:"priceMax"`
	Image       string   `json:"image"`
	Amenities   []string `json:"amenities"`
	Status      string   `json:"status,omitempty"`
}
