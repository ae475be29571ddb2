package dto

type CreateRoomRequest struct {
	PropertyID  uint     `json:"propertyId" binding:"required"`
	RoomType    string   `json:"roomType" binding:"required"`
	Capacity    int      `json:"capacity" binding:"required"`
	Rate        float64  `json:"rate" binding:"required"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

type UpdateRoomRequest struct {
	ID          uint     `json:"id" binding:"required"`
	RoomType    string   `json:"roomType"`
	Capacity    int      `json:"capacity"`
	Rate        float64  `json:"rate"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}
