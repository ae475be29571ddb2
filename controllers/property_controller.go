package controllers

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	apperrors "stayhub/errors"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"
)

const activePropertiesCacheKey = "properties:active"

func toPropertySummary(p models.Property, includeStatus bool) dto.PropertySummary {
	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	summary := dto.PropertySummary{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		City:        p.City,
		Country:     p.Country,
		Type:        p.Type,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		PriceMin:    p.PriceMin,
		PriceMax:    p.PriceMax,
		Image:       image,
		Amenities:   p.Amenities,
	}
	if includeStatus {
		summary.Status = p.Status
	}
	return summary
}

func invalidatePropertyCache() {
	rdb, err := config.ConnectRedis()
	if err != nil {
		log.Printf("could not reach redis for cache invalidation: %v", err)
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, rdb, activePropertiesCacheKey); err != nil {
		log.Printf("could not drop property cache: %v", err)
	}
}

// loadActiveProperties serves the active listing set through the redis cache
func loadActiveProperties() ([]models.Property, error) {
	var properties []models.Property

	rdb, err := config.ConnectRedis()
	if err == nil {
		if err := services.GetFromRedis(config.Ctx, rdb, activePropertiesCacheKey, &properties); err == nil && len(properties) > 0 {
			return properties, nil
		}
	}

	if err := config.DB.Preload("Rooms").
		Where("status = ?", constants.PropertyStatusActive).
		Find(&properties).Error; err != nil {
		return nil, err
	}

	if rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, activePropertiesCacheKey, properties, 10*time.Minute); err != nil {
			log.Printf("could not cache active properties: %v", err)
		}
	}

	return properties, nil
}

// GetProperties is the public search and listing endpoint
func GetProperties(c *gin.Context) {
	properties, err := loadActiveProperties()
	if err != nil {
		response.ServerError(c)
		return
	}

	city := strings.TrimSpace(c.Query("city"))
	propertyType := c.Query("type")
	search := strings.TrimSpace(c.Query("search"))
	guestsStr := c.Query("guests")
	priceMaxStr := c.Query("priceMax")

	filtered := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if city != "" && services.NormalizeText(p.City) != services.NormalizeText(city) {
			continue
		}
		if propertyType != "" && p.Type != propertyType {
			continue
		}
		if guestsStr != "" {
			guests, err := strconv.Atoi(guestsStr)
			if err == nil && guests > 0 {
				fits := false
				for _, room := range p.Rooms {
					if room.Capacity >= guests {
						fits = true
						break
					}
				}
				if !fits {
					continue
				}
			}
		}
		if priceMaxStr != "" {
			priceMax, err := strconv.ParseFloat(priceMaxStr, 64)
			if err == nil && priceMax > 0 && p.PriceMin > priceMax {
				continue
			}
		}
		filtered = append(filtered, p)
	}

	if search != "" {
		filtered = rankProperties(search, filtered)
	}

	page, limit := parsePagination(c)
	total := len(filtered)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	summaries := make([]dto.PropertySummary, 0, end-start)
	for _, p := range filtered[start:end] {
		summaries = append(summaries, toPropertySummary(p, false))
	}

	response.SuccessWithPagination(c, summaries, page, limit, total)
}

// rankProperties orders candidates by query relevance, preferring the
// Elasticsearch index when one is configured
func rankProperties(query string, candidates []models.Property) []models.Property {
	if services.ElasticEnabled() {
		ids, err := services.SearchPropertiesES(query, len(candidates))
		if err == nil {
			byID := make(map[uint]models.Property, len(candidates))
			for _, p := range candidates {
				byID[p.ID] = p
			}
			ranked := make([]models.Property, 0, len(ids))
			for _, id := range ids {
				if p, ok := byID[id]; ok {
					ranked = append(ranked, p)
				}
			}
			return ranked
		}
		log.Printf("elasticsearch query failed, falling back to local ranking: %v", err)
	}

	items := make([]services.SearchableProperty, len(candidates))
	for i, p := range candidates {
		items[i] = services.SearchableProperty{
			Name:      p.Name,
			City:      p.City,
			Country:   p.Country,
			Amenities: p.Amenities,
		}
	}

	order := services.RankByQuery(query, items)
	ranked := make([]models.Property, 0, len(order))
	for _, idx := range order {
		ranked = append(ranked, candidates[idx])
	}
	return ranked
}

// GetPropertyBySlug returns a single active listing with its rooms
func GetPropertyBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var property models.Property
	if err := config.DB.Preload("Rooms").
		Where("slug = ? AND status = ?", slug, constants.PropertyStatusActive).
		First(&property).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, property)
}

// GetPropertyRoomsBySlug lists the rooms of an active property
func GetPropertyRoomsBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var property models.Property
	if err := config.DB.Preload("Rooms").
		Where("slug = ? AND status = ?", slug, constants.PropertyStatusActive).
		First(&property).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, property.Rooms)
}

// GetPartnerProperties lists the caller's own properties in every status
func GetPartnerProperties(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var properties []models.Property
	if err := config.DB.Preload("Rooms").
		Where("partner_id = ?", userID).
		Order("created_at DESC").
		Find(&properties).Error; err != nil {
		response.ServerError(c)
		return
	}

	summaries := make([]dto.PropertySummary, 0, len(properties))
	for _, p := range properties {
		summaries = append(summaries, toPropertySummary(p, true))
	}

	response.Success(c, summaries)
}

// CreateProperty registers a new listing in pending status
func CreateProperty(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	property := models.Property{
		PartnerID:   userID,
		Name:        req.Name,
		Description: req.Description,
		Images:      req.Images,
		Street:      req.Street,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		PostalCode:  req.PostalCode,
		Longitude:   req.Longitude,
		Latitude:    req.Latitude,
		Amenities:   req.Amenities,
		Type:        req.Type,
		PriceMin:    req.PriceMin,
		PriceMax:    req.PriceMax,
		Status:      constants.PropertyStatusPending,
	}

	if err := validator.ValidateProperty(&property); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	slug, err := uniqueSlug(req.Name)
	if err != nil {
		response.ServerError(c)
		return
	}
	property.Slug = slug

	if err := config.DB.Create(&property).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePropertyCache()

	response.SuccessWithMessage(c, "property submitted for approval", property)
}

// UpdateProperty edits a listing the caller owns. The slug never changes
// after creation so links stay stable.
func UpdateProperty(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var property models.Property
	if err := config.DB.First(&property, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if property.PartnerID != userID {
		response.Forbidden(c)
		return
	}

	if req.Name != "" {
		property.Name = req.Name
	}
	if req.Description != "" {
		property.Description = req.Description
	}
	if req.Images != nil {
		property.Images = req.Images
	}
	if req.Street != "" {
		property.Street = req.Street
	}
	if req.City != "" {
		property.City = req.City
	}
	if req.State != "" {
		property.State = req.State
	}
	if req.Country != "" {
		property.Country = req.Country
	}
	if req.PostalCode != "" {
		property.PostalCode = req.PostalCode
	}
	if req.Longitude != 0 {
		property.Longitude = req.Longitude
	}
	if req.Latitude != 0 {
		property.Latitude = req.Latitude
	}
	if req.Amenities != nil {
		property.Amenities = req.Amenities
	}
	if req.Type != "" {
		property.Type = req.Type
	}
	if req.PriceMin != 0 {
		property.PriceMin = req.PriceMin
	}
	if req.PriceMax != 0 {
		property.PriceMax = req.PriceMax
	}

	if err := validator.ValidateProperty(&property); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Save(&property).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePropertyCache()

	response.Success(c, property)
}

// GetAdminProperties lists every property, optionally filtered by status
func GetAdminProperties(c *gin.Context) {
	statusFilter := c.Query("status")

	tx := config.DB.Model(&models.Property{}).Preload("Partner").Order("created_at DESC")
	if statusFilter != "" {
		tx = tx.Where("status = ?", statusFilter)
	}

	var properties []models.Property
	if err := tx.Find(&properties).Error; err != nil {
		response.ServerError(c)
		return
	}

	page, limit := parsePagination(c)
	total := len(properties)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	response.SuccessWithPagination(c, properties[start:end], page, limit, total)
}

// ChangePropertyStatus applies an admin action token to a property
func ChangePropertyStatus(c *gin.Context) {
	var req dto.PropertyStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var property models.Property
	if err := config.DB.First(&property, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := services.ApplyPropertyAction(&property, req.Action); err != nil {
		if errors.Is(err, apperrors.ErrInvalidAction) {
			response.BadRequest(c, "unrecognized action")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&property).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePropertyCache()

	response.Success(c, property)
}
