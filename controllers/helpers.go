package controllers

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"stayhub/config"
	"stayhub/models"
	"stayhub/services"
)

// currentUser reads the identity stored by AuthMiddleware
func currentUser(c *gin.Context) (uint, int, bool) {
	id, ok := c.Get("userID")
	if !ok {
		return 0, 0, false
	}
	role, ok := c.Get("userRole")
	if !ok {
		return 0, 0, false
	}
	return id.(uint), role.(int), true
}

// parsePagination reads page/limit query params with sane defaults
func parsePagination(c *gin.Context) (page, limit int) {
	page = 1
	limit = 10
	if v := c.Query("page"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}
	return page, limit
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

func makeSlug(name string) string {
	slug := services.NormalizeText(name)
	slug = slugStrip.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// uniqueSlug appends a numeric suffix until the slug is free
func uniqueSlug(name string) (string, error) {
	base := makeSlug(name)
	if base == "" {
		base = "property"
	}

	slug := base
	for i := 2; ; i++ {
		var count int64
		if err := config.DB.Model(&models.Property{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
