package controllers

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"

	"stayhub/config"
	"stayhub/response"
)

// UploadImage pushes a single image to Cloudinary and returns its URL
func UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "no file provided")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "could not open file")
		return
	}
	defer src.Close()

	ctx := context.Background()
	resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "properties"})
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"url": resp.SecureURL})
}

// UploadImages pushes a batch of images to Cloudinary and returns their URLs
func UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "no files provided")
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		response.BadRequest(c, "no files provided")
		return
	}

	var urls []string
	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			response.BadRequest(c, "could not open file")
			return
		}

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "properties"})
		src.Close()
		if err != nil {
			response.ServerError(c)
			return
		}
		urls = append(urls, resp.SecureURL)
	}

	response.Success(c, gin.H{"urls": urls})
}
