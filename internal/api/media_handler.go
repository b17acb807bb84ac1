package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karizzz/subletez-backend/internal/blob"
)

// MediaHandler accepts listing media uploads and returns the public URL the
// client then attaches to its listing draft.
type MediaHandler struct {
	media blob.MediaStore
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(media blob.MediaStore) *MediaHandler {
	return &MediaHandler{media: media}
}

// UploadImage handles POST /api/v1/media/images (multipart field "file").
func (h *MediaHandler) UploadImage(c *gin.Context) {
	h.upload(c, true)
}

// UploadVideo handles POST /api/v1/media/videos (multipart field "file").
func (h *MediaHandler) UploadVideo(c *gin.Context) {
	h.upload(c, false)
}

func (h *MediaHandler) upload(c *gin.Context, image bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "multipart field 'file' is required", Details: err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to open uploaded file", Details: err.Error()})
		return
	}
	defer file.Close()

	var url string
	if image {
		url, err = h.media.UploadImage(c.Request.Context(), file)
	} else {
		url, err = h.media.UploadVideo(c.Request.Context(), file)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "upload failed", Details: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, MediaResponse{URL: url})
}
