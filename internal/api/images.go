package api

import (
	"errors"
	"net/http"

	"reciplette/internal/domain"
	"reciplette/internal/upload"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ImageHandler streams a stored image by key
func ImageHandler(images upload.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		body, size, contentType, err := images.Open(c.Request.Context(), key)
		if errors.Is(err, upload.ErrNotFound) {
			fail(c, http.StatusNotFound, domain.MessageImageNotFound, nil, logrus.Fields{"image": key})
			return
		}
		if err != nil {
			fail(c, http.StatusInternalServerError, domain.MessageFailedFetchImage, err, logrus.Fields{"image": key})
			return
		}
		defer body.Close()
		c.Header("Cache-Control", "public, max-age=86400") // Keys never change content
		c.DataFromReader(http.StatusOK, size, contentType, body, nil)
	}
}
