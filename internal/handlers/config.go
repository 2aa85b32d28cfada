package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterClientConfigRoute exposes the public upload-service
// identifiers to the static client. Cloud name and unsigned preset are
// client-side configuration, not secrets.
func RegisterClientConfigRoute(router *gin.Engine, cloudName, uploadPreset string) {
	router.GET("/api/config", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"cloudName":    cloudName,
			"uploadPreset": uploadPreset,
		})
	})
}
