package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/version"
)

// Version returns build and VCS metadata injected at build time.
func Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": version.Version,
		"commit":  version.Commit,
		"date":    version.Date,
		"dirty":   version.Dirty,
	})
}
