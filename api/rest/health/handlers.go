package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	serviceName = "branchadmin"
	version     = "1.0.0"
)

// returns the server health status along with the configured model
func Handler(model string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{
			Status:    "healthy",
			Service:   serviceName,
			Version:   version,
			Generator: model,
		})
	}
}

// responds with pong for testing
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{Message: "pong"})
}
