package handlers

import "github.com/gin-gonic/gin"

// getHealth godoc
// @Summary Health check
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.String(200, "OK")
}
