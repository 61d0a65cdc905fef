package rest

import "github.com/gin-gonic/gin"

// CORS mirrors the caller's origin so the storefront checkout script can call
// the gateway cross-site from any deployment of the shop.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			origin = "*"
		}
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		c.Next()
	}
}
