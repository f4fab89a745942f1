// Package middleware provides HTTP middleware functions.
package middleware

import "github.com/gin-gonic/gin"

// abortWithError stops the chain with the service's error body shape.
func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
