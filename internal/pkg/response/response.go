package response

import "github.com/gin-gonic/gin"

// The storefront API speaks a flat JSON shape: errors and statuses are
// a bare {"message": ...}, successes may carry extra fields next to it.

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

func WithData(c *gin.Context, statusCode int, message string, data gin.H) {
	body := gin.H{"message": message}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(statusCode, body)
}
