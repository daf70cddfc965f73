package middleware

import "github.com/gin-gonic/gin"

// Keys set on the gin context
const (
	ContextRequestID = "request_id"
	ContextAccount   = "account"
	ContextRole      = "role"
)

// RequestID returns the id assigned by RequestIDMiddleware
func RequestID(c *gin.Context) string {
	return c.GetString(ContextRequestID)
}

// Account returns the authenticated account, empty on public routes
func Account(c *gin.Context) string {
	return c.GetString(ContextAccount)
}

// Role returns the authenticated role
func Role(c *gin.Context) string {
	return c.GetString(ContextRole)
}
