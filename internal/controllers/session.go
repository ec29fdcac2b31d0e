package controllers

import "github.com/gin-gonic/gin"

// Claim accessors for values RequireAuth stored on the context. JWT numeric
// claims come back as float64.

func sessionRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}

func sessionDriverID(c *gin.Context) uint {
	if v, ok := c.Get("driver_id"); ok {
		if id, ok := v.(float64); ok {
			return uint(id)
		}
	}
	return 0
}
