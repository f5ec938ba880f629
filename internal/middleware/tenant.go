package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TenantGuard rejects requests whose token carried no usable tenant scope.
// Every protected route is tenant-scoped, so a claims set with a zero tenant
// ID must never reach a handler.
func TenantGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID, err := GetTenantID(c)
		if err != nil || tenantID == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "tenant scope required"},
			})
			return
		}
		c.Next()
	}
}
