//go:build unit

package api_test

import (
	"net/http"

	"rental-booking/internal/domain/user"
	reqdto "rental-booking/internal/handler/dto/request"
	"rental-booking/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// identity is the caller the fake auth middleware installs.
type identity struct {
	userID uuid.UUID
	role   user.Role
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	if err := reqdto.RegisterValidators(); err != nil {
		panic(err)
	}
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}

// requireAuth stands in for the JWT middleware: any Authorization header authenticates as *who.
func requireAuth(who *identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}
		middleware.SetIdentityForTest(c, who.userID, who.role)
		c.Next()
	}
}

func optionalAuth(who *identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			middleware.SetIdentityForTest(c, who.userID, who.role)
		}
		c.Next()
	}
}
