package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkrasnov/authapi/internal/common"
)

// APIKeyGate rejects any request whose Authorization header does not carry
// the pre-shared key. The comparison is constant time.
func APIKeyGate(secret string) gin.HandlerFunc {
	secretBytes := []byte(secret)

	return func(c *gin.Context) {
		provided := c.GetHeader(common.APIKeyHeaderName)
		if provided == "" {
			c.String(http.StatusUnauthorized, "API Key was not provided")
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(provided), secretBytes) != 1 {
			c.String(http.StatusUnauthorized, "Invalid API Key")
			c.Abort()
			return
		}

		c.Next()
	}
}
