package api

import (
	"net/http"
	"strings"

	"github.com/daypass/daypass-backend/identity"
	"github.com/gin-gonic/gin"
)

func SessionAuth(provider identity.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))

		if len(token) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		session, err := provider.VerifySession(c.Request.Context(), token)

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			c.Abort()
			return
		}

		c.Set("session", *session)
	}
}

func bearerToken(header string) string {
	token, found := strings.CutPrefix(header, "Bearer ")

	if !found {
		return ""
	}

	return strings.TrimSpace(token)
}
