package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BasicGate is a Gin middleware that gates requests behind HTTP Basic
// credentials. The username is compared in constant time and the password is
// checked against a bcrypt hash, so the plaintext password is never stored.
// The gate is pass/fail only: no identity is attached to the request context.
func BasicGate(username, passwordHash string, hasher PasswordHasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()
		if !ok {
			unauthorized(c)
			return
		}

		userOK := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
		passOK := hasher.Compare(passwordHash, pass) == nil
		if !userOK || !passOK {
			unauthorized(c)
			return
		}

		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", `Basic realm="meeting-room-api"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "invalid credentials",
	})
}
