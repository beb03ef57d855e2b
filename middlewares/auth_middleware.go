// middlewares/auth_middleware.go
package middlewares

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"nutrisnap/config"
	"nutrisnap/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Session is the per-request identity context: who is calling and in
// which role. Populated once by AuthMiddleware, never from globals.
type Session struct {
	UserID   uint
	Email    string
	UserType string
}

const sessionKey = "session"

// SessionFrom returns the session set by AuthMiddleware.
func SessionFrom(c *gin.Context) Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(Session); ok {
			return s
		}
	}
	return Session{}
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		secret := []byte(os.Getenv("JWT_SECRET"))
		if len(secret) == 0 {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured: JWT_SECRET not set"})
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			return
		}

		sess := Session{}
		if v, ok := claims["userId"].(float64); ok {
			sess.UserID = uint(v)
		}
		sess.Email, _ = claims["email"].(string)
		sess.UserType, _ = claims["userType"].(string)

		// Older tokens carry no userType claim; fall back to the DB.
		if sess.UserID == 0 || sess.UserType == "" {
			if sess.Email == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "email claim missing"})
				return
			}
			var user models.User
			if err := config.DB.Where("email = ?", sess.Email).First(&user).Error; err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
				return
			}
			sess.UserID = user.ID
			sess.UserType = user.UserType
		}

		c.Set(sessionKey, sess)
		// also set flat keys for convenience
		c.Set("userID", sess.UserID)
		c.Set("email", sess.Email)
		c.Set("userType", sess.UserType)

		c.Next()
	}
}

// RequireUserType guards role-scoped route groups.
func RequireUserType(userType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if SessionFrom(c).UserType != userType {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden for this user type"})
			return
		}
		c.Next()
	}
}
