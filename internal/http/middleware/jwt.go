package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"

	"github.com/noorhq/noor-server/internal/db"
)

// tokenTTL keeps sessions alive across a long weekend without re-login.
const tokenTTL = 72 * time.Hour

var errInvalidToken = errors.New("invalid token")

// GenerateJWT signs a session token carrying userID in the "sub" claim.
func GenerateJWT(userID int, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(tokenTTL).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// parseToken verifies signature and expiry and extracts the user ID.
func parseToken(tokenString, secret string) (int, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, errInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errInvalidToken
	}
	// JSON numbers decode as float64
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, errInvalidToken
	}
	return int(sub), nil
}

// JWTMiddleware authenticates "Authorization: Bearer <token>" requests,
// loads the user, and stores it under "currentUser" for GetCurrentUser.
func JWTMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthorized(c, "missing or malformed auth header")
			return
		}

		userID, err := parseToken(token, secret)
		if err != nil {
			unauthorized(c, "invalid token")
			return
		}

		user, err := db.GetUserByID(userID)
		if err != nil {
			unauthorized(c, "user not found")
			return
		}
		c.Set("currentUser", user)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}
