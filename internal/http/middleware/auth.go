package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/noorhq/noor-server/internal/model"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) error {
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// returns the user set by JWTMiddleware.
func GetCurrentUser(c *gin.Context) (*model.User, bool) {
	val, ok := c.Get("currentUser")
	if !ok {
		return nil, false
	}
	user, ok := val.(*model.User)
	return user, ok
}
