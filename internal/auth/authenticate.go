package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/LucasLevingston/AneisDePoder/internal/config"
	"github.com/LucasLevingston/AneisDePoder/internal/errs"

	"github.com/gin-gonic/gin"
	gojwt "github.com/golang-jwt/jwt/v5"
)

// Identity is the acting user resolved from a verified token. It lives for
// the duration of one request and is passed explicitly; nothing is written
// to the gin context.
type Identity struct {
	UserID string
}

// Authenticate resolves the acting user from the Authorization header.
// The token is the second space-separated segment of the header ("Bearer
// <token>"). Missing credentials are forbidden; a token that fails
// verification, or verifies without a userId claim, is unauthorized.
func Authenticate(c *gin.Context) (Identity, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return Identity{}, errs.New(errs.KindAuth, http.StatusForbidden, "Authorization header is missing")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 || parts[1] == "" {
		return Identity{}, errs.New(errs.KindAuth, http.StatusForbidden, "Token is missing")
	}
	tokenString := parts[1]

	token, err := gojwt.Parse(tokenString, func(token *gojwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*gojwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return Identity{}, errs.New(errs.KindAuth, http.StatusUnauthorized, "Invalid token")
	}

	claims, ok := token.Claims.(gojwt.MapClaims)
	if !ok {
		return Identity{}, errs.New(errs.KindAuth, http.StatusUnauthorized, "Invalid token")
	}
	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		return Identity{}, errs.New(errs.KindAuth, http.StatusUnauthorized, "Invalid token")
	}

	return Identity{UserID: userID}, nil
}
