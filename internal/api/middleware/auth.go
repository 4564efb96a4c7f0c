package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/zuperior/content-api/internal/api/handler"
)

// Context keys set by Auth.
const (
	CtxUsername  = "username"
	CtxUserClass = "user_class"
)

// Auth validates the bearer JWT and injects its claims into the context.
// Rejections are rendered as a 401 envelope.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return unauthorized(c, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return unauthorized(c, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return unauthorized(c, "invalid token")
			}

			username, _ := claims["username"].(string)
			if username == "" {
				return unauthorized(c, "token missing username")
			}

			c.Set(CtxUsername, username)
			c.Set(CtxUserClass, claims["user_class"])

			return next(c)
		}
	}
}

func unauthorized(c echo.Context, reason string) error {
	return c.JSON(http.StatusUnauthorized, handler.Respond("unauthorized", nil, reason))
}
