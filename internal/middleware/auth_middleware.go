package middleware

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	autherrors "github.com/riooastfu/pastimobile-be/internal/auth/errors"
	"github.com/riooastfu/pastimobile-be/internal/shared/apperror"
	"github.com/riooastfu/pastimobile-be/internal/shared/contextutil"
	"github.com/riooastfu/pastimobile-be/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextPIN    = "pin"
	ContextIDRole = "id_role"
	ContextRole   = "role"
)

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, err.Details)
	c.Abort()
}

// AuthMiddleware memvalidasi JWT (HS256) dari header Authorization atau cookie access_token.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, autherrors.ErrTokenMissing)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWith(c, autherrors.ErrTokenExpired)
				return
			}
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		pin := claimString(claims["pin"])
		if pin == "" {
			abortWith(c, autherrors.ErrInvalidToken.WithDetails("pin not found in token"))
			return
		}

		c.Set(ContextPIN, pin)
		c.Set(ContextIDRole, claimString(claims["id_role"]))
		c.Set(ContextRole, claimString(claims["role"]))

		c.Request = c.Request.WithContext(contextutil.WithPIN(c.Request.Context(), pin))

		c.Next()
	}
}

// claim numerik dari JSON selalu float64
func claimString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return ""
	}
}
