package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/washapp/carwash-api/internal/config"
	"github.com/washapp/carwash-api/internal/httperr"
	"github.com/washapp/carwash-api/internal/models"
)

const (
	ContextUser     = "currentUser"
	ContextUserRole = "userRole"

	SessionCookieName = "jwt"
)

// ExtractToken procura a credencial no header Authorization e, só na
// ausência dele, no cookie de sessão. O header sempre vence.
func ExtractToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
		return ""
	}

	if tok, err := c.Cookie(SessionCookieName); err == nil {
		return tok
	}
	return ""
}

// ParseUserID verifica assinatura HS256 e expiração e devolve o sub.
func ParseUserID(tokenString, secret string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return uuid.Nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, jwt.ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}

	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}
	return id, nil
}

func Authenticate(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ExtractToken(c)
		if tokenString == "" {
			httperr.Unauthorized(c, "Anda belum login, silahkan login terlebih dahulu")
			c.Abort()
			return
		}

		userID, err := ParseUserID(tokenString, cfg.JWTSecret)
		if err != nil {
			httperr.Unauthorized(c, "Token tidak valid")
			c.Abort()
			return
		}

		var user models.User
		if err := db.Preload("Role").First(&user, "id = ?", userID).Error; err != nil {
			httperr.Unauthorized(c, "User tidak ditemukan")
			c.Abort()
			return
		}

		c.Set(ContextUser, &user)
		c.Set(ContextUserRole, user.RoleName())

		c.Next()
	}
}

func RequireRoles(allowed ...models.RoleName) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := CurrentRole(c)
		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}

		httperr.Forbidden(c, "Anda tidak memiliki akses")
		c.Abort()
	}
}

func CurrentUser(c *gin.Context) *models.User {
	return c.MustGet(ContextUser).(*models.User)
}

func CurrentRole(c *gin.Context) models.RoleName {
	if v, ok := c.Get(ContextUserRole); ok {
		if role, ok := v.(models.RoleName); ok {
			return role
		}
	}
	return models.RoleUser
}
