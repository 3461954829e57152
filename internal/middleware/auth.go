package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"rescue-site-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Роли, которым разрешен запуск генерации
const (
	RoleOperator = "operator"
	RoleAdmin    = "admin"
)

const (
	ctxUserIDKey = "user_id"
	ctxRoleKey   = "role"
)

// Claims - полезная нагрузка JWT.
type Claims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken подписывает токен HS256. Используется CLI и тестами.
func IssueToken(secret string, userID int64, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken проверяет подпись и срок действия.
func ParseToken(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", models.ErrTokenInvalid, token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, models.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, models.ErrTokenMalformed
		default:
			return nil, fmt.Errorf("%w: %v", models.ErrTokenInvalid, err)
		}
	}
	if !token.Valid {
		return nil, models.ErrTokenInvalid
	}
	return claims, nil
}

// JWTAuth требует Bearer токен с ролью operator или admin.
func JWTAuth(secret string, logger *zap.Logger) gin.HandlerFunc {
	log := logger.Named("JWTAuth")
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Warn("Authorization header missing", zap.String("path", c.Request.URL.Path))
			models.SendJSONError(c, "Unauthorized: Missing token", http.StatusUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
			log.Warn("Malformed Authorization header", zap.String("path", c.Request.URL.Path))
			models.SendJSONError(c, "Unauthorized: Malformed token header", http.StatusUnauthorized)
			return
		}

		claims, err := ParseToken(secret, parts[1])
		if err != nil {
			msg := "Unauthorized: Invalid token"
			switch {
			case errors.Is(err, models.ErrTokenExpired):
				msg = "Unauthorized: Token expired"
			case errors.Is(err, models.ErrTokenMalformed):
				msg = "Unauthorized: Malformed token"
			}
			log.Warn("Token verification failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
			models.SendJSONError(c, msg, http.StatusUnauthorized)
			return
		}

		if claims.Role != RoleOperator && claims.Role != RoleAdmin {
			log.Warn("User does not have required role",
				zap.Int64("user_id", claims.UserID),
				zap.String("role", claims.Role),
			)
			models.SendJSONError(c, "Forbidden: Insufficient permissions", http.StatusForbidden)
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}

// UserID возвращает id пользователя из контекста после JWTAuth.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
