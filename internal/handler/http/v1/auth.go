package v1

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/panic_alert_system/internal/config"
	"github.com/shenikar/panic_alert_system/internal/models"
	"github.com/sirupsen/logrus"
)

const sessionContextKey = "session"

// SessionClaims - содержимое токена сессии
type SessionClaims struct {
	UserID     string `json:"user_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	DistrictID string `json:"district_id,omitempty"`
	Language   string `json:"lang,omitempty"`
	jwt.StandardClaims
}

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		if !slices.Contains(cfg.APIKeys, apiKey) {
			log.Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}

// JWTAuthMiddleware проверяет токен сессии и кладет models.Session в контекст gin.
// Для WebSocket токен можно передать в параметре access_token.
func JWTAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No authorization token provided"})
			return
		}

		session, err := parseSession(tokenString, cfg.JWTSecret)
		if err != nil {
			log.WithError(err).Warn("Token validation failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization token"})
			return
		}
		session.ClientIP = c.ClientIP()
		if session.Language == "" {
			session.Language = cfg.DefaultLanguage
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// RequireOperator пропускает только роли, которые обрабатывают тревоги
func RequireOperator() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !mustSession(c).IsOperator() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "operator role required"})
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.Query("access_token")
}

func parseSession(tokenString, secret string) (models.Session, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return models.Session{}, err
	}
	if !token.Valid {
		return models.Session{}, fmt.Errorf("token is not valid")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return models.Session{}, fmt.Errorf("invalid user_id claim: %w", err)
	}
	session := models.Session{
		UserID:   userID,
		UserName: claims.Name,
		Role:     claims.Role,
		Language: claims.Language,
	}
	if claims.DistrictID != "" {
		districtID, err := uuid.Parse(claims.DistrictID)
		if err != nil {
			return models.Session{}, fmt.Errorf("invalid district_id claim: %w", err)
		}
		session.DistrictID = &districtID
	}
	return session, nil
}

// mustSession достает сессию, положенную JWTAuthMiddleware
func mustSession(c *gin.Context) models.Session {
	return c.MustGet(sessionContextKey).(models.Session)
}
