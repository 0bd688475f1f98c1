package v1

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"strings"

	"github.com/NITHEESH-14/CrisisSync/internal/config"
	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Заголовки, из которых внешний провайдер сессий передаёт пользователя
const (
	HeaderUserID                = "X-User-ID"
	HeaderUserName              = "X-User-Name"
	HeaderUserRole              = "X-User-Role"
	HeaderOrganizationID        = "X-Organization-ID"
	HeaderNotificationsEnabled  = "X-Notifications-Enabled"
	HeaderPlatformNotifications = "X-Platform-Notifications"
)

const sessionKey = "session"

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			// Проверяем также заголовок Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if apiKey == "" {
			log.WithField("path", c.FullPath()).Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		isValid := false
		for _, key := range cfg.APIKeys {
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1 {
				isValid = true
				break
			}
		}

		if !isValid {
			// сам ключ в лог не пишем
			log.WithField("path", c.FullPath()).Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}

// SessionMiddleware собирает models.Session из заголовков запроса.
// Пустой X-User-ID означает анонимного пользователя.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := models.Session{
			UserID:                       strings.TrimSpace(c.GetHeader(HeaderUserID)),
			DisplayName:                  strings.TrimSpace(c.GetHeader(HeaderUserName)),
			Role:                         models.Role(strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderUserRole)))),
			OrganizationID:               strings.TrimSpace(c.GetHeader(HeaderOrganizationID)),
			NotificationsEnabled:         headerBool(c, HeaderNotificationsEnabled, true),
			PlatformNotificationsGranted: headerBool(c, HeaderPlatformNotifications, false),
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

// sessionFrom достаёт сессию, положенную SessionMiddleware
func sessionFrom(c *gin.Context) models.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(models.Session); ok {
			return s
		}
	}
	return models.Session{NotificationsEnabled: true}
}

func headerBool(c *gin.Context, name string, def bool) bool {
	raw := strings.TrimSpace(c.GetHeader(name))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}
