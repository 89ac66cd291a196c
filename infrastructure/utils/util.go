package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
	"playlist-grid/domain/model"
	"playlist-grid/infrastructure/logger"
)

func GetCurrentTime() time.Time {
	return time.Now().UTC()
}

func GenerateToken(payload map[string]interface{}, secretKey string) (string, error) {
	var claims jwt.MapClaims = payload
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while generate token")
		return "", err
	}
	return tokenString, nil
}

// GenerateAdminToken signs a token accepted by the admin routes for ttl.
func GenerateAdminToken(subject, secretKey string, ttl time.Duration) (string, error) {
	now := GetCurrentTime()
	return GenerateToken(map[string]interface{}{
		"role": model.RoleAdmin,
		"sub":  subject,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}, secretKey)
}
