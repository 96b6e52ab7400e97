package security

import (
	"errors"
	"time"

	"dsa_tracker/internal/platform/config"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var TokenAuth *jwtauth.JWTAuth

func InitJWT() {
	TokenAuth = jwtauth.New("HS256", config.AppConfig.JWTKey, nil)
}

// GenerateAccessToken issues the short-lived token used on every API call.
func GenerateAccessToken(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID,
		"role":       role,
		"token_type": TokenTypeAccess,
		"exp":        time.Now().Add(config.AppConfig.AccessTokenTTL).Unix(),
		"iat":        time.Now().Unix(),
	}
	_, tokenString, err := TokenAuth.Encode(claims)
	return tokenString, err
}

// GenerateRefreshToken issues the long-lived token persisted server-side.
// The expiry is chosen by the caller (rememberMe extends it).
func GenerateRefreshToken(userID string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID,
		"token_type": TokenTypeRefresh,
		"exp":        expiresAt.Unix(),
		"iat":        time.Now().Unix(),
	}
	_, tokenString, err := TokenAuth.Encode(claims)
	return tokenString, err
}

// ParseRefreshToken validates signature and the token_type claim, returning the
// subject user ID. Expiry is NOT checked here; the stored row is authoritative
// so the service can delete it and report expiry distinctly.
func ParseRefreshToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return config.AppConfig.JWTKey, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	if tokenType, _ := claims["token_type"].(string); tokenType != TokenTypeRefresh {
		return "", errors.New("not a refresh token")
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", errors.New("user_id claim is missing or not a string")
	}
	return userID, nil
}

// Helper functions to extract claims, used in middleware
func GetUserIDFromClaims(claims map[string]interface{}) (string, error) {
	id, ok := claims["user_id"].(string)
	if !ok {
		return "", errors.New("user_id claim is missing or not a string")
	}
	return id, nil
}

func GetUserRoleFromClaims(claims map[string]interface{}) (string, error) {
	role, ok := claims["role"].(string)
	if !ok {
		return "", errors.New("role claim is missing or not a string")
	}
	return role, nil
}
