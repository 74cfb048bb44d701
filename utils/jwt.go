package utils

import (
	"errors"

	"nowme/config"

	"github.com/golang-jwt/jwt"
)

// ValidateToken parses and validates a member access token and
// returns the parsed token if the signature and expiry check out. Token
// issuance itself lives with the auth provider, not this service.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
}

// SubjectFromToken extracts the "sub" claim (the buyer id) from a validated token.
func SubjectFromToken(token *jwt.Token) (string, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("unexpected claims type")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token has no subject")
	}
	return sub, nil
}
