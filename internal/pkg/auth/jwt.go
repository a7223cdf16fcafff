package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kaan/campora/internal/app/models"
)

// Token errors
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token expired")
	ErrInvalidFormat = errors.New("invalid token format")
)

// Claims defines the content of tokens issued by the upstream platform.
// The gateway never issues tokens itself; it only parses and (when a
// shared secret is configured) verifies upstream ones.
type Claims struct {
	UserID int64    `json:"user_id"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// RoleList converts the raw role claim strings into the closed role enum,
// dropping anything unknown.
func (c *Claims) RoleList() []models.UserRole {
	roles := make([]models.UserRole, 0, len(c.Roles))
	for _, r := range c.Roles {
		role := models.Role(r)
		if !models.ValidRole(role) {
			continue
		}
		roles = append(roles, models.UserRole{UserID: c.UserID, Role: role})
	}
	return roles
}

// TokenParser validates and decodes upstream bearer tokens.
type TokenParser struct {
	secret []byte
}

// NewTokenParser creates a parser. An empty secret disables signature
// verification (claims are still decoded); this matches deployments where
// the upstream signs with a key the gateway does not hold.
func NewTokenParser(secret string) *TokenParser {
	return &TokenParser{secret: []byte(secret)}
}

// Parse validates the token and extracts its claims.
func (p *TokenParser) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	if len(p.secret) == 0 {
		parser := jwt.NewParser()
		if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return claims, nil
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ExtractBearerToken pulls the raw token out of an Authorization header.
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidFormat
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidFormat
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", ErrInvalidFormat
	}
	return token, nil
}
