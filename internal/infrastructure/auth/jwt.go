package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/assetdesk/assetdesk/internal/shared/authorization"
	"github.com/assetdesk/assetdesk/internal/shared/config"
)

// Claims carries the portal session identity inside the signed token.
type Claims struct {
	UserID     uint                   `json:"user_id"`
	Role       authorization.UserRole `json:"role"`
	Department string                 `json:"department"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
}

func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{
		secret:           []byte(cfg.Secret),
		accessExpMinutes: cfg.AccessExpMinutes,
	}
}

// Issue mints a signed access token for the given identity.
func (s *JWTService) Issue(userID uint, role authorization.UserRole, department string) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(time.Duration(s.accessExpMinutes) * time.Minute)

	claims := &Claims{
		UserID:     userID,
		Role:       role,
		Department: department,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	return signed, expiresAt, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
