// Package jwt emite y valida los tokens de la API: un access token de vida
// corta para las peticiones y un refresh token de vida larga que solo sirve
// para emitir nuevos access tokens. Cada tipo se firma con su propio secret.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jhoicas/inventario-admin/pkg/config"
)

// Errores tipados para que el middleware distinga expiración de firma inválida.
var (
	ErrTokenExpired = errors.New("token expirado")
	ErrTokenInvalid = errors.New("token inválido")
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Role viaja en el token para que el middleware RBAC decida sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"` // "admin" | "user"
}

// TokenPair par de tokens emitidos en registro y login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// GeneratePair emite access + refresh para el usuario. El refresh se firma
// con el secret de refresh; nunca es intercambiable con el access.
func GeneratePair(cfg config.JWTConfig, userID, email, role string) (*TokenPair, error) {
	access, err := GenerateAccess(cfg, userID, email, role)
	if err != nil {
		return nil, err
	}
	refresh, err := generate(cfg.RefreshSecret, cfg.Issuer, userID, email, role, time.Duration(cfg.RefreshExpHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// GenerateAccess emite solo un access token (usado también por el refresh flow).
func GenerateAccess(cfg config.JWTConfig, userID, email, role string) (string, error) {
	return generate(cfg.AccessSecret, cfg.Issuer, userID, email, role, time.Duration(cfg.AccessExpHours)*time.Hour)
}

// ParseAccess valida un access token y devuelve sus claims.
func ParseAccess(cfg config.JWTConfig, tokenString string) (*Claims, error) {
	return parse(cfg.AccessSecret, tokenString)
}

// ParseRefresh valida un refresh token y devuelve sus claims.
func ParseRefresh(cfg config.JWTConfig, tokenString string) (*Claims, error) {
	return parse(cfg.RefreshSecret, tokenString)
}

func generate(secret, issuer, userID, email, role string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			// El jti garantiza que dos logins en el mismo segundo no emitan
			// tokens idénticos.
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
		Email:  email,
		Role:   role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
