package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// BusinessID identifica al negocio autenticado: de él se deriva la dirección
// (sent/received) de cada factura y la clave del estado de compensación.
type Claims struct {
	jwt.RegisteredClaims
	BusinessID string `json:"business_id"`
	UserID     string `json:"user_id"`
}

// Generate emite un token HS256 para el negocio/usuario indicado.
// expMinutes puede ser negativo en tests para producir tokens expirados.
func Generate(secret, businessID, userID, issuer string, expMinutes int) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		BusinessID: businessID,
		UserID:     userID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("firmar token: %w", err)
	}
	return signed, nil
}

// Parse valida el token y devuelve (businessID, userID).
func Parse(secret, tokenString string) (string, string, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", fmt.Errorf("parsear token: %w", err)
	}
	if !token.Valid {
		return "", "", fmt.Errorf("token inválido")
	}
	if claims.BusinessID == "" {
		return "", "", fmt.Errorf("token sin business_id")
	}
	return claims.BusinessID, claims.UserID, nil
}
