package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Leeway tolerancia de reloj entre el emisor del token y esta API.
const Leeway = 30 * time.Second

// ErrEmptySecret el secreto de firma no está configurado.
var ErrEmptySecret = errors.New("jwt: secret vacío")

// Claims claims estándar más empresa y rol del usuario del back office.
// El rol viaja en el token para que RequireRole no consulte la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id"`
	Role      string `json:"role"` // "admin" | "commercial" | "comptable"
}

// Generate firma (HS256) un token con userID, companyID y role.
func Generate(secret, userID, companyID, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:    userID,
		CompanyID: companyID,
		Role:      role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Parse valida el token sin exigir emisor y devuelve userID, companyID y role.
func Parse(secret, tokenString string) (userID, companyID, role string, err error) {
	claims, err := ParseClaims(secret, tokenString, "")
	if err != nil {
		return "", "", "", err
	}
	return claims.UserID, claims.CompanyID, claims.Role, nil
}

// ParseClaims valida firma HS256, expiración (con Leeway) y, si issuer no está vacío, el emisor.
// Un token sin company_id no sirve para el CRM y se rechaza.
func ParseClaims(secret, tokenString, issuer string) (*Claims, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(Leeway),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("jwt: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("jwt: claims inválidos")
	}
	if claims.CompanyID == "" {
		return nil, fmt.Errorf("jwt: token sin company_id")
	}
	return claims, nil
}
