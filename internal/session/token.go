package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/arena-manager/internal/models"
)

type TokenInfo struct {
	Present   bool
	Decoded   bool
	Expired   bool
	ExpiresAt time.Time
	Subject   string
	Role      models.Role
}

// Valid é a checagem local e otimista; o backend continua sendo a autoridade.
func (t TokenInfo) Valid() bool {
	return t.Present && t.Decoded && !t.Expired
}

var hmacMethods = []string{"HS256", "HS384", "HS512"}

// InspectToken decodifica o JWT. Com secret vazio a assinatura não é
// conferida (o segredo pertence ao backend). Token sem exp é tratado
// como não expirado.
func InspectToken(raw string, now time.Time, secret string) TokenInfo {
	info := TokenInfo{Present: raw != ""}
	if !info.Present {
		return info
	}

	claims := jwt.MapClaims{}
	if err := parseClaims(raw, secret, claims); err != nil {
		return info
	}
	info.Decoded = true

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
		info.Expired = !now.Before(exp.Time)
	} else if err != nil {
		info.Decoded = false
		return info
	}

	info.Subject, _ = claims.GetSubject()
	if role, ok := claims["role"].(string); ok {
		info.Role = models.Role(role)
	}
	return info
}

func parseClaims(raw, secret string, claims jwt.MapClaims) error {
	if secret == "" {
		_, _, err := jwt.NewParser().ParseUnverified(raw, claims)
		return err
	}

	// exp é conferido à parte, com o relógio injetado
	parser := jwt.NewParser(
		jwt.WithoutClaimsValidation(),
		jwt.WithValidMethods(hmacMethods),
	)
	token, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return errors.New("invalid token signature")
	}
	return nil
}
