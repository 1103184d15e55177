package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Perfis de acesso do sistema.
const (
	PerfilAdmin      = "ADMIN"
	PerfilFinanceiro = "FINANCEIRO"
	PerfilConsulta   = "CONSULTA"
)

// Tempo de vida do access token
const AccessTTL = 15 * time.Minute

type Claims struct {
	UsuarioID uint   `json:"usuarioId"`
	Perfil    string `json:"perfil"`
	jwt.RegisteredClaims
}

func segredo() ([]byte, error) {
	s := os.Getenv("JWT_SECRET")
	if s == "" {
		return nil, errors.New("JWT_SECRET não definida")
	}
	return []byte(s), nil
}

// GerarToken gera um JWT HS256 com o perfil do usuário embutido nas claims.
func GerarToken(usuarioID uint, perfil string) (string, error) {
	secret, err := segredo()
	if err != nil {
		return "", err
	}
	now := time.Now()
	claims := &Claims{
		UsuarioID: usuarioID,
		Perfil:    perfil,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ValidarToken valida assinatura e expiração e devolve as claims.
func ValidarToken(tokenStr string) (*Claims, error) {
	secret, err := segredo()
	if err != nil {
		return nil, err
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	tok, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, errors.New("token inválido")
	}
	c, ok := tok.Claims.(*Claims)
	if !ok {
		return nil, errors.New("claims inválidas")
	}
	if c.ExpiresAt == nil || time.Now().After(c.ExpiresAt.Time) {
		return nil, errors.New("token expirado")
	}
	return c, nil
}
