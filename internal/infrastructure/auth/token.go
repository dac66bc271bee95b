package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	Issuer       = "nps-feedback-api"
	AdminSubject = "admin"
)

var (
	// ErrInvalidCredentials cobre senha errada e credencial não configurada
	ErrInvalidCredentials = errors.New("senha incorreta")
	ErrInvalidToken       = errors.New("token inválido ou expirado")
)

// Claims do token administrativo
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator confere a senha administrativa e emite tokens
type Authenticator struct {
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

// NewAuthenticator recebe o hash bcrypt injetado pela configuração
func NewAuthenticator(passwordHash, secret string, ttl time.Duration) *Authenticator {
	return &Authenticator{
		passwordHash: []byte(passwordHash),
		secret:       []byte(secret),
		ttl:          ttl,
		now:          time.Now,
	}
}

// Enabled indica se existe credencial configurada
func (a *Authenticator) Enabled() bool {
	return len(a.passwordHash) > 0 && len(a.secret) > 0
}

// Login confere a senha e devolve um token com a validade configurada
func (a *Authenticator) Login(password string) (string, time.Time, error) {
	if !a.Enabled() || !CheckPassword(string(a.passwordHash), password) {
		return "", time.Time{}, ErrInvalidCredentials
	}

	now := a.now()
	expiresAt := now.Add(a.ttl)
	claims := &Claims{
		Role: AdminSubject,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    Issuer,
			Subject:   AdminSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("erro ao assinar token: %w", err)
	}
	return signed, expiresAt, nil
}

// Validate valida o token e retorna as claims
func (a *Authenticator) Validate(tokenStr string) (*Claims, error) {
	if !a.Enabled() {
		return nil, ErrInvalidToken
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithSubject(AdminSubject),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("%w: não foi possível extrair claims", ErrInvalidToken)
	}
	return claims, nil
}

// HashPassword retorna o hash bcrypt da senha em texto
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPassword compara hash bcrypt com a senha em texto
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
