package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"rag-intent-chat/internal/artifact"
)

type jwtSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSigner creates an HS256 Signer whose tokens expire after ttl.
func NewSigner(secret string, ttl time.Duration) (artifact.Signer, error) {
	if secret == "" {
		return nil, errors.New("artifact: signing secret is required")
	}
	if ttl <= 0 {
		ttl = artifact.DefaultLinkTTL
	}
	return &jwtSigner{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (s *jwtSigner) Issue(name string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   name,
		Audience:  jwt.ClaimStrings{artifact.TokenAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("artifact: sign token: %w", err)
	}
	return token, nil
}

func (s *jwtSigner) Verify(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims,
		func(t *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(artifact.TokenAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: %v", artifact.ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", artifact.ErrInvalidToken
	}
	return claims.Subject, nil
}
