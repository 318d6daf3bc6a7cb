// Package auth выдаёт и проверяет bearer-токены и хеширует пароли.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
	"github.com/hrms-api/internal/domain"
)

// TokenTTL - фиксированное время жизни токена, обновления нет
const TokenTTL = 8 * time.Hour

const minSecretLength = 32

// Claims - данные пользователя внутри токена
type Claims struct {
	UserID     int64  `json:"id"`
	Email      string `json:"email"`
	TenantID   int64  `json:"tenantId"`
	Role       string `json:"role"`
	EmployeeID *int64 `json:"employeeId"`
}

// HasRole проверяет, что роль пользователя входит в список
func (c *Claims) HasRole(roles ...string) bool {
	for _, role := range roles {
		if c.Role == role {
			return true
		}
	}
	return false
}

// ClaimsForUser собирает claims из учётной записи
func ClaimsForUser(user *domain.User) Claims {
	return Claims{
		UserID:     user.ID,
		Email:      user.Email,
		TenantID:   user.TenantID,
		Role:       user.Role,
		EmployeeID: user.EmployeeID,
	}
}

// TokenManager подписывает и проверяет токены по HS256
type TokenManager struct {
	secret []byte
	signer jose.Signer
	now    func() time.Time
}

// NewTokenManager создаёт менеджер токенов с общим секретом
func NewTokenManager(secret string) (*TokenManager, error) {
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("jwt secret must be at least %d bytes", minSecretLength)
	}

	key := []byte(secret)
	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.HS256, Key: key},
		(&jose.SignerOptions{}).WithType("JWT"),
	)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}

	return &TokenManager{
		secret: key,
		signer: signer,
		now:    time.Now,
	}, nil
}

// Issue подписывает токен и возвращает его вместе со временем истечения
func (m *TokenManager) Issue(claims Claims) (string, time.Time, error) {
	issuedAt := m.now()
	expiresAt := issuedAt.Add(TokenTTL)

	std := jwt.Claims{
		Subject:  strconv.FormatInt(claims.UserID, 10),
		IssuedAt: jwt.NewNumericDate(issuedAt),
		Expiry:   jwt.NewNumericDate(expiresAt),
	}

	raw, err := jwt.Signed(m.signer).Claims(std).Claims(claims).Serialize()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return raw, expiresAt, nil
}

// Verify проверяет подпись и срок действия токена
func (m *TokenManager) Verify(raw string) (*Claims, error) {
	tok, err := jwt.ParseSigned(raw, []jose.SignatureAlgorithm{jose.HS256})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", domain.ErrInvalidToken)
	}

	var (
		std    jwt.Claims
		claims Claims
	)
	if err := tok.Claims(m.secret, &std, &claims); err != nil {
		return nil, fmt.Errorf("verify signature: %w", domain.ErrInvalidToken)
	}

	if std.Expiry == nil {
		return nil, fmt.Errorf("missing expiry: %w", domain.ErrInvalidToken)
	}
	if err := std.ValidateWithLeeway(jwt.Expected{Time: m.now()}, 0); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidToken, err)
	}
	if claims.UserID == 0 || claims.TenantID == 0 {
		return nil, fmt.Errorf("incomplete claims: %w", domain.ErrInvalidToken)
	}

	return &claims, nil
}

// IsExpired сообщает, что токен отклонён из-за истёкшего срока
func IsExpired(err error) bool {
	return errors.Is(err, jwt.ErrExpired)
}
