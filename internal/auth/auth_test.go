package auth

import (
	"testing"
	"time"

	"github.com/hrms-api/internal/domain"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-that-is-long-enough-for-hs256"

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m, err := NewTokenManager(testSecret)
	require.NoError(t, err)

	empID := int64(7)
	raw, expiresAt, err := m.Issue(Claims{
		UserID:     3,
		Email:      "a@acme.com",
		TenantID:   2,
		Role:       domain.RoleAdmin,
		EmployeeID: &empID,
	})
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	require.WithinDuration(t, time.Now().Add(TokenTTL), expiresAt, time.Minute)

	claims, err := m.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, int64(3), claims.UserID)
	require.Equal(t, int64(2), claims.TenantID)
	require.Equal(t, "a@acme.com", claims.Email)
	require.Equal(t, domain.RoleAdmin, claims.Role)
	require.NotNil(t, claims.EmployeeID)
	require.Equal(t, empID, *claims.EmployeeID)
}

func TestTokenManager_Expired(t *testing.T) {
	m, err := NewTokenManager(testSecret)
	require.NoError(t, err)

	issued := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issued }
	raw, _, err := m.Issue(Claims{UserID: 1, TenantID: 1, Role: domain.RoleEmployee})
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(TokenTTL - time.Minute) }
	_, err = m.Verify(raw)
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(TokenTTL + time.Minute) }
	_, err = m.Verify(raw)
	require.ErrorIs(t, err, domain.ErrInvalidToken)
	require.True(t, IsExpired(err))
}

func TestTokenManager_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewTokenManager(testSecret)
	require.NoError(t, err)
	verifier, err := NewTokenManager("another-secret-that-is-long-enough-too")
	require.NoError(t, err)

	raw, _, err := issuer.Issue(Claims{UserID: 1, TenantID: 1, Role: domain.RoleHR})
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, domain.ErrInvalidToken)

	_, err = verifier.Verify("not-a-token")
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestNewTokenManager_ShortSecret(t *testing.T) {
	_, err := NewTokenManager("short")
	require.Error(t, err)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("pw")
	require.NoError(t, err)
	require.NotEqual(t, "pw", hash)

	ok, err := CheckPassword(hash, "pw")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = CheckPassword(hash, "wrong")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCheckDummyPassword_SameCost(t *testing.T) {
	hash, err := HashPassword("secret-pass")
	require.NoError(t, err)

	realCost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	dummyCost, err := bcrypt.Cost(dummyHash())
	require.NoError(t, err)
	require.Equal(t, realCost, dummyCost)

	require.NotPanics(t, func() { CheckDummyPassword("anything") })
}

func TestClaims_HasRole(t *testing.T) {
	c := Claims{Role: domain.RoleHR}
	require.True(t, c.HasRole(domain.RoleAdmin, domain.RoleHR))
	require.False(t, c.HasRole(domain.RoleAdmin))
}
