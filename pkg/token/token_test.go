package token

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_SignAndVerify(t *testing.T) {
	svc := NewService("britt")

	raw, err := svc.Sign("mluukkai", "user:abc123")
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := svc.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "mluukkai", claims.Username)
	assert.Equal(t, "user:abc123", claims.UserID)
}

func TestService_Verify_WrongSecret(t *testing.T) {
	raw, err := NewService("britt").Sign("mluukkai", "user:abc123")
	require.NoError(t, err)

	_, err = NewService("other-secret").Verify(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Verify_Malformed(t *testing.T) {
	svc := NewService("britt")

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := svc.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", raw)
	}
}

func TestService_Verify_Tampered(t *testing.T) {
	svc := NewService("britt")

	raw, err := svc.Sign("mluukkai", "user:abc123")
	require.NoError(t, err)

	tampered := raw[:len(raw)-2] + "xx"
	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Verify_RejectsNonHMAC(t *testing.T) {
	svc := NewService("britt")

	// alg "none" tokens must not verify
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Username: "eve", UserID: "user:eve"})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_TokensHaveNoExpiry(t *testing.T) {
	svc := NewService("britt")

	raw, err := svc.Sign("mluukkai", "user:abc123")
	require.NoError(t, err)

	claims, err := svc.Verify(raw)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}
