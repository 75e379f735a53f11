package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-predictable-results"

func TestGenerateToken(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)

	tokenStr, err := m.GenerateToken("65a1f0c2e4b0a1b2c3d4e5f6")
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "65a1f0c2e4b0a1b2c3d4e5f6", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateToken(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)
	valid, _ := m.GenerateToken("user-1")

	expired, _ := NewTokenManager(testSecret, -time.Hour).GenerateToken("user-1")
	otherSecret, _ := NewTokenManager("different-secret-key", time.Hour).GenerateToken("user-1")
	noSubject, _ := NewTokenManager(testSecret, time.Hour).GenerateToken("")

	noneToken := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	noneStr, _ := noneToken.SignedString(jwt.UnsafeAllowNoneSignatureType)

	noExpiry := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "user-1"})
	noExpiryStr, _ := noExpiry.SignedString([]byte(testSecret))

	tests := []struct {
		name        string
		token       string
		wantSubject string
		wantErr     error
	}{
		{name: "success: valid token", token: valid, wantSubject: "user-1"},
		{name: "failure: expired token", token: expired, wantErr: jwt.ErrTokenExpired},
		{name: "failure: invalid signature", token: otherSecret, wantErr: jwt.ErrTokenSignatureInvalid},
		{name: "failure: malformed token", token: "not-a-valid-jwt-token", wantErr: jwt.ErrTokenMalformed},
		{name: "failure: wrong signing method", token: noneStr, wantErr: ErrInvalidSigningMethod},
		{name: "failure: missing expiry", token: noExpiryStr, wantErr: jwt.ErrTokenRequiredClaimMissing},
		{name: "failure: missing subject", token: noSubject, wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, err := m.ValidateToken(tt.token)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, subject)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSubject, subject)
		})
	}
}
