package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/maheshrc27/marketing-hub/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0123456789abcdef0123456789abcdef"

func TestToken_RoundTrip(t *testing.T) {
	token, err := GenerateToken(testKey, "user-1", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(testKey, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestToken_RejectsWrongKeyAndExpired(t *testing.T) {
	token, err := GenerateToken(testKey, "user-1", time.Hour)
	require.NoError(t, err)
	_, err = ValidateToken("another-key", token)
	assert.Error(t, err)

	expired, err := GenerateToken(testKey, "user-1", -time.Minute)
	require.NoError(t, err)
	_, err = ValidateToken(testKey, expired)
	assert.Error(t, err)
}

func TestTransaction_SignAndVerify(t *testing.T) {
	signed, err := SignTransaction(testKey, transfer.TransactionClaims{
		TransactionID:    "tx-1",
		ProductID:        "dmhub.pro.monthly",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	})
	require.NoError(t, err)

	claims, err := VerifyTransaction(testKey, signed)
	require.NoError(t, err)
	assert.Equal(t, "tx-1", claims.TransactionID)
	assert.Equal(t, "user-1", claims.Subject)

	_, err = VerifyTransaction("forged", signed)
	assert.Error(t, err)
}

func TestEncryptDecrypt(t *testing.T) {
	enc, err := Encrypt([]byte("mock_access_token"), []byte(testKey))
	require.NoError(t, err)
	assert.NotEqual(t, "mock_access_token", enc)

	dec, err := Decrypt(enc, []byte(testKey))
	require.NoError(t, err)
	assert.Equal(t, "mock_access_token", dec)

	_, err = Decrypt("c2hvcnQ=", []byte(testKey))
	assert.Error(t, err)
}
