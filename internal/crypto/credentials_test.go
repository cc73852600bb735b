package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPassword("s3cret-password", hash))
	assert.False(t, CheckPassword("wrong-password", hash))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("same-password", first))
	assert.True(t, CheckPassword("same-password", second))
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("anything", "not-a-bcrypt-hash"))
}

func TestNewResetSecret(t *testing.T) {
	plaintext, storedHash, err := NewResetSecret()
	require.NoError(t, err)

	// 20 random bytes hex-encoded
	assert.Len(t, plaintext, 40)
	assert.Equal(t, HashResetSecret(plaintext), storedHash)
	assert.NotEqual(t, plaintext, storedHash)
}

func TestNewResetSecret_Unique(t *testing.T) {
	first, _, err := NewResetSecret()
	require.NoError(t, err)
	second, _, err := NewResetSecret()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
