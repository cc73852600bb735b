package crypto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobseekr/go-job-board/internal/config"
)

func testCodec(duration time.Duration) *TokenCodec {
	return NewTokenCodec(config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-job-board",
		TokenDuration: duration,
	})
}

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := testCodec(time.Hour)
	userID := uuid.New()

	issued, err := codec.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, issued.SignedString)

	parsed, err := codec.Parse(issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed.UserID)
}

func TestTokenCodec_Expired(t *testing.T) {
	codec := testCodec(-time.Minute)

	issued, err := codec.Issue(uuid.New())
	require.NoError(t, err)

	_, err = codec.Parse(issued.SignedString)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenCodec_WrongKey(t *testing.T) {
	issued, err := testCodec(time.Hour).Issue(uuid.New())
	require.NoError(t, err)

	other := NewTokenCodec(config.App{
		TokenSignKey:  "different-key",
		TokenIssuer:   "go-job-board",
		TokenDuration: time.Hour,
	})

	_, err = other.Parse(issued.SignedString)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenCodec_WrongIssuer(t *testing.T) {
	foreign := NewTokenCodec(config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "someone-else",
		TokenDuration: time.Hour,
	})
	issued, err := foreign.Issue(uuid.New())
	require.NoError(t, err)

	_, err = testCodec(time.Hour).Parse(issued.SignedString)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenCodec_Garbage(t *testing.T) {
	_, err := testCodec(time.Hour).Parse("not.a.token")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenCodec_MissingConfig(t *testing.T) {
	codec := NewTokenCodec(config.App{})

	_, err := codec.Issue(uuid.New())
	require.Error(t, err)
}
