package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jobseekr/go-job-board/internal/config"
	"github.com/jobseekr/go-job-board/models"
)

// Sentinel errors returned by [TokenCodec.Parse]. Callers should match
// against them with [errors.Is].
var (
	// ErrTokenExpired is returned when the token's "exp" claim is in the past.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenInvalid is returned for every other validation failure:
	// bad signature, wrong issuer, malformed subject, or garbage input.
	ErrTokenInvalid = errors.New("token is invalid")
)

// TokenCodec issues and verifies signed session tokens. It is constructed
// once at startup from the application configuration and is safe for
// concurrent use; all state is read-only after construction.
type TokenCodec struct {
	signKey  string
	issuer   string
	duration time.Duration
}

// NewTokenCodec constructs a TokenCodec populated with the sign key, issuer,
// and token lifetime from cfg.
func NewTokenCodec(cfg config.App) *TokenCodec {
	return &TokenCodec{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
	}
}

// Issue creates a signed HMAC-SHA256 JWT bound to the given user.
//
// The token carries the standard claims:
//   - Issuer    (iss): the configured issuer
//   - Subject   (sub): the user's UUID in canonical string form
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus the configured duration
func (c *TokenCodec) Issue(userID uuid.UUID) (models.Token, error) {
	if c.signKey == "" || c.issuer == "" || c.duration == 0 {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    c.issuer,
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.duration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(c.signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}

// Parse validates a raw token string and extracts its claims.
//
// Validation includes signature verification, issuer check, and expiry
// check. Failures are normalised to the two sentinels so that callers can
// distinguish an expired token from every other kind of invalid token
// without inspecting low-level JWT errors.
func (c *TokenCodec) Parse(tokenString string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(c.signKey), nil
	}, jwt.WithIssuer(c.issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return models.Token{}, fmt.Errorf("%w: missing subject", ErrTokenInvalid)
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: malformed subject: %w", ErrTokenInvalid, err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}
