package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jobseekr/go-job-board/internal/adapter"
	"github.com/jobseekr/go-job-board/internal/crypto"
	"github.com/jobseekr/go-job-board/internal/logger"
	"github.com/jobseekr/go-job-board/internal/store"
	"github.com/jobseekr/go-job-board/models"
)

// resetSecretTTL bounds how long an emailed password-reset secret stays
// consumable.
const resetSecretTTL = 30 * time.Minute

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, JWT token lifecycle,
// and the password-forgot/reset flow, using a UserRepository for
// persistence and bcrypt for password hashing.
type authService struct {
	userRepository store.UserRepository
	mailer         adapter.Mailer
	tokens         *crypto.TokenCodec

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given
// UserRepository, Mailer, and token codec.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, mailer adapter.Mailer, tokens *crypto.TokenCodec, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		mailer:         mailer,
		tokens:         tokens,
		logger:         logger,
	}
}

// Register creates a new user account with a freshly derived password hash.
// The email is lower-cased before storage so that uniqueness is
// case-insensitive. An empty role defaults to [models.RoleUser].
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided on empty name/email/password or unknown role.
//   - store.ErrEmailAlreadyExists when the email is taken.
func (a *authService) Register(ctx context.Context, name, email, password string, role models.Role) (models.User, error) {
	log := logger.FromContext(ctx)

	if name == "" || email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}
	if role == "" {
		role = models.RoleUser
	}
	if !role.Valid() {
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := crypto.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        strings.ToLower(email),
		Role:         role,
		PasswordHash: passwordHash,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by email and password.
//
// Unknown email and wrong password both surface as ErrInvalidCredentials;
// no token is issued in either case.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Msg("login called without email or password")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		// the store sentinel must not leave this method: carrying it in the
		// chain would let callers tell an unknown email from a wrong password
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !crypto.CheckPassword(password, foundUser.PasswordHash) {
		log.Error().Str("email", email).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := a.tokens.Issue(user.ID)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string, delegating expiry and
// signature discrimination to the token codec.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return a.tokens.Parse(tokenString)
}

// ForgotPassword issues a password-reset secret for the account behind
// email, persists only its hash, and mails the plaintext to the user.
//
// If the mail cannot be delivered the stored secret is cleared again before
// the failure is surfaced, so no unreachable secret stays consumable.
func (a *authService) ForgotPassword(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	plaintext, storedHash, err := crypto.NewResetSecret()
	if err != nil {
		return fmt.Errorf("generating reset secret failed: %w", err)
	}

	expires := time.Now().Add(resetSecretTTL).Unix()
	if err := a.userRepository.SetResetSecret(ctx, user.ID, storedHash, expires); err != nil {
		return fmt.Errorf("storing reset secret failed: %w", err)
	}

	body := fmt.Sprintf("Your password reset token is:\n\n%s\n\nIt is valid for %s. If you did not request it, ignore this email.",
		plaintext, resetSecretTTL)
	if err := a.mailer.Send(ctx, user.Email, "Password recovery", body); err != nil {
		// roll back the stored secret before surfacing the failure
		if clearErr := a.userRepository.ClearResetSecret(ctx, user.ID); clearErr != nil {
			log.Err(clearErr).Str("email", user.Email).Msg("clearing reset secret after mail failure failed")
		}
		log.Err(err).Str("email", user.Email).Msg("reset email was not sent")
		return fmt.Errorf("reset email was not sent: %w", err)
	}

	return nil
}

// ResetPassword consumes an emailed reset secret: it looks up the account
// holding the matching unexpired hash, derives a new password hash, and
// clears the secret in the same write.
//
// Returns ErrResetTokenInvalid when the secret is unknown or expired.
func (a *authService) ResetPassword(ctx context.Context, resetToken, newPassword string) (models.User, error) {
	log := logger.FromContext(ctx)

	if resetToken == "" || newPassword == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByResetToken(ctx, crypto.HashResetSecret(resetToken))
	if err != nil {
		log.Err(err).Msg("reset token lookup failed")
		return models.User{}, ErrResetTokenInvalid
	}

	passwordHash, err := crypto.HashPassword(newPassword)
	if err != nil {
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.userRepository.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		return models.User{}, fmt.Errorf("storing new password failed: %w", err)
	}

	return user, nil
}
