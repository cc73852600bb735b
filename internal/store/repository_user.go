package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"

	"github.com/jobseekr/go-job-board/internal/logger"
	"github.com/jobseekr/go-job-board/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, and credential mutation against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.ID, user.Name, user.Email, user.Role, user.PasswordHash)

	var created models.User
	if err := row.Scan(&created.ID, &created.Name, &created.Email, &created.Role, &created.PasswordHash, &created.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByEmail retrieves a user record by its (lower-cased) email.
// Returns [ErrNoUserWasFound] when no record matches.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, findUserByEmail, email)
}

// FindUserByID retrieves a user record by its identifier.
// Returns [ErrNoUserWasFound] when no record matches — including the case
// of a still-valid token whose account has since been deleted.
func (r *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	return r.findOne(ctx, findUserByID, id)
}

// FindUserByResetToken retrieves the user holding an unexpired reset secret
// whose stored hash matches tokenHash. Returns [ErrNoUserWasFound] when the
// secret is unknown or expired.
func (r *userRepository) FindUserByResetToken(ctx context.Context, tokenHash string) (models.User, error) {
	return r.findOne(ctx, findUserByResetToken, tokenHash)
}

// UpdateUser persists name and email changes and returns the updated record.
// A unique_violation on email maps to [ErrEmailAlreadyExists].
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateUser, user.ID, user.Name, user.Email)

	var updated models.User
	if err := row.Scan(&updated.ID, &updated.Name, &updated.Email, &updated.Role, &updated.PasswordHash, &updated.CreatedAt); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.User{}, ErrNoUserWasFound
		case postgresError(err) == pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// UpdatePassword stores a freshly derived password hash and clears any
// outstanding reset secret in the same statement.
func (r *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return r.execOne(ctx, updateUserPassword, id, passwordHash)
}

// SetResetSecret stores the hash of an issued reset secret together with
// its unix-seconds expiry.
func (r *userRepository) SetResetSecret(ctx context.Context, id uuid.UUID, tokenHash string, expires int64) error {
	return r.execOne(ctx, setUserResetSecret, id, tokenHash, expires)
}

// ClearResetSecret removes the outstanding reset secret. Used both after a
// successful reset and as the compensating action when the reset email
// cannot be delivered.
func (r *userRepository) ClearResetSecret(ctx context.Context, id uuid.UUID) error {
	return r.execOne(ctx, clearUserResetSecret, id)
}

// DeleteUser removes the account.
func (r *userRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return r.execOne(ctx, deleteUser, id)
}

func (r *userRepository) findOne(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	var resetToken sql.NullString
	var resetExpires sql.NullTime

	row := r.db.QueryRowContext(ctx, query, arg)
	err := row.Scan(&found.ID, &found.Name, &found.Email, &found.Role, &found.PasswordHash, &resetToken, &resetExpires, &found.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.findOne").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	found.ResetPasswordToken = resetToken.String
	if resetExpires.Valid {
		found.ResetPasswordExpires = &resetExpires.Time
	}

	return found, nil
}

func (r *userRepository) execOne(ctx context.Context, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.execOne").Msg("error: executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
