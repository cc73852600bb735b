package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both unknown email and wrong password on
	// login so that the two cases are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrWrongPassword is returned when the current password supplied on a
	// password update does not match the stored hash.
	ErrWrongPassword = errors.New("password is incorrect")

	// ErrResetTokenInvalid is returned when a password-reset secret is
	// unknown, already consumed, or expired.
	ErrResetTokenInvalid = errors.New("password reset token is invalid or has expired")

	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrJobClosed is returned when applying to a job whose closing date
	// has passed.
	ErrJobClosed = errors.New("job is closed")

	// ErrNotJobOwner is returned when an account other than the posting's
	// owner tries to update or delete it. Admins bypass the check.
	ErrNotJobOwner = errors.New("not allowed to modify this job posting")

	// ErrNoStatsFound is returned when a stats topic matches no postings.
	ErrNoStatsFound = errors.New("no stats found for topic")

	ErrNoResumeProvided      = errors.New("please upload a resume")
	ErrUnsupportedResumeType = errors.New("please upload a valid file")
	ErrResumeTooLarge        = errors.New("file size is too big")
	ErrResumeUploadFailed    = errors.New("resume upload failed")
)
