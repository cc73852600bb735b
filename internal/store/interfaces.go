package store

import (
	"context"
	"io"
	"net/url"

	"github.com/google/uuid"

	"github.com/jobseekr/go-job-board/models"
)

// UserRepository is the data-access layer for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error)
	FindUserByResetToken(ctx context.Context, tokenHash string) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	SetResetSecret(ctx context.Context, id uuid.UUID, tokenHash string, expires int64) error
	ClearResetSecret(ctx context.Context, id uuid.UUID) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// JobRepository is the data-access layer for job postings, applications,
// and aggregate stats. ListJobs executes a query assembled by the
// [JobQuery] pipeline.
type JobRepository interface {
	CreateJob(ctx context.Context, job models.Job) (models.Job, error)
	FindJobByID(ctx context.Context, id uuid.UUID) (models.Job, error)
	FindJobByIDAndSlug(ctx context.Context, id uuid.UUID, slug string) (models.Job, error)
	UpdateJob(ctx context.Context, job models.Job) (models.Job, error)
	DeleteJob(ctx context.Context, id uuid.UUID) error

	ListJobs(ctx context.Context, params url.Values) ([]models.Job, error)
	FindJobsWithinRadius(ctx context.Context, latitude, longitude, radiusRad float64) ([]models.Job, error)
	JobStats(ctx context.Context, topic string) ([]models.JobStats, error)

	ListApplicants(ctx context.Context, jobID uuid.UUID) ([]models.Applicant, error)
	AddApplicant(ctx context.Context, applicant models.Applicant) error
}

// ResumeStorage persists uploaded resume blobs by name.
type ResumeStorage interface {
	SaveResume(ctx context.Context, fileName string, contents io.Reader) error
}
