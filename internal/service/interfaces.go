package service

import (
	"context"
	"io"
	"net/url"

	"github.com/google/uuid"

	"github.com/jobseekr/go-job-board/models"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string, role models.Role) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) (models.User, error)
}

type UserService interface {
	GetUser(ctx context.Context, id uuid.UUID) (models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, name, email string) (models.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) (models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// ResumeUpload carries one uploaded resume blob through the apply flow.
type ResumeUpload struct {
	FileName string
	Size     int64
	Contents io.Reader
}

type JobService interface {
	CreateJob(ctx context.Context, job models.Job) (models.Job, error)
	GetJob(ctx context.Context, id uuid.UUID, slug string) (models.Job, error)
	UpdateJob(ctx context.Context, id uuid.UUID, changes models.Job, requester models.User) (models.Job, error)
	DeleteJob(ctx context.Context, id uuid.UUID, requester models.User) error

	ListJobs(ctx context.Context, params url.Values) ([]models.Job, error)
	JobsWithinRadius(ctx context.Context, zipcode string, distanceMiles float64) ([]models.Job, error)
	JobStats(ctx context.Context, topic string) ([]models.JobStats, error)

	Apply(ctx context.Context, jobID uuid.UUID, applicant models.User, resume ResumeUpload) (string, error)
}
