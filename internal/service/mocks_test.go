package service

import (
	"context"
	"io"
	"net/url"

	"github.com/google/uuid"

	"github.com/jobseekr/go-job-board/models"
)

// ─────────────────────────────────────────────
// Mock store.UserRepository
// ─────────────────────────────────────────────

// mockUserRepository implements store.UserRepository for unit tests.
// Each method field can be overridden per test case.
type mockUserRepository struct {
	createUserFn           func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn      func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn         func(ctx context.Context, id uuid.UUID) (models.User, error)
	findUserByResetTokenFn func(ctx context.Context, tokenHash string) (models.User, error)
	updateUserFn           func(ctx context.Context, user models.User) (models.User, error)
	updatePasswordFn       func(ctx context.Context, id uuid.UUID, passwordHash string) error
	setResetSecretFn       func(ctx context.Context, id uuid.UUID, tokenHash string, expires int64) error
	clearResetSecretFn     func(ctx context.Context, id uuid.UUID) error
	deleteUserFn           func(ctx context.Context, id uuid.UUID) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findUserByEmailFn(ctx, email)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	return m.findUserByIDFn(ctx, id)
}

func (m *mockUserRepository) FindUserByResetToken(ctx context.Context, tokenHash string) (models.User, error) {
	return m.findUserByResetTokenFn(ctx, tokenHash)
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.updateUserFn(ctx, user)
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return m.updatePasswordFn(ctx, id, passwordHash)
}

func (m *mockUserRepository) SetResetSecret(ctx context.Context, id uuid.UUID, tokenHash string, expires int64) error {
	return m.setResetSecretFn(ctx, id, tokenHash, expires)
}

func (m *mockUserRepository) ClearResetSecret(ctx context.Context, id uuid.UUID) error {
	return m.clearResetSecretFn(ctx, id)
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return m.deleteUserFn(ctx, id)
}

// ─────────────────────────────────────────────
// Mock store.JobRepository
// ─────────────────────────────────────────────

type mockJobRepository struct {
	createJobFn            func(ctx context.Context, job models.Job) (models.Job, error)
	findJobByIDFn          func(ctx context.Context, id uuid.UUID) (models.Job, error)
	findJobByIDAndSlugFn   func(ctx context.Context, id uuid.UUID, slug string) (models.Job, error)
	updateJobFn            func(ctx context.Context, job models.Job) (models.Job, error)
	deleteJobFn            func(ctx context.Context, id uuid.UUID) error
	listJobsFn             func(ctx context.Context, params url.Values) ([]models.Job, error)
	findJobsWithinRadiusFn func(ctx context.Context, latitude, longitude, radiusRad float64) ([]models.Job, error)
	jobStatsFn             func(ctx context.Context, topic string) ([]models.JobStats, error)
	listApplicantsFn       func(ctx context.Context, jobID uuid.UUID) ([]models.Applicant, error)
	addApplicantFn         func(ctx context.Context, applicant models.Applicant) error
}

func (m *mockJobRepository) CreateJob(ctx context.Context, job models.Job) (models.Job, error) {
	return m.createJobFn(ctx, job)
}

func (m *mockJobRepository) FindJobByID(ctx context.Context, id uuid.UUID) (models.Job, error) {
	return m.findJobByIDFn(ctx, id)
}

func (m *mockJobRepository) FindJobByIDAndSlug(ctx context.Context, id uuid.UUID, slug string) (models.Job, error) {
	return m.findJobByIDAndSlugFn(ctx, id, slug)
}

func (m *mockJobRepository) UpdateJob(ctx context.Context, job models.Job) (models.Job, error) {
	return m.updateJobFn(ctx, job)
}

func (m *mockJobRepository) DeleteJob(ctx context.Context, id uuid.UUID) error {
	return m.deleteJobFn(ctx, id)
}

func (m *mockJobRepository) ListJobs(ctx context.Context, params url.Values) ([]models.Job, error) {
	return m.listJobsFn(ctx, params)
}

func (m *mockJobRepository) FindJobsWithinRadius(ctx context.Context, latitude, longitude, radiusRad float64) ([]models.Job, error) {
	return m.findJobsWithinRadiusFn(ctx, latitude, longitude, radiusRad)
}

func (m *mockJobRepository) JobStats(ctx context.Context, topic string) ([]models.JobStats, error) {
	return m.jobStatsFn(ctx, topic)
}

func (m *mockJobRepository) ListApplicants(ctx context.Context, jobID uuid.UUID) ([]models.Applicant, error) {
	return m.listApplicantsFn(ctx, jobID)
}

func (m *mockJobRepository) AddApplicant(ctx context.Context, applicant models.Applicant) error {
	return m.addApplicantFn(ctx, applicant)
}

// ─────────────────────────────────────────────
// Mock store.ResumeStorage, adapter.Geocoder, adapter.Mailer
// ─────────────────────────────────────────────

type mockResumeStorage struct {
	saveResumeFn func(ctx context.Context, fileName string, contents io.Reader) error
}

func (m *mockResumeStorage) SaveResume(ctx context.Context, fileName string, contents io.Reader) error {
	return m.saveResumeFn(ctx, fileName, contents)
}

type mockGeocoder struct {
	geocodeFn func(ctx context.Context, address string) (models.Location, error)
}

func (m *mockGeocoder) Geocode(ctx context.Context, address string) (models.Location, error) {
	return m.geocodeFn(ctx, address)
}

type mockMailer struct {
	sendFn func(ctx context.Context, to, subject, body string) error
}

func (m *mockMailer) Send(ctx context.Context, to, subject, body string) error {
	return m.sendFn(ctx, to, subject, body)
}
