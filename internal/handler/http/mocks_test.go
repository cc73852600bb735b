package http

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/jobseekr/go-job-board/internal/config"
	"github.com/jobseekr/go-job-board/internal/logger"
	"github.com/jobseekr/go-job-board/internal/service"
	"github.com/jobseekr/go-job-board/models"
)

// ─────────────────────────────────────────────
// Test handler construction
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given service mocks, running in
// production mode so error envelopes stay terse.
func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, config.App{
		Mode:           config.ModeProduction,
		CookieDuration: time.Hour,
	}, logger.Nop())
}

func signedToken(userID uuid.UUID) models.Token {
	return models.Token{SignedString: "signed-token", UserID: userID}
}

// ─────────────────────────────────────────────
// Mock service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn       func(ctx context.Context, name, email, password string, role models.Role) (models.User, error)
	loginFn          func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn    func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn     func(ctx context.Context, tokenString string) (models.Token, error)
	forgotPasswordFn func(ctx context.Context, email string) error
	resetPasswordFn  func(ctx context.Context, resetToken, newPassword string) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, name, email, password string, role models.Role) (models.User, error) {
	return m.registerFn(ctx, name, email, password, role)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn == nil {
		return signedToken(user.ID), nil
	}
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) ForgotPassword(ctx context.Context, email string) error {
	return m.forgotPasswordFn(ctx, email)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) (models.User, error) {
	return m.resetPasswordFn(ctx, resetToken, newPassword)
}

// ─────────────────────────────────────────────
// Mock service.UserService
// ─────────────────────────────────────────────

type mockUserService struct {
	getUserFn        func(ctx context.Context, id uuid.UUID) (models.User, error)
	updateUserFn     func(ctx context.Context, id uuid.UUID, name, email string) (models.User, error)
	updatePasswordFn func(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) (models.User, error)
	deleteUserFn     func(ctx context.Context, id uuid.UUID) error
}

func (m *mockUserService) GetUser(ctx context.Context, id uuid.UUID) (models.User, error) {
	return m.getUserFn(ctx, id)
}

func (m *mockUserService) UpdateUser(ctx context.Context, id uuid.UUID, name, email string) (models.User, error) {
	return m.updateUserFn(ctx, id, name, email)
}

func (m *mockUserService) UpdatePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) (models.User, error) {
	return m.updatePasswordFn(ctx, id, currentPassword, newPassword)
}

func (m *mockUserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return m.deleteUserFn(ctx, id)
}

// ─────────────────────────────────────────────
// Mock service.JobService
// ─────────────────────────────────────────────

type mockJobService struct {
	createJobFn        func(ctx context.Context, job models.Job) (models.Job, error)
	getJobFn           func(ctx context.Context, id uuid.UUID, slug string) (models.Job, error)
	updateJobFn        func(ctx context.Context, id uuid.UUID, changes models.Job, requester models.User) (models.Job, error)
	deleteJobFn        func(ctx context.Context, id uuid.UUID, requester models.User) error
	listJobsFn         func(ctx context.Context, params url.Values) ([]models.Job, error)
	jobsWithinRadiusFn func(ctx context.Context, zipcode string, distanceMiles float64) ([]models.Job, error)
	jobStatsFn         func(ctx context.Context, topic string) ([]models.JobStats, error)
	applyFn            func(ctx context.Context, jobID uuid.UUID, applicant models.User, resume service.ResumeUpload) (string, error)
}

func (m *mockJobService) CreateJob(ctx context.Context, job models.Job) (models.Job, error) {
	return m.createJobFn(ctx, job)
}

func (m *mockJobService) GetJob(ctx context.Context, id uuid.UUID, slug string) (models.Job, error) {
	return m.getJobFn(ctx, id, slug)
}

func (m *mockJobService) UpdateJob(ctx context.Context, id uuid.UUID, changes models.Job, requester models.User) (models.Job, error) {
	return m.updateJobFn(ctx, id, changes, requester)
}

func (m *mockJobService) DeleteJob(ctx context.Context, id uuid.UUID, requester models.User) error {
	return m.deleteJobFn(ctx, id, requester)
}

func (m *mockJobService) ListJobs(ctx context.Context, params url.Values) ([]models.Job, error) {
	return m.listJobsFn(ctx, params)
}

func (m *mockJobService) JobsWithinRadius(ctx context.Context, zipcode string, distanceMiles float64) ([]models.Job, error) {
	return m.jobsWithinRadiusFn(ctx, zipcode, distanceMiles)
}

func (m *mockJobService) JobStats(ctx context.Context, topic string) ([]models.JobStats, error) {
	return m.jobStatsFn(ctx, topic)
}

func (m *mockJobService) Apply(ctx context.Context, jobID uuid.UUID, applicant models.User, resume service.ResumeUpload) (string, error) {
	return m.applyFn(ctx, jobID, applicant, resume)
}

// ─────────────────────────────────────────────
// Authenticated request plumbing
// ─────────────────────────────────────────────

// authenticatedServices wires ParseToken and GetUser so that any request
// carrying "Bearer signed-token" resolves to user.
func authenticatedServices(user models.User) *service.Services {
	return &service.Services{
		AuthService: &mockAuthService{
			parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
				return models.Token{SignedString: tokenString, UserID: user.ID}, nil
			},
		},
		UserService: &mockUserService{
			getUserFn: func(context.Context, uuid.UUID) (models.User, error) {
				return user, nil
			},
		},
	}
}
