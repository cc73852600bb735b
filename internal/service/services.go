// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/jobseekr/go-job-board/internal/adapter"
	"github.com/jobseekr/go-job-board/internal/config"
	"github.com/jobseekr/go-job-board/internal/crypto"
	"github.com/jobseekr/go-job-board/internal/logger"
	"github.com/jobseekr/go-job-board/internal/store"
)

// Services bundles the application services handed to the HTTP layer.
type Services struct {
	AuthService
	UserService
	JobService
}

// NewServices wires the service layer on top of the repositories and
// outbound adapters.
func NewServices(repositories *store.Repositories, geocoder adapter.Geocoder, mailer adapter.Mailer, tokens *crypto.TokenCodec, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repositories.UserRepository, mailer, tokens, logger),
		UserService: NewUserService(repositories.UserRepository, logger),
		JobService:  NewJobService(repositories.JobRepository, repositories.ResumeStorage, geocoder, cfg.Storage.Files, logger),
	}
}
