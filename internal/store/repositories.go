package store

import (
	"context"

	"github.com/jobseekr/go-job-board/internal/config"
	"github.com/jobseekr/go-job-board/internal/logger"
)

// Repositories bundles every persistence backend used by the service layer:
// the relational repositories and the resume file store.
type Repositories struct {
	UserRepository UserRepository
	JobRepository  JobRepository
	ResumeStorage  ResumeStorage
}

// NewRepositories connects to Postgres, applies pending migrations, and
// constructs all repositories over the shared connection pool.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	resumes, err := NewResumeFileStorage(cfg.Files, log)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		UserRepository: NewUserRepository(db, log),
		JobRepository:  NewJobRepository(db, log),
		ResumeStorage:  resumes,
	}, nil
}
