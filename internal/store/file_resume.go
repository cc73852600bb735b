package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jobseekr/go-job-board/internal/config"
	"github.com/jobseekr/go-job-board/internal/logger"
)

// resumeFileStorage is the filesystem implementation of [ResumeStorage].
// It persists applicant resumes under the configured upload directory so
// that the database only holds the filename.
type resumeFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewResumeFileStorage constructs a [ResumeStorage] rooted at the upload
// directory from cfg, creating the directory if it does not exist.
func NewResumeFileStorage(cfg config.Files, logger *logger.Logger) (ResumeStorage, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating upload directory: %w", err)
	}

	logger.Debug().Str("dir", cfg.UploadDir).Msg("creating resume file storage")
	return &resumeFileStorage{
		dir:    cfg.UploadDir,
		logger: logger,
	}, nil
}

// SaveResume writes the blob to <dir>/<fileName>, replacing any previous
// upload stored under the same name. fileName is flattened to its base so
// callers cannot escape the upload directory.
func (s *resumeFileStorage) SaveResume(ctx context.Context, fileName string, contents io.Reader) error {
	log := logger.FromContext(ctx)

	path := filepath.Join(s.dir, filepath.Base(fileName))
	file, err := os.Create(path)
	if err != nil {
		log.Err(err).Str("path", path).Msg("error creating resume file")
		return fmt.Errorf("error creating resume file: %w", err)
	}
	if _, err := io.Copy(file, contents); err != nil {
		file.Close()
		log.Err(err).Str("path", path).Msg("error writing resume file")
		return fmt.Errorf("error writing resume file: %w", err)
	}

	return file.Close()
}
