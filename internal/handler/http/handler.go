package http

import (
	"github.com/jobseekr/go-job-board/internal/config"
	"github.com/jobseekr/go-job-board/internal/logger"
	"github.com/jobseekr/go-job-board/internal/service"
)

type Handler struct {
	services *service.Services

	cfg config.App

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}
