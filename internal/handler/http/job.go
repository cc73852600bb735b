package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jobseekr/go-job-board/internal/logger"
	"github.com/jobseekr/go-job-board/internal/service"
	"github.com/jobseekr/go-job-board/internal/store"
	"github.com/jobseekr/go-job-board/internal/utils"
	"github.com/jobseekr/go-job-board/models"
)

// resumeFormField is the multipart field carrying the resume on apply.
const resumeFormField = "file"

func (h *Handler) listJobs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	jobs, err := h.services.JobService.ListJobs(ctx, r.URL.Query())
	if err != nil {
		log.Err(err).Msg("error occurred during job listing")
		h.writeError(w, r, err)
		return
	}

	respond(w, models.List(len(jobs), jobs), http.StatusOK)
}

func (h *Handler) getJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := jobIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	job, err := h.services.JobService.GetJob(ctx, id, chi.URLParam(r, "slug"))
	if err != nil {
		log.Err(err).Str("id", id.String()).Msg("error occurred during job lookup")
		h.writeError(w, r, err)
		return
	}

	respond(w, models.OK("", job), http.StatusOK)
}

func (h *Handler) jobsInRadius(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	zipcode := chi.URLParam(r, "zipcode")
	distance, err := strconv.ParseFloat(chi.URLParam(r, "distance"), 64)
	if err != nil || math.IsInf(distance, 0) || math.IsNaN(distance) {
		// ParseFloat accepts "Inf" and "NaN", which would turn the radius
		// predicate into a match-everything or match-nothing filter
		h.writeError(w, r, &validationError{messages: []string{"please enter a numeric distance"}})
		return
	}

	jobs, err := h.services.JobService.JobsWithinRadius(ctx, zipcode, distance)
	if err != nil {
		log.Err(err).Str("zipcode", zipcode).Msg("error occurred during proximity search")
		h.writeError(w, r, err)
		return
	}

	respond(w, models.List(len(jobs), jobs), http.StatusOK)
}

func (h *Handler) jobStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	topic := chi.URLParam(r, "topic")
	stats, err := h.services.JobService.JobStats(ctx, topic)
	if err != nil {
		log.Err(err).Str("topic", topic).Msg("error occurred during stats aggregation")
		h.writeError(w, r, err)
		return
	}

	respond(w, models.OK("", stats), http.StatusOK)
}

func (h *Handler) createJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrMissingToken)
		return
	}

	var request jobRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSON)
		return
	}
	if err := request.checkCreate(); err != nil {
		h.writeError(w, r, err)
		return
	}

	job := request.toModel()
	job.UserID = user.ID

	created, err := h.services.JobService.CreateJob(ctx, job)
	if err != nil {
		log.Err(err).Str("title", job.Title).Msg("error occurred during job creation")
		h.writeError(w, r, err)
		return
	}

	respond(w, models.OK("job created", created), http.StatusCreated)
}

func (h *Handler) updateJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrMissingToken)
		return
	}

	id, err := jobIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var request jobRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSON)
		return
	}
	if err := checkRequest(request); err != nil {
		h.writeError(w, r, err)
		return
	}

	updated, err := h.services.JobService.UpdateJob(ctx, id, request.toModel(), user)
	if err != nil {
		log.Err(err).Str("id", id.String()).Msg("error occurred during job update")
		h.writeError(w, r, err)
		return
	}

	respond(w, models.OK("job updated", updated), http.StatusOK)
}

func (h *Handler) deleteJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrMissingToken)
		return
	}

	id, err := jobIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.JobService.DeleteJob(ctx, id, user); err != nil {
		log.Err(err).Str("id", id.String()).Msg("error occurred during job deletion")
		h.writeError(w, r, err)
		return
	}

	respond(w, models.OK("job deleted", nil), http.StatusOK)
}

func (h *Handler) applyToJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrMissingToken)
		return
	}

	id, err := jobIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	file, header, err := r.FormFile(resumeFormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			h.writeError(w, r, service.ErrNoResumeProvided)
			return
		}
		log.Err(err).Msg("error occurred during multipart parsing")
		h.writeError(w, r, ErrInvalidForm)
		return
	}
	defer func() { _ = file.Close() }()

	fileName, err := h.services.JobService.Apply(ctx, id, user, service.ResumeUpload{
		FileName: header.Filename,
		Size:     header.Size,
		Contents: file,
	})
	if err != nil {
		log.Err(err).Str("id", id.String()).Msg("error occurred during job application")
		h.writeError(w, r, err)
		return
	}

	respond(w, models.OK("applied to job successfully", map[string]string{"resume": fileName}), http.StatusOK)
}

// jobIDFromRequest parses the {id} route parameter. Malformed identifiers
// are indistinguishable from missing postings.
func jobIDFromRequest(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", store.ErrJobNotFound, err)
	}
	return id, nil
}
