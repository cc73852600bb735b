package service

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jobseekr/go-job-board/internal/adapter"
	"github.com/jobseekr/go-job-board/internal/config"
	"github.com/jobseekr/go-job-board/internal/logger"
	"github.com/jobseekr/go-job-board/internal/store"
	"github.com/jobseekr/go-job-board/models"
)

// earthRadiusMiles converts a distance in miles into radians for the
// great-circle radius predicate.
const earthRadiusMiles = 3963.0

// defaultPostingWindow is how long a posting stays open when the request
// does not carry a closing date.
const defaultPostingWindow = 7 * 24 * time.Hour

// resumeExtensions are the upload types accepted on the apply path.
var resumeExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

// jobService implements JobService. Slug derivation and geocoding are
// explicit steps on the create/update paths, executed in a fixed order
// (derive slug → geocode → persist) before anything is written.
type jobService struct {
	jobRepository store.JobRepository
	resumes       store.ResumeStorage
	geocoder      adapter.Geocoder

	maxUploadSize int64

	logger *logger.Logger
}

// NewJobService constructs a JobService wired to the job repository,
// resume storage, and geocoding adapter, with the upload size limit taken
// from cfg.
func NewJobService(jobRepository store.JobRepository, resumes store.ResumeStorage, geocoder adapter.Geocoder, cfg config.Files, logger *logger.Logger) JobService {
	return &jobService{
		jobRepository: jobRepository,
		resumes:       resumes,
		geocoder:      geocoder,
		maxUploadSize: cfg.MaxUploadSize,
		logger:        logger,
	}
}

// CreateJob validates the posting, derives its slug, geocodes its address,
// applies defaults (1 position, posting date now, closing date now+7d),
// and persists the result.
func (j *jobService) CreateJob(ctx context.Context, job models.Job) (models.Job, error) {
	log := logger.FromContext(ctx)

	if job.Title == "" || job.Address == "" {
		return models.Job{}, ErrInvalidDataProvided
	}

	job.ID = uuid.New()
	job.Slug = Slugify(job.Title)

	location, err := j.geocoder.Geocode(ctx, job.Address)
	if err != nil {
		log.Err(err).Str("address", job.Address).Msg("geocoding job address failed")
		return models.Job{}, fmt.Errorf("geocoding job address failed: %w", err)
	}
	job.Location = location

	if job.Positions == 0 {
		job.Positions = 1
	}
	now := time.Now()
	if job.PostingDate.IsZero() {
		job.PostingDate = now
	}
	if job.LastDate.IsZero() {
		job.LastDate = now.Add(defaultPostingWindow)
	}

	created, err := j.jobRepository.CreateJob(ctx, job)
	if err != nil {
		log.Err(err).Str("title", job.Title).Msg("job creation ended with error")
		return models.Job{}, fmt.Errorf("job creation ended with error: %w", err)
	}

	return created, nil
}

// GetJob fetches one posting addressed by id and slug.
func (j *jobService) GetJob(ctx context.Context, id uuid.UUID, slug string) (models.Job, error) {
	return j.jobRepository.FindJobByIDAndSlug(ctx, id, slug)
}

// UpdateJob applies changes to an existing posting on behalf of requester.
// Only the posting's owner or an admin may update it. The slug is re-derived
// when the title changed and the location is re-geocoded when the address
// changed; unchanged fields keep their stored values.
func (j *jobService) UpdateJob(ctx context.Context, id uuid.UUID, changes models.Job, requester models.User) (models.Job, error) {
	log := logger.FromContext(ctx)

	current, err := j.jobRepository.FindJobByID(ctx, id)
	if err != nil {
		return models.Job{}, err
	}
	if current.UserID != requester.ID && requester.Role != models.RoleAdmin {
		return models.Job{}, ErrNotJobOwner
	}

	merged := mergeJobChanges(current, changes)

	if merged.Title != current.Title {
		merged.Slug = Slugify(merged.Title)
	}
	if merged.Address != current.Address {
		location, err := j.geocoder.Geocode(ctx, merged.Address)
		if err != nil {
			log.Err(err).Str("address", merged.Address).Msg("geocoding job address failed")
			return models.Job{}, fmt.Errorf("geocoding job address failed: %w", err)
		}
		merged.Location = location
	}

	updated, err := j.jobRepository.UpdateJob(ctx, merged)
	if err != nil {
		log.Err(err).Str("id", id.String()).Msg("job update ended with error")
		return models.Job{}, fmt.Errorf("job update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteJob removes a posting. Only the posting's owner or an admin may
// delete it.
func (j *jobService) DeleteJob(ctx context.Context, id uuid.UUID, requester models.User) error {
	current, err := j.jobRepository.FindJobByID(ctx, id)
	if err != nil {
		return err
	}
	if current.UserID != requester.ID && requester.Role != models.RoleAdmin {
		return ErrNotJobOwner
	}

	return j.jobRepository.DeleteJob(ctx, id)
}

// ListJobs runs the query pipeline over the raw request parameters.
func (j *jobService) ListJobs(ctx context.Context, params url.Values) ([]models.Job, error) {
	return j.jobRepository.ListJobs(ctx, params)
}

// JobsWithinRadius geocodes the zipcode and returns all postings within
// distanceMiles of it.
func (j *jobService) JobsWithinRadius(ctx context.Context, zipcode string, distanceMiles float64) ([]models.Job, error) {
	log := logger.FromContext(ctx)

	if zipcode == "" || distanceMiles <= 0 {
		return nil, ErrInvalidDataProvided
	}

	location, err := j.geocoder.Geocode(ctx, zipcode)
	if err != nil {
		log.Err(err).Str("zipcode", zipcode).Msg("geocoding zipcode failed")
		return nil, fmt.Errorf("geocoding zipcode failed: %w", err)
	}

	radiusRad := distanceMiles / earthRadiusMiles
	return j.jobRepository.FindJobsWithinRadius(ctx, location.Latitude, location.Longitude, radiusRad)
}

// JobStats aggregates postings matching topic by experience bracket.
// Returns ErrNoStatsFound when the topic matches nothing.
func (j *jobService) JobStats(ctx context.Context, topic string) ([]models.JobStats, error) {
	stats, err := j.jobRepository.JobStats(ctx, topic)
	if err != nil {
		return nil, err
	}
	if len(stats) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoStatsFound, topic)
	}

	return stats, nil
}

// Apply attaches an application to a posting: it verifies the posting is
// still open and not already applied to by this user, checks the upload
// type and size, persists the blob under a deterministic name, and appends
// the applicant entry. Returns the stored resume filename.
func (j *jobService) Apply(ctx context.Context, jobID uuid.UUID, applicant models.User, resume ResumeUpload) (string, error) {
	log := logger.FromContext(ctx)

	job, err := j.jobRepository.FindJobByID(ctx, jobID)
	if err != nil {
		return "", err
	}

	if job.LastDate.Before(time.Now()) {
		return "", ErrJobClosed
	}

	applicants, err := j.jobRepository.ListApplicants(ctx, jobID)
	if err != nil {
		return "", err
	}
	for _, a := range applicants {
		if a.UserID == applicant.ID {
			return "", store.ErrAlreadyApplied
		}
	}

	if resume.Contents == nil || resume.FileName == "" {
		return "", ErrNoResumeProvided
	}
	ext := strings.ToLower(filepath.Ext(resume.FileName))
	if _, ok := resumeExtensions[ext]; !ok {
		return "", ErrUnsupportedResumeType
	}
	if j.maxUploadSize > 0 && resume.Size > j.maxUploadSize {
		return "", ErrResumeTooLarge
	}

	// unique, stable name per applicant and job
	fileName := strings.ReplaceAll(applicant.Name, " ", "_") + "_" + job.ID.String() + ext
	if err := j.resumes.SaveResume(ctx, fileName, resume.Contents); err != nil {
		log.Err(err).Str("file", fileName).Msg("saving resume failed")
		return "", fmt.Errorf("%w: %w", ErrResumeUploadFailed, err)
	}

	if err := j.jobRepository.AddApplicant(ctx, models.Applicant{
		JobID:  job.ID,
		UserID: applicant.ID,
		Resume: fileName,
	}); err != nil {
		return "", err
	}

	return fileName, nil
}

// mergeJobChanges overlays the non-zero fields of changes onto current.
func mergeJobChanges(current, changes models.Job) models.Job {
	merged := current

	if changes.Title != "" {
		merged.Title = changes.Title
	}
	if changes.Description != "" {
		merged.Description = changes.Description
	}
	if changes.Email != "" {
		merged.Email = changes.Email
	}
	if changes.Address != "" {
		merged.Address = changes.Address
	}
	if changes.Company != "" {
		merged.Company = changes.Company
	}
	if len(changes.Industry) > 0 {
		merged.Industry = changes.Industry
	}
	if changes.JobType != "" {
		merged.JobType = changes.JobType
	}
	if changes.MinEducation != "" {
		merged.MinEducation = changes.MinEducation
	}
	if changes.Positions > 0 {
		merged.Positions = changes.Positions
	}
	if changes.Experience != "" {
		merged.Experience = changes.Experience
	}
	if changes.Salary > 0 {
		merged.Salary = changes.Salary
	}
	if !changes.LastDate.IsZero() {
		merged.LastDate = changes.LastDate
	}

	return merged
}
