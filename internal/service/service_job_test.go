package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobseekr/go-job-board/internal/config"
	"github.com/jobseekr/go-job-board/internal/logger"
	"github.com/jobseekr/go-job-board/internal/store"
	"github.com/jobseekr/go-job-board/models"
)

func staticGeocoder(location models.Location) *mockGeocoder {
	return &mockGeocoder{
		geocodeFn: func(context.Context, string) (models.Location, error) {
			return location, nil
		},
	}
}

func newJobService(jobs *mockJobRepository, resumes *mockResumeStorage, geocoder *mockGeocoder) JobService {
	if resumes == nil {
		resumes = &mockResumeStorage{saveResumeFn: func(context.Context, string, io.Reader) error { return nil }}
	}
	if geocoder == nil {
		geocoder = staticGeocoder(models.Location{})
	}
	return NewJobService(jobs, resumes, geocoder, config.Files{MaxUploadSize: 2 << 20}, logger.Nop())
}

// ─────────────────────────────────────────────
// CreateJob
// ─────────────────────────────────────────────

func TestCreateJob_DerivesSlugAndDefaults(t *testing.T) {
	var persisted models.Job
	jobs := &mockJobRepository{
		createJobFn: func(_ context.Context, job models.Job) (models.Job, error) {
			persisted = job
			return job, nil
		},
	}
	var geocodedAddress string
	geocoder := &mockGeocoder{
		geocodeFn: func(_ context.Context, address string) (models.Location, error) {
			geocodedAddress = address
			return models.Location{Latitude: 42.36, Longitude: -71.05, City: "Boston"}, nil
		},
	}

	before := time.Now()
	created, err := newJobService(jobs, nil, geocoder).CreateJob(context.Background(), models.Job{
		Title:   "Senior Go Developer",
		Address: "200 Clarendon St, Boston, MA 02116",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "senior-go-developer", persisted.Slug)
	assert.Equal(t, "200 Clarendon St, Boston, MA 02116", geocodedAddress)
	assert.Equal(t, "Boston", persisted.Location.City)
	assert.Equal(t, 1, persisted.Positions)
	assert.False(t, persisted.PostingDate.Before(before))
	assert.WithinDuration(t, persisted.PostingDate.Add(defaultPostingWindow), persisted.LastDate, time.Second)
}

func TestCreateJob_KeepsExplicitValues(t *testing.T) {
	jobs := &mockJobRepository{
		createJobFn: func(_ context.Context, job models.Job) (models.Job, error) { return job, nil },
	}
	lastDate := time.Now().Add(30 * 24 * time.Hour)

	created, err := newJobService(jobs, nil, nil).CreateJob(context.Background(), models.Job{
		Title:     "Go Developer",
		Address:   "somewhere",
		Positions: 3,
		LastDate:  lastDate,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, created.Positions)
	assert.Equal(t, lastDate, created.LastDate)
}

func TestCreateJob_RequiresTitleAndAddress(t *testing.T) {
	svc := newJobService(&mockJobRepository{}, nil, nil)

	_, err := svc.CreateJob(context.Background(), models.Job{Address: "somewhere"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.CreateJob(context.Background(), models.Job{Title: "Go Developer"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCreateJob_GeocodingFailure(t *testing.T) {
	geocodeErr := errors.New("geocoder unreachable")
	geocoder := &mockGeocoder{
		geocodeFn: func(context.Context, string) (models.Location, error) {
			return models.Location{}, geocodeErr
		},
	}
	jobs := &mockJobRepository{
		createJobFn: func(context.Context, models.Job) (models.Job, error) {
			t.Fatal("job must not be persisted when geocoding fails")
			return models.Job{}, nil
		},
	}

	_, err := newJobService(jobs, nil, geocoder).CreateJob(context.Background(), models.Job{Title: "Go Developer", Address: "nowhere"})
	assert.ErrorIs(t, err, geocodeErr)
}

// ─────────────────────────────────────────────
// UpdateJob / DeleteJob ownership
// ─────────────────────────────────────────────

func ownedJob(owner uuid.UUID) models.Job {
	return models.Job{
		ID:      uuid.New(),
		Title:   "Go Developer",
		Slug:    "go-developer",
		Address: "Boston",
		UserID:  owner,
	}
}

func TestUpdateJob_RejectsNonOwner(t *testing.T) {
	owner := uuid.New()
	stored := ownedJob(owner)
	jobs := &mockJobRepository{
		findJobByIDFn: func(context.Context, uuid.UUID) (models.Job, error) { return stored, nil },
		updateJobFn: func(context.Context, models.Job) (models.Job, error) {
			t.Fatal("update must not reach the store for a non-owner")
			return models.Job{}, nil
		},
	}

	stranger := models.User{ID: uuid.New(), Role: models.RoleEmployer}
	_, err := newJobService(jobs, nil, nil).UpdateJob(context.Background(), stored.ID, models.Job{Title: "New"}, stranger)
	assert.ErrorIs(t, err, ErrNotJobOwner)
}

func TestUpdateJob_AdminBypassesOwnership(t *testing.T) {
	stored := ownedJob(uuid.New())
	jobs := &mockJobRepository{
		findJobByIDFn: func(context.Context, uuid.UUID) (models.Job, error) { return stored, nil },
		updateJobFn:   func(_ context.Context, job models.Job) (models.Job, error) { return job, nil },
	}

	admin := models.User{ID: uuid.New(), Role: models.RoleAdmin}
	updated, err := newJobService(jobs, nil, nil).UpdateJob(context.Background(), stored.ID, models.Job{Salary: 120000}, admin)
	require.NoError(t, err)
	assert.Equal(t, 120000.0, updated.Salary)
}

func TestUpdateJob_ReslugsOnTitleChange(t *testing.T) {
	owner := uuid.New()
	stored := ownedJob(owner)
	jobs := &mockJobRepository{
		findJobByIDFn: func(context.Context, uuid.UUID) (models.Job, error) { return stored, nil },
		updateJobFn:   func(_ context.Context, job models.Job) (models.Job, error) { return job, nil },
	}
	geocoder := &mockGeocoder{
		geocodeFn: func(context.Context, string) (models.Location, error) {
			t.Fatal("unchanged address must not be re-geocoded")
			return models.Location{}, nil
		},
	}

	requester := models.User{ID: owner, Role: models.RoleEmployer}
	updated, err := newJobService(jobs, nil, geocoder).UpdateJob(context.Background(), stored.ID, models.Job{Title: "Node.js Developer"}, requester)
	require.NoError(t, err)

	assert.Equal(t, "node-js-developer", updated.Slug)
	// untouched fields keep their stored values
	assert.Equal(t, "Boston", updated.Address)
}

func TestUpdateJob_RegeocodesOnAddressChange(t *testing.T) {
	owner := uuid.New()
	stored := ownedJob(owner)
	jobs := &mockJobRepository{
		findJobByIDFn: func(context.Context, uuid.UUID) (models.Job, error) { return stored, nil },
		updateJobFn:   func(_ context.Context, job models.Job) (models.Job, error) { return job, nil },
	}
	geocoder := staticGeocoder(models.Location{City: "New York"})

	requester := models.User{ID: owner, Role: models.RoleEmployer}
	updated, err := newJobService(jobs, nil, geocoder).UpdateJob(context.Background(), stored.ID, models.Job{Address: "New York"}, requester)
	require.NoError(t, err)

	assert.Equal(t, "New York", updated.Address)
	assert.Equal(t, "New York", updated.Location.City)
	assert.Equal(t, "go-developer", updated.Slug)
}

func TestDeleteJob_RejectsNonOwner(t *testing.T) {
	stored := ownedJob(uuid.New())
	jobs := &mockJobRepository{
		findJobByIDFn: func(context.Context, uuid.UUID) (models.Job, error) { return stored, nil },
		deleteJobFn: func(context.Context, uuid.UUID) error {
			t.Fatal("delete must not reach the store for a non-owner")
			return nil
		},
	}

	stranger := models.User{ID: uuid.New(), Role: models.RoleEmployer}
	err := newJobService(jobs, nil, nil).DeleteJob(context.Background(), stored.ID, stranger)
	assert.ErrorIs(t, err, ErrNotJobOwner)
}

func TestDeleteJob_UnknownJob(t *testing.T) {
	jobs := &mockJobRepository{
		findJobByIDFn: func(context.Context, uuid.UUID) (models.Job, error) {
			return models.Job{}, store.ErrJobNotFound
		},
	}

	err := newJobService(jobs, nil, nil).DeleteJob(context.Background(), uuid.New(), models.User{Role: models.RoleAdmin})
	assert.ErrorIs(t, err, store.ErrJobNotFound)
}

// ─────────────────────────────────────────────
// JobsWithinRadius / JobStats
// ─────────────────────────────────────────────

func TestJobsWithinRadius_ConvertsMilesToRadians(t *testing.T) {
	var gotLat, gotLon, gotRadius float64
	jobs := &mockJobRepository{
		findJobsWithinRadiusFn: func(_ context.Context, latitude, longitude, radiusRad float64) ([]models.Job, error) {
			gotLat, gotLon, gotRadius = latitude, longitude, radiusRad
			return []models.Job{{Title: "Go Developer"}}, nil
		},
	}
	geocoder := staticGeocoder(models.Location{Latitude: 42.36, Longitude: -71.05})

	found, err := newJobService(jobs, nil, geocoder).JobsWithinRadius(context.Background(), "02116", 50)
	require.NoError(t, err)

	assert.Len(t, found, 1)
	assert.Equal(t, 42.36, gotLat)
	assert.Equal(t, -71.05, gotLon)
	assert.InDelta(t, 50.0/earthRadiusMiles, gotRadius, 1e-12)
}

func TestJobsWithinRadius_InvalidInput(t *testing.T) {
	svc := newJobService(&mockJobRepository{}, nil, nil)

	_, err := svc.JobsWithinRadius(context.Background(), "", 50)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.JobsWithinRadius(context.Background(), "02116", 0)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestJobStats_EmptyTopic(t *testing.T) {
	jobs := &mockJobRepository{
		jobStatsFn: func(context.Context, string) ([]models.JobStats, error) { return nil, nil },
	}

	_, err := newJobService(jobs, nil, nil).JobStats(context.Background(), "cobol")
	assert.ErrorIs(t, err, ErrNoStatsFound)
	assert.Contains(t, err.Error(), "cobol")
}

// ─────────────────────────────────────────────
// Apply
// ─────────────────────────────────────────────

func openJob() models.Job {
	return models.Job{
		ID:       uuid.New(),
		Title:    "Go Developer",
		LastDate: time.Now().Add(24 * time.Hour),
	}
}

func applyMocks(job models.Job, applicants []models.Applicant) *mockJobRepository {
	return &mockJobRepository{
		findJobByIDFn: func(context.Context, uuid.UUID) (models.Job, error) { return job, nil },
		listApplicantsFn: func(context.Context, uuid.UUID) ([]models.Applicant, error) {
			return applicants, nil
		},
		addApplicantFn: func(context.Context, models.Applicant) error { return nil },
	}
}

func pdfUpload(fileName string) ResumeUpload {
	return ResumeUpload{
		FileName: fileName,
		Size:     1024,
		Contents: strings.NewReader("resume contents"),
	}
}

func TestApply_Success(t *testing.T) {
	job := openJob()
	jobs := applyMocks(job, nil)

	var savedName string
	var appended models.Applicant
	resumes := &mockResumeStorage{
		saveResumeFn: func(_ context.Context, fileName string, contents io.Reader) error {
			savedName = fileName
			return nil
		},
	}
	jobs.addApplicantFn = func(_ context.Context, applicant models.Applicant) error {
		appended = applicant
		return nil
	}

	applicant := models.User{ID: uuid.New(), Name: "John Doe"}
	fileName, err := newJobService(jobs, resumes, nil).Apply(context.Background(), job.ID, applicant, pdfUpload("resume.PDF"))
	require.NoError(t, err)

	assert.Equal(t, "John_Doe_"+job.ID.String()+".pdf", fileName)
	assert.Equal(t, fileName, savedName)
	assert.Equal(t, job.ID, appended.JobID)
	assert.Equal(t, applicant.ID, appended.UserID)
	assert.Equal(t, fileName, appended.Resume)
}

func TestApply_ClosedJob(t *testing.T) {
	job := openJob()
	job.LastDate = time.Now().Add(-time.Hour)
	jobs := applyMocks(job, nil)

	_, err := newJobService(jobs, nil, nil).Apply(context.Background(), job.ID, models.User{ID: uuid.New()}, pdfUpload("resume.pdf"))
	assert.ErrorIs(t, err, ErrJobClosed)
}

func TestApply_DuplicateApplicant(t *testing.T) {
	job := openJob()
	applicant := models.User{ID: uuid.New(), Name: "John Doe"}
	jobs := applyMocks(job, []models.Applicant{{JobID: job.ID, UserID: applicant.ID}})

	_, err := newJobService(jobs, nil, nil).Apply(context.Background(), job.ID, applicant, pdfUpload("resume.pdf"))
	assert.ErrorIs(t, err, store.ErrAlreadyApplied)
}

func TestApply_NoResume(t *testing.T) {
	job := openJob()
	jobs := applyMocks(job, nil)
	svc := newJobService(jobs, nil, nil)
	applicant := models.User{ID: uuid.New()}

	_, err := svc.Apply(context.Background(), job.ID, applicant, ResumeUpload{})
	assert.ErrorIs(t, err, ErrNoResumeProvided)

	_, err = svc.Apply(context.Background(), job.ID, applicant, ResumeUpload{FileName: "resume.pdf"})
	assert.ErrorIs(t, err, ErrNoResumeProvided)
}

func TestApply_UnsupportedExtension(t *testing.T) {
	job := openJob()
	jobs := applyMocks(job, nil)

	_, err := newJobService(jobs, nil, nil).Apply(context.Background(), job.ID, models.User{ID: uuid.New()}, pdfUpload("resume.exe"))
	assert.ErrorIs(t, err, ErrUnsupportedResumeType)
}

func TestApply_TooLarge(t *testing.T) {
	job := openJob()
	jobs := applyMocks(job, nil)
	upload := pdfUpload("resume.pdf")
	upload.Size = 3 << 20

	_, err := newJobService(jobs, nil, nil).Apply(context.Background(), job.ID, models.User{ID: uuid.New()}, upload)
	assert.ErrorIs(t, err, ErrResumeTooLarge)
}

func TestApply_SaveFailureSkipsApplicant(t *testing.T) {
	job := openJob()
	jobs := applyMocks(job, nil)
	jobs.addApplicantFn = func(context.Context, models.Applicant) error {
		t.Fatal("applicant must not be appended when the upload failed")
		return nil
	}
	resumes := &mockResumeStorage{
		saveResumeFn: func(context.Context, string, io.Reader) error {
			return errors.New("disk full")
		},
	}

	_, err := newJobService(jobs, resumes, nil).Apply(context.Background(), job.ID, models.User{ID: uuid.New(), Name: "John Doe"}, pdfUpload("resume.pdf"))
	assert.ErrorIs(t, err, ErrResumeUploadFailed)
}
