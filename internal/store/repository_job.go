package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"

	"github.com/jobseekr/go-job-board/internal/logger"
	"github.com/jobseekr/go-job-board/models"
)

// jobRepository is the PostgreSQL-backed implementation of [JobRepository].
// Listing queries are assembled by the [JobQuery] pipeline; single-record
// operations use squirrel builders directly.
type jobRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewJobRepository constructs a [JobRepository] backed by the provided
// database connection and logger.
func NewJobRepository(db *DB, logger *logger.Logger) JobRepository {
	logger.Debug().Msg("creating job repository")
	return &jobRepository{
		db:     db,
		logger: logger,
	}
}

// CreateJob persists a new posting and returns the stored record.
func (r *jobRepository) CreateJob(ctx context.Context, job models.Job) (models.Job, error) {
	log := logger.FromContext(ctx)

	industry, err := json.Marshal(job.Industry)
	if err != nil {
		return models.Job{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	query, args, err := sq.Insert("jobs").
		Columns("id", "title", "slug", "description", "email", "address",
			"location_type", "longitude", "latitude", "formatted_address",
			"street", "city", "state", "zipcode", "country",
			"company", "industry", "job_type", "min_education",
			"positions", "experience", "salary",
			"posting_date", "last_date", "user_id").
		Values(job.ID, job.Title, job.Slug, job.Description, job.Email, job.Address,
			job.Location.Type, job.Location.Longitude, job.Location.Latitude, job.Location.FormattedAddress,
			job.Location.Street, job.Location.City, job.Location.State, job.Location.Zipcode, job.Location.Country,
			job.Company, industry, job.JobType, job.MinEducation,
			job.Positions, job.Experience, job.Salary,
			job.PostingDate, job.LastDate, job.UserID).
		Suffix("RETURNING " + joinColumns(jobSelectColumns)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return models.Job{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	created, err := scanJobRow(jobSelectColumns, row.Scan)
	if err != nil {
		log.Err(err).Str("func", "*jobRepository.CreateJob").Msg("error: scanning error")
		return models.Job{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindJobByID retrieves a posting by identifier.
// Returns [ErrJobNotFound] when no record matches.
func (r *jobRepository) FindJobByID(ctx context.Context, id uuid.UUID) (models.Job, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

// FindJobByIDAndSlug retrieves a posting addressed by both identifier and
// slug, matching the public job URL shape. Returns [ErrJobNotFound] when
// either part does not match.
func (r *jobRepository) FindJobByIDAndSlug(ctx context.Context, id uuid.UUID, slug string) (models.Job, error) {
	return r.findOne(ctx, sq.And{sq.Eq{"id": id}, sq.Eq{"slug": slug}})
}

// UpdateJob persists the mutable fields of a posting, bumps the internal
// revision counter, and returns the stored record.
func (r *jobRepository) UpdateJob(ctx context.Context, job models.Job) (models.Job, error) {
	log := logger.FromContext(ctx)

	industry, err := json.Marshal(job.Industry)
	if err != nil {
		return models.Job{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	query, args, err := sq.Update("jobs").
		Set("title", job.Title).
		Set("slug", job.Slug).
		Set("description", job.Description).
		Set("email", job.Email).
		Set("address", job.Address).
		Set("location_type", job.Location.Type).
		Set("longitude", job.Location.Longitude).
		Set("latitude", job.Location.Latitude).
		Set("formatted_address", job.Location.FormattedAddress).
		Set("street", job.Location.Street).
		Set("city", job.Location.City).
		Set("state", job.Location.State).
		Set("zipcode", job.Location.Zipcode).
		Set("country", job.Location.Country).
		Set("company", job.Company).
		Set("industry", industry).
		Set("job_type", job.JobType).
		Set("min_education", job.MinEducation).
		Set("positions", job.Positions).
		Set("experience", job.Experience).
		Set("salary", job.Salary).
		Set("last_date", job.LastDate).
		Set("revision", sq.Expr("revision + 1")).
		Where(sq.Eq{"id": job.ID}).
		Suffix("RETURNING " + joinColumns(jobSelectColumns)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return models.Job{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	updated, err := scanJobRow(jobSelectColumns, row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Job{}, ErrJobNotFound
		}

		log.Err(err).Str("func", "*jobRepository.UpdateJob").Msg("error: scanning error")
		return models.Job{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// DeleteJob removes a posting. Returns [ErrJobNotFound] when no record
// was deleted.
func (r *jobRepository) DeleteJob(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete("jobs").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*jobRepository.DeleteJob").Msg("error: executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrJobNotFound
	}

	return nil
}

// ListJobs runs the full query pipeline over the raw request parameters
// and executes the accumulated query exactly once.
func (r *jobRepository) ListJobs(ctx context.Context, params url.Values) ([]models.Job, error) {
	query, args, err := NewJobQuery(params).
		Filter().
		Sort().
		Fields().
		Search().
		Paginate().
		Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryJobs(ctx, query, args)
}

// FindJobsWithinRadius returns postings whose geocoded coordinates lie
// within radiusRad radians (distance divided by the Earth's radius) of the
// given point, using a great-circle distance predicate.
func (r *jobRepository) FindJobsWithinRadius(ctx context.Context, latitude, longitude, radiusRad float64) ([]models.Job, error) {
	query, args, err := sq.Select(jobSelectColumns...).
		From("jobs").
		Where(sq.Expr(
			`acos(LEAST(1.0, sin(radians(?)) * sin(radians(latitude))
    + cos(radians(?)) * cos(radians(latitude))
    * cos(radians(longitude) - radians(?)))) <= ?`,
			latitude, latitude, longitude, radiusRad)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryJobs(ctx, query, args)
}

// JobStats aggregates postings matching the topic phrase into one bucket
// per upper-cased experience bracket.
func (r *jobRepository) JobStats(ctx context.Context, topic string) ([]models.JobStats, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, jobStatsByTopic, topic)
	if err != nil {
		log.Err(err).Str("func", "*jobRepository.JobStats").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var stats []models.JobStats
	for rows.Next() {
		var s models.JobStats
		if err := rows.Scan(&s.Experience, &s.TotalJobs, &s.AvgPositions, &s.AvgSalary, &s.MinSalary, &s.MaxSalary); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// ListApplicants returns every application entry attached to a job.
// Not part of default job reads.
func (r *jobRepository) ListApplicants(ctx context.Context, jobID uuid.UUID) ([]models.Applicant, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listApplicants, jobID)
	if err != nil {
		log.Err(err).Str("func", "*jobRepository.ListApplicants").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var applicants []models.Applicant
	for rows.Next() {
		var a models.Applicant
		if err := rows.Scan(&a.JobID, &a.UserID, &a.Resume, &a.AppliedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		applicants = append(applicants, a)
	}

	return applicants, rows.Err()
}

// AddApplicant appends an application entry. The (job, user) pair is
// unique, so a repeated apply surfaces as [ErrAlreadyApplied] rather than
// a duplicate record.
func (r *jobRepository) AddApplicant(ctx context.Context, applicant models.Applicant) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, insertApplicant, applicant.JobID, applicant.UserID, applicant.Resume)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrAlreadyApplied
		case pgerrcode.ForeignKeyViolation:
			return ErrJobNotFound
		}

		log.Err(err).Str("func", "*jobRepository.AddApplicant").Msg("error: executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *jobRepository) findOne(ctx context.Context, where sq.Sqlizer) (models.Job, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(jobSelectColumns...).
		From("jobs").
		Where(where).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return models.Job{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	job, err := scanJobRow(jobSelectColumns, row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Job{}, ErrJobNotFound
		}

		log.Err(err).Str("func", "*jobRepository.findOne").Msg("error: scanning error")
		return models.Job{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return job, nil
}

func (r *jobRepository) queryJobs(ctx context.Context, query string, args []any) ([]models.Job, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*jobRepository.queryJobs").Str("query", query).Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var jobs []models.Job
	for rows.Next() {
		job, err := scanJobRow(columns, rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}

// scanJobRow scans one result row into a [models.Job], mapping destinations
// by column name so that pipeline field selection can return arbitrary
// column subsets. Unknown columns are discarded.
func scanJobRow(columns []string, scan func(...any) error) (models.Job, error) {
	var job models.Job
	var industry []byte

	dests := make([]any, len(columns))
	for i, column := range columns {
		switch column {
		case "id":
			dests[i] = &job.ID
		case "title":
			dests[i] = &job.Title
		case "slug":
			dests[i] = &job.Slug
		case "description":
			dests[i] = &job.Description
		case "email":
			dests[i] = &job.Email
		case "address":
			dests[i] = &job.Address
		case "location_type":
			dests[i] = &job.Location.Type
		case "longitude":
			dests[i] = &job.Location.Longitude
		case "latitude":
			dests[i] = &job.Location.Latitude
		case "formatted_address":
			dests[i] = &job.Location.FormattedAddress
		case "street":
			dests[i] = &job.Location.Street
		case "city":
			dests[i] = &job.Location.City
		case "state":
			dests[i] = &job.Location.State
		case "zipcode":
			dests[i] = &job.Location.Zipcode
		case "country":
			dests[i] = &job.Location.Country
		case "company":
			dests[i] = &job.Company
		case "industry":
			dests[i] = &industry
		case "job_type":
			dests[i] = &job.JobType
		case "min_education":
			dests[i] = &job.MinEducation
		case "positions":
			dests[i] = &job.Positions
		case "experience":
			dests[i] = &job.Experience
		case "salary":
			dests[i] = &job.Salary
		case "posting_date":
			dests[i] = &job.PostingDate
		case "last_date":
			dests[i] = &job.LastDate
		case "revision":
			dests[i] = &job.Revision
		case "user_id":
			dests[i] = &job.UserID
		default:
			var discard any
			dests[i] = &discard
		}
	}

	if err := scan(dests...); err != nil {
		return models.Job{}, err
	}

	if industry != nil {
		if err := json.Unmarshal(industry, &job.Industry); err != nil {
			return models.Job{}, err
		}
	}

	return job, nil
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
