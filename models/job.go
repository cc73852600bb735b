package models

import (
	"time"

	"github.com/google/uuid"
)

// Enumerated values accepted for job postings. Requests carrying values
// outside these sets are rejected with a validation error.
var (
	Industries = []string{
		"Business",
		"Information Technology",
		"Banking",
		"Education/Training",
		"Telecommunication",
		"Others",
	}

	JobTypes = []string{"Permanent", "Temporary", "Internship"}

	EducationLevels = []string{"Bachelors", "Masters", "Phd"}

	ExperienceBrackets = []string{
		"No Experience",
		"1 Years - 2 Years",
		"2 Years - 5 Years",
		"5 Years +",
	}
)

// Location is the geocoded representation of a job's free-text address.
// It is re-derived whenever the address changes.
type Location struct {
	Type             string  `json:"type"`
	Longitude        float64 `json:"longitude"`
	Latitude         float64 `json:"latitude"`
	FormattedAddress string  `json:"formatted_address"`
	Street           string  `json:"street"`
	City             string  `json:"city"`
	State            string  `json:"state"`
	Zipcode          string  `json:"zipcode"`
	Country          string  `json:"country"`
}

// Job is a posting record. Slug is derived deterministically from Title
// and re-derived whenever Title changes; Location is derived from Address
// by the geocoder whenever Address changes.
// Fields other than ID carry omitempty/omitzero so that reads with an
// explicit field-inclusion list serialize only the selected columns.
type Job struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title,omitempty"`
	Slug        string    `json:"slug,omitempty"`
	Description string    `json:"description,omitempty"`
	Email       string    `json:"email,omitempty"`
	Address     string    `json:"address,omitempty"`
	Location    Location  `json:"location,omitzero"`
	Company     string    `json:"company,omitempty"`

	Industry     []string `json:"industry,omitempty"`
	JobType      string   `json:"job_type,omitempty"`
	MinEducation string   `json:"min_education,omitempty"`
	Positions    int      `json:"positions,omitempty"`
	Experience   string   `json:"experience,omitempty"`
	Salary       float64  `json:"salary,omitempty"`

	PostingDate time.Time `json:"posting_date,omitzero"`
	LastDate    time.Time `json:"last_date,omitzero"`

	// Revision is the internal version counter bumped on every write.
	// Excluded from default reads and never serialized.
	Revision int `json:"-"`

	// UserID references the posting owner.
	UserID uuid.UUID `json:"user,omitzero"`
}

// TableName returns the name of the database table
// associated with the Job model.
func (j Job) TableName() string {
	return "jobs"
}

// Applicant is a job application entry: who applied and under which
// stored resume filename. A user may apply to a given job at most once.
type Applicant struct {
	JobID     uuid.UUID `json:"-"`
	UserID    uuid.UUID `json:"user"`
	Resume    string    `json:"resume"`
	AppliedAt time.Time `json:"applied_at"`
}

// JobStats is one aggregate bucket of the stats endpoint, grouped by
// upper-cased experience bracket over all postings matching a topic.
type JobStats struct {
	Experience   string  `json:"experience"`
	TotalJobs    int     `json:"total_jobs"`
	AvgPositions float64 `json:"avg_positions"`
	AvgSalary    float64 `json:"avg_salary"`
	MinSalary    float64 `json:"min_salary"`
	MaxSalary    float64 `json:"max_salary"`
}
