package http

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jobseekr/go-job-board/models"
)

// validate is the shared request validator. Custom tags check membership
// in the posting enumerations.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	enums := map[string][]string{
		"industry":   models.Industries,
		"jobtype":    models.JobTypes,
		"education":  models.EducationLevels,
		"experience": models.ExperienceBrackets,
	}
	for tag, allowed := range enums {
		allowed := allowed
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return slices.Contains(allowed, fl.Field().String())
		})
	}

	return v
}

// validationError aggregates one message per failing field. It matches
// ErrValidationFailed under errors.Is so the error mapper assigns it 400.
type validationError struct {
	messages []string
}

func (e *validationError) Error() string {
	return strings.Join(e.messages, "; ")
}

func (e *validationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// checkRequest runs struct validation over a decoded request body and
// folds the result into a single *validationError.
func checkRequest(request any) error {
	err := validate.Struct(request)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	messages := make(map[string]string)

	for _, fieldError := range fieldErrors {
		field := strings.ToLower(fieldError.Field())
		if _, seen := messages[field]; seen {
			continue
		}
		messages[field] = fieldMessage(field, fieldError)
	}

	aggregated := make([]string, 0, len(messages))
	for _, message := range messages {
		aggregated = append(aggregated, message)
	}
	sort.Strings(aggregated)

	return &validationError{messages: aggregated}
}

func fieldMessage(field string, fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("please enter %s", field)
	case "email":
		return "please enter a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fieldError.Param())
	case "industry", "jobtype", "education", "experience":
		return fmt.Sprintf("please select a valid value for %s", field)
	default:
		return fmt.Sprintf("invalid value for %s", field)
	}
}

type registerRequest struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=8"`
	Role     models.Role `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

type updateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// jobRequest carries a posting create or update payload. On update all
// fields are optional; on create the required set is checked separately.
type jobRequest struct {
	Title        string     `json:"title" validate:"omitempty,min=3"`
	Description  string     `json:"description"`
	Email        string     `json:"email" validate:"omitempty,email"`
	Address      string     `json:"address"`
	Company      string     `json:"company"`
	Industry     []string   `json:"industry" validate:"omitempty,dive,industry"`
	JobType      string     `json:"jobType" validate:"omitempty,jobtype"`
	MinEducation string     `json:"minEducation" validate:"omitempty,education"`
	Positions    int        `json:"positions" validate:"omitempty,min=1"`
	Experience   string     `json:"experience" validate:"omitempty,experience"`
	Salary       float64    `json:"salary" validate:"omitempty,min=0"`
	LastDate     *time.Time `json:"lastDate"`
}

// checkCreate enforces the fields every new posting must carry.
func (r jobRequest) checkCreate() error {
	var missing []string
	for field, value := range map[string]string{
		"title":       r.Title,
		"description": r.Description,
		"email":       r.Email,
		"address":     r.Address,
		"company":     r.Company,
	} {
		if value == "" {
			missing = append(missing, fmt.Sprintf("please enter %s", field))
		}
	}
	if len(r.Industry) == 0 {
		missing = append(missing, "please select at least one industry")
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &validationError{messages: missing}
	}

	return checkRequest(r)
}

// toModel maps the payload onto a posting record. Zero values stand for
// fields the request did not set.
func (r jobRequest) toModel() models.Job {
	job := models.Job{
		Title:        r.Title,
		Description:  r.Description,
		Email:        r.Email,
		Address:      r.Address,
		Company:      r.Company,
		Industry:     r.Industry,
		JobType:      r.JobType,
		MinEducation: r.MinEducation,
		Positions:    r.Positions,
		Experience:   r.Experience,
		Salary:       r.Salary,
	}
	if r.LastDate != nil {
		job.LastDate = *r.LastDate
	}
	return job
}
