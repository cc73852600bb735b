// Package adapter contains clients for the external collaborators of the
// job board: the forward-geocoding provider and the outbound mail relay.
package adapter

import (
	"context"

	"github.com/jobseekr/go-job-board/models"
)

// Geocoder resolves a free-text address (or zipcode) to a geocoded
// location via an external provider.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (models.Location, error)
}

// Mailer delivers plain-text messages, used for password-reset secrets.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
