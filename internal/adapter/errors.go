package adapter

import "errors"

var (
	// ErrNoGeocodeResults is returned when the geocoding provider resolves
	// the address to an empty result set.
	ErrNoGeocodeResults = errors.New("geocoder returned no results")

	// ErrGeocoderUnavailable is returned when the provider responds with a
	// non-success status or cannot be reached.
	ErrGeocoderUnavailable = errors.New("geocoder unavailable")

	// ErrMailNotSent is returned when the SMTP relay rejects or fails to
	// deliver a message.
	ErrMailNotSent = errors.New("mail was not sent")
)
