// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, role checks, logging, and tracing
// concerns are all handled at this layer before requests are forwarded
// to the service layer; failures from every layer are translated into
// the uniform response envelope by a single error boundary.
package http
