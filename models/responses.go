package models

// Response is the uniform envelope returned by every API endpoint.
// Results is only populated on list endpoints; Error and Stack are only
// populated in development mode, where the full failure detail is
// surfaced to the caller.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Results *int   `json:"results,omitempty"`
	Data    any    `json:"data,omitempty"`
	Token   string `json:"token,omitempty"`

	Error string `json:"error,omitempty"`
	Stack string `json:"stack,omitempty"`
}

// OK returns a success envelope with the given message and data.
func OK(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// List returns a success envelope for list endpoints, carrying the
// number of returned records alongside the data.
func List(results int, data any) Response {
	return Response{Success: true, Results: &results, Data: data}
}
