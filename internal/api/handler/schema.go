package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. Rendering happens in the API-level error handler; this type
// exists so the swagger annotations have a concrete schema to point at.
type errorResponse struct {
	Error string `json:"error"`
}
