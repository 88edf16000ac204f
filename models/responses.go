package models

// VersionResponse is the payload of the unauthenticated version endpoint.
type VersionResponse struct {
	// Version is the semantic version string of the running server.
	Version string `json:"version"`
}

// ErrorResponse is the uniform JSON error body. Access-control denials
// always carry the same opaque message regardless of the denial reason.
type ErrorResponse struct {
	Error string `json:"error"`
}
