package service

import "errors"

// Common service errors
var (
	// ErrClientNotFound is returned when a client id is not in the store
	ErrClientNotFound = errors.New("client not found")

	// ErrJobNotFound is returned when a job id is not in the store
	ErrJobNotFound = errors.New("job not found")

	// ErrEventNotFound is returned when an event id is not in the store
	ErrEventNotFound = errors.New("event not found")

	// ErrFileNotFound is returned when a job has no file with the given id
	ErrFileNotFound = errors.New("file not found")

	// ErrPersonNotFound is returned when an authorized-person index is out of range
	ErrPersonNotFound = errors.New("authorized person not found")

	// ErrUnknownReportType is returned for a report type outside the four aggregations
	ErrUnknownReportType = errors.New("unknown report type")

	// ErrUnknownReportFormat is returned for an export format that is not supported
	ErrUnknownReportFormat = errors.New("unknown report format")
)
