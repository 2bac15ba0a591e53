package domain

import "errors"

// External dependency failures. The flow never retries these; the transport
// layer decides what to do with the failed turn.

var (
	// ErrCatalogUnavailable indicates the question catalog could not be fetched
	ErrCatalogUnavailable = errors.New("question catalog unavailable")

	// ErrSubmissionFailed indicates the scoring service rejected or never received the answers
	ErrSubmissionFailed = errors.New("answer submission failed")

	// ErrMissingSeverity indicates the scoring service response carried no severity field
	ErrMissingSeverity = errors.New("submission response missing severity")

	// ErrSendFailed indicates a message could not be delivered to the user
	ErrSendFailed = errors.New("message delivery failed")
)
