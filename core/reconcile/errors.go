package reconcile

import "fmt"

// ValidationError describes a supplier record the engine refused to
// upload. It is recovered locally: the record is skipped and counted,
// the rest of the batch proceeds.
type ValidationError struct {
	// ID is the supplier catalog code of the rejected record.
	ID string `json:"offer_id"`

	// Reason is a human-readable description of the violation.
	Reason string `json:"reason"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid supplier record %s: %s", e.ID, e.Reason)
}

// FetchError wraps a failure to reach an external collaborator
// (marketplace API or supplier feed). It is fatal to the run.
type FetchError struct {
	// Source names the collaborator, e.g. "ozon", "yandex", "casio".
	Source string

	// Err is the underlying transport or decoding error.
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch from %s failed: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// UploadError describes a single offer the marketplace rejected.
// Rejections are reported per identifier and do not block the other
// offers in the same batch.
type UploadError struct {
	// ID is the rejected offer identifier.
	ID string `json:"offer_id"`

	// Code is the marketplace error code, if one was returned.
	Code string `json:"code,omitempty"`

	// Message is the marketplace error description.
	Message string `json:"message"`
}

func (e UploadError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("upload of %s rejected: %s (%s)", e.ID, e.Message, e.Code)
	}
	return fmt.Sprintf("upload of %s rejected: %s", e.ID, e.Message)
}
