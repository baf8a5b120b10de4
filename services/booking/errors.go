package booking

import "errors"

var (
	// ErrNoServiceSelected blocks submission until a service is chosen.
	ErrNoServiceSelected = errors.New("booking: no service selected")

	// ErrNoTimeSelected blocks submission until a time slot is chosen.
	ErrNoTimeSelected = errors.New("booking: no time slot selected")

	// ErrSubmitInProgress rejects a second submit while one is outstanding.
	ErrSubmitInProgress = errors.New("booking: submission already in progress")

	// ErrDraftConfirmed rejects mutations after a successful submission.
	ErrDraftConfirmed = errors.New("booking: draft already confirmed")
)
