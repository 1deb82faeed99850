package bracket

import "errors"

var (
	ErrMissingParticipant = errors.New("fight slot has no participant")
	ErrCursorExhausted    = errors.New("round cursor exhausted")
	ErrUnknownEvent       = errors.New("unknown tournament event")
	ErrUnknownScene       = errors.New("unknown scene")
)
