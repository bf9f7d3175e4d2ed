package workevent

import "errors"

var (
	ErrWorkEventNotFound         = errors.New("work event not found")
	ErrWorkEventAlreadyProcessed = errors.New("work event already processed")
)
