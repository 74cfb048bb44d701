package fulfillment

import "fmt"

// InvalidEventError rejects a fulfillment event at the boundary. It is the
// only failure class worth redelivering: a corrected event can succeed, so
// the governor propagates it as a hard failure.
type InvalidEventError struct {
	Reason string
}

func (e *InvalidEventError) Error() string {
	return "invalid fulfillment event: " + e.Reason
}

// PersistenceError marks a storage failure outside the expected dedup
// conflict. Retryable: the invoking delivery system should redeliver.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
