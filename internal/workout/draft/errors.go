package draft

import "fmt"

// ValidationError is returned when a draft mutation carries incomplete or
// invalid fields. The draft is left unchanged.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation: %s", e.Reason)
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// NotFoundError is returned when an operation references an identity that is
// not part of the draft.
type NotFoundError struct {
	ID Identity
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("entry [%s] not found in draft", e.ID)
}
