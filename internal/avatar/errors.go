package avatar

import "fmt"

// InputError reports a malformed collection payload: a nil sub-entity, or
// connectivity that references points outside the payload. The offending update
// is not applied; actors from other categories are untouched.
type InputError struct {
	Category string
	Reason   string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("avatar: %s: %s", e.Category, e.Reason)
}

// DuplicateInitError reports a second attempt to create the once-only global
// reference frame.
type DuplicateInitError struct{}

func (*DuplicateInitError) Error() string {
	return "avatar: global reference frame already created"
}
