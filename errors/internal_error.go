package errors

// InternalError is returned when a row source fails while loading rows for a table.
type InternalError struct {
	msg   string
	cause error
}

func (e *InternalError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *InternalError) Unwrap() error {
	return e.cause
}

func NewInternalError(text string, cause error) error {
	return &InternalError{msg: text, cause: cause}
}
