package service

import "errors"

var (
	// ErrNotFound means the requested link or account does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNoDestination means a link has no matching rule and no default URL.
	ErrNoDestination = errors.New("link has no destination")
	// ErrQueueUnavailable means the click queue rejected an enqueue.
	ErrQueueUnavailable = errors.New("queue unavailable")
)

type retryableError struct{ err error }

func (e *retryableError) Error() string { return "retryable: " + e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

type fatalError struct{ err error }

func (e *fatalError) Error() string { return "fatal: " + e.err.Error() }
func (e *fatalError) Unwrap() error { return e.err }

// Retryable marks an error as transient; the queue redelivers the message.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &retryableError{err: err}
}

// Fatal marks an error as a contract violation; the queue dead-letters the
// message instead of retrying.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &fatalError{err: err}
}

func IsRetryable(err error) bool {
	var re *retryableError
	return errors.As(err, &re)
}

func IsFatal(err error) bool {
	var fe *fatalError
	return errors.As(err, &fe)
}
