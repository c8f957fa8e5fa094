package repository

import "errors"

// ErrStorage matches every error returned by the repositories in this package.
var ErrStorage = errors.New("storage error")

// DBError is the single error kind raised when a statement fails.
type DBError struct {
	Op      string
	Message string
	Err     error
}

func (e *DBError) Error() string {
	return e.Op + ": " + e.Message
}

func (e *DBError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrStorage) match any DBError.
func (e *DBError) Is(target error) bool {
	return target == ErrStorage
}

func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var dbErr *DBError
	if errors.As(err, &dbErr) {
		return err
	}
	return &DBError{Op: op, Message: err.Error(), Err: err}
}

func newErr(op, message string) error {
	return &DBError{Op: op, Message: message}
}
