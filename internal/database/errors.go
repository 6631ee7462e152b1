package database

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("setting not found")
	ErrInvalidExport = errors.New("invalid export file")
)

type OpError struct {
	Op  string
	Key string
	Err error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("%s setting %q: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("%s settings: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Key: key, Err: err}
}
