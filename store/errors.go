package store

import (
	"errors"
	"fmt"
)

// Kind classifies why a store call failed.
type Kind string

const (
	KindNetworkFailure Kind = "network_failure"
	KindRemoteRejected Kind = "remote_rejected"
	KindNotFound       Kind = "not_found"
)

// Error is returned by every OrderStore implementation.
type Error struct {
	Kind Kind
	Op   string
	ID   string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Op + ": " + string(e.Kind)
	if e.ID != "" {
		msg = fmt.Sprintf("%s %s: %s", e.Op, e.ID, e.Kind)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func NetworkFailure(op, id string, err error) *Error {
	return &Error{Kind: KindNetworkFailure, Op: op, ID: id, Err: err}
}

func RemoteRejected(op, id string, err error) *Error {
	return &Error{Kind: KindRemoteRejected, Op: op, ID: id, Err: err}
}

func NotFound(op, id string) *Error {
	return &Error{Kind: KindNotFound, Op: op, ID: id}
}

// KindOf returns the kind carried by err, or KindRemoteRejected for errors
// that did not come from a store.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindRemoteRejected
}

// IsNotFound reports whether err means the document does not exist.
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}
