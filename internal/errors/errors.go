package errors

import (
	"encoding/json"
	"errors"
)

// ErrVersionConflict is raised when stored entry was changed after it was read by editor
var ErrVersionConflict = errors.New("submission was modified by someone else, reload it and try again")

// ErrDeleteNotConfirmed is raised when deletion is confirmed without valid request ticket
var ErrDeleteNotConfirmed = errors.New("deletion must be requested and confirmed before submission is removed")

// BusinessErr is error caused by violation of business rule
type BusinessErr struct {
	target  string
	message string
}

func (e *BusinessErr) Error() string {
	return e.message
}

// Target returns name of the field or entity rule is applied to
func (e *BusinessErr) Target() string {
	return e.target
}

// MarshalJSON marshals error as json object of target and message
func (e *BusinessErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Target  string `json:"target"`
		Message string `json:"message"`
	}{Target: e.target, Message: e.message})
}

// NewBusinessErr builds BusinessErr
func NewBusinessErr(target string, msg string) error {
	return &BusinessErr{
		target:  target,
		message: msg,
	}
}

// EntryNotFoundErr is raised when requested entry doesn't exist
type EntryNotFoundErr struct {
	message string
}

func (e *EntryNotFoundErr) Error() string {
	return e.message
}

// NewEntryNotFoundErr builds EntryNotFoundErr
func NewEntryNotFoundErr(msg string) *EntryNotFoundErr {
	return &EntryNotFoundErr{message: msg}
}

// StoreErr wraps failure of the underlying datastore
type StoreErr struct {
	op  string
	err error
}

func (e *StoreErr) Error() string {
	return e.op + " - " + e.err.Error()
}

func (e *StoreErr) Unwrap() error {
	return e.err
}

// NewStoreErr builds StoreErr for operation op
func NewStoreErr(op string, err error) error {
	return &StoreErr{op: op, err: err}
}
