package errors

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownDatumType          = errors.New("unknown datum type")
	ErrUnknownDeviceEventSubtype = errors.New("unknown device event subtype")
	ErrMissingTimeField          = errors.New("missing time field")
	ErrInvalidTimeField          = errors.New("invalid time field")
	ErrInvalidBolusSubtype       = errors.New("invalid bolus subtype")
	ErrInvalidGlycemiaUnit       = errors.New("invalid glycemia unit")
	ErrNegativeGlycemiaValue     = errors.New("negative glycemia value")
	ErrInvalidNutrition          = errors.New("invalid nutrition payload")
	ErrInvalidDuration           = errors.New("invalid duration")
)

// DatumError is returned by normalizers when a raw record cannot be turned into a datum.
// The message is reported verbatim, the kind is used for errors.Is checks.
type DatumError struct {
	Kind error
	Err  error
}

func (d DatumError) Unwrap() error {
	return d.Kind
}

func (d DatumError) Error() string {
	return d.Err.Error()
}

func New(kind error, format string, args ...interface{}) error {
	return DatumError{Kind: kind, Err: fmt.Errorf(format, args...)}
}

func UnknownDatumType(t string) error {
	return New(ErrUnknownDatumType, "Unknown datum type %s", t)
}

func UnknownDeviceEventSubtype(s string) error {
	return New(ErrUnknownDeviceEventSubtype, "Unknown deviceEvent subType %s", s)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}
