package chart

import (
	"errors"
	"strings"
)

// Kind classifies chart failures.
type Kind uint8

const (
	// MissingField: a required field such as formula or data is absent.
	MissingField Kind = iota + 1
	// InvalidFormula: the formula compiler rejected the expression.
	InvalidFormula
	// InsufficientData: too few points for the requested analysis.
	InsufficientData
	// InvalidColor: a color is not #RRGGBB or #AARRGGBB.
	InvalidColor
	// ResourceFailure: canvas allocation, encoding or file output failed.
	ResourceFailure
)

var kindNames = [...]string{
	MissingField:     "missing field",
	InvalidFormula:   "invalid formula",
	InsufficientData: "insufficient data",
	InvalidColor:     "invalid color",
	ResourceFailure:  "resource failure",
}

func (k Kind) String() string {
	if int(k) > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Sentinel errors, one per Kind. Every *Error matches its Kind's sentinel
// with errors.Is.
var (
	ErrMissingField     = errors.New("chart: missing field")
	ErrInvalidFormula   = errors.New("chart: invalid formula")
	ErrInsufficientData = errors.New("chart: insufficient data")
	ErrInvalidColor     = errors.New("chart: invalid color")
	ErrResource         = errors.New("chart: resource failure")
)

func (k Kind) sentinel() error {
	switch k {
	case MissingField:
		return ErrMissingField
	case InvalidFormula:
		return ErrInvalidFormula
	case InsufficientData:
		return ErrInsufficientData
	case InvalidColor:
		return ErrInvalidColor
	case ResourceFailure:
		return ErrResource
	}
	return nil
}

// Error is the failure returned by every chart entry point.
type Error struct {
	Kind Kind
	// Chart is the chart name, such as "bar_chart". Empty outside an
	// invocation.
	Chart string
	// Field is the offending configuration field, if any.
	Field string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("chart: ")
	if e.Chart != "" {
		b.WriteString(e.Chart)
		b.WriteString(": ")
	}
	if e.Field != "" {
		b.WriteString(e.Field)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the Kind's sentinel and the cause.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf returns the Kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
