// Package validation holds the semantic rules applied to decoded OTLP
// requests and the errors they report.
//
// Every OTLP message type implements [Validator]. Validation walks the tree
// depth first and stops at the first error.
package validation

import (
	"errors"
	"fmt"
)

// Validator is implemented by every OTLP message type.
type Validator interface {
	Validate() error
}

// Each validates items in order and returns the first error.
func Each[T Validator](items []T) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

var (
	// ErrEmptyHost is reported for a URL with a scheme that requires a host
	// but has none, such as "https://".
	ErrEmptyHost = errors.New("empty host")

	// ErrRelativeURL is reported for a URL without a scheme.
	ErrRelativeURL = errors.New("relative URL without a base")

	ErrInvalidPort            = errors.New("invalid port number")
	ErrInvalidDomain          = errors.New("invalid international domain name")
	ErrInvalidDomainCharacter = errors.New("invalid domain character")
	ErrInvalidIPv4            = errors.New("invalid IPv4 address")
	ErrInvalidIPv6            = errors.New("invalid IPv6 address")
)

// URLError is returned when a schema_url is not a valid absolute URL. Err is
// one of the sentinel errors above, or the parser's own error for failures
// without one.
type URLError struct {
	URL string
	Err error
}

func (e *URLError) Error() string { return e.Err.Error() }

func (e *URLError) Unwrap() error { return e.Err }

// NameError is returned when a metric name does not match
// [A-Za-z_][A-Za-z0-9_]*.
type NameError struct {
	Name string
	// Offset of the first offending byte. For an empty name it is 0.
	Offset int
}

func (e *NameError) Error() string {
	if e.Name == "" {
		return "invalid metric name: empty"
	}
	return fmt.Sprintf("invalid metric name %q: unexpected character %q at offset %d", e.Name, e.Name[e.Offset], e.Offset)
}

// OtherError covers conditions which are not wire, URL or name errors.
type OtherError struct {
	Reason string
}

// Otherf returns an OtherError with a formatted reason.
func Otherf(format string, args ...any) *OtherError {
	return &OtherError{Reason: fmt.Sprintf(format, args...)}
}

func (e *OtherError) Error() string { return e.Reason }
