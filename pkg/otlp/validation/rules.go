package validation

import (
	"errors"

	whatwgerrors "github.com/nlnwa/whatwg-url/errors"
	whatwgurl "github.com/nlnwa/whatwg-url/url"
)

// urlFailures maps the fatal errors of the WHATWG URL parser to the errors
// reported by SchemaURL.
var urlFailures = map[whatwgerrors.ErrorType]error{
	whatwgerrors.MissingSchemeNonRelativeURL: ErrRelativeURL,
	whatwgerrors.HostMissing:                 ErrEmptyHost,
	whatwgerrors.InvalidCredentials:          ErrEmptyHost,
	whatwgerrors.PortOutOfRange:              ErrInvalidPort,
	whatwgerrors.PortInvalid:                 ErrInvalidPort,
	whatwgerrors.PortMissing:                 ErrInvalidPort,
	whatwgerrors.DomainToASCII:               ErrInvalidDomain,
	whatwgerrors.DomainToUnicode:             ErrInvalidDomain,
	whatwgerrors.DomainInvalidCodePoint:      ErrInvalidDomainCharacter,
	whatwgerrors.HostInvalidCodePoint:        ErrInvalidDomainCharacter,
	whatwgerrors.IPv4EmptyPart:               ErrInvalidIPv4,
	whatwgerrors.IPv4TooManyParts:            ErrInvalidIPv4,
	whatwgerrors.IPv4NonNumericPart:          ErrInvalidIPv4,
	whatwgerrors.IPv4OutOfRangePart:          ErrInvalidIPv4,
	whatwgerrors.IPv6Unclosed:                ErrInvalidIPv6,
	whatwgerrors.IPv6InvalidCompression:      ErrInvalidIPv6,
	whatwgerrors.IPv6TooManyPieces:           ErrInvalidIPv6,
	whatwgerrors.IPv6MultipleCompression:     ErrInvalidIPv6,
	whatwgerrors.IPv6InvalidCodePoint:        ErrInvalidIPv6,
	whatwgerrors.IPv6TooFewPieces:            ErrInvalidIPv6,
	whatwgerrors.IPv4InIPv6TooManyPieces:     ErrInvalidIPv6,
	whatwgerrors.IPv4InIPv6InvalidCodePoint:  ErrInvalidIPv6,
	whatwgerrors.IPv4InIPv6OutOfRangePart:    ErrInvalidIPv6,
	whatwgerrors.IPv4InIPv6TooFewParts:       ErrInvalidIPv6,
}

// SchemaURL checks a schema_url value. An empty value is valid; anything else
// must parse as an absolute URL under the WHATWG URL standard. Non-fatal
// validation errors, such as a stray percent sign, are accepted.
func SchemaURL(raw string) error {
	if raw == "" {
		return nil
	}
	if _, err := whatwgurl.Parse(raw); err != nil {
		return &URLError{URL: raw, Err: urlFailure(err)}
	}
	return nil
}

func urlFailure(err error) error {
	var verr *whatwgerrors.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	if mapped, ok := urlFailures[verr.Type()]; ok {
		return mapped
	}
	return err
}

// MetricName checks name against [A-Za-z_][A-Za-z0-9_]*.
func MetricName(name string) error {
	if name == "" {
		return &NameError{Name: name}
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if isNameStart(c) || (i > 0 && '0' <= c && c <= '9') {
			continue
		}
		return &NameError{Name: name, Offset: i}
	}
	return nil
}

func isNameStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
