package uniprot

import (
	"errors"
	"fmt"
)

var (
	ErrMissingHeaderMarker        = errors.New("missing '>' header marker")
	ErrUnknownDatabase            = errors.New("unknown database tag")
	ErrMissingDelimiter           = errors.New("missing delimiter")
	ErrMalformedIsoformIdentifier = errors.New("malformed isoform identifier")
	ErrMissingTag                 = errors.New("missing tag")
	ErrUnknownProteinExistence    = errors.New("unknown protein existence code")
	ErrEmptyField                 = errors.New("empty field")
)

// ParseError reports the first grammar rule a header failed to satisfy.
// Err is one of the sentinel errors above, Token names the expected or
// offending token, and Rest holds the input that was still unconsumed when
// the rule failed, so callers can report the position of the violation.
type ParseError struct {
	Err   error
	Token string
	Rest  string
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Token != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Token)
	}
	if e.Rest != "" {
		msg = fmt.Sprintf("%s at %q", msg, e.Rest)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
