package extractor

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAttribute is returned when a required attribute is absent.
	ErrMissingAttribute = errors.New("missing required attribute")
	// ErrInvalidBool is returned when a boolean attribute is not "true" or "false".
	ErrInvalidBool = errors.New("invalid boolean")
	// ErrMissingText is returned when an element that must carry text has none.
	ErrMissingText = errors.New("missing text content")
	// ErrInvalidLink is returned when a keyword fragment does not produce a valid URL.
	ErrInvalidLink = errors.New("invalid documentation link")
)

// SchemaError reports an element that does not match the schema the
// extractor expects.
type SchemaError struct {
	Tag       string // element being read, e.g. "Parameter"
	Entity    string // name of the enclosing entity when known
	Attribute string // offending attribute, empty for text errors
	Value     string // offending value for invalid booleans
	Err       error
}

func (e *SchemaError) Error() string {
	where := "<" + e.Tag + ">"
	if e.Entity != "" {
		where = fmt.Sprintf("<%s> of %q", e.Tag, e.Entity)
	}
	switch {
	case e.Attribute != "" && e.Value != "":
		return fmt.Sprintf("%s: attribute %s=%q: %v", where, e.Attribute, e.Value, e.Err)
	case e.Attribute != "":
		return fmt.Sprintf("%s: %v %q", where, e.Err, e.Attribute)
	default:
		return fmt.Sprintf("%s: %v", where, e.Err)
	}
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}
