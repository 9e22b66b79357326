package doctemplate

import "errors"

var (
	// ErrInvalidTemplate reports a template that fails structural validation.
	ErrInvalidTemplate = errors.New("doctemplate: invalid template")
	// ErrUnsupportedFormat reports a template file extension that cannot be decoded.
	ErrUnsupportedFormat = errors.New("doctemplate: unsupported template format")
)
