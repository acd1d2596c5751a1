package article

import "errors"

// Sentinel errors for the conversion pipeline.
// Every one of them is fatal: the document is rendered completely or not at all.
var (
	ErrInputUnreadable    = errors.New("input unreadable")
	ErrMalformedInput     = errors.New("malformed input")
	ErrMissingAssociation = errors.New("missing required association")
	ErrUnsupportedKind    = errors.New("unsupported kind")
	ErrMalformedHref      = errors.New("malformed href")
	ErrCrossingMarkup     = errors.New("crossing markup ranges")
)
