package catalog

import "errors"

// ErrUnknownFeature is returned when a feature id is not in the catalog.
var ErrUnknownFeature = errors.New("unknown feature")
